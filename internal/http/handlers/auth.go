package handlers

import (
	"net/http"
	"time"

	"campusfund/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      userDTO   `json:"user"`
}

func toSessionDTO(s *auth.Session) sessionDTO {
	return sessionDTO{Token: s.Token, ExpiresAt: s.ExpiresAt, User: toUserDTO(s.User)}
}

func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !a.decode(w, r, &req) {
		return
	}
	session, err := a.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, http.StatusOK, toSessionDTO(session))
}

func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	var in auth.RegisterInput
	if !a.decode(w, r, &in) {
		return
	}
	session, err := a.Auth.Register(r.Context(), in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, http.StatusCreated, toSessionDTO(session))
}

func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	u, err := a.requireUser(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, http.StatusOK, toUserDTO(u))
}
