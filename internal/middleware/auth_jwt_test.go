package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestSignVerifyRoundTrip(t *testing.T) {
	token, err := SignJWT(testSecret, "1", "student", "Sarah Johnson", time.Hour)
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	claims, err := VerifyJWT(testSecret, token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims.Subject != "1" || claims.Role != "student" || claims.Name != "Sarah Johnson" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestVerifyRejects(t *testing.T) {
	good, _ := SignJWT(testSecret, "1", "student", "Sarah", time.Hour)
	expired, _ := SignJWT(testSecret, "1", "student", "Sarah", -time.Minute)
	noSubject, _ := SignJWT(testSecret, "", "student", "Sarah", time.Hour)

	tests := []struct {
		name, secret, token string
	}{
		{"wrong secret", "other", good},
		{"expired", testSecret, expired},
		{"garbage", testSecret, "not.a.token"},
		{"missing subject", testSecret, noSubject},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := VerifyJWT(tc.secret, tc.token); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestAuthJWTMiddleware(t *testing.T) {
	var seen Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	required := AuthJWT(testSecret)(next)
	optional := OptionalAuthJWT(testSecret)(next)
	token, _ := SignJWT(testSecret, "2", "faculty", "Dr. Michael Chen", time.Hour)

	tests := []struct {
		name    string
		handler http.Handler
		header  string
		status  int
		userID  string
	}{
		{"required without header", required, "", http.StatusUnauthorized, ""},
		{"required bad scheme", required, "Basic abc", http.StatusUnauthorized, ""},
		{"required invalid token", required, "Bearer nope", http.StatusUnauthorized, ""},
		{"required valid", required, "Bearer " + token, http.StatusOK, "2"},
		{"optional anonymous", optional, "", http.StatusOK, ""},
		{"optional valid", optional, "bearer " + token, http.StatusOK, "2"},
		{"optional invalid token", optional, "Bearer nope", http.StatusUnauthorized, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen = Session{}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			tc.handler.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if seen.UserID != tc.userID {
				t.Fatalf("user = %q, want %q", seen.UserID, tc.userID)
			}
		})
	}
}
