package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusfund/internal/catalog"
	"campusfund/internal/domain"
)

// ListCampaigns answers GET /v1/campaigns. The envelope carries the filtered
// list in data and its aggregates in summary.
func (a *App) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := a.Catalog.List(r.Context(), catalog.ParseFilter(r.URL.Query()))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, envelope{
		Success: true,
		Data:    toCampaignDTOs(campaigns, a.now()),
		Summary: toSummaryDTO(catalog.Summarize(campaigns)),
	})
}

func (a *App) FeaturedCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := a.Catalog.Featured(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, http.StatusOK, toCampaignDTOs(campaigns, a.now()))
}

func (a *App) GetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := a.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, http.StatusOK, toCampaignDTO(*c, a.now()))
}

// CreateCampaign accepts anonymous proposals; a signed-in caller becomes the
// creator.
func (a *App) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	actor, err := a.currentUser(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var in catalog.CreateCampaignInput
	if !a.decode(w, r, &in) {
		return
	}
	c, err := a.Catalog.Create(r.Context(), actor, in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, envelope{
		Success: true,
		Data:    toCampaignDTO(*c, a.now()),
		Message: "Campaign submitted for review",
	})
}

func (a *App) ListUpdates(w http.ResponseWriter, r *http.Request) {
	updates, err := a.Catalog.Updates(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, http.StatusOK, toUpdateDTOs(updates))
}

func (a *App) PostUpdate(w http.ResponseWriter, r *http.Request) {
	actor, err := a.requireUser(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var in catalog.UpdateInput
	if !a.decode(w, r, &in) {
		return
	}
	u, err := a.Catalog.PostUpdate(r.Context(), actor, chi.URLParam(r, "id"), in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, http.StatusCreated, toUpdateDTO(*u))
}

type imageUploadResponse struct {
	URL string `json:"url"`
}

// UploadImage stores the multipart "image" part and appends its URL to the
// campaign gallery.
func (a *App) UploadImage(w http.ResponseWriter, r *http.Request) {
	actor, err := a.requireUser(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, a.MaxUploadBytes+(1<<10))
	if err := r.ParseMultipartForm(a.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.error(w, http.StatusRequestEntityTooLarge, "too_large", "image exceeds the upload limit")
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", "multipart form with an image field required")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		a.fail(w, r, domain.NewValidationError("image", "Image file is required"))
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, a.MaxUploadBytes+1))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if int64(len(data)) > a.MaxUploadBytes {
		a.error(w, http.StatusRequestEntityTooLarge, "too_large", "image exceeds the upload limit")
		return
	}
	url, err := a.Catalog.AttachImage(r.Context(), actor, chi.URLParam(r, "id"), header.Filename, data)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, http.StatusCreated, imageUploadResponse{URL: url})
}

func (a *App) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := a.Catalog.Categories(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	out := make([]categoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryDTO(c))
	}
	a.ok(w, http.StatusOK, out)
}
