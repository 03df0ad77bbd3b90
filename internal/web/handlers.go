package web

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/engr-razib/BrandingAssetGenerator/internal/archive"
	"github.com/engr-razib/BrandingAssetGenerator/internal/batch"
	"github.com/engr-razib/BrandingAssetGenerator/internal/brand"
	"github.com/engr-razib/BrandingAssetGenerator/internal/catalog"
)

const maxBodyBytes = 64 << 10

type submitRequest struct {
	Category string         `json:"category"`
	Form     brand.FormData `json:"form"`
	Sizes    []string       `json:"sizes"`
}

type imageJSON struct {
	ID        string `json:"id"`
	SizeLabel string `json:"size_label"`
	Base64    string `json:"base64"`
}

type batchResponse struct {
	BatchID  string      `json:"batch_id"`
	Images   []imageJSON `json:"images"`
	Failed   int         `json:"failed"`
	Total    int         `json:"total"`
	Error    string      `json:"error,omitempty"`
	Blocking bool        `json:"blocking"`
}

func toImageJSON(v batch.ItemView) imageJSON {
	return imageJSON{ID: v.ID, SizeLabel: v.SizeLabel, Base64: base64.StdEncoding.EncodeToString(v.Payload)}
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories())
}

func (s *Server) getCatalog(w http.ResponseWriter, r *http.Request) {
	category, ok := categoryParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"groups":   catalog.Groups(category),
	})
}

func (s *Server) getSamples(w http.ResponseWriter, r *http.Request) {
	category, ok := categoryParam(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("random") != "" {
		sample, found := catalog.RandomSample(category)
		if !found {
			writeError(w, http.StatusNotFound, "no samples for category")
			return
		}
		writeJSON(w, http.StatusOK, sample)
		return
	}
	writeJSON(w, http.StatusOK, catalog.Samples(category))
}

func (s *Server) submitBatch(w http.ResponseWriter, r *http.Request) {
	if s.orch == nil {
		writeError(w, http.StatusServiceUnavailable, "image generation is not configured")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := brand.ParseCategory(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Form.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Please fill out the Description field.")
		return
	}
	sizes, err := normalizeSizes(category, req.Sizes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := s.sessionKey(w, r)
	b := s.orch.NewBatch(req.Form, category, sizes)
	s.sessions.Put(key, b)

	res := s.orch.Run(r.Context(), b)

	resp := batchResponse{
		BatchID: res.BatchID,
		Images:  make([]imageJSON, 0, len(res.Items)),
		Failed:  res.Failed,
		Total:   res.Total,
		Error:   res.Message(),
	}
	for _, v := range res.Items {
		resp.Images = append(resp.Images, toImageJSON(v))
	}
	resp.Blocking = errors.Is(res.Err(), batch.ErrAllFailed)

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) regenerateItem(w http.ResponseWriter, r *http.Request) {
	b, ok := s.visibleBatch(w, r)
	if !ok {
		return
	}

	view, err := s.orch.RegenerateItem(r.Context(), b, chi.URLParam(r, "itemID"))
	var itemErr *batch.ItemError
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{"image": toImageJSON(view)})
	case errors.Is(err, batch.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "image not found")
	case errors.Is(err, batch.ErrItemInFlight):
		writeError(w, http.StatusConflict, "image is already being regenerated")
	case errors.As(err, &itemErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error": "Failed to regenerate image for " + itemErr.SizeLabel + ": " + itemErr.Err.Error() + ". Please try again.",
			"item":  view,
		})
	default:
		s.logger.Error("regenerate failed", "batch_id", b.ID, "err", err)
		writeError(w, http.StatusInternalServerError, "An unknown error occurred during regeneration.")
	}
}

func (s *Server) downloadImage(w http.ResponseWriter, r *http.Request) {
	b, ok := s.visibleBatch(w, r)
	if !ok {
		return
	}

	view, found := b.Item(chi.URLParam(r, "itemID"))
	if !found || !view.Ready() {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="`+archive.ImageFileName(view.SizeLabel, s.now())+`"`)
	_, _ = w.Write(view.Payload)
}

func (s *Server) downloadArchive(w http.ResponseWriter, r *http.Request) {
	b, ok := s.visibleBatch(w, r)
	if !ok {
		return
	}

	v, err, shared := s.archives.Do(b.ID, func() (any, error) {
		return archive.Build(b.Ready())
	})
	if errors.Is(err, archive.ErrNothingToArchive) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("archive build failed", "batch_id", b.ID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to build archive")
		return
	}
	if shared {
		s.logger.Debug("archive shared between concurrent requests", "batch_id", b.ID)
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+archive.FileName(s.now())+`"`)
	_, _ = w.Write(v.([]byte))
}

// visibleBatch resolves the batch id in the URL against the caller's
// session. Superseded or foreign batches are reported as not found.
func (s *Server) visibleBatch(w http.ResponseWriter, r *http.Request) (*batch.Batch, bool) {
	if s.orch == nil {
		writeError(w, http.StatusServiceUnavailable, "image generation is not configured")
		return nil, false
	}

	key, ok := existingSessionKey(r)
	if !ok {
		writeError(w, http.StatusNotFound, "batch not found")
		return nil, false
	}
	b, err := s.sessions.Lookup(key, chi.URLParam(r, "batchID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "batch not found")
		return nil, false
	}
	return b, true
}

func categoryParam(w http.ResponseWriter, r *http.Request) (brand.Category, bool) {
	category, err := brand.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return 0, false
	}
	return category, true
}

// normalizeSizes trims, drops duplicates (keeping the first occurrence)
// and checks every label against the category's catalog.
func normalizeSizes(category brand.Category, sizes []string) ([]string, error) {
	seen := make(map[string]bool, len(sizes))
	out := make([]string, 0, len(sizes))
	for _, s := range sizes {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		if !catalog.Contains(category, s) {
			return nil, errors.New("unknown size for " + category.String() + ": " + s)
		}
		seen[s] = true
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, errors.New("select at least one size")
	}
	return out, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}
