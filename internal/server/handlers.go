package server

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/svgsmith/svgsmith/pkg/buildinfo"
	"github.com/svgsmith/svgsmith/pkg/errors"
	"github.com/svgsmith/svgsmith/pkg/httputil"
	"github.com/svgsmith/svgsmith/pkg/pipeline"
	"github.com/svgsmith/svgsmith/pkg/render"
	"github.com/svgsmith/svgsmith/pkg/scene"
	"github.com/svgsmith/svgsmith/pkg/store"
)

// sceneInfo is the JSON shape of a stored scene in API responses.
type sceneInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func infoFor(doc *store.Document) sceneInfo {
	return sceneInfo{
		ID:        doc.ID,
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleCreateScene stores a TOML manifest. The body must parse and build
// cleanly; broken manifests are rejected rather than stored.
func (s *Server) handleCreateScene(w http.ResponseWriter, r *http.Request) {
	body, err := httputil.ReadBody(w, r)
	if err != nil {
		httputil.RespondError(w, s.logger, err)
		return
	}

	sc, err := scene.Parse(body)
	if err != nil {
		httputil.RespondError(w, s.logger, err)
		return
	}
	if err := sc.Validate(); err != nil {
		httputil.RespondError(w, s.logger, err)
		return
	}

	name := sc.Name
	if name == "" {
		name = "untitled"
	}
	if err := errors.ValidateSceneName(name); err != nil {
		httputil.RespondError(w, s.logger, err)
		return
	}

	doc := store.NewDocument(name, body)
	if err := s.store.Put(r.Context(), doc); err != nil {
		httputil.RespondError(w, s.logger, errors.Wrap(errors.ErrCodeStore, err, "failed to store scene"))
		return
	}

	s.logger.Info("scene stored", "id", doc.ID, "name", doc.Name)
	httputil.RespondJSON(w, http.StatusCreated, infoFor(doc))
}

func (s *Server) handleListScenes(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httputil.RespondError(w, s.logger, errors.New(errors.ErrCodeInvalidInput, "invalid limit: %q", raw))
			return
		}
		limit = n
	}

	docs, err := s.store.List(r.Context(), limit)
	if err != nil {
		httputil.RespondError(w, s.logger, errors.Wrap(errors.ErrCodeStore, err, "failed to list scenes"))
		return
	}

	infos := make([]sceneInfo, 0, len(docs))
	for _, doc := range docs {
		infos = append(infos, infoFor(doc))
	}
	httputil.RespondJSON(w, http.StatusOK, infos)
}

func (s *Server) handleGetScene(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookupScene(w, r)
	if !ok {
		return
	}
	httputil.RespondBytes(w, http.StatusOK, "application/toml", doc.Scene)
}

func (s *Server) handleDeleteScene(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			httputil.RespondError(w, s.logger, errors.New(errors.ErrCodeSceneNotFound, "scene %s not found", id))
			return
		}
		httputil.RespondError(w, s.logger, errors.Wrap(errors.ErrCodeStore, err, "failed to delete scene"))
		return
	}
	s.logger.Info("scene deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// handleRenderScene renders a stored scene in the requested format.
func (s *Server) handleRenderScene(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.lookupScene(w, r)
	if !ok {
		return
	}
	s.renderAndRespond(w, r, pipeline.Options{
		Source: string(doc.Scene),
		Name:   doc.Name,
	})
}

// handleRenderOnce renders the request body without storing it.
func (s *Server) handleRenderOnce(w http.ResponseWriter, r *http.Request) {
	body, err := httputil.ReadBody(w, r)
	if err != nil {
		httputil.RespondError(w, s.logger, err)
		return
	}
	s.renderAndRespond(w, r, pipeline.Options{
		Source: string(body),
	})
}

func (s *Server) renderAndRespond(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	format, scale, err := renderParams(r)
	if err != nil {
		httputil.RespondError(w, s.logger, err)
		return
	}
	opts.Formats = []string{string(format)}
	opts.Scale = scale
	opts.Refresh = r.URL.Query().Get("refresh") == "true"

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		httputil.RespondError(w, s.logger, err)
		return
	}

	if result.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	httputil.RespondBytes(w, http.StatusOK, format.ContentType(), result.Artifacts[string(format)])
}

// renderParams reads the format and scale query parameters, applying the
// pipeline defaults when absent.
func renderParams(r *http.Request) (render.Format, float64, error) {
	format := render.Format(pipeline.DefaultFormat)
	if raw := r.URL.Query().Get("format"); raw != "" {
		parsed, err := render.ParseFormat(raw)
		if err != nil {
			return "", 0, err
		}
		format = parsed
	}

	var scale float64
	if raw := r.URL.Query().Get("scale"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", 0, errors.New(errors.ErrCodeInvalidScale, "invalid scale: %q", raw)
		}
		if err := errors.ValidateScale(parsed); err != nil {
			return "", 0, err
		}
		scale = parsed
	}

	return format, scale, nil
}

// lookupScene fetches the scene named by the id route parameter, writing
// the error response itself when the lookup fails.
func (s *Server) lookupScene(w http.ResponseWriter, r *http.Request) (*store.Document, bool) {
	id := chi.URLParam(r, "id")
	doc, err := s.store.Get(r.Context(), id)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			httputil.RespondError(w, s.logger, errors.New(errors.ErrCodeSceneNotFound, "scene %s not found", id))
		} else {
			httputil.RespondError(w, s.logger, errors.Wrap(errors.ErrCodeStore, err, "failed to load scene"))
		}
		return nil, false
	}
	return doc, true
}
