package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/langcolors/pkg/chain"
	"github.com/matzehuels/langcolors/pkg/errors"
	"github.com/matzehuels/langcolors/pkg/linguist"
	"github.com/matzehuels/langcolors/pkg/pipeline"
	"github.com/matzehuels/langcolors/pkg/report"
)

const requestIDHeader = "X-Request-ID"

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/refresh", s.handleRefresh)

	r.Group(func(r chi.Router) {
		r.Use(s.requireResult)
		r.Get("/", s.handleReport(report.FormatHTML))
		r.Get("/chain.json", s.handleReport(report.FormatJSON))
		r.Get("/report.{format}", s.handleReportFormat)
		r.Get("/languages", s.handleLanguages)
		r.Get("/languages/{name}", s.handleLanguage)
	})

	return r
}

// requestID tags each request with a UUID, keeping one sent by the client.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", w.Header().Get(requestIDHeader))
	})
}

func (s *Server) requireResult(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if res, _ := s.current(); res == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorBody{Code: "NOT_READY", Message: "catalog not loaded yet"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	res, at := s.current()
	body := map[string]any{"status": "ok"}
	if res == nil {
		body["status"] = "loading"
	} else {
		body["languages"] = res.Stats.Colored
		body["chain_length"] = res.Stats.ChainLength
		body["report_id"] = res.Report.ID().String()
		body["refreshed_at"] = at.Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	res, err := s.Refresh(r.Context(), true)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"languages":    res.Stats.Colored,
		"skipped":      res.Stats.Skipped,
		"chain_length": res.Stats.ChainLength,
		"report_id":    res.Report.ID().String(),
	})
}

func (s *Server) handleReportFormat(w http.ResponseWriter, r *http.Request) {
	f, err := report.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "report format"))
		return
	}
	s.handleReport(f)(w, r)
}

func (s *Server) handleReport(f report.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, _ := s.current()
		artifacts, err := s.runner.Render(r.Context(), res.Report, pipeline.Options{Formats: []string{string(f)}})
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", f.ContentType())
		w.Header().Set("ETag", strconv.Quote(res.Report.Hash()))
		w.WriteHeader(http.StatusOK)
		w.Write(artifacts[string(f)])
	}
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	res, _ := s.current()
	writeJSON(w, http.StatusOK, res.Set.Entries())
}

type languageBody struct {
	linguist.Language
	ChainIndex int              `json:"chain_index"`
	Nearest    []chain.Neighbor `json:"nearest"`
}

func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	if err := errors.ValidateLanguageName(name); err != nil {
		writeError(w, err)
		return
	}

	k := 5
	if v := r.URL.Query().Get("k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "k must be a non-negative integer"))
			return
		}
		k = n
	}

	res, _ := s.current()
	lang, ok := res.Catalog.Lookup(name)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeLanguageNotFound, "unknown language %q", name))
		return
	}
	nearest, ok := chain.Nearest(res.Set, lang.Name, k)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeLanguageNotFound, "language %q has no usable color", lang.Name))
		return
	}

	body := languageBody{Language: lang, ChainIndex: -1, Nearest: nearest}
	for i, e := range res.Chain {
		if e.Name == lang.Name {
			body.ChainIndex = i
			break
		}
	}
	writeJSON(w, http.StatusOK, body)
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// writeError maps error codes to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch {
	case errors.IsNotFound(err):
		status = http.StatusNotFound
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	case code == errors.ErrCodeNetwork, code == errors.ErrCodeTimeout, code == errors.ErrCodeRateLimited:
		status = http.StatusBadGateway
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorBody{Code: string(code), Message: errors.UserMessage(err)})
}
