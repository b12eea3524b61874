package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gaurav-prasanna/postpipe/core/markdown"
	"github.com/gaurav-prasanna/postpipe/internal/logging"
)

// maxRenderBody caps the size of a render request.
const maxRenderBody = 1 << 20

type renderRequest struct {
	Markdown string `json:"markdown"`
	// Resolve asks for finished HTML with code blocks filled in (and
	// highlighted when enabled) instead of markup plus a code map.
	Resolve bool `json:"resolve"`
}

type renderResponse struct {
	HTML string                        `json:"html"`
	Code map[string]markdown.CodeBlock `json:"code"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRenderBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !req.Resolve {
		res := markdown.Render(req.Markdown)
		writeJSON(w, http.StatusOK, renderResponse{HTML: res.HTML, Code: res.Code})
		return
	}

	out, err := s.engine.Convert(req.Markdown)
	if err != nil {
		logging.FromContext(r.Context()).Error("render failed", logging.FieldError, err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, renderResponse{HTML: out, Code: map[string]markdown.CodeBlock{}})
}

func (s *Server) handleOG(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		writeError(w, http.StatusBadRequest, "url must be an absolute http(s) URL")
		return
	}

	og, err := s.previewer.Preview(r.Context(), raw)
	if err != nil {
		logging.FromContext(r.Context()).Warn("og lookup failed", logging.FieldURL, raw, logging.FieldError, err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, og)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
