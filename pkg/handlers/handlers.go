package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/eknkc/pug"

	"media-gallery/pkg/models"
	"media-gallery/pkg/services"
)

// Handler serves the gallery page and its API
type Handler struct {
	gallery   *services.Gallery
	log       *slog.Logger
	viewsDir  string
	maxUpload int64
}

// New creates a handler around the gallery. The template compiler refuses
// paths that climb out of the working directory, so viewsDir is made absolute.
func New(g *services.Gallery, log *slog.Logger, viewsDir string, maxUpload int64) *Handler {
	if abs, err := filepath.Abs(viewsDir); err == nil {
		viewsDir = abs
	}
	return &Handler{
		gallery:   g,
		log:       log,
		viewsDir:  viewsDir,
		maxUpload: maxUpload,
	}
}

// Routes registers every endpoint on a new mux
func (h *Handler) Routes(publicDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(publicDir))))
	mux.HandleFunc("GET /{$}", h.GalleryHandler)
	mux.HandleFunc("GET /healthz", h.HealthHandler)
	mux.HandleFunc("GET /api/state", h.StateHandler)
	mux.HandleFunc("POST /api/events", h.EventHandler)
	mux.HandleFunc("POST /actions", h.ActionHandler)
	mux.HandleFunc("POST /upload", h.UploadHandler)
	return mux
}

// cardData is a card with its source marked safe for src attributes
type cardData struct {
	models.Card
	SafeSrc template.URL
}

type pageData struct {
	models.Page
	Grid    []cardData
	Focused *cardData
	Confirm string
}

// safeSrc lets through the sources the gallery produces itself: remote
// http(s) media and base64 data URLs of images and videos.
func safeSrc(src string) template.URL {
	lower := strings.ToLower(src)
	switch {
	case strings.HasPrefix(lower, "https://"), strings.HasPrefix(lower, "http://"):
		return template.URL(src)
	case strings.HasPrefix(lower, "data:image/"), strings.HasPrefix(lower, "data:video/"):
		return template.URL(src)
	}
	return template.URL("about:blank")
}

func newPageData(page models.Page) pageData {
	data := pageData{
		Page:    page,
		Grid:    make([]cardData, 0, len(page.Cards)),
		Confirm: services.ConfirmDeleteMessage,
	}
	for _, c := range page.Cards {
		data.Grid = append(data.Grid, cardData{Card: c, SafeSrc: safeSrc(c.Src)})
	}
	if c := page.Lightbox.Card; c != nil {
		data.Focused = &cardData{Card: *c, SafeSrc: safeSrc(c.Src)}
	}
	return data
}

func (h *Handler) render(w http.ResponseWriter, page models.Page) {
	template, err := pug.CompileFile(filepath.Join(h.viewsDir, "index.pug"), pug.Options{})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		h.log.Error("Template error", "error", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := template.Execute(w, newPageData(page)); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		h.log.Error("Template execution error", "error", err)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// maxRejectedWarnings bounds the warnings a redirect query can ask for
const maxRejectedWarnings = 32

// GalleryHandler handles requests for the gallery page
func (h *Handler) GalleryHandler(w http.ResponseWriter, r *http.Request) {
	h.log.Debug("Generating gallery page")
	page := h.gallery.View()
	page.Warnings = rejectedWarnings(r)
	h.render(w, page)
}

// rejectedWarnings rebuilds the upload warnings carried over a redirect
func rejectedWarnings(r *http.Request) []string {
	n, err := strconv.Atoi(r.URL.Query().Get("rejected"))
	if err != nil || n <= 0 {
		return nil
	}
	n = min(n, maxRejectedWarnings)
	warnings := make([]string, n)
	for i := range warnings {
		warnings[i] = services.RejectedUploadMessage
	}
	return warnings
}

// StateHandler returns the current page as JSON
func (h *Handler) StateHandler(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.gallery.View())
}

// HealthHandler reports that the server is up
func (h *Handler) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		h.log.Error("Failed to write response", "error", err)
	}
}
