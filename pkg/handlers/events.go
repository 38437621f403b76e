package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"media-gallery/pkg/arena"
	"media-gallery/pkg/models"
	"media-gallery/pkg/services"
)

// Event types accepted by the API and the form fallback
const (
	EventCardClick      = "card-click"
	EventDelete         = "delete"
	EventLightboxDelete = "lightbox-delete"
	EventClose          = "close"
	EventNav            = "nav"
	EventKeyPress       = "key-press"
	EventFilter         = "filter"
)

type eventRequest struct {
	Type      string `json:"type"`
	Key       string `json:"key"`
	Category  string `json:"category"`
	Direction string `json:"direction"`
	KeyName   string `json:"keyName"`
	Confirm   bool   `json:"confirm"`
}

// requestPrompter answers confirmations from the request and collects
// warnings for the response
type requestPrompter struct {
	confirmed bool
	warnings  []string
}

func (p *requestPrompter) Confirm(string) bool {
	return p.confirmed
}

func (p *requestPrompter) Warn(message string) {
	p.warnings = append(p.warnings, message)
}

func (req eventRequest) event() (services.Event, error) {
	switch req.Type {
	case EventCardClick, EventDelete:
		k, err := arena.ParseKey(req.Key)
		if err != nil {
			return nil, err
		}
		if req.Type == EventCardClick {
			return services.CardClick{Key: k}, nil
		}
		return services.DeleteClick{Key: k}, nil
	case EventLightboxDelete:
		return services.LightboxDelete{}, nil
	case EventClose:
		return services.CloseClick{}, nil
	case EventNav:
		d, err := services.ParseDirection(req.Direction)
		if err != nil {
			return nil, err
		}
		return services.NavClick{Direction: d}, nil
	case EventKeyPress:
		return services.KeyPress{Key: req.KeyName}, nil
	case EventFilter:
		c, err := models.ParseCategory(req.Category)
		if err != nil {
			return nil, err
		}
		return services.FilterClick{Category: c}, nil
	}
	return nil, fmt.Errorf("unknown event type: %q", req.Type)
}

func (h *Handler) dispatch(r *http.Request, req eventRequest, ev services.Event) models.Page {
	prompt := &requestPrompter{confirmed: req.Confirm}
	page := services.NewDispatcher(h.gallery, prompt, h.log).Dispatch(r.Context(), ev)
	page.Warnings = prompt.warnings
	return page
}

// EventHandler applies a JSON encoded user event and returns the new page
func (h *Handler) EventHandler(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ev, err := req.event()
	if err != nil {
		h.log.Debug("Rejected event", "type", req.Type, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.log.Debug("Handling event", "type", req.Type)
	h.writeJSON(w, http.StatusOK, h.dispatch(r, req, ev))
}

// ActionHandler applies an event posted by an HTML form and redirects back to the page
func (h *Handler) ActionHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	confirm, _ := strconv.ParseBool(r.PostFormValue("confirm"))
	req := eventRequest{
		Type:      r.PostFormValue("type"),
		Key:       r.PostFormValue("key"),
		Category:  r.PostFormValue("category"),
		Direction: r.PostFormValue("direction"),
		KeyName:   r.PostFormValue("keyName"),
		Confirm:   confirm,
	}

	ev, err := req.event()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.dispatch(r, req, ev)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// uploadedFile adapts a multipart file to the gallery's File
type uploadedFile struct {
	header *multipart.FileHeader
}

func (f uploadedFile) Name() string      { return f.header.Filename }
func (f uploadedFile) MediaType() string { return f.header.Header.Get("Content-Type") }

func (f uploadedFile) Open() (io.ReadCloser, error) {
	return f.header.Open()
}

// UploadHandler adds the files posted under "files". Browsers are redirected
// back to the page so that a reload does not post the files again.
func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Upload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid upload", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	files := make([]services.File, 0, len(headers))
	for _, fh := range headers {
		files = append(files, uploadedFile{header: fh})
	}
	h.log.Info("Handling upload", "files", len(files))

	page := h.dispatch(r, eventRequest{}, services.FilesSelected{Files: files})
	if wantsJSON(r) {
		h.writeJSON(w, http.StatusOK, page)
		return
	}

	target := "/"
	if n := len(page.Warnings); n > 0 {
		target = "/?rejected=" + strconv.Itoa(n)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
