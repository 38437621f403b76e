package services

import (
	"context"
	"log/slog"

	"media-gallery/pkg/arena"
	"media-gallery/pkg/models"
)

// Prompt texts
const (
	ConfirmDeleteMessage  = "Are you sure you want to delete this item?"
	RejectedUploadMessage = "Please upload only image or video files."
)

// Keys understood while the lightbox is open
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEscape     = "Escape"
)

// Prompter asks the user for confirmation and shows warnings
type Prompter interface {
	Confirm(message string) bool
	Warn(message string)
}

// Event is a user action
type Event interface {
	event()
}

// CardClick is a click on a grid card
type CardClick struct{ Key arena.Key }

// DeleteClick is a click on a card's delete button
type DeleteClick struct{ Key arena.Key }

// LightboxDelete is a click on the lightbox delete button
type LightboxDelete struct{}

// CloseClick is a click on the lightbox close button
type CloseClick struct{}

// NavClick is a click on a lightbox arrow button
type NavClick struct{ Direction Direction }

// KeyPress is a key pressed anywhere on the page
type KeyPress struct{ Key string }

// FilterClick is a click on a filter button
type FilterClick struct{ Category models.Category }

// FilesSelected is a completed file picker selection
type FilesSelected struct{ Files []File }

func (CardClick) event()      {}
func (DeleteClick) event()    {}
func (LightboxDelete) event() {}
func (CloseClick) event()     {}
func (NavClick) event()       {}
func (KeyPress) event()       {}
func (FilterClick) event()    {}
func (FilesSelected) event()  {}

// Dispatcher turns user actions into gallery changes
type Dispatcher struct {
	gallery *Gallery
	prompt  Prompter
	log     *slog.Logger
}

// NewDispatcher binds a prompter to a gallery
func NewDispatcher(g *Gallery, p Prompter, log *slog.Logger) *Dispatcher {
	return &Dispatcher{gallery: g, prompt: p, log: log}
}

// Dispatch applies ev and returns the page to draw next
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) models.Page {
	switch e := ev.(type) {
	case CardClick:
		d.gallery.OpenKey(e.Key)
	case DeleteClick:
		d.delete(ctx, e.Key)
	case LightboxDelete:
		if k, ok := d.gallery.Focused(); ok {
			d.delete(ctx, k)
		}
		// the lightbox closes whether or not the delete went ahead
		d.gallery.Close()
	case CloseClick:
		d.gallery.Close()
	case NavClick:
		d.gallery.Navigate(e.Direction)
	case KeyPress:
		d.keyPress(e.Key)
	case FilterClick:
		d.gallery.SetCategory(e.Category)
	case FilesSelected:
		d.upload(ctx, e.Files)
	default:
		d.log.Warn("Ignoring unknown event", "event", ev)
	}
	return d.gallery.View()
}

func (d *Dispatcher) delete(ctx context.Context, k arena.Key) {
	e, err := d.gallery.Entry(k)
	if err != nil || e.IsDefault {
		return
	}
	if !d.prompt.Confirm(ConfirmDeleteMessage) {
		d.log.Debug("Delete cancelled", "key", k.String())
		return
	}
	d.gallery.Delete(ctx, k)
}

func (d *Dispatcher) keyPress(key string) {
	if !d.gallery.IsOpen() {
		return
	}
	switch key {
	case KeyArrowLeft:
		d.gallery.Navigate(Prev)
	case KeyArrowRight:
		d.gallery.Navigate(Next)
	case KeyEscape:
		d.gallery.Close()
	}
}

func (d *Dispatcher) upload(ctx context.Context, files []File) {
	result := d.gallery.Upload(ctx, files)
	for range result.Rejected {
		d.prompt.Warn(RejectedUploadMessage)
	}
}
