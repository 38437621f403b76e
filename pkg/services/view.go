package services

import (
	"media-gallery/pkg/arena"
	"media-gallery/pkg/models"
)

// View projects the current state into what the page should show
func (g *Gallery) View() models.Page {
	g.mu.Lock()
	defer g.mu.Unlock()

	page := models.Page{
		Category: g.category,
		Filters:  make([]models.FilterButton, 0, len(models.Categories)),
		Cards:    make([]models.Card, 0, len(g.view)),
	}

	for _, c := range models.Categories {
		page.Filters = append(page.Filters, models.FilterButton{
			Category: c,
			Label:    c.Label(),
			Active:   c == g.category,
		})
	}

	for i, k := range g.view {
		page.Cards = append(page.Cards, g.cardLocked(i, k))
	}

	page.Lightbox = g.lightboxLocked(page.Cards)
	return page
}

func (g *Gallery) cardLocked(i int, k arena.Key) models.Card {
	e, _ := g.entries.Get(k)
	return models.Card{
		Key:         k.String(),
		Index:       i,
		Type:        e.Type,
		IsImage:     e.Type == models.KindImage,
		Src:         e.Src,
		Title:       e.Title,
		Description: e.Description,
		Deletable:   !e.IsDefault,
	}
}

func (g *Gallery) lightboxLocked(cards []models.Card) models.Lightbox {
	if !g.lightbox.open {
		return models.Lightbox{}
	}

	lb := models.Lightbox{
		Open:  true,
		Index: g.lightbox.index,
		Count: len(cards),
	}
	if g.lightbox.index < 0 || g.lightbox.index >= len(cards) {
		lb.Empty = true
		lb.Message = models.EmptyLightboxMessage
		return lb
	}

	card := cards[g.lightbox.index]
	lb.Card = &card
	return lb
}
