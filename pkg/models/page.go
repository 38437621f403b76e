package models

// EmptyLightboxMessage is shown by the lightbox when the active view has no entries
const EmptyLightboxMessage = "No items to display"

// Card is one entry as shown in the grid or the lightbox
type Card struct {
	Key         string `json:"key"`
	Index       int    `json:"index"`
	Type        Kind   `json:"type"`
	IsImage     bool   `json:"isImage"`
	Src         string `json:"src"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deletable   bool   `json:"deletable"`
}

// FilterButton is one of the category toggles above the grid
type FilterButton struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Active   bool     `json:"active"`
}

// Lightbox is the focused single-entry viewer
type Lightbox struct {
	Open    bool   `json:"open"`
	Index   int    `json:"index"`
	Count   int    `json:"count"`
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`
	Card    *Card  `json:"card,omitempty"`
}

// Page represents everything needed to draw the gallery
type Page struct {
	Category Category       `json:"category"`
	Filters  []FilterButton `json:"filters"`
	Cards    []Card         `json:"cards"`
	Lightbox Lightbox       `json:"lightbox"`
	Warnings []string       `json:"warnings,omitempty"`
}
