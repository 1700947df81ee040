package catalogue

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Catalogue is the immutable list of bookable items. It is built once at
// startup and handed to every component that prices or renders items.
type Catalogue struct {
	items []Item
	byID  map[string]Item
}

// New validates items and builds a catalogue preserving their order.
func New(items []Item) (*Catalogue, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalogue
	}

	c := &Catalogue{
		items: make([]Item, 0, len(items)),
		byID:  make(map[string]Item, len(items)),
	}

	for _, item := range items {
		item.ID = strings.TrimSpace(item.ID)
		switch {
		case item.ID == "":
			return nil, ErrEmptyID
		case strings.TrimSpace(item.Label) == "":
			return nil, fmt.Errorf("%w: %s", ErrEmptyLabel, item.ID)
		case item.Price < 0:
			return nil, fmt.Errorf("%w: %s", ErrNegativePrice, item.ID)
		case item.Type != TypeSession && item.Type != TypeAddon:
			return nil, fmt.Errorf("%w: %s", ErrUnknownType, item.ID)
		}
		if _, exists := c.byID[item.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, item.ID)
		}

		c.items = append(c.items, item)
		c.byID[item.ID] = item
	}

	return c, nil
}

// MustNew is New for static item lists known to be valid.
func MustNew(items []Item) *Catalogue {
	c, err := New(items)
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads a JSON array of items. An empty path yields Default().
func LoadFile(path string) (*Catalogue, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue file: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode catalogue file: %w", err)
	}

	return New(items)
}

// Lookup returns the item with the given id.
func (c *Catalogue) Lookup(id string) (Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Items returns a copy of all items in catalogue order.
func (c *Catalogue) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Sessions returns the session items in catalogue order.
func (c *Catalogue) Sessions() []Item {
	return c.filter(TypeSession)
}

// Addons returns the add-on items in catalogue order.
func (c *Catalogue) Addons() []Item {
	return c.filter(TypeAddon)
}

func (c *Catalogue) filter(t Type) []Item {
	var out []Item
	for _, item := range c.items {
		if item.Type == t {
			out = append(out, item)
		}
	}
	return out
}

// Default returns the studio's standard price list.
func Default() *Catalogue {
	return MustNew([]Item{
		{
			ID:          "portrait",
			Label:       "Portrait Session",
			Price:       1500,
			Type:        TypeSession,
			Description: "A personalised 1-hour studio or outdoor portrait session.",
		},
		{
			ID:          "family",
			Label:       "Family Session",
			Price:       2000,
			Type:        TypeSession,
			Description: "Capture precious family memories in a relaxed 1.5-hour session.",
		},
		{
			ID:          "couples",
			Label:       "Couples Session",
			Price:       1750,
			Type:        TypeSession,
			Description: "A romantic 1-hour session for couples – indoors or outdoors.",
		},
		{
			ID:          "wedding",
			Label:       "Wedding Coverage",
			Price:       8000,
			Type:        TypeSession,
			Description: "Full-day wedding coverage from preparations to first dance.",
		},
		{
			ID:          "event",
			Label:       "Event / Occasion",
			Price:       3000,
			Type:        TypeSession,
			Description: "Corporate events, birthdays, graduations, and more.",
		},
		{
			ID:          "extra_hour",
			Label:       "Extra Hour",
			Price:       1000,
			Type:        TypeAddon,
			Description: "Add an extra hour to your session.",
		},
		{
			ID:          "digital_package",
			Label:       "Full Digital Package",
			Price:       1500,
			Type:        TypeAddon,
			Description: "Receive all edited photos as high-resolution digital files.",
		},
		{
			ID:          "photo_album",
			Label:       "Luxury Photo Album",
			Price:       2000,
			Type:        TypeAddon,
			Description: "A premium 30-page printed photo album.",
		},
		{
			ID:          "canvas_print",
			Label:       "Canvas Print (50×70 cm)",
			Price:       1200,
			Type:        TypeAddon,
			Description: "Your favourite image professionally printed on canvas.",
		},
		{
			ID:          "rush_editing",
			Label:       "Rush Editing (48 hrs)",
			Price:       750,
			Type:        TypeAddon,
			Description: "Receive your edited photos within 48 hours.",
		},
	})
}
