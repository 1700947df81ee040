package pricing

import (
	"strconv"
	"strings"

	"github.com/sinding/booking-api/internal/domain/catalogue"
)

// LineItem is one priced entry of a quote.
type LineItem struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Price   int64  `json:"price"`
	IsAddon bool   `json:"is_addon"`
}

// Quote is the result of pricing a selection.
type Quote struct {
	Total     int64      `json:"total"`
	LineItems []LineItem `json:"line_items"`
}

// Compute prices a single optional session plus add-ons. An empty or
// unknown sessionID contributes nothing.
func Compute(cat *catalogue.Catalogue, sessionID string, addonIDs []string) Quote {
	var sessionIDs []string
	if sessionID != "" {
		sessionIDs = []string{sessionID}
	}
	return ComputeSelection(cat, sessionIDs, addonIDs)
}

// ComputeSelection prices sessions followed by add-ons, preserving the order
// given. Ids are normalised with NormalizeIDs and unknown ids are skipped. Ids
// are looked up across the whole catalogue; the list an id arrives in decides
// IsAddon.
func ComputeSelection(cat *catalogue.Catalogue, sessionIDs, addonIDs []string) Quote {
	sessionIDs = NormalizeIDs(sessionIDs)
	addonIDs = NormalizeIDs(addonIDs)

	q := Quote{LineItems: make([]LineItem, 0, len(sessionIDs)+len(addonIDs))}
	q.add(cat, sessionIDs, false)
	q.add(cat, addonIDs, true)
	return q
}

// NormalizeIDs trims and lowercases item ids and drops blank ones.
func NormalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.ToLower(strings.TrimSpace(id)); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func (q *Quote) add(cat *catalogue.Catalogue, ids []string, addon bool) {
	for _, id := range ids {
		item, ok := cat.Lookup(id)
		if !ok {
			continue
		}
		q.LineItems = append(q.LineItems, LineItem{
			ID:      item.ID,
			Label:   item.Label,
			Price:   item.Price,
			IsAddon: addon,
		})
		q.Total += item.Price
	}
}

// SessionLabels returns the labels of the non add-on line items.
func (q Quote) SessionLabels() []string {
	return q.labels(false)
}

// AddonLabels returns the labels of the add-on line items.
func (q Quote) AddonLabels() []string {
	return q.labels(true)
}

func (q Quote) labels(addon bool) []string {
	out := []string{}
	for _, li := range q.LineItems {
		if li.IsAddon == addon {
			out = append(out, li.Label)
		}
	}
	return out
}

// FormatNOK renders an amount as "NOK 4 500".
func FormatNOK(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}

	if neg {
		return "NOK -" + b.String()
	}
	return "NOK " + b.String()
}
