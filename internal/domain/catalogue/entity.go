package catalogue

// Type distinguishes the primary session from optional add-ons.
type Type string

const (
	TypeSession Type = "session"
	TypeAddon   Type = "addon"
)

// Item is a bookable catalogue entry. Prices are whole NOK amounts.
type Item struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Price       int64  `json:"price"`
	Type        Type   `json:"type"`
	Description string `json:"description"`
}

// IsSession reports whether the item is a session type.
func (i Item) IsSession() bool {
	return i.Type == TypeSession
}

// IsAddon reports whether the item is an add-on.
func (i Item) IsAddon() bool {
	return i.Type == TypeAddon
}
