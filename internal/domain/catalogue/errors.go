package catalogue

import "errors"

var (
	ErrEmptyCatalogue = errors.New("catalogue has no items")
	ErrEmptyID        = errors.New("catalogue item id is empty")
	ErrDuplicateID    = errors.New("duplicate catalogue item id")
	ErrEmptyLabel     = errors.New("catalogue item label is empty")
	ErrNegativePrice  = errors.New("catalogue item price is negative")
	ErrUnknownType    = errors.New("catalogue item type must be session or addon")
)
