package booking

import (
	"strings"
	"time"

	"github.com/sinding/booking-api/internal/domain/pricing"
	"github.com/sinding/booking-api/internal/pkg/validator"
)

// Field names a validated booking field.
type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
	FieldDate  Field = "date"
)

// User-facing messages.
const (
	MsgRequiredFields = "Please fill in all required fields."
	MsgInvalidEmail   = "Please enter a valid email address."
	MsgInvalidPhone   = "Please enter a valid phone number."
	MsgPastDate       = "Please select a future date."
	MsgNoSession      = "Please select at least one session type."
	MsgNotSaved       = "Could not save your booking. Please try again."
	MsgReceived       = "Your booking has been received! Check your email for a confirmation."
)

// FieldError is one broken field rule.
type FieldError struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// ValidatedFields holds sanitised contact fields and the parsed booking date.
type ValidatedFields struct {
	Name  string
	Email string
	Phone string
	Date  Date
}

// fieldOrder maps request fields (by JSON name) to reported fields, in report order.
var fieldOrder = []struct {
	json    string
	field   Field
	message string
}{
	{"name", FieldName, MsgRequiredFields},
	{"email", FieldEmail, MsgInvalidEmail},
	{"phone", FieldPhone, MsgInvalidPhone},
	{"booking_date", FieldDate, MsgPastDate},
}

// Validate checks the contact fields of req. All violations are collected.
// The booking date must fall strictly after today's date in loc.
func Validate(req SubmitRequest, today time.Time, loc *time.Location) (ValidatedFields, []FieldError) {
	req = sanitize(req)

	broken := validator.Validate(&req)

	var date Date
	if _, bad := broken["booking_date"]; !bad {
		parsed, err := ParseDate(req.BookingDate)
		if err != nil || !parsed.After(todayIn(today, loc).Time) {
			if broken == nil {
				broken = make(map[string]string)
			}
			broken["booking_date"] = MsgPastDate
		}
		date = parsed
	}

	var errs []FieldError
	for _, f := range fieldOrder {
		if _, bad := broken[f.json]; bad {
			errs = append(errs, FieldError{Field: f.field, Message: f.message})
		}
	}
	if len(errs) > 0 {
		return ValidatedFields{}, errs
	}

	return ValidatedFields{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Date:  date,
	}, nil
}

func todayIn(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return NewDate(now.In(loc))
}

// sanitize trims text fields and drops blank ids.
func sanitize(req SubmitRequest) SubmitRequest {
	req.Name = strings.TrimSpace(stripControl(req.Name))
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.BookingDate = strings.TrimSpace(req.BookingDate)
	req.SessionIDs = pricing.NormalizeIDs(req.SessionIDs)
	req.AddonIDs = pricing.NormalizeIDs(req.AddonIDs)
	return req
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s)
}
