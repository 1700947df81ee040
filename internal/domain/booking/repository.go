package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Repository defines booking data access
type Repository interface {
	Insert(ctx context.Context, b *Booking) (int64, error)
	ListAll(ctx context.Context) ([]*Booking, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = `id, name, email, phone, booking_date, session_labels, addon_labels,
	total_price, status, created_at`

func (r *repository) Insert(ctx context.Context, b *Booking) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO bookings (
			name, email, phone, booking_date, session_labels, addon_labels,
			total_price, status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		b.Name, b.Email, b.Phone, b.BookingDate, b.SessionLabels, b.AddonLabels,
		b.TotalPrice, b.Status, b.CreatedAt.UTC(),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) ListAll(ctx context.Context) ([]*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, id DESC`

	bookings := []*Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query := r.db.Rebind(`SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`)

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}
