package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"ticketbari/internal/db/models"
)

const bookingColumns = `id, reference, ticket_id, buyer_name, buyer_email, vendor_email, quantity, payload, status, created_at`

// BookingRepository handles database operations for bookings.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository creates a new BookingRepository.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateBooking inserts a new booking stamped pending.
func (r *BookingRepository) CreateBooking(b *models.Booking) (*models.Booking, error) {
	err := r.db.QueryRowx(`INSERT INTO bookings
		(reference, ticket_id, buyer_name, buyer_email, vendor_email, quantity, payload, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending')
		RETURNING id, created_at`,
		b.Reference, b.TicketID, b.BuyerName, b.BuyerEmail, b.VendorEmail, b.Quantity, b.Payload,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	b.Status = models.BookingPending
	return b, nil
}

// GetPendingBookingsByVendor returns a vendor's bookings still awaiting a
// decision, newest first.
func (r *BookingRepository) GetPendingBookingsByVendor(email string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Select(&bookings, `SELECT `+bookingColumns+` FROM bookings
		WHERE vendor_email=$1 AND status=$2
		ORDER BY created_at DESC`, strings.ToLower(email), models.BookingPending)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBookingStatus overwrites a booking's status unconditionally.
func (r *BookingRepository) UpdateBookingStatus(id int, status string) (int64, error) {
	res, err := r.db.Exec(`UPDATE bookings SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
