package repos

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"ticketbari/internal/db/models"
)

// AdvertiseCap is the maximum number of tickets that may be advertised at
// the same time.
const AdvertiseCap = 6

// advertiseLockKey identifies the advisory lock that serializes cap checks
// across concurrent advertise toggles.
const advertiseLockKey = 42137

const ticketColumns = `id, title, price, quantity, transport_type, perks, origin, destination, image,
	vendor_name AS "vendor.name", vendor_email AS "vendor.email",
	verification_status, advertised, sold, hidden, created_at`

// TicketRepository handles database operations for tickets.
type TicketRepository struct {
	db *sqlx.DB
}

// NewTicketRepository creates a new TicketRepository.
func NewTicketRepository(db *sqlx.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// CreateTicket inserts a new ticket. Verification status, advertised, sold
// and hidden are always written with their server-side defaults, whatever
// the caller put in the struct.
func (r *TicketRepository) CreateTicket(t *models.Ticket) (*models.Ticket, error) {
	query := `INSERT INTO tickets
		(title, price, quantity, transport_type, perks, origin, destination, image,
		 vendor_name, vendor_email, verification_status, advertised, sold, hidden)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 'pending', FALSE, 0, FALSE)
		RETURNING id, created_at`

	err := r.db.QueryRowx(query,
		t.Title, t.Price, t.Quantity, t.TransportType, t.Perks,
		t.From, t.To, t.Image, t.Vendor.Name, t.Vendor.Email,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}

	t.VerificationStatus = models.StatusPending
	t.Advertised = false
	t.Sold = 0
	t.Hidden = false
	return t, nil
}

// GetTicketByID retrieves a ticket by its ID. Returns (nil, nil) if absent.
func (r *TicketRepository) GetTicketByID(id int) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Get(&ticket, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

// GetApprovedTickets returns the public listing: approved, not hidden,
// newest first.
func (r *TicketRepository) GetApprovedTickets() ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Select(&tickets, `SELECT `+ticketColumns+` FROM tickets
		WHERE verification_status=$1 AND NOT hidden
		ORDER BY created_at DESC`, models.StatusApproved)
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// GetTicketsBySeller retrieves every ticket listed by the given vendor
// email, regardless of status.
func (r *TicketRepository) GetTicketsBySeller(email string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Select(&tickets, `SELECT `+ticketColumns+` FROM tickets
		WHERE vendor_email=$1
		ORDER BY created_at DESC`, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// GetAllTickets returns every ticket for the admin triage view.
func (r *TicketRepository) GetAllTickets() ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.Select(&tickets, `SELECT `+ticketColumns+` FROM tickets ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// UpdateTicket merges the given column/value pairs into the ticket row.
// Callers are expected to pass only caller-mutable columns; server-owned
// columns never appear here.
func (r *TicketRepository) UpdateTicket(id int, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}

	columns := make([]string, 0, len(fields))
	for col := range fields {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	set := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns)+1)
	for i, col := range columns {
		set = append(set, fmt.Sprintf("%s=$%d", col, i+1))
		args = append(args, fields[col])
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE tickets SET %s WHERE id=$%d`, strings.Join(set, ", "), len(args))
	res, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteTicket removes a ticket by ID. A missing ticket is reported as zero
// rows affected, not an error.
func (r *TicketRepository) DeleteTicket(id int) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SetVerificationStatus moves a ticket to the given moderation state. The
// write is unconditional and idempotent. Returns (nil, nil) if absent.
func (r *TicketRepository) SetVerificationStatus(id int, status string) (*models.Ticket, error) {
	res, err := r.db.Exec(`UPDATE tickets SET verification_status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return r.GetTicketByID(id)
}

// ToggleAdvertise flips a ticket's advertised flag. Turning a ticket on is
// only allowed while fewer than AdvertiseCap tickets are advertised; the
// count and the flip run under an advisory lock so two concurrent toggles
// cannot both slip under the cap. Turning off always succeeds.
//
// Returns (nil, nil) if the ticket does not exist and ErrAdvertiseCapReached
// if the cap is full.
func (r *TicketRepository) ToggleAdvertise(id int) (*models.Ticket, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`SELECT pg_advisory_xact_lock($1)`, advertiseLockKey); err != nil {
		return nil, err
	}

	var ticket models.Ticket
	err = tx.Get(&ticket, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if !ticket.Advertised {
		var advertised int
		if err := tx.Get(&advertised, `SELECT COUNT(*) FROM tickets WHERE advertised`); err != nil {
			return nil, err
		}
		if advertised >= AdvertiseCap {
			return nil, ErrAdvertiseCapReached
		}
	}

	if _, err := tx.Exec(`UPDATE tickets SET advertised = NOT advertised WHERE id=$1`, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	ticket.Advertised = !ticket.Advertised
	return &ticket, nil
}
