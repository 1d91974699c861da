package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Booking states. A booking starts pending and is accepted or rejected by
// the vendor.
const (
	BookingPending  = "pending"
	BookingAccepted = "accepted"
	BookingRejected = "rejected"
)

type Booking struct {
	ID          int            `db:"id" json:"id"`
	Reference   string         `db:"reference" json:"reference"`
	TicketID    int            `db:"ticket_id" json:"ticketId"`
	BuyerName   string         `db:"buyer_name" json:"buyerName"`
	BuyerEmail  string         `db:"buyer_email" json:"buyerEmail"`
	VendorEmail string         `db:"vendor_email" json:"vendorEmail"`
	Quantity    int            `db:"quantity" json:"quantity"`
	Payload     types.JSONText `db:"payload" json:"payload,omitempty"`
	Status      string         `db:"status" json:"status"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
}

func ValidBookingStatus(status string) bool {
	switch status {
	case BookingPending, BookingAccepted, BookingRejected:
		return true
	}
	return false
}
