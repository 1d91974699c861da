package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a read-only projection of a completed payment. Rows are
// written by the payment pipeline, never by this server.
type Transaction struct {
	ID          int             `db:"id" json:"id"`
	BuyerEmail  string          `db:"buyer_email" json:"buyerEmail"`
	VendorEmail string          `db:"vendor_email" json:"vendorEmail"`
	TicketTitle string          `db:"ticket_title" json:"ticketTitle"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	PaidAt      time.Time       `db:"paid_at" json:"paidAt"`
}
