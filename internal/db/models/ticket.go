package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Ticket verification states.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Vendor is the seller snapshot embedded in every ticket. Email is stored
// lowercase so fraud cascades and seller lookups match case-insensitively.
type Vendor struct {
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

type Ticket struct {
	ID                 int             `db:"id" json:"id"`
	Title              string          `db:"title" json:"title"`
	Price              decimal.Decimal `db:"price" json:"price"`
	Quantity           int             `db:"quantity" json:"quantity"`
	TransportType      string          `db:"transport_type" json:"transportType"`
	Perks              pq.StringArray  `db:"perks" json:"perks"`
	From               string          `db:"origin" json:"from"`
	To                 string          `db:"destination" json:"to"`
	Image              string          `db:"image" json:"image"`
	Vendor             Vendor          `db:"vendor" json:"vendor"`
	VerificationStatus string          `db:"verification_status" json:"verificationStatus"`
	Advertised         bool            `db:"advertised" json:"advertised"`
	Sold               int             `db:"sold" json:"sold"`
	Hidden             bool            `db:"hidden" json:"hidden"`
	CreatedAt          time.Time       `db:"created_at" json:"createdAt"`
}
