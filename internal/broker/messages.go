package broker

// Routing keys for moderation events. Kept as constants so publishers and
// consumers cannot drift apart.
const (
	TopicTicketApproved = "ticket.approved"
	TopicTicketRejected = "ticket.rejected"
	TopicVendorFlagged  = "vendor.flagged"
)

// ModerationMessage announces an admin decision on a ticket listing.
type ModerationMessage struct {
	TicketID    int    `json:"ticket_id"`
	Title       string `json:"title"`
	VendorEmail string `json:"vendor_email"`
	Status      string `json:"status"`
}

// FraudMessage announces that a vendor was flagged and their listings
// hidden.
type FraudMessage struct {
	UserID        int    `json:"user_id"`
	VendorEmail   string `json:"vendor_email"`
	TicketsHidden int64  `json:"tickets_hidden"`
}
