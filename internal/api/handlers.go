package api

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ticketbari/internal/auth"
	"ticketbari/internal/db/models"
)

// UserStore is the user persistence surface the handlers depend on.
type UserStore interface {
	GetUserByUID(uid string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(u *models.User) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateRole(id int, role string) (int64, error)
	MarkFraud(id int) (*models.User, int64, error)
}

// TicketStore is the ticket persistence surface the handlers depend on.
type TicketStore interface {
	CreateTicket(t *models.Ticket) (*models.Ticket, error)
	GetTicketByID(id int) (*models.Ticket, error)
	GetApprovedTickets() ([]models.Ticket, error)
	GetTicketsBySeller(email string) ([]models.Ticket, error)
	GetAllTickets() ([]models.Ticket, error)
	UpdateTicket(id int, fields map[string]interface{}) (int64, error)
	DeleteTicket(id int) (int64, error)
	SetVerificationStatus(id int, status string) (*models.Ticket, error)
	ToggleAdvertise(id int) (*models.Ticket, error)
}

type BookingStore interface {
	CreateBooking(b *models.Booking) (*models.Booking, error)
	GetPendingBookingsByVendor(email string) ([]models.Booking, error)
	UpdateBookingStatus(id int, status string) (int64, error)
}

type TransactionStore interface {
	GetTransactionsByBuyer(email string) ([]models.Transaction, error)
}

// Publisher emits moderation events. Publishing is best-effort; a failure
// never fails the request that triggered it.
type Publisher interface {
	Publish(message interface{}, key string) error
}

// ListingCache holds the public approved-tickets listing.
type ListingCache interface {
	GetApproved(ctx context.Context) ([]models.Ticket, bool)
	SetApproved(ctx context.Context, tickets []models.Ticket)
	Invalidate(ctx context.Context)
}

// TokenVerifier validates identity-provider bearer tokens.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Deps bundles everything the handlers need. Cache, Publisher and Verifier
// may be nil when the backing service is not configured.
type Deps struct {
	Users        UserStore
	Tickets      TicketStore
	Bookings     BookingStore
	Transactions TransactionStore
	Cache        ListingCache
	Publisher    Publisher
	Verifier     TokenVerifier
}

// Handler holds dependencies for API handlers.
type Handler struct {
	users        UserStore
	tickets      TicketStore
	bookings     BookingStore
	transactions TransactionStore
	cache        ListingCache
	publisher    Publisher
}

// NewHandler creates a new Handler with dependencies.
func NewHandler(d Deps) *Handler {
	return &Handler{
		users:        d.Users,
		tickets:      d.Tickets,
		bookings:     d.Bookings,
		transactions: d.Transactions,
		cache:        d.Cache,
		publisher:    d.Publisher,
	}
}

// Health is the root liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "TicketBari Server Running")
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return 0, false
	}
	return id, true
}

func (h *Handler) invalidateListing(c *gin.Context) {
	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context())
	}
}

func (h *Handler) publish(message interface{}, key string) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(message, key); err != nil {
		log.Printf("publish %s: %v", key, err)
	}
}
