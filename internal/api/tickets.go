package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"ticketbari/internal/db/models"
)

type createTicketRequest struct {
	Title         string          `json:"title" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	TransportType string          `json:"transportType"`
	Perks         []string        `json:"perks"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	Image         string          `json:"image"`
	Vendor        struct {
		Name  string `json:"name"`
		Email string `json:"email" binding:"required"`
	} `json:"vendor" binding:"required"`
}

// CreateTicket submits a new listing. The server forces the moderation
// state to pending, advertised off and sold to zero; caller-supplied values
// for those fields never reach the store. Only the vendor name and
// lowercase email are embedded from the body.
func (h *Handler) CreateTicket(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Price must not be negative"})
		return
	}

	ticket := &models.Ticket{
		Title:         req.Title,
		Price:         req.Price,
		Quantity:      req.Quantity,
		TransportType: req.TransportType,
		Perks:         pq.StringArray(req.Perks),
		From:          req.From,
		To:            req.To,
		Image:         req.Image,
		Vendor: models.Vendor{
			Name:  req.Vendor.Name,
			Email: strings.ToLower(req.Vendor.Email),
		},
	}

	created, err := h.tickets.CreateTicket(ticket)
	if err != nil {
		log.Printf("create ticket: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add ticket"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetApprovedTickets returns the public listing, newest first, served from
// the cache when it is warm.
func (h *Handler) GetApprovedTickets(c *gin.Context) {
	if h.cache != nil {
		if tickets, ok := h.cache.GetApproved(c.Request.Context()); ok {
			c.JSON(http.StatusOK, tickets)
			return
		}
	}

	tickets, err := h.tickets.GetApprovedTickets()
	if err != nil {
		log.Printf("list approved tickets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch tickets"})
		return
	}

	if h.cache != nil {
		h.cache.SetApproved(c.Request.Context(), tickets)
	}
	c.JSON(http.StatusOK, tickets)
}

// GetTicketsBySeller returns every listing for a vendor email.
func (h *Handler) GetTicketsBySeller(c *gin.Context) {
	tickets, err := h.tickets.GetTicketsBySeller(c.Param("email"))
	if err != nil {
		log.Printf("list seller tickets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch tickets"})
		return
	}
	c.JSON(http.StatusOK, tickets)
}

type updateTicketRequest struct {
	Title         *string          `json:"title"`
	Price         *decimal.Decimal `json:"price"`
	Quantity      *int             `json:"quantity"`
	TransportType *string          `json:"transportType"`
	Perks         *[]string        `json:"perks"`
	From          *string          `json:"from"`
	To            *string          `json:"to"`
	Image         *string          `json:"image"`
}

// UpdateTicket merges caller-mutable fields into a listing. Server-owned
// fields (verification status, advertised, sold, hidden, vendor snapshot)
// are not part of the request shape, so they cannot be overwritten from
// outside.
func (h *Handler) UpdateTicket(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Price must not be negative"})
			return
		}
		fields["price"] = *req.Price
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.TransportType != nil {
		fields["transport_type"] = *req.TransportType
	}
	if req.Perks != nil {
		fields["perks"] = pq.StringArray(*req.Perks)
	}
	if req.From != nil {
		fields["origin"] = *req.From
	}
	if req.To != nil {
		fields["destination"] = *req.To
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No updatable fields in request"})
		return
	}

	modified, err := h.tickets.UpdateTicket(id, fields)
	if err != nil {
		log.Printf("update ticket: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update ticket"})
		return
	}

	h.invalidateListing(c)
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

// DeleteTicket removes a listing. Deleting a missing ticket reports zero
// affected rows rather than an error.
func (h *Handler) DeleteTicket(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.tickets.DeleteTicket(id)
	if err != nil {
		log.Printf("delete ticket: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete ticket"})
		return
	}

	h.invalidateListing(c)
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}

// GetVendorRevenue aggregates a vendor's listings into revenue totals.
// Pure read-side computation; nothing is persisted.
func (h *Handler) GetVendorRevenue(c *gin.Context) {
	tickets, err := h.tickets.GetTicketsBySeller(c.Param("email"))
	if err != nil {
		log.Printf("vendor revenue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load revenue data"})
		return
	}

	totalSold := 0
	totalRevenue := decimal.Zero
	for _, t := range tickets {
		totalSold += t.Sold
		totalRevenue = totalRevenue.Add(t.Price.Mul(decimal.NewFromInt(int64(t.Sold))))
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRevenue":      totalRevenue,
		"totalTicketsSold":  totalSold,
		"totalTicketsAdded": len(tickets),
	})
}
