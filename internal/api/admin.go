package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketbari/internal/broker"
	"ticketbari/internal/db/models"
	"ticketbari/internal/db/repos"
	"ticketbari/internal/monitoring"
)

// GetAllTicketsAdmin returns every listing, whatever its state, for the
// admin triage view.
func (h *Handler) GetAllTicketsAdmin(c *gin.Context) {
	tickets, err := h.tickets.GetAllTickets()
	if err != nil {
		log.Printf("admin list tickets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch tickets"})
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// ApproveTicket moves a listing to approved.
func (h *Handler) ApproveTicket(c *gin.Context) {
	h.setVerification(c, models.StatusApproved, broker.TopicTicketApproved)
}

// RejectTicket moves a listing to rejected.
func (h *Handler) RejectTicket(c *gin.Context) {
	h.setVerification(c, models.StatusRejected, broker.TopicTicketRejected)
}

func (h *Handler) setVerification(c *gin.Context, status, topic string) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ticket, err := h.tickets.SetVerificationStatus(id, status)
	if err != nil {
		log.Printf("set verification: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update ticket"})
		return
	}
	if ticket == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ticket not found"})
		return
	}

	h.invalidateListing(c)
	monitoring.TrackModeration(status)
	h.publish(broker.ModerationMessage{
		TicketID:    ticket.ID,
		Title:       ticket.Title,
		VendorEmail: ticket.Vendor.Email,
		Status:      status,
	}, topic)

	c.JSON(http.StatusOK, ticket)
}

// ToggleAdvertise flips a listing's advertised flag, subject to the global
// cap when turning on.
func (h *Handler) ToggleAdvertise(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ticket, err := h.tickets.ToggleAdvertise(id)
	if errors.Is(err, repos.ErrAdvertiseCapReached) {
		monitoring.TrackAdvertiseToggle("capped")
		c.JSON(http.StatusConflict, gin.H{"message": "Advertised ticket limit reached"})
		return
	}
	if err != nil {
		log.Printf("toggle advertise: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update ticket"})
		return
	}
	if ticket == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Ticket not found"})
		return
	}

	if ticket.Advertised {
		monitoring.TrackAdvertiseToggle("on")
	} else {
		monitoring.TrackAdvertiseToggle("off")
	}
	h.invalidateListing(c)
	c.JSON(http.StatusOK, gin.H{"advertised": ticket.Advertised})
}

// MakeAdmin promotes a user to admin.
func (h *Handler) MakeAdmin(c *gin.Context) {
	h.promote(c, models.RoleAdmin)
}

// MakeVendor promotes a user to vendor.
func (h *Handler) MakeVendor(c *gin.Context) {
	h.promote(c, models.RoleVendor)
}

func (h *Handler) promote(c *gin.Context, role string) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	modified, err := h.users.UpdateRole(id, role)
	if err != nil {
		log.Printf("promote user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user"})
		return
	}
	if modified == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

// MarkFraud flags a vendor as fraudulent and hides every listing carrying
// their vendor email.
func (h *Handler) MarkFraud(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, hidden, err := h.users.MarkFraud(id)
	if errors.Is(err, repos.ErrNotVendor) {
		c.JSON(http.StatusConflict, gin.H{"message": "Only vendors can be marked as fraud"})
		return
	}
	if err != nil {
		log.Printf("mark fraud: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	h.invalidateListing(c)
	h.publish(broker.FraudMessage{
		UserID:        user.ID,
		VendorEmail:   user.Email,
		TicketsHidden: hidden,
	}, broker.TopicVendorFlagged)

	c.JSON(http.StatusOK, gin.H{"isFraud": true, "ticketsHidden": hidden})
}
