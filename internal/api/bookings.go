package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	"ticketbari/internal/db/models"
)

type createBookingRequest struct {
	TicketID    int    `json:"ticketId"`
	BuyerName   string `json:"buyerName"`
	BuyerEmail  string `json:"buyerEmail"`
	VendorEmail string `json:"vendorEmail"`
	Quantity    int    `json:"quantity"`
}

// CreateBooking records a buyer's booking. The known fields are lifted out
// for filtering; the body is kept verbatim as the booking payload. Status
// and creation time are server-assigned.
func (h *Handler) CreateBooking(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	var req createBookingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.TicketID <= 0 || req.BuyerEmail == "" || req.VendorEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ticketId, buyerEmail and vendorEmail are required"})
		return
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	booking := &models.Booking{
		Reference:   uuid.NewString(),
		TicketID:    req.TicketID,
		BuyerName:   req.BuyerName,
		BuyerEmail:  strings.ToLower(req.BuyerEmail),
		VendorEmail: strings.ToLower(req.VendorEmail),
		Quantity:    quantity,
		Payload:     types.JSONText(body),
	}

	created, err := h.bookings.CreateBooking(booking)
	if err != nil {
		log.Printf("create booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add booking"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetVendorBookings returns a vendor's pending bookings.
func (h *Handler) GetVendorBookings(c *gin.Context) {
	bookings, err := h.bookings.GetPendingBookingsByVendor(c.Param("email"))
	if err != nil {
		log.Printf("list vendor bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type updateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateBookingStatus lets the vendor accept or reject a booking.
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if !models.ValidBookingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	modified, err := h.bookings.UpdateBookingStatus(id, req.Status)
	if err != nil {
		log.Printf("update booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update booking"})
		return
	}
	if modified == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}
