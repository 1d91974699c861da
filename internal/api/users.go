package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ticketbari/internal/db/models"
)

type registerUserRequest struct {
	UID   string `json:"uid" binding:"required"`
	Name  string `json:"name"`
	Email string `json:"email" binding:"required"`
	Role  string `json:"role"`
}

// RegisterUser creates a user on first registration. Registration is
// idempotent on the external identity ID: a repeat call returns the stored
// record unchanged.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	existing, err := h.users.GetUserByUID(req.UID)
	if err != nil {
		log.Printf("register user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, existing.Public())
		return
	}

	role := strings.ToLower(req.Role)
	if role == "" {
		role = models.RoleGuest
	}

	user := &models.User{
		UID:   req.UID,
		Name:  req.Name,
		Email: strings.ToLower(req.Email),
		Role:  role,
	}
	created, err := h.users.CreateUser(user)
	if err != nil {
		log.Printf("register user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add user"})
		return
	}

	c.JSON(http.StatusCreated, created.Public())
}

// GetUserByEmail looks a user up case-insensitively by email.
func (h *Handler) GetUserByEmail(c *gin.Context) {
	user, err := h.users.GetUserByEmail(c.Param("email"))
	if err != nil {
		log.Printf("get user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

// GetAllUsers returns every user for the admin view.
func (h *Handler) GetAllUsers(c *gin.Context) {
	users, err := h.users.GetAllUsers()
	if err != nil {
		log.Printf("list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}
