package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetUserTransactions returns a buyer's payment history, most recent
// payment first. The projection is read-only here; writes happen in the
// payment pipeline.
func (h *Handler) GetUserTransactions(c *gin.Context) {
	transactions, err := h.transactions.GetTransactionsByBuyer(c.Param("email"))
	if err != nil {
		log.Printf("list transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch transactions"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}
