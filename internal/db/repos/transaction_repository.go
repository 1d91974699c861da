package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"ticketbari/internal/db/models"
)

// TransactionRepository reads the payment projection. There is no write
// path here; transactions are recorded by the payment pipeline.
type TransactionRepository struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetTransactionsByBuyer returns a buyer's transactions, most recent
// payment first.
func (r *TransactionRepository) GetTransactionsByBuyer(email string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.Select(&transactions, `SELECT id, buyer_email, vendor_email, ticket_title, amount, paid_at
		FROM transactions
		WHERE buyer_email=$1
		ORDER BY paid_at DESC`, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
