package repos

import (
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"ticketbari/internal/db/models"
)

const userColumns = `id, uid, name, email, role, is_fraud, created_at`

// UserRepository handles database operations for users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByUID retrieves a user by their external identity ID. Returns
// (nil, nil) if absent.
func (r *UserRepository) GetUserByUID(uid string) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `SELECT `+userColumns+` FROM users WHERE uid=$1`, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by lowercase email. Returns (nil, nil)
// if absent.
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `SELECT `+userColumns+` FROM users WHERE email=$1`, strings.ToLower(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user with fraud unset.
func (r *UserRepository) CreateUser(u *models.User) (*models.User, error) {
	err := r.db.QueryRowx(`INSERT INTO users (uid, name, email, role, is_fraud)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id, created_at`,
		u.UID, u.Name, u.Email, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	u.IsFraud = false
	return u, nil
}

// GetAllUsers returns every user for the admin view.
func (r *UserRepository) GetAllUsers() ([]models.User, error) {
	var users []models.User
	err := r.db.Select(&users, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRole overwrites a user's role unconditionally.
func (r *UserRepository) UpdateRole(id int, role string) (int64, error) {
	res, err := r.db.Exec(`UPDATE users SET role=$1 WHERE id=$2`, strings.ToLower(role), id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// MarkFraud flags a vendor as fraudulent and hides all of their tickets,
// matched by the embedded vendor email. Both writes run in one transaction
// so a fault cannot leave the user flagged with their listings still
// visible. Returns the flagged user and the number of tickets hidden, or
// (nil, 0, nil) if the user does not exist, or ErrNotVendor if the user's
// role is not vendor.
func (r *UserRepository) MarkFraud(id int) (*models.User, int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback()

	var user models.User
	err = tx.Get(&user, `SELECT `+userColumns+` FROM users WHERE id=$1 FOR UPDATE`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	if user.Role != models.RoleVendor {
		return nil, 0, ErrNotVendor
	}

	if _, err := tx.Exec(`UPDATE users SET is_fraud=TRUE WHERE id=$1`, id); err != nil {
		return nil, 0, err
	}

	res, err := tx.Exec(`UPDATE tickets SET hidden=TRUE WHERE vendor_email=$1`, user.Email)
	if err != nil {
		return nil, 0, err
	}
	hidden, err := res.RowsAffected()
	if err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}

	user.IsFraud = true
	return &user, hidden, nil
}
