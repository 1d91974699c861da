package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"ticketbari/internal/auth"
	"ticketbari/internal/db/models"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetUserByUID(uid string) (*models.User, error) {
	args := m.Called(uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) CreateUser(u *models.User) (*models.User, error) {
	args := m.Called(u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) GetAllUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserStore) UpdateRole(id int, role string) (int64, error) {
	args := m.Called(id, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserStore) MarkFraud(id int) (*models.User, int64, error) {
	args := m.Called(id)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Get(1).(int64), args.Error(2)
}

type mockTicketStore struct {
	mock.Mock
}

func (m *mockTicketStore) CreateTicket(t *models.Ticket) (*models.Ticket, error) {
	args := m.Called(t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *mockTicketStore) GetTicketByID(id int) (*models.Ticket, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *mockTicketStore) GetApprovedTickets() ([]models.Ticket, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *mockTicketStore) GetTicketsBySeller(email string) ([]models.Ticket, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *mockTicketStore) GetAllTickets() ([]models.Ticket, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *mockTicketStore) UpdateTicket(id int, fields map[string]interface{}) (int64, error) {
	args := m.Called(id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTicketStore) DeleteTicket(id int) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTicketStore) SetVerificationStatus(id int, status string) (*models.Ticket, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *mockTicketStore) ToggleAdvertise(id int) (*models.Ticket, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

type mockBookingStore struct {
	mock.Mock
}

func (m *mockBookingStore) CreateBooking(b *models.Booking) (*models.Booking, error) {
	args := m.Called(b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingStore) GetPendingBookingsByVendor(email string) ([]models.Booking, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockBookingStore) UpdateBookingStatus(id int, status string) (int64, error) {
	args := m.Called(id, status)
	return args.Get(0).(int64), args.Error(1)
}

type mockTransactionStore struct {
	mock.Mock
}

func (m *mockTransactionStore) GetTransactionsByBuyer(email string) ([]models.Transaction, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(message interface{}, key string) error {
	args := m.Called(message, key)
	return args.Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) GetApproved(ctx context.Context) ([]models.Ticket, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]models.Ticket), args.Bool(1)
}

func (m *mockCache) SetApproved(ctx context.Context, tickets []models.Ticket) {
	m.Called(ctx, tickets)
}

func (m *mockCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) Verify(token string) (*auth.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

func setupRouter(d Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, d)
	return r
}

func performRequest(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
