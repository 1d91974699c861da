package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ticketbari/internal/db/models"
)

func TestCreateTicketForcesServerFields(t *testing.T) {
	tickets := new(mockTicketStore)

	var captured *models.Ticket
	tickets.On("CreateTicket", mock.AnythingOfType("*models.Ticket")).
		Run(func(args mock.Arguments) {
			captured = args.Get(0).(*models.Ticket)
		}).
		Return(&models.Ticket{
			ID:                 1,
			Title:              "Dhaka to Sylhet",
			VerificationStatus: models.StatusPending,
			Advertised:         false,
			Sold:               0,
		}, nil)

	router := setupRouter(Deps{Tickets: tickets})

	// spoofed server-owned fields must be ignored
	body := []byte(`{
		"title": "Dhaka to Sylhet",
		"price": 450,
		"quantity": 20,
		"vendor": {"name": "Salma", "email": "Salma@Example.COM"},
		"sold": 999,
		"advertised": true,
		"verificationStatus": "approved",
		"hidden": true
	}`)
	w := performRequest(router, http.MethodPost, "/tickets", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, captured)
	assert.Equal(t, 0, captured.Sold)
	assert.False(t, captured.Advertised)
	assert.False(t, captured.Hidden)
	assert.Empty(t, captured.VerificationStatus)
	assert.Equal(t, "salma@example.com", captured.Vendor.Email)

	var resp models.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusPending, resp.VerificationStatus)
	assert.False(t, resp.Advertised)
	assert.Equal(t, 0, resp.Sold)
}

func TestCreateTicketNegativePrice(t *testing.T) {
	router := setupRouter(Deps{Tickets: new(mockTicketStore)})

	body := []byte(`{"title":"Bad price","price":-10,"vendor":{"name":"x","email":"x@example.com"}}`)
	w := performRequest(router, http.MethodPost, "/tickets", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetApprovedTickets(t *testing.T) {
	now := time.Now()
	tickets := new(mockTicketStore)
	tickets.On("GetApprovedTickets").Return([]models.Ticket{
		{ID: 2, Title: "Newest", VerificationStatus: models.StatusApproved, CreatedAt: now},
		{ID: 1, Title: "Oldest", VerificationStatus: models.StatusApproved, CreatedAt: now.Add(-time.Hour)},
	}, nil)

	router := setupRouter(Deps{Tickets: tickets})

	w := performRequest(router, http.MethodGet, "/tickets", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []models.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	// store order (newest first) passes through untouched
	assert.Equal(t, "Newest", resp[0].Title)
	assert.Equal(t, "Oldest", resp[1].Title)
}

func TestGetApprovedTicketsFromCache(t *testing.T) {
	tickets := new(mockTicketStore)
	listing := new(mockCache)
	listing.On("GetApproved", mock.Anything).Return([]models.Ticket{
		{ID: 3, Title: "Cached", VerificationStatus: models.StatusApproved},
	}, true)

	router := setupRouter(Deps{Tickets: tickets, Cache: listing})

	w := performRequest(router, http.MethodGet, "/tickets", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cached")
	tickets.AssertNotCalled(t, "GetApprovedTickets")
}

func TestGetApprovedTicketsFillsCache(t *testing.T) {
	stored := []models.Ticket{{ID: 4, Title: "Fresh"}}
	tickets := new(mockTicketStore)
	tickets.On("GetApprovedTickets").Return(stored, nil)

	listing := new(mockCache)
	listing.On("GetApproved", mock.Anything).Return(nil, false)
	listing.On("SetApproved", mock.Anything, stored).Return()

	router := setupRouter(Deps{Tickets: tickets, Cache: listing})

	w := performRequest(router, http.MethodGet, "/tickets", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	listing.AssertExpectations(t)
}

func TestUpdateTicketAllowList(t *testing.T) {
	tickets := new(mockTicketStore)
	tickets.On("UpdateTicket", 5, mock.MatchedBy(func(fields map[string]interface{}) bool {
		_, hasTitle := fields["title"]
		_, hasStatus := fields["verification_status"]
		_, hasSold := fields["sold"]
		return len(fields) == 1 && hasTitle && !hasStatus && !hasSold
	})).Return(int64(1), nil)

	router := setupRouter(Deps{Tickets: tickets})

	// server-owned fields in the body are dropped, not merged
	body := []byte(`{"title":"Renamed","verificationStatus":"approved","sold":50,"advertised":true}`)
	w := performRequest(router, http.MethodPut, "/tickets/5", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"modifiedCount":1`)
	tickets.AssertExpectations(t)
}

func TestUpdateTicketNoUpdatableFields(t *testing.T) {
	tickets := new(mockTicketStore)
	router := setupRouter(Deps{Tickets: tickets})

	w := performRequest(router, http.MethodPut, "/tickets/5", []byte(`{"sold":10}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	tickets.AssertNotCalled(t, "UpdateTicket", mock.Anything, mock.Anything)
}

func TestDeleteTicketMissing(t *testing.T) {
	tickets := new(mockTicketStore)
	tickets.On("DeleteTicket", 99).Return(int64(0), nil)

	router := setupRouter(Deps{Tickets: tickets})

	w := performRequest(router, http.MethodDelete, "/tickets/99", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deletedCount":0`)
}

func TestVendorRevenue(t *testing.T) {
	tickets := new(mockTicketStore)
	tickets.On("GetTicketsBySeller", "salma@example.com").Return([]models.Ticket{
		{ID: 1, Price: decimal.NewFromInt(100), Sold: 2},
		{ID: 2, Price: decimal.NewFromInt(50), Sold: 0},
	}, nil)

	router := setupRouter(Deps{Tickets: tickets})

	w := performRequest(router, http.MethodGet, "/vendor/revenue/salma@example.com", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalRevenue      decimal.Decimal `json:"totalRevenue"`
		TotalTicketsSold  int             `json:"totalTicketsSold"`
		TotalTicketsAdded int             `json:"totalTicketsAdded"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.TotalRevenue.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 2, resp.TotalTicketsSold)
	assert.Equal(t, 2, resp.TotalTicketsAdded)
}
