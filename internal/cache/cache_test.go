package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketbari/internal/db/models"
)

func TestGetApprovedMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := NewTicketCache(rdb)

	mock.ExpectGet(approvedKey).RedisNil()

	tickets, ok := c.GetApproved(context.Background())
	assert.False(t, ok)
	assert.Nil(t, tickets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetApprovedHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := NewTicketCache(rdb)

	stored := []models.Ticket{
		{ID: 1, Title: "Dhaka to Sylhet", VerificationStatus: models.StatusApproved},
	}
	data, err := json.Marshal(stored)
	require.NoError(t, err)

	mock.ExpectGet(approvedKey).SetVal(string(data))

	tickets, ok := c.GetApproved(context.Background())
	assert.True(t, ok)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Dhaka to Sylhet", tickets[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetApproved(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := NewTicketCache(rdb)

	tickets := []models.Ticket{{ID: 2, Title: "Chittagong Express"}}
	data, err := json.Marshal(tickets)
	require.NoError(t, err)

	mock.ExpectSet(approvedKey, data, 30*time.Second).SetVal("OK")

	c.SetApproved(context.Background(), tickets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := NewTicketCache(rdb)

	mock.ExpectDel(approvedKey).SetVal(1)

	c.Invalidate(context.Background())
	assert.NoError(t, mock.ExpectationsWereMet())
}
