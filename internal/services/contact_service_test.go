// internal/services/contact_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovista/dealership-backend/internal/utils"
)

func TestContactCreateStampsDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(db, nil)

	msg, err := svc.Create(&CreateContactRequest{
		Name:    "Ana",
		Email:   "ana@example.com",
		Phone:   "555-0101",
		Message: "Is the Corolla still available?",
	})
	require.NoError(t, err)

	assert.False(t, msg.Date.IsZero())
	assert.False(t, msg.IsRead)
}

func TestContactMarkReadAndFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(db, nil)

	first, err := svc.Create(&CreateContactRequest{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "hello",
	})
	require.NoError(t, err)

	_, err = svc.Create(&CreateContactRequest{
		Name:    "Luis",
		Email:   "luis@example.com",
		Message: "hola",
	})
	require.NoError(t, err)

	read, err := svc.MarkRead(first.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	params := utils.PaginationParams{Page: 1, Limit: 20, Sort: "created_at", Order: "desc"}

	all, err := svc.List(params, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)

	unread, err := svc.List(params, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread.Total)
}

func TestContactDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewContactService(db, nil)

	msg, err := svc.Create(&CreateContactRequest{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "hello",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(msg.ID))

	_, err = svc.GetByID(msg.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
