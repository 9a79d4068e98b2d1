// internal/services/subscriber_service_test.go
package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovista/dealership-backend/internal/models"
)

func TestSubscribeAndDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubscriberService(db, nil)

	sub, err := svc.Subscribe(&SubscribeRequest{Email: "fan@example.com"})
	require.NoError(t, err)
	assert.True(t, sub.IsActive)
	assert.False(t, sub.SubscriptionDate.IsZero())

	_, err = svc.Subscribe(&SubscribeRequest{Email: "fan@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestExportCSVColumns(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubscriberService(db, nil)

	when := time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Subscriber{
		Email:            "active@example.com",
		SubscriptionDate: when,
		IsActive:         true,
	}).Error)
	require.NoError(t, db.Create(&models.Subscriber{
		Email:            "gone@example.com",
		SubscriptionDate: when.Add(-24 * time.Hour),
		IsActive:         false,
	}).Error)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(&buf, "en"))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Email", "Subscription Date", "Status"}, rows[0])

	// Newest subscription first
	assert.Equal(t, "active@example.com", rows[1][0])
	assert.Equal(t, "2026-08-15 10:30", rows[1][1])
	assert.Equal(t, "gone@example.com", rows[2][0])

	// The status column distinguishes active from inactive
	assert.NotEqual(t, rows[1][2], rows[2][2])
}

func TestExportCSVEmptyListStillWritesHeader(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSubscriberService(db, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(&buf, "en"))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Email", "Subscription Date", "Status"}, rows[0])
}
