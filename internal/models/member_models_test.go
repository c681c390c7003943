package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionStatus(t *testing.T) {
	today := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endDate string
		want    string
	}{
		{"expired yesterday", "2025-06-14", StatusExpired},
		{"ends today is not expired", "2025-06-15", StatusEndingSoon},
		{"ends inside the window", "2025-06-20", StatusEndingSoon},
		{"ends on day seven", "2025-06-22", StatusEndingSoon},
		{"ends on day eight", "2025-06-23", StatusActive},
		{"ends far in the future", "2026-01-01", StatusActive},
		{"garbage date reads as expired", "not-a-date", StatusExpired},
		{"empty date reads as expired", "", StatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubscriptionStatus(tt.endDate, today))
		})
	}
}

func TestMemberDerive(t *testing.T) {
	today := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

	t.Run("frozen is independent of status", func(t *testing.T) {
		m := Member{EndDate: "2025-01-01", FreezeDays: 10}
		m.Derive(today)
		assert.Equal(t, StatusExpired, m.Status)
		assert.True(t, m.Frozen)
	})

	t.Run("active member without freeze days", func(t *testing.T) {
		m := Member{EndDate: "2025-12-31", FreezeDays: 0}
		m.Derive(today)
		assert.Equal(t, StatusActive, m.Status)
		assert.False(t, m.Frozen)
	})
}
