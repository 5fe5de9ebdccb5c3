package signals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/procurehq/procurement-tracker/internal/entity"
	"github.com/procurehq/procurement-tracker/internal/extraction"
)

func TestApprovalPriority(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		amount  float64
		ageDays int
		want    Priority
	}{
		{"high amount", 15000, 0, PriorityHigh},
		{"old in queue", 100, 6, PriorityHigh},
		{"medium amount", 6000, 0, PriorityMedium},
		{"medium age", 100, 3, PriorityMedium},
		{"small and fresh", 100, 0, PriorityLow},
		{"boundary amount", 10000, 0, PriorityMedium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := entity.Document{
				TotalAmount: extraction.Num(tc.amount),
				CreatedAt:   now.AddDate(0, 0, -tc.ageDays),
			}
			assert.Equal(t, tc.want, ApprovalPriority(doc, now))
		})
	}
}

func TestRenewalUrgency(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	due := func(days int) *string {
		s := now.AddDate(0, 0, days).Format("2006-01-02")
		return &s
	}

	assert.Equal(t, UrgencyHigh, RenewalUrgency(entity.Document{DueDate: due(3)}, now))
	assert.Equal(t, UrgencyHigh, RenewalUrgency(entity.Document{DueDate: due(7)}, now))
	assert.Equal(t, UrgencyMedium, RenewalUrgency(entity.Document{DueDate: due(20)}, now))
	assert.Equal(t, UrgencyLow, RenewalUrgency(entity.Document{DueDate: due(90)}, now))
	assert.Equal(t, UrgencyLow, RenewalUrgency(entity.Document{}, now))

	bad := "not-a-date"
	assert.Equal(t, UrgencyLow, RenewalUrgency(entity.Document{DueDate: &bad}, now))
}

func TestRenewalUrgencyPastDue(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	past := "2024-06-01"
	assert.Equal(t, UrgencyHigh, RenewalUrgency(entity.Document{DueDate: &past}, now))
}
