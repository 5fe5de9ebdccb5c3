package signals

import (
	"time"

	"github.com/procurehq/procurement-tracker/internal/entity"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Amount/age thresholds for the approval queue.
const (
	approvalHighAmount   = 10000.0
	approvalMediumAmount = 5000.0
	approvalHighAgeDays  = 5
	approvalMedAgeDays   = 2
)

// Days-to-expiry thresholds for contract renewals.
const (
	renewalHighDays   = 7
	renewalMediumDays = 30
)

// ApprovalPriority ranks a document waiting for approval by its amount and
// how long it has sat in the queue.
func ApprovalPriority(doc entity.Document, now time.Time) Priority {
	amount := documentAmount(doc)
	ageDays := int(now.Sub(doc.CreatedAt).Hours() / 24)

	switch {
	case amount > approvalHighAmount || ageDays > approvalHighAgeDays:
		return PriorityHigh
	case amount > approvalMediumAmount || ageDays > approvalMedAgeDays:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// RenewalUrgency ranks a contract by days until its due (expiry) date.
// Documents without a due date are low urgency.
func RenewalUrgency(doc entity.Document, now time.Time) Urgency {
	if doc.DueDate == nil {
		return UrgencyLow
	}
	expiry, err := time.Parse("2006-01-02", *doc.DueDate)
	if err != nil {
		return UrgencyLow
	}

	days := int(expiry.Sub(now).Hours() / 24)
	switch {
	case days <= renewalHighDays:
		return UrgencyHigh
	case days <= renewalMediumDays:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}
