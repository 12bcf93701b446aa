package types

import (
	"time"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

const (
	AlertTypeTaxOverdue           = "tax_overdue"
	AlertTypeTaxDueSoon           = "tax_due_soon"
	AlertTypeBillOverdue          = "bill_overdue"
	AlertTypeBillDueSoon          = "bill_due_soon"
	AlertTypeCheckUnconfirmed     = "check_unconfirmed"
	AlertTypeInsuranceExpired     = "insurance_expired"
	AlertTypeInsuranceExpiring    = "insurance_expiring"
	AlertTypeRegistrationExpired  = "registration_expired"
	AlertTypeRegistrationExpiring = "registration_expiring"
	AlertTypeInspectionOverdue    = "inspection_overdue"
	AlertTypeUrgentVendorEmail    = "urgent_vendor_email"
	AlertTypeAutoPayConfirmed     = "autopay_confirmed"
)

type Alert struct {
	ID           string     `json:"id"`
	AlertType    string     `json:"alertType"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	Severity     Severity   `json:"severity"`
	RelatedTable string     `json:"relatedTable"`
	RelatedID    string     `json:"relatedID"`
	EntityKey    string     `json:"entityKey"`
	PropertyID   *string    `json:"propertyID,omitempty"`
	SourceAmount *float64   `json:"sourceAmount,omitempty"`
	ActionURL    string     `json:"actionURL,omitempty"`
	ActionLabel  string     `json:"actionLabel,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	ResolvedAt   *time.Time `json:"resolvedAt,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	IsDismissed  bool       `json:"isDismissed"`
	IsRead       bool       `json:"isRead"`
}

// Open reports whether the alert is still in its open state, i.e. it
// has neither been resolved nor dismissed.
func (a Alert) Open() bool {
	return a.ResolvedAt == nil && !a.IsDismissed
}

// AlertCandidate is the output of a single rule evaluator. Candidates
// are turned into alert rows by the upsert writer, keyed on EntityKey.
type AlertCandidate struct {
	AlertType    string
	Title        string
	Message      string
	Severity     Severity
	RelatedTable string
	RelatedID    string
	PropertyID   *string
	SourceAmount *float64
	ActionURL    string
	ActionLabel  string
}

func (c AlertCandidate) EntityKey() string {
	return c.AlertType + ":" + c.RelatedID
}

// VisibilityContext is the scope of entities the invoking principal is
// allowed to see. The zero value means "see nothing" (fail closed).
type VisibilityContext struct {
	Unrestricted bool
	PropertyIDs  []string
}

func Unrestricted() VisibilityContext {
	return VisibilityContext{Unrestricted: true}
}

type PassResult struct {
	Created  int      `json:"created"`
	Resolved int      `json:"resolved"`
	Errors   []string `json:"errors,omitempty"`
}

type CleanupResult struct {
	Dismissed int      `json:"dismissed"`
	Deleted   int      `json:"deleted"`
	Errors    []string `json:"errors,omitempty"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
