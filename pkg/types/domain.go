package types

import "time"

// The domain rows below are owned and mutated by other parts of the
// application. The alert engine reads them, it never writes to them.

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Bill struct {
	ID             string     `json:"id"`
	PropertyID     *string    `json:"propertyID,omitempty"`
	Vendor         string     `json:"vendor"`
	Description    string     `json:"description,omitempty"`
	Amount         *float64   `json:"amount,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Status         string     `json:"status"`
	AutoPay        bool       `json:"autoPay"`
	CheckSentAt    *time.Time `json:"checkSentAt,omitempty"`
	CheckClearedAt *time.Time `json:"checkClearedAt,omitempty"`
	DaysToConfirm  int        `json:"daysToConfirm,omitempty"`
}

type PropertyTax struct {
	ID         string     `json:"id"`
	PropertyID *string    `json:"propertyID,omitempty"`
	Authority  string     `json:"authority"`
	Amount     *float64   `json:"amount,omitempty"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	Status     string     `json:"status"`
}

type InsurancePolicy struct {
	ID           string     `json:"id"`
	PropertyID   *string    `json:"propertyID,omitempty"`
	Provider     string     `json:"provider"`
	PolicyNumber string     `json:"policyNumber,omitempty"`
	ExpiresOn    *time.Time `json:"expiresOn,omitempty"`
	Cancelled    bool       `json:"cancelled"`
}

type Vehicle struct {
	ID                      string     `json:"id"`
	PropertyID              *string    `json:"propertyID,omitempty"`
	Name                    string     `json:"name"`
	Active                  bool       `json:"active"`
	RegistrationExpiresOn   *time.Time `json:"registrationExpiresOn,omitempty"`
	InspectionDueOn         *time.Time `json:"inspectionDueOn,omitempty"`
	LastInspectionPassedOn  *time.Time `json:"lastInspectionPassedOn,omitempty"`
}

type VendorMessage struct {
	ID         string    `json:"id"`
	PropertyID *string   `json:"propertyID,omitempty"`
	Sender     string    `json:"sender"`
	Subject    string    `json:"subject"`
	Important  bool      `json:"important"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// PaymentConfirmation joins a payment confirmation e-mail link with the
// auto-pay bill it confirms.
type PaymentConfirmation struct {
	ID         string    `json:"id"`
	BillID     string    `json:"billID"`
	PropertyID *string   `json:"propertyID,omitempty"`
	Vendor     string    `json:"vendor"`
	Amount     *float64  `json:"amount,omitempty"`
	LinkedAt   time.Time `json:"linkedAt"`
	BillStatus string    `json:"billStatus"`
	AutoPay    bool      `json:"autoPay"`
}
