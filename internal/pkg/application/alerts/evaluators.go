package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/propertyops/property-alerts/pkg/types"
)

const (
	TableBills        = "bills"
	TableTaxes        = "property_taxes"
	TableInsurance    = "insurance_policies"
	TableVehicles     = "vehicles"
	TableMessages     = "vendor_communications"
	TablePaymentLinks = "payment_email_links"
)

// Evaluator scans a single domain condition and yields zero or more
// alert candidates. Evaluators are read only and tolerate bad rows by
// skipping them, never by aborting the scan.
type Evaluator interface {
	Name() string
	Evaluate(ctx context.Context, vc types.VisibilityContext) ([]types.AlertCandidate, error)
}

// newEvaluators registers the full rule catalogue. Adding a rule means
// adding an entry here, the orchestrator is untouched.
func newEvaluators(reader DomainReader, cfg *Config, now func() time.Time) []Evaluator {
	return []Evaluator{
		&taxOverdueEvaluator{reader: reader, now: now},
		&taxDueSoonEvaluator{reader: reader, cfg: cfg, now: now},
		&billOverdueEvaluator{reader: reader, now: now},
		&billDueSoonEvaluator{reader: reader, cfg: cfg, now: now},
		&checkUnconfirmedEvaluator{reader: reader, cfg: cfg, now: now},
		&insuranceExpiredEvaluator{reader: reader, cfg: cfg, now: now},
		&insuranceExpiringEvaluator{reader: reader, cfg: cfg, now: now},
		&registrationExpiredEvaluator{reader: reader, now: now},
		&registrationExpiringEvaluator{reader: reader, cfg: cfg, now: now},
		&inspectionOverdueEvaluator{reader: reader, now: now},
		&urgentVendorEmailEvaluator{reader: reader, cfg: cfg, now: now},
		&autoPayConfirmedEvaluator{reader: reader, cfg: cfg, now: now},
	}
}

type taxOverdueEvaluator struct {
	reader DomainReader
	now    func() time.Time
}

func (e *taxOverdueEvaluator) Name() string { return types.AlertTypeTaxOverdue }

func (e *taxOverdueEvaluator) Evaluate(ctx context.Context, vc types.VisibilityContext) ([]types.AlertCandidate, error) {
	taxes, err := e.reader.PendingTaxes(ctx, vc)
	if err != nil {
		return nil, err
	}

	now := e.now()
	candidates := make([]types.AlertCandidate, 0)

	for _, t := range taxes {
		if t.DueDate == nil {
			continue
		}
		if daysUntil(now, *t.DueDate) >= 0 {
			continue
		}

		candidates = append(candidates, types.AlertCandidate{
			AlertType:    types.AlertTypeTaxOverdue,
			Title:        "Property tax overdue",
			Message:      fmt.Sprintf("%s property tax%s was due %s", t.Authority, formatAmount(t.Amount), formatDate(t.DueDate)),
			Severity:     types.SeverityCritical,
			RelatedTable: TableTaxes,
			RelatedID:    t.ID,
			PropertyID:   t.PropertyID,
			SourceAmount: t.Amount,
			ActionURL:    "/taxes/" + t.ID,
			ActionLabel:  "View tax",
		})
	}

	return candidates, nil
}

type taxDueSoonEvaluator struct {
	reader DomainReader
	cfg    *Config
	now    func() time.Time
}

func (e *taxDueSoonEvaluator) Name() string { return types.AlertTypeTaxDueSoon }

func (e *taxDueSoonEvaluator) Evaluate(ctx context.Context, vc types.VisibilityContext) ([]types.AlertCandidate, error) {
	taxes, err := e.reader.PendingTaxes(ctx, vc)
	if err != nil {
		return nil, err
	}

	now := e.now()
	candidates := make([]types.AlertCandidate, 0)

	for _, t := range taxes {
		if t.DueDate == nil {
			continue
		}

		d := daysUntil(now, *t.DueDate)
		if d < 0 || d > e.cfg.TaxDueSoonDays {
			continue
		}

		candidates = append(candidates, types.AlertCandidate{
			AlertType:    types.AlertTypeTaxDueSoon,
			Title:        "Property tax due soon",
			Message:      fmt.Sprintf("%s property tax%s is due %s", t.Authority, formatAmount(t.Amount), formatDate(t.DueDate)),
			Severity:     dueSoonSeverity(d),
			RelatedTable: TableTaxes,
			RelatedID:    t.ID,
			PropertyID:   t.PropertyID,
			SourceAmount: t.Amount,
			ActionURL:    "/taxes/" + t.ID,
			ActionLabel:  "View tax",
		})
	}

	return candidates, nil
}

type billOverdueEvaluator struct {
	reader DomainReader
	now    func() time.Time
}

func (e *billOverdueEvaluator) Name() string { return types.AlertTypeBillOverdue }

func (e *billOverdueEvaluator) Evaluate(ctx context.Context, vc types.VisibilityContext) ([]types.AlertCandidate, error) {
	bills, err := e.reader.PendingBills(ctx, vc)
	if err != nil {
		return nil, err
	}

	now := e.now()
	candidates := make([]types.AlertCandidate, 0)

	for _, b := range bills {
		if b.DueDate == nil {
			continue
		}
		if daysUntil(now, *b.DueDate) >= 0 {
			continue
		}

		candidates = append(candidates, types.AlertCandidate{
			AlertType:    types.AlertTypeBillOverdue,
			Title:        "Bill overdue",
			Message:      fmt.Sprintf("%s bill%s was due %s", b.Vendor, formatAmount(b.Amount), formatDate(b.DueDate)),
			Severity:     types.SeverityCritical,
			RelatedTable: TableBills,
			RelatedID:    b.ID,
			PropertyID:   b.PropertyID,
			SourceAmount: b.Amount,
			ActionURL:    "/bills/" + b.ID,
			ActionLabel:  "View bill",
		})
	}

	return candidates, nil
}

type billDueSoonEvaluator struct {
	reader DomainReader
	cfg    *Config
	now    func() time.Time
}

func (e *billDueSoonEvaluator) Name() string { return types.AlertTypeBillDueSoon }

func (e *billDueSoonEvaluator) Evaluate(ctx context.Context, vc types.VisibilityContext) ([]types.AlertCandidate, error) {
	bills, err := e.reader.PendingBills(ctx, vc)
	if err != nil {
		return nil, err
	}

	now := e.now()
	candidates := make([]types.AlertCandidate, 0)

	for _, b := range bills {
		if b.DueDate == nil {
			continue
		}

		d := daysUntil(now, *b.DueDate)
		if d < 0 || d > leadDays(e.cfg.LeadDayTiers, b.Amount) {
			continue
		}

		candidates = append(candidates, types.AlertCandidate{
			AlertType:    types.AlertTypeBillDueSoon,
			Title:        "Bill due soon",
			Message:      fmt.Sprintf("%s bill%s is due %s", b.Vendor, formatAmount(b.Amount), formatDate(b.DueDate)),
			Severity:     dueSoonSeverity(d),
			RelatedTable: TableBills,
			RelatedID:    b.ID,
			PropertyID:   b.PropertyID,
			SourceAmount: b.Amount,
			ActionURL:    "/bills/" + b.ID,
			ActionLabel:  "View bill",
		})
	}

	return candidates, nil
}

type checkUnconfirmedEvaluator struct {
	reader DomainReader
	cfg    *Config
	now    func() time.Time
}

func (e *checkUnconfirmedEvaluator) Name() string { return types.AlertTypeCheckUnconfirmed }

func (e *checkUnconfirmedEvaluator) Evaluate(ctx context.Context, vc types.VisibilityContext) ([]types.AlertCandidate, error) {
	bills, err := e.reader.UnconfirmedChecks(ctx, vc)
	if err != nil {
		return nil, err
	}

	now := e.now()
	candidates := make([]types.AlertCandidate, 0)

	for _, b := range bills {
		if b.CheckSentAt == nil {
			continue
		}

		window := b.DaysToConfirm
		if window <= 0 {
			window = e.cfg.DaysToConfirm
		}

		sentDaysAgo := daysBetween(*b.CheckSentAt, now)
		if sentDaysAgo < window {
			continue
		}

		candidates = append(candidates, types.AlertCandidate{
			AlertType:    types.AlertTypeCheckUnconfirmed,
			Title:        "Check not confirmed",
			Message:      fmt.Sprintf("check to %s%s was sent %d days ago and has not cleared", b.Vendor, formatAmount(b.Amount), sentDaysAgo),
			Severity:     checkSeverity(sentDaysAgo - window),
			RelatedTable: TableBills,
			RelatedID:    b.ID,
			PropertyID:   b.PropertyID,
			SourceAmount: b.Amount,
			ActionURL:    "/bills/" + b.ID,
			ActionLabel:  "View bill",
		})
	}

	return candidates, nil
}

type insuranceExpiredEvaluator struct {
	reader DomainReader
	cfg    *Config
	now    func() time.Time
}

func (e *insuranceExpiredEvaluator) Name() string { return types.AlertTypeInsuranceExpired }

func (e *insuranceExpiredEvaluator) Evaluate(ctx context.Context, vc types.VisibilityContext) ([]types.AlertCandidate, error) {
	policies, err := e.reader.ActivePolicies(ctx, vc)
	if err != nil {
		return nil, err
	}

	now := e.now()
	candidates := make([]types.AlertCandidate, 0)

	for _, p := range policies {
		if p.ExpiresOn == nil {
			continue
		}

		d := daysUntil(now, *p.ExpiresOn)
		if d >= 0 || -d > e.cfg.InsuranceExpiredLookbackDays {
			continue
		}

		candidates = append(candidates, types.AlertCandidate{
			AlertType:    types.AlertTypeInsuranceExpired,
			Title:        "Insurance policy expired",
			Message:      fmt.Sprintf("%s policy %s expired %s", p.Provider, p.PolicyNumber, formatDate(p.ExpiresOn)),
			Severity:     types.SeverityCritical,
			RelatedTable: TableInsurance,
			RelatedID:    p.ID,
			PropertyID:   p.PropertyID,
			ActionURL:    "/insurance/" + p.ID,
			ActionLabel:  "View policy",
		})
	}

	return candidates, nil
}

type insuranceExpiringEvaluator struct {
	reader DomainReader
	cfg    *Config
	now    func() time.Time
}

func (e *insuranceExpiringEvaluator) Name() string { return types.AlertTypeInsuranceExpiring }

func (e *insuranceExpiringEvaluator) Evaluate(ctx context.Context, vc types.VisibilityContext) ([]types.AlertCandidate, error) {
	policies, err := e.reader.ActivePolicies(ctx, vc)
	if err != nil {
		return nil, err
	}

	now := e.now()
	candidates := make([]types.AlertCandidate, 0)

	for _, p := range policies {
		if p.ExpiresOn == nil {
			continue
		}

		d := daysUntil(now, *p.ExpiresOn)
		if d < 0 || d > e.cfg.InsuranceExpiringDays {
			continue
		}

		candidates = append(candidates, types.AlertCandidate{
			AlertType:    types.AlertTypeInsuranceExpiring,
			Title:        "Insurance policy expiring",
			Message:      fmt.Sprintf("%s policy %s expires %s", p.Provider, p.PolicyNumber, formatDate(p.ExpiresOn)),
			Severity:     expirySeverity(d, 7),
			RelatedTable: TableInsurance,
			RelatedID:    p.ID,
			PropertyID:   p.PropertyID,
			ActionURL:    "/insurance/" + p.ID,
			ActionLabel:  "View policy",
		})
	}

	return candidates, nil
}

type registrationExpiredEvaluator struct {
	reader DomainReader
	now    func() time.Time
}

func (e *registrationExpiredEvaluator) Name() string { return types.AlertTypeRegistrationExpired }

func (e *registrationExpiredEvaluator) Evaluate(ctx context.Context, vc types.VisibilityContext) ([]types.AlertCandidate, error) {
	vehicles, err := e.reader.ActiveVehicles(ctx, vc)
	if err != nil {
		return nil, err
	}

	now := e.now()
	candidates := make([]types.AlertCandidate, 0)

	for _, v := range vehicles {
		if v.RegistrationExpiresOn == nil {
			continue
		}
		if daysUntil(now, *v.RegistrationExpiresOn) >= 0 {
			continue
		}

		candidates = append(candidates, types.AlertCandidate{
			AlertType:    types.AlertTypeRegistrationExpired,
			Title:        "Vehicle registration expired",
			Message:      fmt.Sprintf("registration for %s expired %s", v.Name, formatDate(v.RegistrationExpiresOn)),
			Severity:     types.SeverityCritical,
			RelatedTable: TableVehicles,
			RelatedID:    v.ID,
			PropertyID:   v.PropertyID,
			ActionURL:    "/vehicles/" + v.ID,
			ActionLabel:  "View vehicle",
		})
	}

	return candidates, nil
}

type registrationExpiringEvaluator struct {
	reader DomainReader
	cfg    *Config
	now    func() time.Time
}

func (e *registrationExpiringEvaluator) Name() string { return types.AlertTypeRegistrationExpiring }

func (e *registrationExpiringEvaluator) Evaluate(ctx context.Context, vc types.VisibilityContext) ([]types.AlertCandidate, error) {
	vehicles, err := e.reader.ActiveVehicles(ctx, vc)
	if err != nil {
		return nil, err
	}

	now := e.now()
	candidates := make([]types.AlertCandidate, 0)

	for _, v := range vehicles {
		if v.RegistrationExpiresOn == nil {
			continue
		}

		d := daysUntil(now, *v.RegistrationExpiresOn)
		if d < 0 || d > e.cfg.RegistrationExpiringDays {
			continue
		}

		candidates = append(candidates, types.AlertCandidate{
			AlertType:    types.AlertTypeRegistrationExpiring,
			Title:        "Vehicle registration expiring",
			Message:      fmt.Sprintf("registration for %s expires %s", v.Name, formatDate(v.RegistrationExpiresOn)),
			Severity:     expirySeverity(d, 7),
			RelatedTable: TableVehicles,
			RelatedID:    v.ID,
			PropertyID:   v.PropertyID,
			ActionURL:    "/vehicles/" + v.ID,
			ActionLabel:  "View vehicle",
		})
	}

	return candidates, nil
}

type inspectionOverdueEvaluator struct {
	reader DomainReader
	now    func() time.Time
}

func (e *inspectionOverdueEvaluator) Name() string { return types.AlertTypeInspectionOverdue }

func (e *inspectionOverdueEvaluator) Evaluate(ctx context.Context, vc types.VisibilityContext) ([]types.AlertCandidate, error) {
	vehicles, err := e.reader.ActiveVehicles(ctx, vc)
	if err != nil {
		return nil, err
	}

	now := e.now()
	candidates := make([]types.AlertCandidate, 0)

	for _, v := range vehicles {
		if v.InspectionDueOn == nil {
			continue
		}
		if daysUntil(now, *v.InspectionDueOn) >= 0 {
			continue
		}

		candidates = append(candidates, types.AlertCandidate{
			AlertType:    types.AlertTypeInspectionOverdue,
			Title:        "Vehicle inspection overdue",
			Message:      fmt.Sprintf("inspection for %s was due %s", v.Name, formatDate(v.InspectionDueOn)),
			Severity:     types.SeverityWarning,
			RelatedTable: TableVehicles,
			RelatedID:    v.ID,
			PropertyID:   v.PropertyID,
			ActionURL:    "/vehicles/" + v.ID,
			ActionLabel:  "View vehicle",
		})
	}

	return candidates, nil
}

type urgentVendorEmailEvaluator struct {
	reader DomainReader
	cfg    *Config
	now    func() time.Time
}

func (e *urgentVendorEmailEvaluator) Name() string { return types.AlertTypeUrgentVendorEmail }

func (e *urgentVendorEmailEvaluator) Evaluate(ctx context.Context, vc types.VisibilityContext) ([]types.AlertCandidate, error) {
	now := e.now()
	since := now.Add(-time.Duration(e.cfg.VendorEmailMaxAgeHours) * time.Hour)

	messages, err := e.reader.ImportantMessagesSince(ctx, vc, since)
	if err != nil {
		return nil, err
	}

	candidates := make([]types.AlertCandidate, 0)

	for _, m := range messages {
		candidates = append(candidates, types.AlertCandidate{
			AlertType:    types.AlertTypeUrgentVendorEmail,
			Title:        "Urgent vendor message",
			Message:      fmt.Sprintf("%s: %s", m.Sender, m.Subject),
			Severity:     types.SeverityWarning,
			RelatedTable: TableMessages,
			RelatedID:    m.ID,
			PropertyID:   m.PropertyID,
			ActionURL:    "/messages/" + m.ID,
			ActionLabel:  "Read message",
		})
	}

	return candidates, nil
}

type autoPayConfirmedEvaluator struct {
	reader DomainReader
	cfg    *Config
	now    func() time.Time
}

func (e *autoPayConfirmedEvaluator) Name() string { return types.AlertTypeAutoPayConfirmed }

func (e *autoPayConfirmedEvaluator) Evaluate(ctx context.Context, vc types.VisibilityContext) ([]types.AlertCandidate, error) {
	now := e.now()
	since := now.AddDate(0, 0, -e.cfg.AutoPayLookbackDays)

	confirmations, err := e.reader.AutoPayConfirmationsSince(ctx, vc, since)
	if err != nil {
		return nil, err
	}

	candidates := make([]types.AlertCandidate, 0)

	for _, c := range confirmations {
		candidates = append(candidates, types.AlertCandidate{
			AlertType:    types.AlertTypeAutoPayConfirmed,
			Title:        "Auto-pay confirmed",
			Message:      fmt.Sprintf("payment to %s%s was confirmed", c.Vendor, formatAmount(c.Amount)),
			Severity:     types.SeverityInfo,
			RelatedTable: TablePaymentLinks,
			RelatedID:    c.ID,
			PropertyID:   c.PropertyID,
			SourceAmount: c.Amount,
			ActionURL:    "/bills/" + c.BillID,
			ActionLabel:  "View bill",
		})
	}

	return candidates, nil
}
