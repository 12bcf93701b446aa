package alerts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/propertyops/property-alerts/internal/pkg/infrastructure/storage"
	"github.com/propertyops/property-alerts/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
)

var tracer = otel.Tracer("property-alerts/engine")

var ErrAlertNotFound = fmt.Errorf("alert not found")

//go:generate moq -rm -out alertservice_mock.go . AlertService
type AlertService interface {
	Query(ctx context.Context, vc types.VisibilityContext, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	GetByID(ctx context.Context, alertID string, vc types.VisibilityContext) (types.Alert, error)
	Dismiss(ctx context.Context, alertID string, vc types.VisibilityContext) error
	DismissAll(ctx context.Context, vc types.VisibilityContext) (int, error)
	MarkRead(ctx context.Context, alertID string, vc types.VisibilityContext) error
	MarkAllRead(ctx context.Context, vc types.VisibilityContext) (int, error)

	GenerateAlerts(ctx context.Context, vc types.VisibilityContext) types.PassResult
	ResolveAlertsForEntity(ctx context.Context, relatedTable, relatedID string, alertTypes []string) (int, error)
	CleanupAlerts(ctx context.Context) types.CleanupResult
}

//go:generate moq -rm -out alertstore_mock.go . AlertStore
type AlertStore interface {
	QueryAlerts(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error)
	GetAlert(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error)
	UpsertAlert(ctx context.Context, alert types.Alert) (string, bool, error)
	ResolveAlert(ctx context.Context, alertID string, expiresAt time.Time) error
	ResolveOpenAlerts(ctx context.Context, relatedTable, relatedID string, alertTypes []string, expiresAt time.Time) ([]string, error)
	DismissAlert(ctx context.Context, alertID string) error
	DismissAlerts(ctx context.Context, vc types.VisibilityContext) (int64, error)
	SetAlertRead(ctx context.Context, alertID string, read bool) error
	MarkAllAlertsRead(ctx context.Context, vc types.VisibilityContext) (int64, error)
	DismissExpiredAlerts(ctx context.Context, now time.Time) (int64, error)
	DeleteDismissedAlertsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

//go:generate moq -rm -out domainreader_mock.go . DomainReader
type DomainReader interface {
	PendingBills(ctx context.Context, vc types.VisibilityContext) ([]types.Bill, error)
	UnconfirmedChecks(ctx context.Context, vc types.VisibilityContext) ([]types.Bill, error)
	PendingTaxes(ctx context.Context, vc types.VisibilityContext) ([]types.PropertyTax, error)
	ActivePolicies(ctx context.Context, vc types.VisibilityContext) ([]types.InsurancePolicy, error)
	ActiveVehicles(ctx context.Context, vc types.VisibilityContext) ([]types.Vehicle, error)
	ImportantMessagesSince(ctx context.Context, vc types.VisibilityContext, since time.Time) ([]types.VendorMessage, error)
	AutoPayConfirmationsSince(ctx context.Context, vc types.VisibilityContext, since time.Time) ([]types.PaymentConfirmation, error)

	GetBill(ctx context.Context, billID string) (types.Bill, error)
	GetTax(ctx context.Context, taxID string) (types.PropertyTax, error)
	GetPolicy(ctx context.Context, policyID string) (types.InsurancePolicy, error)
	GetVehicle(ctx context.Context, vehicleID string) (types.Vehicle, error)
	GetMessage(ctx context.Context, messageID string) (types.VendorMessage, error)
	GetAutoPayConfirmation(ctx context.Context, linkID string) (types.PaymentConfirmation, error)
}

// maxOpenAlertsPerSweep bounds the auto-resolution scan of a single
// pass; anything beyond it is picked up by the next tick.
const maxOpenAlertsPerSweep = 1000

type alertSvc struct {
	storage    AlertStore
	reader     DomainReader
	messenger  messaging.MsgContext
	cfg        *Config
	evaluators []Evaluator

	nowFunc func() time.Time

	// serializes overlapping passes; redundant with the store's
	// conflict resolution but avoids wasted work
	passMu sync.Mutex
}

func New(s AlertStore, r DomainReader, m messaging.MsgContext, cfg *Config) AlertService {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	svc := &alertSvc{
		storage:   s,
		reader:    r,
		messenger: m,
		cfg:       cfg,
	}
	svc.evaluators = newEvaluators(r, cfg, svc.now)

	svc.messenger.RegisterTopicMessageHandler(EntityUpdatedTopic, NewEntityUpdatedHandler(svc))

	return svc
}

func (svc *alertSvc) now() time.Time {
	if svc.nowFunc != nil {
		return svc.nowFunc()
	}
	return time.Now().UTC()
}

func (svc *alertSvc) graceWindow() time.Duration {
	return time.Duration(svc.cfg.GraceDays) * 24 * time.Hour
}

func (svc *alertSvc) Query(ctx context.Context, vc types.VisibilityContext, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
	conditions = append(conditions, storage.WithVisibility(vc))

	alerts, err := svc.storage.QueryAlerts(ctx, conditions...)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return alerts, nil
}

func (svc *alertSvc) GetByID(ctx context.Context, alertID string, vc types.VisibilityContext) (types.Alert, error) {
	alert, err := svc.storage.GetAlert(ctx, storage.WithAlertID(alertID), storage.WithVisibility(vc))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Alert{}, ErrAlertNotFound
		}
		return types.Alert{}, err
	}

	return alert, nil
}

func (svc *alertSvc) Dismiss(ctx context.Context, alertID string, vc types.VisibilityContext) error {
	alert, err := svc.GetByID(ctx, alertID, vc)
	if err != nil {
		return err
	}

	return svc.storage.DismissAlert(ctx, alert.ID)
}

func (svc *alertSvc) DismissAll(ctx context.Context, vc types.VisibilityContext) (int, error) {
	n, err := svc.storage.DismissAlerts(ctx, vc)
	return int(n), err
}

func (svc *alertSvc) MarkRead(ctx context.Context, alertID string, vc types.VisibilityContext) error {
	alert, err := svc.GetByID(ctx, alertID, vc)
	if err != nil {
		return err
	}

	return svc.storage.SetAlertRead(ctx, alert.ID, true)
}

func (svc *alertSvc) MarkAllRead(ctx context.Context, vc types.VisibilityContext) (int, error) {
	n, err := svc.storage.MarkAllAlertsRead(ctx, vc)
	return int(n), err
}

// GenerateAlerts runs a full pass: every evaluator in turn, an upsert
// per candidate, then the auto-resolution sweep. The pass never fails
// as a whole, partial failures are collected in the result.
func (svc *alertSvc) GenerateAlerts(ctx context.Context, vc types.VisibilityContext) types.PassResult {
	var err error

	ctx, span := tracer.Start(ctx, "generate-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	svc.passMu.Lock()
	defer svc.passMu.Unlock()

	result := types.PassResult{Errors: []string{}}

	for _, e := range svc.evaluators {
		candidates, evalErr := e.Evaluate(ctx, vc)
		if evalErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", e.Name(), evalErr.Error()))
			continue
		}

		for _, c := range candidates {
			inserted, upsertErr := svc.upsert(ctx, c)
			if upsertErr != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: upsert %s: %s", e.Name(), c.EntityKey(), upsertErr.Error()))
				continue
			}
			if inserted {
				result.Created++
			}
		}
	}

	// the sweep must not run until all evaluators have committed, or
	// it could resolve an alert this pass is about to refresh
	resolved, errs := svc.autoResolve(ctx)
	result.Resolved = resolved
	result.Errors = append(result.Errors, errs...)

	log.Info("alert generation pass done", "created", result.Created, "resolved", result.Resolved, "errors", len(result.Errors))

	return result
}

func (svc *alertSvc) upsert(ctx context.Context, c types.AlertCandidate) (bool, error) {
	log := logging.GetFromContext(ctx)

	alert := types.Alert{
		ID:           uuid.NewString(),
		AlertType:    c.AlertType,
		Title:        c.Title,
		Message:      c.Message,
		Severity:     c.Severity,
		RelatedTable: c.RelatedTable,
		RelatedID:    c.RelatedID,
		EntityKey:    c.EntityKey(),
		PropertyID:   c.PropertyID,
		SourceAmount: c.SourceAmount,
		ActionURL:    c.ActionURL,
		ActionLabel:  c.ActionLabel,
	}

	id, inserted, err := svc.storage.UpsertAlert(ctx, alert)
	if err != nil {
		return false, err
	}

	if inserted {
		alert.ID = id
		alert.CreatedAt = svc.now()

		err = svc.messenger.PublishOnTopic(ctx, &AlertCreated{
			Alert:     alert,
			Timestamp: alert.CreatedAt,
		})
		if err != nil {
			log.Warn("failed to publish alert created event", "alert_id", id, "err", err.Error())
		}
	}

	return inserted, nil
}

func (svc *alertSvc) autoResolve(ctx context.Context) (int, []string) {
	log := logging.GetFromContext(ctx)
	errs := []string{}

	open, err := svc.storage.QueryAlerts(ctx, storage.WithOpenOnly(), storage.WithLimit(maxOpenAlertsPerSweep))
	if err != nil {
		return 0, append(errs, fmt.Sprintf("auto-resolve: query open alerts: %s", err.Error()))
	}

	now := svc.now()
	resolved := 0

	for _, a := range open.Data {
		satisfied, err := svc.conditionSatisfied(ctx, a, now)
		if err != nil {
			errs = append(errs, fmt.Sprintf("auto-resolve %s: %s", a.EntityKey, err.Error()))
			continue
		}
		if !satisfied {
			continue
		}

		err = svc.storage.ResolveAlert(ctx, a.ID, now.Add(svc.graceWindow()))
		if err != nil {
			if errors.Is(err, storage.ErrNotOpen) {
				continue
			}
			errs = append(errs, fmt.Sprintf("auto-resolve %s: %s", a.EntityKey, err.Error()))
			continue
		}

		resolved++

		err = svc.messenger.PublishOnTopic(ctx, &AlertResolved{
			ID:           a.ID,
			AlertType:    a.AlertType,
			RelatedTable: a.RelatedTable,
			RelatedID:    a.RelatedID,
			Timestamp:    now,
		})
		if err != nil {
			log.Warn("failed to publish alert resolved event", "alert_id", a.ID, "err", err.Error())
		}
	}

	return resolved, errs
}

// conditionSatisfied checks the current state of the alert's source row
// and reports whether the triggering condition has ceased to hold. A
// missing source row always satisfies the alert.
func (svc *alertSvc) conditionSatisfied(ctx context.Context, a types.Alert, now time.Time) (bool, error) {
	switch a.AlertType {
	case types.AlertTypeBillOverdue, types.AlertTypeBillDueSoon:
		bill, err := svc.reader.GetBill(ctx, a.RelatedID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return true, nil
			}
			return false, err
		}
		if bill.Status != types.StatusPending {
			return true, nil
		}
		if bill.DueDate == nil {
			return true, nil
		}
		d := daysUntil(now, *bill.DueDate)
		if a.AlertType == types.AlertTypeBillOverdue {
			return d >= 0, nil
		}
		return d < 0 || d > leadDays(svc.cfg.LeadDayTiers, bill.Amount), nil

	case types.AlertTypeTaxOverdue, types.AlertTypeTaxDueSoon:
		tax, err := svc.reader.GetTax(ctx, a.RelatedID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return true, nil
			}
			return false, err
		}
		if tax.Status != types.StatusPending {
			return true, nil
		}
		if tax.DueDate == nil {
			return true, nil
		}
		d := daysUntil(now, *tax.DueDate)
		if a.AlertType == types.AlertTypeTaxOverdue {
			return d >= 0, nil
		}
		return d < 0 || d > svc.cfg.TaxDueSoonDays, nil

	case types.AlertTypeCheckUnconfirmed:
		bill, err := svc.reader.GetBill(ctx, a.RelatedID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return true, nil
			}
			return false, err
		}
		return bill.CheckClearedAt != nil || bill.Status == types.StatusCancelled || bill.CheckSentAt == nil, nil

	case types.AlertTypeInsuranceExpired:
		policy, err := svc.reader.GetPolicy(ctx, a.RelatedID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return true, nil
			}
			return false, err
		}
		if policy.Cancelled || policy.ExpiresOn == nil {
			return true, nil
		}
		d := daysUntil(now, *policy.ExpiresOn)
		return d >= 0 || -d > svc.cfg.InsuranceExpiredLookbackDays, nil

	case types.AlertTypeInsuranceExpiring:
		policy, err := svc.reader.GetPolicy(ctx, a.RelatedID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return true, nil
			}
			return false, err
		}
		if policy.Cancelled || policy.ExpiresOn == nil {
			return true, nil
		}
		d := daysUntil(now, *policy.ExpiresOn)
		return d < 0 || d > svc.cfg.InsuranceExpiringDays, nil

	case types.AlertTypeRegistrationExpired:
		vehicle, err := svc.reader.GetVehicle(ctx, a.RelatedID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return true, nil
			}
			return false, err
		}
		if !vehicle.Active || vehicle.RegistrationExpiresOn == nil {
			return true, nil
		}
		return daysUntil(now, *vehicle.RegistrationExpiresOn) >= 0, nil

	case types.AlertTypeRegistrationExpiring:
		vehicle, err := svc.reader.GetVehicle(ctx, a.RelatedID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return true, nil
			}
			return false, err
		}
		if !vehicle.Active || vehicle.RegistrationExpiresOn == nil {
			return true, nil
		}
		d := daysUntil(now, *vehicle.RegistrationExpiresOn)
		return d < 0 || d > svc.cfg.RegistrationExpiringDays, nil

	case types.AlertTypeInspectionOverdue:
		vehicle, err := svc.reader.GetVehicle(ctx, a.RelatedID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return true, nil
			}
			return false, err
		}
		if !vehicle.Active || vehicle.InspectionDueOn == nil {
			return true, nil
		}
		return daysUntil(now, *vehicle.InspectionDueOn) >= 0, nil

	case types.AlertTypeUrgentVendorEmail:
		msg, err := svc.reader.GetMessage(ctx, a.RelatedID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return true, nil
			}
			return false, err
		}
		maxAge := time.Duration(svc.cfg.VendorEmailMaxAgeHours) * time.Hour
		return !msg.Important || now.Sub(msg.ReceivedAt) >= maxAge, nil

	case types.AlertTypeAutoPayConfirmed:
		confirmation, err := svc.reader.GetAutoPayConfirmation(ctx, a.RelatedID)
		if err != nil {
			if errors.Is(err, storage.ErrNoRows) {
				return true, nil
			}
			return false, err
		}
		return now.Sub(confirmation.LinkedAt) >= time.Duration(svc.cfg.AutoPayLookbackDays)*24*time.Hour, nil
	}

	// unknown alert types are left alone
	return false, nil
}

// ResolveAlertsForEntity closes open alerts for a domain row eagerly,
// typically right after a user action, instead of waiting for the next
// scheduled pass.
func (svc *alertSvc) ResolveAlertsForEntity(ctx context.Context, relatedTable, relatedID string, alertTypes []string) (int, error) {
	var err error

	ctx, span := tracer.Start(ctx, "resolve-alerts-for-entity")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	if relatedTable == "" || relatedID == "" {
		err = fmt.Errorf("no related entity specified")
		return 0, err
	}

	now := svc.now()

	ids, err := svc.storage.ResolveOpenAlerts(ctx, relatedTable, relatedID, alertTypes, now.Add(svc.graceWindow()))
	if err != nil {
		return 0, err
	}

	for _, id := range ids {
		pubErr := svc.messenger.PublishOnTopic(ctx, &AlertResolved{
			ID:           id,
			RelatedTable: relatedTable,
			RelatedID:    relatedID,
			Timestamp:    now,
		})
		if pubErr != nil {
			log.Warn("failed to publish alert resolved event", "alert_id", id, "err", pubErr.Error())
		}
	}

	return len(ids), nil
}

// CleanupAlerts is the retention sweep: dismiss resolved alerts whose
// grace window has elapsed, then hard delete alerts that have been
// dismissed past the retention period.
func (svc *alertSvc) CleanupAlerts(ctx context.Context) types.CleanupResult {
	var err error

	ctx, span := tracer.Start(ctx, "cleanup-alerts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	result := types.CleanupResult{Errors: []string{}}
	now := svc.now()

	dismissed, err := svc.storage.DismissExpiredAlerts(ctx, now)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("dismiss expired: %s", err.Error()))
	} else {
		result.Dismissed = int(dismissed)
	}

	deleted, err := svc.storage.DeleteDismissedAlertsBefore(ctx, now.AddDate(0, 0, -svc.cfg.RetentionDays))
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("delete dismissed: %s", err.Error()))
	} else {
		result.Deleted = int(deleted)
	}

	log.Info("alert cleanup pass done", "dismissed", result.Dismissed, "deleted", result.Deleted, "errors", len(result.Errors))

	return result
}
