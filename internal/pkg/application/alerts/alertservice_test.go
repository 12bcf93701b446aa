package alerts

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/diwise/messaging-golang/pkg/messaging"

	"github.com/propertyops/property-alerts/internal/pkg/infrastructure/storage"
	"github.com/propertyops/property-alerts/pkg/types"
)

func emptyStore() *AlertStoreMock {
	return &AlertStoreMock{
		QueryAlertsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
			return types.Collection[types.Alert]{}, nil
		},
		UpsertAlertFunc: func(ctx context.Context, alert types.Alert) (string, bool, error) {
			return alert.ID, true, nil
		},
		ResolveAlertFunc: func(ctx context.Context, alertID string, expiresAt time.Time) error {
			return nil
		},
		ResolveOpenAlertsFunc: func(ctx context.Context, relatedTable, relatedID string, alertTypes []string, expiresAt time.Time) ([]string, error) {
			return nil, nil
		},
		DismissExpiredAlertsFunc: func(ctx context.Context, now time.Time) (int64, error) {
			return 0, nil
		},
		DeleteDismissedAlertsBeforeFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 0, nil
		},
	}
}

func testService(t *testing.T, s *AlertStoreMock, r *DomainReaderMock) (*is.I, *alertSvc, *messaging.MsgContextMock) {
	is := is.New(t)

	m := &messaging.MsgContextMock{
		RegisterTopicMessageHandlerFunc: func(routingKey string, handler messaging.TopicMessageHandler) error {
			return nil
		},
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	svc := New(s, r, m, DefaultConfig()).(*alertSvc)
	svc.nowFunc = nowFn

	return is, svc, m
}

func TestGenerateAlertsCreatesAndPublishes(t *testing.T) {
	s := emptyStore()
	r := emptyReader()
	r.PendingBillsFunc = func(ctx context.Context, vc types.VisibilityContext) ([]types.Bill, error) {
		return []types.Bill{
			{ID: "bill-01", Vendor: "Acme Plumbing", Amount: f(250), DueDate: date(-3), Status: types.StatusPending},
		}, nil
	}
	is, svc, m := testService(t, s, r)

	result := svc.GenerateAlerts(context.Background(), types.Unrestricted())

	is.Equal(1, result.Created)
	is.Equal(0, len(result.Errors))

	is.Equal(1, len(s.UpsertAlertCalls()))
	is.Equal("bill_overdue:bill-01", s.UpsertAlertCalls()[0].Alert.EntityKey)

	is.Equal(1, len(m.PublishOnTopicCalls()))
	is.Equal("alerts.alertCreated", m.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestGenerateAlertsIsIdempotent(t *testing.T) {
	s := emptyStore()
	s.UpsertAlertFunc = func(ctx context.Context, alert types.Alert) (string, bool, error) {
		// the open row already exists, the upsert refreshed it
		return "existing-id", false, nil
	}
	r := emptyReader()
	r.PendingBillsFunc = func(ctx context.Context, vc types.VisibilityContext) ([]types.Bill, error) {
		return []types.Bill{
			{ID: "bill-01", Vendor: "Acme Plumbing", Amount: f(250), DueDate: date(-3), Status: types.StatusPending},
		}, nil
	}
	is, svc, m := testService(t, s, r)

	result := svc.GenerateAlerts(context.Background(), types.Unrestricted())

	is.Equal(0, result.Created)
	is.Equal(0, len(m.PublishOnTopicCalls()))
}

func TestGenerateAlertsAggregatesErrors(t *testing.T) {
	s := emptyStore()
	r := emptyReader()
	r.PendingTaxesFunc = func(ctx context.Context, vc types.VisibilityContext) ([]types.PropertyTax, error) {
		return nil, fmt.Errorf("connection refused")
	}
	r.PendingBillsFunc = func(ctx context.Context, vc types.VisibilityContext) ([]types.Bill, error) {
		return []types.Bill{
			{ID: "bill-01", Vendor: "Acme Plumbing", Amount: f(250), DueDate: date(-3), Status: types.StatusPending},
		}, nil
	}
	is, svc, _ := testService(t, s, r)

	result := svc.GenerateAlerts(context.Background(), types.Unrestricted())

	// both tax evaluators fail, the bill evaluators still run
	is.Equal(2, len(result.Errors))
	is.Equal(1, result.Created)
}

func TestAutoResolveResolvesClearedCondition(t *testing.T) {
	s := emptyStore()
	s.QueryAlertsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
		return types.Collection[types.Alert]{
			Data: []types.Alert{
				{ID: "alert-01", AlertType: types.AlertTypeBillOverdue, RelatedTable: TableBills, RelatedID: "bill-01", EntityKey: "bill_overdue:bill-01"},
			},
			Count: 1, TotalCount: 1,
		}, nil
	}
	r := emptyReader()
	r.GetBillFunc = func(ctx context.Context, billID string) (types.Bill, error) {
		return types.Bill{ID: billID, Status: types.StatusConfirmed}, nil
	}
	is, svc, m := testService(t, s, r)

	result := svc.GenerateAlerts(context.Background(), types.Unrestricted())

	is.Equal(1, result.Resolved)
	is.Equal(1, len(s.ResolveAlertCalls()))
	is.Equal("alert-01", s.ResolveAlertCalls()[0].AlertID)

	// resolved alerts linger for the grace window before expiring
	is.Equal(testNow.AddDate(0, 0, 7), s.ResolveAlertCalls()[0].ExpiresAt)

	is.Equal(1, len(m.PublishOnTopicCalls()))
	is.Equal("alerts.alertResolved", m.PublishOnTopicCalls()[0].Message.TopicName())
}

func TestAutoResolveTreatsMissingRowAsSatisfied(t *testing.T) {
	s := emptyStore()
	s.QueryAlertsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
		return types.Collection[types.Alert]{
			Data: []types.Alert{
				{ID: "alert-01", AlertType: types.AlertTypeTaxOverdue, RelatedTable: TableTaxes, RelatedID: "tax-01"},
			},
			Count: 1, TotalCount: 1,
		}, nil
	}
	r := emptyReader()
	r.GetTaxFunc = func(ctx context.Context, taxID string) (types.PropertyTax, error) {
		return types.PropertyTax{}, storage.ErrNoRows
	}
	is, svc, _ := testService(t, s, r)

	result := svc.GenerateAlerts(context.Background(), types.Unrestricted())

	is.Equal(1, result.Resolved)
}

func TestAutoResolveLeavesHoldingConditionsOpen(t *testing.T) {
	s := emptyStore()
	s.QueryAlertsFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
		return types.Collection[types.Alert]{
			Data: []types.Alert{
				{ID: "alert-01", AlertType: types.AlertTypeBillOverdue, RelatedTable: TableBills, RelatedID: "bill-01"},
			},
			Count: 1, TotalCount: 1,
		}, nil
	}
	r := emptyReader()
	r.GetBillFunc = func(ctx context.Context, billID string) (types.Bill, error) {
		return types.Bill{ID: billID, Status: types.StatusPending, DueDate: date(-3)}, nil
	}
	is, svc, _ := testService(t, s, r)

	result := svc.GenerateAlerts(context.Background(), types.Unrestricted())

	is.Equal(0, result.Resolved)
	is.Equal(0, len(s.ResolveAlertCalls()))
}

func TestResolveAlertsForEntity(t *testing.T) {
	s := emptyStore()
	s.ResolveOpenAlertsFunc = func(ctx context.Context, relatedTable, relatedID string, alertTypes []string, expiresAt time.Time) ([]string, error) {
		return []string{"alert-01", "alert-02"}, nil
	}
	is, svc, m := testService(t, s, emptyReader())

	n, err := svc.ResolveAlertsForEntity(context.Background(), TableBills, "bill-01", nil)
	is.NoErr(err)

	is.Equal(2, n)
	is.Equal(2, len(m.PublishOnTopicCalls()))
	is.Equal(TableBills, s.ResolveOpenAlertsCalls()[0].RelatedTable)
}

func TestResolveAlertsForEntityRequiresAnEntity(t *testing.T) {
	is, svc, _ := testService(t, emptyStore(), emptyReader())

	_, err := svc.ResolveAlertsForEntity(context.Background(), "", "", nil)
	is.True(err != nil)
}

func TestCleanupAlerts(t *testing.T) {
	s := emptyStore()
	s.DismissExpiredAlertsFunc = func(ctx context.Context, now time.Time) (int64, error) {
		return 3, nil
	}
	s.DeleteDismissedAlertsBeforeFunc = func(ctx context.Context, cutoff time.Time) (int64, error) {
		return 2, nil
	}
	is, svc, _ := testService(t, s, emptyReader())

	result := svc.CleanupAlerts(context.Background())

	is.Equal(3, result.Dismissed)
	is.Equal(2, result.Deleted)
	is.Equal(0, len(result.Errors))

	is.Equal(testNow, s.DismissExpiredAlertsCalls()[0].Now)
	is.Equal(testNow.AddDate(0, 0, -90), s.DeleteDismissedAlertsBeforeCalls()[0].Cutoff)
}

func TestCleanupAlertsCollectsErrors(t *testing.T) {
	s := emptyStore()
	s.DismissExpiredAlertsFunc = func(ctx context.Context, now time.Time) (int64, error) {
		return 0, fmt.Errorf("deadlock detected")
	}
	is, svc, _ := testService(t, s, emptyReader())

	result := svc.CleanupAlerts(context.Background())

	is.Equal(1, len(result.Errors))
	// the delete half still ran
	is.Equal(1, len(s.DeleteDismissedAlertsBeforeCalls()))
}

func TestGetByIDNotFound(t *testing.T) {
	s := emptyStore()
	s.GetAlertFunc = func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Alert, error) {
		return types.Alert{}, storage.ErrNoRows
	}
	is, svc, _ := testService(t, s, emptyReader())

	_, err := svc.GetByID(context.Background(), "nope", types.Unrestricted())
	is.Equal(ErrAlertNotFound, err)
}

func TestQueryAppendsVisibility(t *testing.T) {
	s := emptyStore()
	is, svc, _ := testService(t, s, emptyReader())

	vc := types.VisibilityContext{PropertyIDs: []string{"prop-01"}}
	_, err := svc.Query(context.Background(), vc, storage.WithOpenOnly())
	is.NoErr(err)

	is.Equal(1, len(s.QueryAlertsCalls()))
	is.Equal(2, len(s.QueryAlertsCalls()[0].Conditions))
}

func TestServiceRegistersEntityUpdatedHandler(t *testing.T) {
	is, _, m := testService(t, emptyStore(), emptyReader())

	is.Equal(1, len(m.RegisterTopicMessageHandlerCalls()))
	is.Equal(EntityUpdatedTopic, m.RegisterTopicMessageHandlerCalls()[0].RoutingKey)
}
