package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/propertyops/property-alerts/pkg/types"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func nowFn() time.Time { return testNow }

func date(daysFromNow int) *time.Time {
	d := testNow.AddDate(0, 0, daysFromNow)
	return &d
}

func emptyReader() *DomainReaderMock {
	return &DomainReaderMock{
		PendingBillsFunc: func(ctx context.Context, vc types.VisibilityContext) ([]types.Bill, error) {
			return nil, nil
		},
		UnconfirmedChecksFunc: func(ctx context.Context, vc types.VisibilityContext) ([]types.Bill, error) {
			return nil, nil
		},
		PendingTaxesFunc: func(ctx context.Context, vc types.VisibilityContext) ([]types.PropertyTax, error) {
			return nil, nil
		},
		ActivePoliciesFunc: func(ctx context.Context, vc types.VisibilityContext) ([]types.InsurancePolicy, error) {
			return nil, nil
		},
		ActiveVehiclesFunc: func(ctx context.Context, vc types.VisibilityContext) ([]types.Vehicle, error) {
			return nil, nil
		},
		ImportantMessagesSinceFunc: func(ctx context.Context, vc types.VisibilityContext, since time.Time) ([]types.VendorMessage, error) {
			return nil, nil
		},
		AutoPayConfirmationsSinceFunc: func(ctx context.Context, vc types.VisibilityContext, since time.Time) ([]types.PaymentConfirmation, error) {
			return nil, nil
		},
	}
}

func TestBillDueSoonUsesAmountTiers(t *testing.T) {
	is := is.New(t)
	r := emptyReader()
	r.PendingBillsFunc = func(ctx context.Context, vc types.VisibilityContext) ([]types.Bill, error) {
		return []types.Bill{
			{ID: "bill-01", Vendor: "Acme Plumbing", Amount: f(6000), DueDate: date(10), Status: types.StatusPending},
			{ID: "bill-02", Vendor: "Lawn Care", Amount: f(500), DueDate: date(10), Status: types.StatusPending},
		}, nil
	}

	e := &billDueSoonEvaluator{reader: r, cfg: DefaultConfig(), now: nowFn}

	candidates, err := e.Evaluate(context.Background(), types.Unrestricted())
	is.NoErr(err)

	is.Equal(1, len(candidates))
	is.Equal("bill-01", candidates[0].RelatedID)
	is.Equal(types.SeverityWarning, candidates[0].Severity)
	is.Equal("bill_due_soon:bill-01", candidates[0].EntityKey())
}

func TestBillDueSoonIsCriticalCloseToDueDate(t *testing.T) {
	is := is.New(t)
	r := emptyReader()
	r.PendingBillsFunc = func(ctx context.Context, vc types.VisibilityContext) ([]types.Bill, error) {
		return []types.Bill{
			{ID: "bill-01", Vendor: "Acme Plumbing", Amount: f(200), DueDate: date(2), Status: types.StatusPending},
		}, nil
	}

	e := &billDueSoonEvaluator{reader: r, cfg: DefaultConfig(), now: nowFn}

	candidates, err := e.Evaluate(context.Background(), types.Unrestricted())
	is.NoErr(err)

	is.Equal(1, len(candidates))
	is.Equal(types.SeverityCritical, candidates[0].Severity)
}

func TestBillOverdueIsCritical(t *testing.T) {
	is := is.New(t)
	r := emptyReader()
	r.PendingBillsFunc = func(ctx context.Context, vc types.VisibilityContext) ([]types.Bill, error) {
		return []types.Bill{
			{ID: "bill-01", Vendor: "Acme Plumbing", Amount: f(125.50), DueDate: date(-2), Status: types.StatusPending},
		}, nil
	}

	e := &billOverdueEvaluator{reader: r, now: nowFn}

	candidates, err := e.Evaluate(context.Background(), types.Unrestricted())
	is.NoErr(err)

	is.Equal(1, len(candidates))
	is.Equal(types.SeverityCritical, candidates[0].Severity)
	is.Equal(TableBills, candidates[0].RelatedTable)
	is.Equal("/bills/bill-01", candidates[0].ActionURL)
}

func TestEvaluatorsSkipRowsWithoutDueDate(t *testing.T) {
	is := is.New(t)
	r := emptyReader()
	r.PendingTaxesFunc = func(ctx context.Context, vc types.VisibilityContext) ([]types.PropertyTax, error) {
		return []types.PropertyTax{
			{ID: "tax-01", Authority: "King County", Status: types.StatusPending},
			{ID: "tax-02", Authority: "King County", DueDate: date(5), Status: types.StatusPending},
		}, nil
	}

	e := &taxDueSoonEvaluator{reader: r, cfg: DefaultConfig(), now: nowFn}

	candidates, err := e.Evaluate(context.Background(), types.Unrestricted())
	is.NoErr(err)

	is.Equal(1, len(candidates))
	is.Equal("tax-02", candidates[0].RelatedID)
}

func TestCheckUnconfirmedHonoursPerBillWindow(t *testing.T) {
	is := is.New(t)
	sent := testNow.AddDate(0, 0, -10)
	r := emptyReader()
	r.UnconfirmedChecksFunc = func(ctx context.Context, vc types.VisibilityContext) ([]types.Bill, error) {
		return []types.Bill{
			{ID: "bill-01", Vendor: "Roofing Co", CheckSentAt: &sent, DaysToConfirm: 7},
			{ID: "bill-02", Vendor: "Roofing Co", CheckSentAt: &sent},
		}, nil
	}

	e := &checkUnconfirmedEvaluator{reader: r, cfg: DefaultConfig(), now: nowFn}

	candidates, err := e.Evaluate(context.Background(), types.Unrestricted())
	is.NoErr(err)

	// bill-01 overrides the default 14 day window with 7, bill-02
	// falls back to the default and is still inside it
	is.Equal(1, len(candidates))
	is.Equal("bill-01", candidates[0].RelatedID)
	is.Equal(types.SeverityWarning, candidates[0].Severity)
}

func TestInsuranceExpiredLookbackBound(t *testing.T) {
	is := is.New(t)
	r := emptyReader()
	r.ActivePoliciesFunc = func(ctx context.Context, vc types.VisibilityContext) ([]types.InsurancePolicy, error) {
		return []types.InsurancePolicy{
			{ID: "pol-01", Provider: "Allstate", PolicyNumber: "A-100", ExpiresOn: date(-10)},
			{ID: "pol-02", Provider: "Allstate", PolicyNumber: "A-200", ExpiresOn: date(-120)},
		}, nil
	}

	e := &insuranceExpiredEvaluator{reader: r, cfg: DefaultConfig(), now: nowFn}

	candidates, err := e.Evaluate(context.Background(), types.Unrestricted())
	is.NoErr(err)

	// pol-02 expired past the 90 day lookback and no longer alerts
	is.Equal(1, len(candidates))
	is.Equal("pol-01", candidates[0].RelatedID)
}

func TestRegistrationExpiringWindow(t *testing.T) {
	is := is.New(t)
	r := emptyReader()
	r.ActiveVehiclesFunc = func(ctx context.Context, vc types.VisibilityContext) ([]types.Vehicle, error) {
		return []types.Vehicle{
			{ID: "veh-01", Name: "Work truck", Active: true, RegistrationExpiresOn: date(20)},
			{ID: "veh-02", Name: "Trailer", Active: true, RegistrationExpiresOn: date(45)},
		}, nil
	}

	e := &registrationExpiringEvaluator{reader: r, cfg: DefaultConfig(), now: nowFn}

	candidates, err := e.Evaluate(context.Background(), types.Unrestricted())
	is.NoErr(err)

	is.Equal(1, len(candidates))
	is.Equal("veh-01", candidates[0].RelatedID)
}

func TestAutoPayConfirmedIsInformational(t *testing.T) {
	is := is.New(t)
	r := emptyReader()
	r.AutoPayConfirmationsSinceFunc = func(ctx context.Context, vc types.VisibilityContext, since time.Time) ([]types.PaymentConfirmation, error) {
		is.Equal(testNow.AddDate(0, 0, -3), since)
		return []types.PaymentConfirmation{
			{ID: "link-01", BillID: "bill-01", Vendor: "City Utilities", Amount: f(88), LinkedAt: testNow.Add(-time.Hour)},
		}, nil
	}

	e := &autoPayConfirmedEvaluator{reader: r, cfg: DefaultConfig(), now: nowFn}

	candidates, err := e.Evaluate(context.Background(), types.Unrestricted())
	is.NoErr(err)

	is.Equal(1, len(candidates))
	is.Equal(types.SeverityInfo, candidates[0].Severity)
	is.Equal("/bills/bill-01", candidates[0].ActionURL)
}

func TestEvaluatorsPassVisibilityThrough(t *testing.T) {
	is := is.New(t)
	r := emptyReader()

	e := &billOverdueEvaluator{reader: r, now: nowFn}

	vc := types.VisibilityContext{PropertyIDs: []string{"prop-01"}}
	_, err := e.Evaluate(context.Background(), vc)
	is.NoErr(err)

	is.Equal(1, len(r.PendingBillsCalls()))
	is.Equal(vc, r.PendingBillsCalls()[0].Vc)
}

func TestFullCatalogueIsRegistered(t *testing.T) {
	is := is.New(t)

	evaluators := newEvaluators(emptyReader(), DefaultConfig(), nowFn)
	is.Equal(12, len(evaluators))

	seen := map[string]bool{}
	for _, e := range evaluators {
		seen[e.Name()] = true
	}
	is.Equal(12, len(seen))
}
