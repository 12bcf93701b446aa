package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/matryer/is"

	"github.com/propertyops/property-alerts/pkg/types"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := Config{
		host:     "localhost",
		user:     "postgres",
		password: "password",
		port:     "5432",
		dbname:   "postgres",
		sslmode:  "disable",
	}

	s, err := New(ctx, config)
	if err != nil {
		t.SkipNow()
	}

	err = s.Initialize(ctx)
	if err != nil {
		t.SkipNow()
	}

	err = createDomainFixtures(ctx, s)
	if err != nil {
		t.SkipNow()
	}

	return ctx, s
}

// the domain tables are owned by the rest of the application, the test
// creates just enough of them to exercise the read queries
func createDomainFixtures(ctx context.Context, s *Storage) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS bills (
			id TEXT PRIMARY KEY,
			property_id TEXT NULL,
			vendor TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			amount NUMERIC NULL,
			due_date timestamp with time zone NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			auto_pay BOOLEAN NOT NULL DEFAULT FALSE,
			check_sent_at timestamp with time zone NULL,
			check_cleared_at timestamp with time zone NULL,
			days_to_confirm INT NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS property_taxes (
			id TEXT PRIMARY KEY,
			property_id TEXT NULL,
			authority TEXT NOT NULL DEFAULT '',
			amount NUMERIC NULL,
			due_date timestamp with time zone NULL,
			status TEXT NOT NULL DEFAULT 'pending'
		);
		CREATE TABLE IF NOT EXISTS payment_email_links (
			id TEXT PRIMARY KEY,
			bill_id TEXT NOT NULL,
			linked_at timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}

func newAlert(alertType, relatedID string) types.Alert {
	return types.Alert{
		ID:           uuid.NewString(),
		AlertType:    alertType,
		Title:        "title",
		Message:      "message",
		Severity:     types.SeverityWarning,
		RelatedTable: "bills",
		RelatedID:    relatedID,
		EntityKey:    alertType + ":" + relatedID,
	}
}

func TestUpsertAlertIsIdempotent(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	a := newAlert("bill_overdue", uuid.NewString())

	id, inserted, err := s.UpsertAlert(ctx, a)
	is.NoErr(err)
	is.True(inserted)
	is.Equal(a.ID, id)

	// second pass refreshes the same row instead of creating another
	refreshed := a
	refreshed.ID = uuid.NewString()
	refreshed.Severity = types.SeverityCritical

	id2, inserted2, err := s.UpsertAlert(ctx, refreshed)
	is.NoErr(err)
	is.True(!inserted2)
	is.Equal(id, id2)

	stored, err := s.GetAlert(ctx, WithAlertID(id))
	is.NoErr(err)
	is.Equal(types.SeverityCritical, stored.Severity)
}

func TestResolvedAlertAllowsReoccurrence(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	a := newAlert("bill_overdue", uuid.NewString())

	id, _, err := s.UpsertAlert(ctx, a)
	is.NoErr(err)

	err = s.ResolveAlert(ctx, id, time.Now().UTC().Add(7*24*time.Hour))
	is.NoErr(err)

	// the condition holds again, a fresh row is created
	again := a
	again.ID = uuid.NewString()

	id2, inserted, err := s.UpsertAlert(ctx, again)
	is.NoErr(err)
	is.True(inserted)
	is.True(id != id2)
}

func TestResolveAlertOnlyTouchesOpenRows(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	a := newAlert("bill_due_soon", uuid.NewString())

	id, _, err := s.UpsertAlert(ctx, a)
	is.NoErr(err)

	err = s.ResolveAlert(ctx, id, time.Now().UTC())
	is.NoErr(err)

	err = s.ResolveAlert(ctx, id, time.Now().UTC())
	is.Equal(ErrNotOpen, err)
}

func TestResolveOpenAlertsByEntity(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	relatedID := uuid.NewString()

	_, _, err := s.UpsertAlert(ctx, newAlert("bill_overdue", relatedID))
	is.NoErr(err)
	_, _, err = s.UpsertAlert(ctx, newAlert("bill_due_soon", relatedID))
	is.NoErr(err)

	resolved, err := s.ResolveOpenAlerts(ctx, "bills", relatedID, []string{"bill_overdue"}, time.Now().UTC())
	is.NoErr(err)
	is.Equal(1, len(resolved))

	resolved, err = s.ResolveOpenAlerts(ctx, "bills", relatedID, nil, time.Now().UTC())
	is.NoErr(err)
	is.Equal(1, len(resolved))
}

func TestQueryAlertsHidesDismissed(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	relatedID := uuid.NewString()

	id, _, err := s.UpsertAlert(ctx, newAlert("bill_overdue", relatedID))
	is.NoErr(err)

	err = s.DismissAlert(ctx, id)
	is.NoErr(err)

	collection, err := s.QueryAlerts(ctx, WithRelated("bills", relatedID))
	is.NoErr(err)
	is.Equal(uint64(0), collection.TotalCount)

	// but it remains fetchable by id
	stored, err := s.GetAlert(ctx, WithAlertID(id))
	is.NoErr(err)
	is.True(stored.IsDismissed)
}

func TestVisibilityScoping(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	propertyID := uuid.NewString()

	scoped := newAlert("tax_overdue", uuid.NewString())
	scoped.PropertyID = &propertyID

	global := newAlert("tax_overdue", uuid.NewString())

	_, _, err := s.UpsertAlert(ctx, scoped)
	is.NoErr(err)
	_, _, err = s.UpsertAlert(ctx, global)
	is.NoErr(err)

	// a grant on the property sees both rows
	granted, err := s.QueryAlerts(ctx,
		WithAlertTypes("tax_overdue"),
		WithVisibility(types.VisibilityContext{PropertyIDs: []string{propertyID}}),
	)
	is.NoErr(err)
	is.True(containsAlert(granted.Data, scoped.ID))
	is.True(containsAlert(granted.Data, global.ID))

	// the zero value sees only globally visible rows
	closed, err := s.QueryAlerts(ctx,
		WithAlertTypes("tax_overdue"),
		WithVisibility(types.VisibilityContext{}),
	)
	is.NoErr(err)
	is.True(!containsAlert(closed.Data, scoped.ID))
}

func TestCleanupLifecycle(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	now := time.Now().UTC()

	a := newAlert("bill_overdue", uuid.NewString())
	id, _, err := s.UpsertAlert(ctx, a)
	is.NoErr(err)

	err = s.ResolveAlert(ctx, id, now.Add(-time.Hour))
	is.NoErr(err)

	dismissed, err := s.DismissExpiredAlerts(ctx, now)
	is.NoErr(err)
	is.True(dismissed >= 1)

	stored, err := s.GetAlert(ctx, WithAlertID(id))
	is.NoErr(err)
	is.True(stored.IsDismissed)

	// rows created within the retention period survive the delete
	_, err = s.DeleteDismissedAlertsBefore(ctx, now.AddDate(0, 0, -90))
	is.NoErr(err)

	_, err = s.GetAlert(ctx, WithAlertID(id))
	is.NoErr(err)
}

func TestCleanupDeletesOldDismissedRows(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	now := time.Now().UTC()

	id, _, err := s.UpsertAlert(ctx, newAlert("bill_overdue", uuid.NewString()))
	is.NoErr(err)

	err = s.DismissAlert(ctx, id)
	is.NoErr(err)

	// age the row past the retention period
	_, err = s.pool.Exec(ctx, `
		UPDATE alerts SET created_at = CURRENT_TIMESTAMP - interval '91 days' WHERE id = @id
	`, pgx.NamedArgs{"id": id})
	is.NoErr(err)

	deleted, err := s.DeleteDismissedAlertsBefore(ctx, now.AddDate(0, 0, -90))
	is.NoErr(err)
	is.True(deleted >= 1)

	_, err = s.GetAlert(ctx, WithAlertID(id))
	is.Equal(ErrNoRows, err)
}

func TestDismissAlertIsIdempotent(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	id, _, err := s.UpsertAlert(ctx, newAlert("bill_overdue", uuid.NewString()))
	is.NoErr(err)

	err = s.DismissAlert(ctx, id)
	is.NoErr(err)

	err = s.DismissAlert(ctx, id)
	is.NoErr(err)

	err = s.DismissAlert(ctx, "no-such-id")
	is.Equal(ErrNoRows, err)
}

func TestSetAlertRead(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	id, _, err := s.UpsertAlert(ctx, newAlert("bill_due_soon", uuid.NewString()))
	is.NoErr(err)

	err = s.SetAlertRead(ctx, id, true)
	is.NoErr(err)

	stored, err := s.GetAlert(ctx, WithAlertID(id))
	is.NoErr(err)
	is.True(stored.IsRead)

	err = s.SetAlertRead(ctx, "no-such-id", true)
	is.Equal(ErrNoRows, err)
}

func TestPendingBillsRoundtrip(t *testing.T) {
	ctx, s := testSetup(t)
	is := is.New(t)

	billID := uuid.NewString()
	due := time.Now().UTC().AddDate(0, 0, 5)

	_, err := s.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO bills (id, vendor, amount, due_date, status) VALUES ('%s', 'Acme', 123.45, '%s', 'pending')
	`, billID, due.Format(time.RFC3339)))
	is.NoErr(err)

	bills, err := s.PendingBills(ctx, types.Unrestricted())
	is.NoErr(err)
	is.True(len(bills) >= 1)

	bill, err := s.GetBill(ctx, billID)
	is.NoErr(err)
	is.Equal("Acme", bill.Vendor)
	is.Equal(123.45, *bill.Amount)

	_, err = s.GetBill(ctx, "no-such-bill")
	is.Equal(ErrNoRows, err)
}

func containsAlert(alerts []types.Alert, id string) bool {
	for _, a := range alerts {
		if a.ID == id {
			return true
		}
	}
	return false
}
