package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/propertyops/property-alerts/pkg/types"
)

// Read only queries against the domain tables owned by the rest of the
// application. Every query intersects its candidate set with the
// provided visibility context: rows without a property affiliation are
// globally visible, property scoped rows require an explicit grant.

func visibilityClause(vc types.VisibilityContext, args pgx.NamedArgs, column string) string {
	if vc.Unrestricted {
		return "TRUE"
	}

	ids := vc.PropertyIDs
	if ids == nil {
		ids = []string{}
	}
	args["property_ids"] = ids

	return fmt.Sprintf("(%s IS NULL OR %s = ANY(@property_ids))", column, column)
}

func (s *Storage) PendingBills(ctx context.Context, vc types.VisibilityContext) ([]types.Bill, error) {
	args := pgx.NamedArgs{"status": types.StatusPending}

	query := fmt.Sprintf(`
		SELECT id, property_id, vendor, description, amount, due_date, status, auto_pay,
		       check_sent_at, check_cleared_at, days_to_confirm
		FROM bills
		WHERE status = @status AND %s
	`, visibilityClause(vc, args, "property_id"))

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}

	bills := make([]types.Bill, 0)

	var b types.Bill
	_, err = pgx.ForEachRow(rows, []any{
		&b.ID, &b.PropertyID, &b.Vendor, &b.Description, &b.Amount, &b.DueDate, &b.Status, &b.AutoPay,
		&b.CheckSentAt, &b.CheckClearedAt, &b.DaysToConfirm,
	}, func() error {
		bills = append(bills, b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bills, nil
}

// UnconfirmedChecks returns bills paid by check where the check has
// been sent but not yet cleared.
func (s *Storage) UnconfirmedChecks(ctx context.Context, vc types.VisibilityContext) ([]types.Bill, error) {
	args := pgx.NamedArgs{"cancelled": types.StatusCancelled}

	query := fmt.Sprintf(`
		SELECT id, property_id, vendor, description, amount, due_date, status, auto_pay,
		       check_sent_at, check_cleared_at, days_to_confirm
		FROM bills
		WHERE check_sent_at IS NOT NULL AND check_cleared_at IS NULL AND status <> @cancelled AND %s
	`, visibilityClause(vc, args, "property_id"))

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}

	bills := make([]types.Bill, 0)

	var b types.Bill
	_, err = pgx.ForEachRow(rows, []any{
		&b.ID, &b.PropertyID, &b.Vendor, &b.Description, &b.Amount, &b.DueDate, &b.Status, &b.AutoPay,
		&b.CheckSentAt, &b.CheckClearedAt, &b.DaysToConfirm,
	}, func() error {
		bills = append(bills, b)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bills, nil
}

func (s *Storage) GetBill(ctx context.Context, billID string) (types.Bill, error) {
	var b types.Bill

	err := s.pool.QueryRow(ctx, `
		SELECT id, property_id, vendor, description, amount, due_date, status, auto_pay,
		       check_sent_at, check_cleared_at, days_to_confirm
		FROM bills
		WHERE id = @id
	`, pgx.NamedArgs{"id": billID}).Scan(
		&b.ID, &b.PropertyID, &b.Vendor, &b.Description, &b.Amount, &b.DueDate, &b.Status, &b.AutoPay,
		&b.CheckSentAt, &b.CheckClearedAt, &b.DaysToConfirm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Bill{}, ErrNoRows
		}
		return types.Bill{}, err
	}

	return b, nil
}

func (s *Storage) PendingTaxes(ctx context.Context, vc types.VisibilityContext) ([]types.PropertyTax, error) {
	args := pgx.NamedArgs{"status": types.StatusPending}

	query := fmt.Sprintf(`
		SELECT id, property_id, authority, amount, due_date, status
		FROM property_taxes
		WHERE status = @status AND %s
	`, visibilityClause(vc, args, "property_id"))

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}

	taxes := make([]types.PropertyTax, 0)

	var t types.PropertyTax
	_, err = pgx.ForEachRow(rows, []any{&t.ID, &t.PropertyID, &t.Authority, &t.Amount, &t.DueDate, &t.Status}, func() error {
		taxes = append(taxes, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return taxes, nil
}

func (s *Storage) GetTax(ctx context.Context, taxID string) (types.PropertyTax, error) {
	var t types.PropertyTax

	err := s.pool.QueryRow(ctx, `
		SELECT id, property_id, authority, amount, due_date, status
		FROM property_taxes
		WHERE id = @id
	`, pgx.NamedArgs{"id": taxID}).Scan(&t.ID, &t.PropertyID, &t.Authority, &t.Amount, &t.DueDate, &t.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.PropertyTax{}, ErrNoRows
		}
		return types.PropertyTax{}, err
	}

	return t, nil
}

// ActivePolicies returns insurance policies that have not been
// cancelled, including recently expired ones.
func (s *Storage) ActivePolicies(ctx context.Context, vc types.VisibilityContext) ([]types.InsurancePolicy, error) {
	args := pgx.NamedArgs{}

	query := fmt.Sprintf(`
		SELECT id, property_id, provider, policy_number, expires_on, cancelled
		FROM insurance_policies
		WHERE NOT cancelled AND %s
	`, visibilityClause(vc, args, "property_id"))

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}

	policies := make([]types.InsurancePolicy, 0)

	var p types.InsurancePolicy
	_, err = pgx.ForEachRow(rows, []any{&p.ID, &p.PropertyID, &p.Provider, &p.PolicyNumber, &p.ExpiresOn, &p.Cancelled}, func() error {
		policies = append(policies, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return policies, nil
}

func (s *Storage) GetPolicy(ctx context.Context, policyID string) (types.InsurancePolicy, error) {
	var p types.InsurancePolicy

	err := s.pool.QueryRow(ctx, `
		SELECT id, property_id, provider, policy_number, expires_on, cancelled
		FROM insurance_policies
		WHERE id = @id
	`, pgx.NamedArgs{"id": policyID}).Scan(&p.ID, &p.PropertyID, &p.Provider, &p.PolicyNumber, &p.ExpiresOn, &p.Cancelled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.InsurancePolicy{}, ErrNoRows
		}
		return types.InsurancePolicy{}, err
	}

	return p, nil
}

func (s *Storage) ActiveVehicles(ctx context.Context, vc types.VisibilityContext) ([]types.Vehicle, error) {
	args := pgx.NamedArgs{}

	query := fmt.Sprintf(`
		SELECT id, property_id, name, active, registration_expires_on, inspection_due_on, last_inspection_passed_on
		FROM vehicles
		WHERE active AND %s
	`, visibilityClause(vc, args, "property_id"))

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}

	vehicles := make([]types.Vehicle, 0)

	var v types.Vehicle
	_, err = pgx.ForEachRow(rows, []any{&v.ID, &v.PropertyID, &v.Name, &v.Active, &v.RegistrationExpiresOn, &v.InspectionDueOn, &v.LastInspectionPassedOn}, func() error {
		vehicles = append(vehicles, v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return vehicles, nil
}

func (s *Storage) GetVehicle(ctx context.Context, vehicleID string) (types.Vehicle, error) {
	var v types.Vehicle

	err := s.pool.QueryRow(ctx, `
		SELECT id, property_id, name, active, registration_expires_on, inspection_due_on, last_inspection_passed_on
		FROM vehicles
		WHERE id = @id
	`, pgx.NamedArgs{"id": vehicleID}).Scan(&v.ID, &v.PropertyID, &v.Name, &v.Active, &v.RegistrationExpiresOn, &v.InspectionDueOn, &v.LastInspectionPassedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Vehicle{}, ErrNoRows
		}
		return types.Vehicle{}, err
	}

	return v, nil
}

func (s *Storage) ImportantMessagesSince(ctx context.Context, vc types.VisibilityContext, since time.Time) ([]types.VendorMessage, error) {
	args := pgx.NamedArgs{"since": since.UTC()}

	query := fmt.Sprintf(`
		SELECT id, property_id, sender, subject, important, received_at
		FROM vendor_communications
		WHERE important AND received_at >= @since AND %s
	`, visibilityClause(vc, args, "property_id"))

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}

	messages := make([]types.VendorMessage, 0)

	var m types.VendorMessage
	_, err = pgx.ForEachRow(rows, []any{&m.ID, &m.PropertyID, &m.Sender, &m.Subject, &m.Important, &m.ReceivedAt}, func() error {
		messages = append(messages, m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return messages, nil
}

func (s *Storage) GetMessage(ctx context.Context, messageID string) (types.VendorMessage, error) {
	var m types.VendorMessage

	err := s.pool.QueryRow(ctx, `
		SELECT id, property_id, sender, subject, important, received_at
		FROM vendor_communications
		WHERE id = @id
	`, pgx.NamedArgs{"id": messageID}).Scan(&m.ID, &m.PropertyID, &m.Sender, &m.Subject, &m.Important, &m.ReceivedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.VendorMessage{}, ErrNoRows
		}
		return types.VendorMessage{}, err
	}

	return m, nil
}

// AutoPayConfirmationsSince returns payment confirmation e-mails linked
// to confirmed auto-pay bills after the given point in time.
func (s *Storage) AutoPayConfirmationsSince(ctx context.Context, vc types.VisibilityContext, since time.Time) ([]types.PaymentConfirmation, error) {
	args := pgx.NamedArgs{"since": since.UTC(), "confirmed": types.StatusConfirmed}

	query := fmt.Sprintf(`
		SELECT l.id, l.bill_id, b.property_id, b.vendor, b.amount, l.linked_at, b.status, b.auto_pay
		FROM payment_email_links l
		JOIN bills b ON b.id = l.bill_id
		WHERE b.auto_pay AND b.status = @confirmed AND l.linked_at >= @since AND %s
	`, visibilityClause(vc, args, "b.property_id"))

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}

	confirmations := make([]types.PaymentConfirmation, 0)

	var c types.PaymentConfirmation
	_, err = pgx.ForEachRow(rows, []any{&c.ID, &c.BillID, &c.PropertyID, &c.Vendor, &c.Amount, &c.LinkedAt, &c.BillStatus, &c.AutoPay}, func() error {
		confirmations = append(confirmations, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return confirmations, nil
}

func (s *Storage) GetAutoPayConfirmation(ctx context.Context, linkID string) (types.PaymentConfirmation, error) {
	var c types.PaymentConfirmation

	err := s.pool.QueryRow(ctx, `
		SELECT l.id, l.bill_id, b.property_id, b.vendor, b.amount, l.linked_at, b.status, b.auto_pay
		FROM payment_email_links l
		JOIN bills b ON b.id = l.bill_id
		WHERE l.id = @id
	`, pgx.NamedArgs{"id": linkID}).Scan(&c.ID, &c.BillID, &c.PropertyID, &c.Vendor, &c.Amount, &c.LinkedAt, &c.BillStatus, &c.AutoPay)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.PaymentConfirmation{}, ErrNoRows
		}
		return types.PaymentConfirmation{}, err
	}

	return c, nil
}
