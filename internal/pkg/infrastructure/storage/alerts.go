package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/propertyops/property-alerts/pkg/types"
)

func (s *Storage) QueryAlerts(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Alert], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := fmt.Sprintf(`
		SELECT id, alert_type, title, message, severity, related_table, related_id, entity_key,
		       property_id, source_amount, action_url, action_label,
		       created_at, resolved_at, expires_at, is_dismissed, is_read,
		       count(*) OVER () AS count
		FROM alerts
		WHERE %s
		ORDER BY %s %s
		%s
	`, where, condition.SortBy(), condition.SortOrder(), offsetLimitClause(condition))

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	var count int64
	alerts := make([]types.Alert, 0)

	var a types.Alert
	_, err = pgx.ForEachRow(rows, []any{
		&a.ID, &a.AlertType, &a.Title, &a.Message, &a.Severity, &a.RelatedTable, &a.RelatedID, &a.EntityKey,
		&a.PropertyID, &a.SourceAmount, &a.ActionURL, &a.ActionLabel,
		&a.CreatedAt, &a.ResolvedAt, &a.ExpiresAt, &a.IsDismissed, &a.IsRead,
		&count,
	}, func() error {
		alerts = append(alerts, a)
		return nil
	})
	if err != nil {
		return types.Collection[types.Alert]{}, err
	}

	return types.Collection[types.Alert]{
		Data:       alerts,
		Count:      uint64(len(alerts)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) GetAlert(ctx context.Context, conditions ...ConditionFunc) (types.Alert, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	condition.IncludeDismissed = true

	args := condition.NamedArgs()
	where := condition.Where()

	query := fmt.Sprintf(`
		SELECT id, alert_type, title, message, severity, related_table, related_id, entity_key,
		       property_id, source_amount, action_url, action_label,
		       created_at, resolved_at, expires_at, is_dismissed, is_read
		FROM alerts
		WHERE %s
		ORDER BY created_at DESC
		LIMIT 1
	`, where)

	var a types.Alert

	err := s.pool.QueryRow(ctx, query, args).Scan(
		&a.ID, &a.AlertType, &a.Title, &a.Message, &a.Severity, &a.RelatedTable, &a.RelatedID, &a.EntityKey,
		&a.PropertyID, &a.SourceAmount, &a.ActionURL, &a.ActionLabel,
		&a.CreatedAt, &a.ResolvedAt, &a.ExpiresAt, &a.IsDismissed, &a.IsRead,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Alert{}, ErrNoRows
		}
		return types.Alert{}, err
	}

	return a, nil
}

// UpsertAlert inserts the alert, or refreshes the mutable fields of the
// single open row sharing its entity key. The partial unique index over
// open rows is the concurrency primitive here; two overlapping passes
// converge on the same row. Returns the row id and whether a new row
// was inserted.
func (s *Storage) UpsertAlert(ctx context.Context, alert types.Alert) (string, bool, error) {
	if alert.ID == "" {
		return "", false, ErrNoID
	}
	if alert.EntityKey == "" {
		return "", false, ErrNoID
	}

	args := pgx.NamedArgs{
		"id":            alert.ID,
		"alert_type":    alert.AlertType,
		"title":         alert.Title,
		"message":       alert.Message,
		"severity":      alert.Severity,
		"related_table": alert.RelatedTable,
		"related_id":    alert.RelatedID,
		"entity_key":    alert.EntityKey,
		"property_id":   alert.PropertyID,
		"source_amount": alert.SourceAmount,
		"action_url":    alert.ActionURL,
		"action_label":  alert.ActionLabel,
	}

	var id string
	var inserted bool

	// xmax = 0 only holds for freshly inserted tuples
	err := s.pool.QueryRow(ctx, `
		INSERT INTO alerts (id, alert_type, title, message, severity, related_table, related_id, entity_key, property_id, source_amount, action_url, action_label)
		VALUES (@id, @alert_type, @title, @message, @severity, @related_table, @related_id, @entity_key, @property_id, @source_amount, @action_url, @action_label)
		ON CONFLICT (entity_key) WHERE resolved_at IS NULL AND NOT is_dismissed
		DO UPDATE SET
			title = EXCLUDED.title,
			message = EXCLUDED.message,
			severity = EXCLUDED.severity,
			source_amount = EXCLUDED.source_amount,
			action_url = EXCLUDED.action_url,
			action_label = EXCLUDED.action_label
		RETURNING id, (xmax = 0) AS inserted
	`, args).Scan(&id, &inserted)
	if err != nil {
		return "", false, err
	}

	return id, inserted, nil
}

// ResolveAlert closes a single open alert, leaving it visible until the
// grace window given by expiresAt has elapsed.
func (s *Storage) ResolveAlert(ctx context.Context, alertID string, expiresAt time.Time) error {
	args := pgx.NamedArgs{
		"alert_id":   alertID,
		"expires_at": expiresAt.UTC(),
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE alerts
		SET resolved_at = CURRENT_TIMESTAMP, expires_at = @expires_at
		WHERE id = @alert_id AND resolved_at IS NULL AND NOT is_dismissed
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotOpen
	}

	return nil
}

// ResolveOpenAlerts closes every open alert pointing at the given
// domain row, optionally narrowed to a set of alert types. Returns the
// ids of the rows that were resolved.
func (s *Storage) ResolveOpenAlerts(ctx context.Context, relatedTable, relatedID string, alertTypes []string, expiresAt time.Time) ([]string, error) {
	args := pgx.NamedArgs{
		"related_table": relatedTable,
		"related_id":    relatedID,
		"expires_at":    expiresAt.UTC(),
	}

	query := `
		UPDATE alerts
		SET resolved_at = CURRENT_TIMESTAMP, expires_at = @expires_at
		WHERE related_table = @related_table AND related_id = @related_id
		  AND resolved_at IS NULL AND NOT is_dismissed
	`

	if len(alertTypes) > 0 {
		args["alert_types"] = alertTypes
		query += " AND alert_type = ANY(@alert_types)"
	}

	query += " RETURNING id"

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}

	var id string
	resolved := make([]string, 0)

	_, err = pgx.ForEachRow(rows, []any{&id}, func() error {
		resolved = append(resolved, id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resolved, nil
}

// DismissAlert dismisses the alert. Dismissing an already dismissed
// alert is a no-op.
func (s *Storage) DismissAlert(ctx context.Context, alertID string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE alerts SET is_dismissed = TRUE WHERE id = @alert_id
	`, pgx.NamedArgs{"alert_id": alertID})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// DismissAlerts dismisses every non dismissed alert the visibility
// context allows and returns how many rows were touched.
func (s *Storage) DismissAlerts(ctx context.Context, vc types.VisibilityContext) (int64, error) {
	condition := &Condition{}
	WithVisibility(vc)(condition)

	tag, err := s.pool.Exec(ctx, fmt.Sprintf(`
		UPDATE alerts SET is_dismissed = TRUE WHERE NOT is_dismissed AND %s
	`, condition.Where()), condition.NamedArgs())
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (s *Storage) SetAlertRead(ctx context.Context, alertID string, read bool) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE alerts SET is_read = @is_read WHERE id = @alert_id
	`, pgx.NamedArgs{"alert_id": alertID, "is_read": read})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) MarkAllAlertsRead(ctx context.Context, vc types.VisibilityContext) (int64, error) {
	condition := &Condition{}
	WithVisibility(vc)(condition)

	tag, err := s.pool.Exec(ctx, fmt.Sprintf(`
		UPDATE alerts SET is_read = TRUE WHERE NOT is_read AND NOT is_dismissed AND %s
	`, condition.Where()), condition.NamedArgs())
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// DismissExpiredAlerts dismisses resolved alerts whose grace window has
// elapsed.
func (s *Storage) DismissExpiredAlerts(ctx context.Context, now time.Time) (int64, error) {
	condition := &Condition{}
	WithExpiresBefore(now)(condition)

	tag, err := s.pool.Exec(ctx, fmt.Sprintf(`
		UPDATE alerts SET is_dismissed = TRUE WHERE %s
	`, condition.Where()), condition.NamedArgs())
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// DeleteDismissedAlertsBefore hard deletes dismissed alerts created
// before the retention cutoff.
func (s *Storage) DeleteDismissedAlertsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM alerts WHERE is_dismissed AND created_at < @cutoff
	`, pgx.NamedArgs{"cutoff": cutoff.UTC()})
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
