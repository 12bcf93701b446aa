package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/propertyops/property-alerts/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	AlertID      string
	AlertTypes   []string
	EntityKey    string
	RelatedTable string
	RelatedID    string
	Severity     string

	OpenOnly         bool
	UnreadOnly       bool
	IncludeDismissed bool

	ExpiresBefore time.Time

	restricted  bool
	propertyIDs []string

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) SortBy() string {
	if c.sortBy == "" {
		return "created_at"
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "DESC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset != nil {
		return *c.offset
	}
	return 0
}

func (c Condition) Limit() int {
	if c.limit != nil {
		return *c.limit
	}
	return 0
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if len(c.AlertTypes) > 0 {
		args["alert_types"] = c.AlertTypes
	}
	if c.EntityKey != "" {
		args["entity_key"] = c.EntityKey
	}
	if c.RelatedTable != "" {
		args["related_table"] = c.RelatedTable
	}
	if c.RelatedID != "" {
		args["related_id"] = c.RelatedID
	}
	if c.Severity != "" {
		args["severity"] = c.Severity
	}
	if c.restricted {
		args["property_ids"] = c.propertyIDs
	}
	if !c.ExpiresBefore.IsZero() {
		args["expires_before"] = c.ExpiresBefore.UTC()
	}

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.AlertID != "" {
		where = append(where, "id = @alert_id")
	}
	if len(c.AlertTypes) > 0 {
		where = append(where, "alert_type = ANY(@alert_types)")
	}
	if c.EntityKey != "" {
		where = append(where, "entity_key = @entity_key")
	}
	if c.RelatedTable != "" {
		where = append(where, "related_table = @related_table")
	}
	if c.RelatedID != "" {
		where = append(where, "related_id = @related_id")
	}
	if c.Severity != "" {
		where = append(where, "severity = @severity")
	}
	if c.OpenOnly {
		where = append(where, "resolved_at IS NULL")
	}
	if c.UnreadOnly {
		where = append(where, "NOT is_read")
	}
	if !c.IncludeDismissed {
		where = append(where, "NOT is_dismissed")
	}
	if !c.ExpiresBefore.IsZero() {
		where = append(where, "expires_at IS NOT NULL AND expires_at < @expires_before")
	}

	// Alerts without a property affiliation are globally visible;
	// property scoped alerts require an explicit grant.
	if c.restricted {
		where = append(where, "(property_id IS NULL OR property_id = ANY(@property_ids))")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithAlertTypes(alertTypes ...string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertTypes = alertTypes
		return c
	}
}

func WithEntityKey(entityKey string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.EntityKey = entityKey
		return c
	}
}

func WithRelated(relatedTable, relatedID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.RelatedTable = relatedTable
		c.RelatedID = relatedID
		return c
	}
}

func WithSeverity(severity string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Severity = severity
		return c
	}
}

func WithOpenOnly() ConditionFunc {
	return func(c *Condition) *Condition {
		c.OpenOnly = true
		return c
	}
}

func WithUnreadOnly() ConditionFunc {
	return func(c *Condition) *Condition {
		c.UnreadOnly = true
		return c
	}
}

func WithDismissed() ConditionFunc {
	return func(c *Condition) *Condition {
		c.IncludeDismissed = true
		return c
	}
}

func WithExpiresBefore(ts time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ExpiresBefore = ts
		return c
	}
}

// WithVisibility restricts the result set to what the provided
// visibility context allows. An unrestricted context adds no clause.
func WithVisibility(vc types.VisibilityContext) ConditionFunc {
	return func(c *Condition) *Condition {
		if vc.Unrestricted {
			return c
		}
		c.restricted = true
		c.propertyIDs = vc.PropertyIDs
		if c.propertyIDs == nil {
			c.propertyIDs = []string{}
		}
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		switch strings.ToLower(sortBy) {
		case "created", "created_at":
			c.sortBy = "created_at"
		case "severity":
			// ranked so that the default descending order puts critical first
			c.sortBy = "CASE severity WHEN 'critical' THEN 2 WHEN 'warning' THEN 1 ELSE 0 END"
		case "expires", "expires_at":
			c.sortBy = "expires_at"
		case "type", "alert_type":
			c.sortBy = "alert_type"
		}
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

// ParseConditions maps URL query parameters onto condition functions.
// Parameter names are matched case insensitively.
func ParseConditions(ctx context.Context, params map[string][]string) []ConditionFunc {
	log := logging.GetFromContext(ctx)

	lowered := make(map[string][]string, len(params))
	for k, v := range params {
		lowered[strings.ToLower(k)] = v
	}

	conditions := make([]ConditionFunc, 0)

	for k, v := range lowered {
		switch k {
		case "type":
			fallthrough
		case "types":
			conditions = append(conditions, WithAlertTypes(v...))
		case "severity":
			conditions = append(conditions, WithSeverity(v[0]))
		case "entitykey":
			conditions = append(conditions, WithEntityKey(v[0]))
		case "open":
			if open, _ := strconv.ParseBool(v[0]); open {
				conditions = append(conditions, WithOpenOnly())
			}
		case "unread":
			if unread, _ := strconv.ParseBool(v[0]); unread {
				conditions = append(conditions, WithUnreadOnly())
			}
		case "dismissed":
			if dismissed, _ := strconv.ParseBool(v[0]); dismissed {
				conditions = append(conditions, WithDismissed())
			}
		case "relatedtable":
			if len(v[0]) > 0 && len(lowered["relatedid"]) > 0 {
				conditions = append(conditions, WithRelated(v[0], lowered["relatedid"][0]))
			}
		case "relatedid":
			// handled together with relatedtable
		case "limit":
			limit, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithLimit(limit))
		case "offset":
			offset, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithOffset(offset))
		case "sortby":
			conditions = append(conditions, WithSortBy(v[0]))
		case "sortorder":
			conditions = append(conditions, WithSortDesc(strings.EqualFold(v[0], "desc")))
		default:
			log.Debug("unknown query parameter", "param", k, "value", v[0])
		}
	}

	return conditions
}

func offsetLimitClause(c *Condition) string {
	clause := ""

	if c.offset != nil {
		clause += fmt.Sprintf("OFFSET %d ", c.Offset())
	}
	if c.limit != nil {
		clause += fmt.Sprintf("LIMIT %d ", c.Limit())
	}

	return clause
}
