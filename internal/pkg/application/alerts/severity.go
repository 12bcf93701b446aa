package alerts

import (
	"fmt"
	"time"

	"github.com/propertyops/property-alerts/pkg/types"
)

// leadDays is the smart threshold: the number of days before its due
// date that an obligation becomes alert worthy, scaled by amount. A
// missing amount falls through to the smallest tier.
func leadDays(tiers []LeadDayTier, amount *float64) int {
	a := 0.0
	if amount != nil {
		a = *amount
	}

	for _, tier := range tiers {
		if a >= tier.MinAmount {
			return tier.Days
		}
	}

	if len(tiers) > 0 {
		return tiers[len(tiers)-1].Days
	}

	return 7
}

// daysBetween counts whole calendar days from one date to another,
// ignoring the time of day. Negative when to lies in the past.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

func daysUntil(now, due time.Time) int {
	return daysBetween(now, due)
}

func dueSoonSeverity(daysLeft int) types.Severity {
	if daysLeft <= 3 {
		return types.SeverityCritical
	}
	return types.SeverityWarning
}

func expirySeverity(daysLeft, criticalWithin int) types.Severity {
	if daysLeft <= criticalWithin {
		return types.SeverityCritical
	}
	return types.SeverityWarning
}

func checkSeverity(daysPastWindow int) types.Severity {
	if daysPastWindow > 7 {
		return types.SeverityCritical
	}
	return types.SeverityWarning
}

func formatAmount(amount *float64) string {
	if amount == nil {
		return ""
	}
	return fmt.Sprintf(" of $%.2f", *amount)
}

func formatDate(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Format("2006-01-02")
}
