package alerts

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/propertyops/property-alerts/pkg/types"
)

func TestLeadDaysScalesWithAmount(t *testing.T) {
	is := is.New(t)
	tiers := DefaultConfig().LeadDayTiers

	is.Equal(30, leadDays(tiers, f(6000)))
	is.Equal(30, leadDays(tiers, f(5000)))
	is.Equal(14, leadDays(tiers, f(1500)))
	is.Equal(7, leadDays(tiers, f(500)))
	is.Equal(7, leadDays(tiers, nil))
}

func TestLeadDaysWindow(t *testing.T) {
	is := is.New(t)
	tiers := DefaultConfig().LeadDayTiers

	// a 6000 dollar bill due in ten days is inside its window, a 500
	// dollar bill due the same day is not
	is.True(10 <= leadDays(tiers, f(6000)))
	is.True(10 > leadDays(tiers, f(500)))
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	is := is.New(t)

	from := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	to := time.Date(2025, 3, 11, 0, 1, 0, 0, time.UTC)

	is.Equal(1, daysBetween(from, to))
	is.Equal(-1, daysBetween(to, from))
	is.Equal(0, daysBetween(from, from))
}

func TestDueSoonSeverity(t *testing.T) {
	is := is.New(t)

	is.Equal(types.SeverityCritical, dueSoonSeverity(0))
	is.Equal(types.SeverityCritical, dueSoonSeverity(3))
	is.Equal(types.SeverityWarning, dueSoonSeverity(4))
}

func TestCheckSeverity(t *testing.T) {
	is := is.New(t)

	is.Equal(types.SeverityWarning, checkSeverity(0))
	is.Equal(types.SeverityWarning, checkSeverity(7))
	is.Equal(types.SeverityCritical, checkSeverity(8))
}

func TestExpirySeverity(t *testing.T) {
	is := is.New(t)

	is.Equal(types.SeverityCritical, expirySeverity(7, 7))
	is.Equal(types.SeverityWarning, expirySeverity(8, 7))
}

func f(v float64) *float64 {
	return &v
}
