package alerts

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v2"
)

type LeadDayTier struct {
	MinAmount float64 `yaml:"minAmount"`
	Days      int     `yaml:"days"`
}

type Config struct {
	GraceDays     int `yaml:"graceDays"`
	RetentionDays int `yaml:"retentionDays"`

	TaxDueSoonDays               int `yaml:"taxDueSoonDays"`
	DaysToConfirm                int `yaml:"daysToConfirm"`
	InsuranceExpiringDays        int `yaml:"insuranceExpiringDays"`
	InsuranceExpiredLookbackDays int `yaml:"insuranceExpiredLookbackDays"`
	RegistrationExpiringDays     int `yaml:"registrationExpiringDays"`
	VendorEmailMaxAgeHours       int `yaml:"vendorEmailMaxAgeHours"`
	AutoPayLookbackDays          int `yaml:"autoPayLookbackDays"`

	// Larger obligations surface earlier. Tiers are matched top down
	// against the source amount, the first tier whose minAmount the
	// amount meets or exceeds wins.
	LeadDayTiers []LeadDayTier `yaml:"leadDayTiers"`
}

func DefaultConfig() *Config {
	return &Config{
		GraceDays:                    7,
		RetentionDays:                90,
		TaxDueSoonDays:               14,
		DaysToConfirm:                14,
		InsuranceExpiringDays:        60,
		InsuranceExpiredLookbackDays: 90,
		RegistrationExpiringDays:     30,
		VendorEmailMaxAgeHours:       24,
		AutoPayLookbackDays:          3,
		LeadDayTiers: []LeadDayTier{
			{MinAmount: 5000, Days: 30},
			{MinAmount: 1000, Days: 14},
			{MinAmount: 0, Days: 7},
		},
	}
}

// LoadConfiguration reads yaml overrides on top of the defaults.
func LoadConfiguration(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}

	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse configuration: %w", err)
	}

	if cfg.GraceDays < 1 {
		return nil, fmt.Errorf("graceDays must be at least 1")
	}
	if cfg.RetentionDays < cfg.GraceDays {
		return nil, fmt.Errorf("retentionDays must not be shorter than graceDays")
	}

	return cfg, nil
}
