package config

import (
	"fmt"
	"os"

	"github.com/hcgo/housing-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// BuyVsRentConfig bundles the three parameter sets of a buy-vs-rent
// analysis.
type BuyVsRentConfig struct {
	Buy         domain.BuyScenario  `yaml:"buy" json:"buy"`
	Rent        domain.RentScenario `yaml:"rent" json:"rent"`
	Assumptions domain.Assumptions  `yaml:"assumptions" json:"assumptions"`
}

// RentOutVsSellConfig bundles the parameter sets of a rent-out-vs-sell
// analysis.
type RentOutVsSellConfig struct {
	RentOut     domain.RentOutScenario          `yaml:"rent_out" json:"rent_out"`
	Sell        domain.SellScenario             `yaml:"sell" json:"sell"`
	Assumptions domain.RentOutVsSellAssumptions `yaml:"assumptions" json:"assumptions"`
}

// Configuration is the top-level input file. Either analysis section may be
// present; at least one must be.
type Configuration struct {
	BuyVsRent     *BuyVsRentConfig     `yaml:"buy_vs_rent,omitempty" json:"buy_vs_rent,omitempty"`
	RentOutVsSell *RentOutVsSellConfig `yaml:"rent_out_vs_sell,omitempty" json:"rent_out_vs_sell,omitempty"`
}

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates configuration bytes.
func (ip *InputParser) Parse(data []byte) (*Configuration, error) {
	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// ValidateConfiguration checks the structural shape of the configuration.
// Numeric plausibility is deliberately not checked here: parameters are
// trusted and nonsensical rates propagate through the simulation math. The
// affordability check lives in the engine constructor.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if config.BuyVsRent == nil && config.RentOutVsSell == nil {
		return fmt.Errorf("no analysis section provided: expected buy_vs_rent and/or rent_out_vs_sell")
	}

	if config.BuyVsRent != nil {
		if err := validateShared(config.BuyVsRent.Assumptions.TimeHorizonYears, config.BuyVsRent.Assumptions.FilingStatus); err != nil {
			return fmt.Errorf("buy_vs_rent: %w", err)
		}
		if config.BuyVsRent.Buy.AmortizationYears <= 0 {
			return fmt.Errorf("buy_vs_rent: amortization years must be positive")
		}
	}

	if config.RentOutVsSell != nil {
		if err := validateShared(config.RentOutVsSell.Assumptions.TimeHorizonYears, config.RentOutVsSell.Assumptions.FilingStatus); err != nil {
			return fmt.Errorf("rent_out_vs_sell: %w", err)
		}
	}

	return nil
}

func validateShared(horizonYears int, status domain.FilingStatus) error {
	if horizonYears <= 0 {
		return fmt.Errorf("time horizon years must be positive")
	}
	if !status.Valid() {
		return fmt.Errorf("filing status must be %q or %q, got %q",
			domain.FilingSingle, domain.FilingMarriedFilingJointly, status)
	}
	return nil
}

// CreateExampleConfiguration returns a complete example buy-vs-rent
// configuration: a $700k purchase at 20% down against a $2,500 rental, a
// 10-year horizon, and a starting net worth that exactly covers the down
// payment.
func (ip *InputParser) CreateExampleConfiguration() *Configuration {
	return &Configuration{
		BuyVsRent: &BuyVsRentConfig{
			Buy: domain.BuyScenario{
				PurchasePrice:               decimal.NewFromInt(700000),
				DownPaymentPct:              decimal.NewFromFloat(0.20),
				MortgageRate:                decimal.NewFromFloat(0.065),
				AmortizationYears:           30,
				PropertyTaxRate:             decimal.NewFromFloat(0.0092),
				MaintenanceCostPct:          decimal.NewFromFloat(0.01),
				HomeInsuranceMonthly:        decimal.NewFromInt(150),
				HOAMonthly:                  decimal.Zero,
				HomeAppreciationRate:        decimal.NewFromFloat(0.04),
				SellingCostPct:              decimal.NewFromFloat(0.07),
				PrimaryHomeExclusionDollars: decimal.NewFromInt(500000),
			},
			Rent: domain.RentScenario{
				MonthlyRent:             decimal.NewFromInt(2500),
				RentersInsuranceMonthly: decimal.NewFromInt(25),
				RentIncreaseRate:        decimal.NewFromFloat(0.03),
			},
			Assumptions: domain.Assumptions{
				Income:                   decimal.NewFromInt(350000),
				TimeHorizonYears:         10,
				InvestmentTaxEnabled:     true,
				FilingStatus:             domain.FilingMarriedFilingJointly,
				InflationRate:            decimal.NewFromFloat(0.025),
				InvestmentReturnRate:     decimal.NewFromFloat(0.09),
				IncomeGrowthRate:         decimal.NewFromFloat(0.05),
				StartingNetWorth:         decimal.NewFromInt(140000),
				AnnualNonHousingSpending: decimal.NewFromInt(73000),
			},
		},
		RentOutVsSell: &RentOutVsSellConfig{
			RentOut: domain.RentOutScenario{
				CurrentPropertyValue:     decimal.NewFromInt(800000),
				MonthlyRentalIncome:      decimal.NewFromInt(4000),
				RentalIncomeGrowthRate:   decimal.NewFromFloat(0.03),
				PropertyManagementFeePct: decimal.NewFromFloat(0.08),
				VacancyRate:              decimal.NewFromFloat(0.05),
				RentalPropertyTaxRate:    decimal.NewFromFloat(0.0085),
				RentalMaintenanceCostPct: decimal.NewFromFloat(0.01),
				RentalInsuranceMonthly:   decimal.NewFromInt(200),
				RentalAppreciationRate:   decimal.NewFromFloat(0.04),
			},
			Sell: domain.SellScenario{
				CurrentPropertyValue:  decimal.NewFromInt(800000),
				SellingCostPct:        decimal.NewFromFloat(0.06),
				CapitalGainsExclusion: decimal.NewFromInt(500000),
				OriginalPurchasePrice: decimal.NewFromInt(600000),
			},
			Assumptions: domain.RentOutVsSellAssumptions{
				Income:                     decimal.NewFromInt(350000),
				TimeHorizonYears:           10,
				InvestmentTaxEnabled:       true,
				FilingStatus:               domain.FilingMarriedFilingJointly,
				InflationRate:              decimal.NewFromFloat(0.025),
				InvestmentReturnRate:       decimal.NewFromFloat(0.09),
				IncomeGrowthRate:           decimal.NewFromFloat(0.05),
				StartingNetWorth:           decimal.NewFromInt(200000),
				AnnualNonHousingSpending:   decimal.NewFromInt(73000),
				NewMonthlyRent:             decimal.NewFromInt(3500),
				NewRentIncreaseRate:        decimal.NewFromFloat(0.03),
				NewRentersInsuranceMonthly: decimal.NewFromInt(25),
			},
		},
	}
}

// WriteExampleConfiguration marshals the example configuration to a file.
func (ip *InputParser) WriteExampleConfiguration(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
