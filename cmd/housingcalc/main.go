package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hcgo/housing-calculator/internal/calculation"
	"github.com/hcgo/housing-calculator/internal/config"
	"github.com/hcgo/housing-calculator/internal/domain"
	"github.com/hcgo/housing-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	configFile string
	format     string
	outputDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "housingcalc",
		Short: "Month-by-month net worth projections for housing decisions",
		Long: `housingcalc compares net worth trajectories under competing real
estate strategies: buying vs renting a primary residence, and keeping an
owned property as a rental vs selling it.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "housing.yaml", "path to the YAML configuration file")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "console", "output format (console, json)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", ".", "directory for CSV exports")

	rootCmd.AddCommand(analyzeCmd(), rentOutCmd(), sensitivityCmd(), exampleCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func analyzeCmd() *cobra.Command {
	var writeCSV bool
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the buy-vs-rent analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			if cfg.BuyVsRent == nil {
				return fmt.Errorf("%s has no buy_vs_rent section", configFile)
			}

			engine, err := calculation.NewBuyVsRentEngine(&cfg.BuyVsRent.Buy, &cfg.BuyVsRent.Rent, &cfg.BuyVsRent.Assumptions)
			if err != nil {
				return err
			}
			result, err := engine.RunAnalysis()
			if err != nil {
				return err
			}

			if writeCSV {
				if err := exportMonthlyCSVs(result); err != nil {
					return err
				}
			}
			return output.GenerateReport(result, format)
		},
	}
	cmd.Flags().BoolVar(&writeCSV, "csv", false, "also write homeowner/renter monthly CSV files")
	return cmd
}

func exportMonthlyCSVs(result *domain.AnalysisResult) error {
	homeowner, err := output.CSVForStrategy(result.StrategyA)
	if err != nil {
		return err
	}
	renter, err := output.CSVForStrategy(result.StrategyB)
	if err != nil {
		return err
	}
	homeownerPath := filepath.Join(outputDir, "homeowner_monthly_analysis.csv")
	renterPath := filepath.Join(outputDir, "renter_monthly_analysis.csv")
	if err := os.WriteFile(homeownerPath, homeowner, 0644); err != nil {
		return err
	}
	if err := os.WriteFile(renterPath, renter, 0644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s and %s\n", homeownerPath, renterPath)
	return nil
}

func rentOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rentout",
		Short: "Run the rent-out-vs-sell analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			if cfg.RentOutVsSell == nil {
				return fmt.Errorf("%s has no rent_out_vs_sell section", configFile)
			}

			engine, err := calculation.NewRentOutVsSellEngine(&cfg.RentOutVsSell.RentOut, &cfg.RentOutVsSell.Sell, &cfg.RentOutVsSell.Assumptions)
			if err != nil {
				return err
			}
			result, err := engine.RunAnalysis()
			if err != nil {
				return err
			}
			return output.GenerateReport(result, format)
		},
	}
}

func sensitivityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sensitivity",
		Short: "Sweep the investment return rate and find its breakeven",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configFile)
			if err != nil {
				return err
			}
			if cfg.BuyVsRent == nil {
				return fmt.Errorf("%s has no buy_vs_rent section", configFile)
			}

			analyzer := calculation.NewSensitivityAnalyzer(&cfg.BuyVsRent.Buy, &cfg.BuyVsRent.Rent, &cfg.BuyVsRent.Assumptions)
			rates := []decimal.Decimal{
				decimal.NewFromFloat(0.04), decimal.NewFromFloat(0.06),
				decimal.NewFromFloat(0.07), decimal.NewFromFloat(0.08),
				decimal.NewFromFloat(0.09), decimal.NewFromFloat(0.10),
				decimal.NewFromFloat(0.12),
			}
			sweep, err := analyzer.Sweep("investment_return_rate", rates,
				func(_ *domain.BuyScenario, _ *domain.RentScenario, a *domain.Assumptions, v decimal.Decimal) {
					a.InvestmentReturnRate = v
				})
			if err != nil {
				return err
			}

			fmt.Printf("Sensitivity: %s (base gap %s)\n", sweep.Parameter, output.FormatCurrency(sweep.BaseGap))
			for _, p := range sweep.Points {
				fmt.Printf("  %-8s gap=%-14s winner=%s\n",
					output.FormatPercent(p.Value), output.FormatCurrency(p.NetWorthGap), p.Winner)
			}
			if sweep.Skipped > 0 {
				fmt.Printf("  (%d value(s) skipped)\n", sweep.Skipped)
			}

			rate, err := analyzer.BreakevenReturnRate()
			if err != nil {
				fmt.Printf("Breakeven return rate: %v\n", err)
				return nil
			}
			fmt.Printf("Breakeven return rate: %s\n", output.FormatPercent(rate))
			return nil
		},
	}
}

func exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Write an example configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.NewInputParser().WriteExampleConfiguration(configFile); err != nil {
				return err
			}
			fmt.Printf("Wrote example configuration to %s\n", configFile)
			return nil
		},
	}
}
