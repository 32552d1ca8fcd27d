// Package cli implementa o salesctl, que gera o relatório do painel no terminal
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/csvfile"
	"github.com/vfg2006/sales-dashboard-api/internal/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

const defaultDatasetPath = "cleaned_bmw_car_sales_classification.csv"

type rootOptions struct {
	datasetPath string
	verbose     bool
}

func Run() ExitCode {
	if err := NewRootCmd().Execute(); err != nil {
		return exitCodeError
	}
	return exitCodeSuccess
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "salesctl",
		Short:         "Painel de vendas de veículos no terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogger(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.datasetPath, "dataset", "d", defaultDatasetPath, "Caminho do CSV de vendas")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Habilita logs de debug")

	rootCmd.AddCommand(
		newReportCmd(opts),
		newFiltersCmd(opts),
	)

	return rootCmd
}

func configureLogger(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.WarnLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func newReporter(ctx context.Context, opts *rootOptions) (*reporting.Service, error) {
	ds, err := dataset.Load(ctx, csvfile.NewSource(opts.datasetPath))
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar o dataset: %w", err)
	}
	return reporting.NewService(ds), nil
}
