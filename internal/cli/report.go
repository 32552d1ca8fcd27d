package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func newReportCmd(root *rootOptions) *cobra.Command {
	var (
		years   []string
		regions []string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Gera agregados e insights para os anos e regiões selecionados",
		Long: "Gera agregados e insights para os anos e regiões selecionados.\n" +
			"Sem --years/--regions todos os valores são usados; --years= seleciona nenhum ano.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputTable && output != outputJSON {
				return fmt.Errorf("formato de saída inválido: %q (use %s ou %s)", output, outputTable, outputJSON)
			}

			reporter, err := newReporter(cmd.Context(), root)
			if err != nil {
				return err
			}

			selection := reporter.DefaultSelection()
			if cmd.Flags().Changed("years") {
				parsed, err := utils.ParseIntList(strings.Join(years, ","))
				if err != nil {
					return fmt.Errorf("ano inválido: %w", err)
				}
				selection.Years = parsed
			}
			if cmd.Flags().Changed("regions") {
				selection.Regions = regions
			}

			report, err := reporter.Render(cmd.Context(), selection)
			if err != nil {
				return err
			}

			if output == outputJSON {
				out, err := utils.PrettyJson(report)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&years, "years", nil, "Anos a incluir (ex: 2020,2021)")
	cmd.Flags().StringSliceVar(&regions, "regions", nil, "Regiões a incluir (ex: Asia,Europe)")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Formato de saída (table, json)")

	return cmd
}

func newFiltersCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "Lista os anos, regiões e modelos disponíveis no dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter, err := newReporter(cmd.Context(), root)
			if err != nil {
				return err
			}

			printFilterOptions(cmd.OutOrStdout(), reporter.Options())
			return nil
		},
	}
}
