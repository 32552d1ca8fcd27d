package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func printReport(w io.Writer, report *domain.Report) {
	years := make([]string, len(report.Selection.Years))
	for i, year := range report.Selection.Years {
		years[i] = strconv.Itoa(year)
	}

	fmt.Fprintln(w, "Anos:", strings.Join(years, ", "))
	fmt.Fprintln(w, "Regiões:", strings.Join(report.Selection.Regions, ", "))
	fmt.Fprintf(w, "Registros: %d | Volume total: %d\n", report.RecordCount, report.TotalSales)

	if report.Empty {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Nenhum dado para a seleção atual.")
		return
	}

	printSection(w, report.Charts.Region.Title, "Região", report.Aggregates.Region, report.Insights.Region.Message)
	printSection(w, report.Charts.Model.Title, "Modelo", report.Aggregates.Model, report.Insights.Model.Message)
	printSection(w, report.Charts.Year.Title, "Ano", report.Aggregates.Year, report.Insights.Year.Message)
}

func printSection(w io.Writer, title, keyHeader string, table domain.AggregateTable, insight string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "###", title)

	tw := tablewriter.NewWriter(w)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	tw.SetAutoFormatHeaders(false)
	tw.SetBorder(true)
	tw.SetHeader([]string{keyHeader, "Volume de vendas"})
	tw.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, row := range table.Rows {
		tw.Append([]string{row.Key, strconv.FormatInt(row.Total, 10)})
	}
	tw.Render()

	fmt.Fprintln(w, "Insight:", insight)
}

func printFilterOptions(w io.Writer, options domain.FilterOptions) {
	years := make([]string, len(options.Years))
	for i, year := range options.Years {
		years[i] = strconv.Itoa(year)
	}

	tw := tablewriter.NewWriter(w)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)
	tw.SetBorder(true)
	tw.SetRowLine(true)
	tw.SetHeader([]string{"Filtro", "Valores"})
	tw.Append([]string{"Anos", strings.Join(years, ", ")})
	tw.Append([]string{"Regiões", strings.Join(options.Regions, ", ")})
	tw.Append([]string{"Modelos", strings.Join(options.Models, ", ")})
	tw.Render()
}
