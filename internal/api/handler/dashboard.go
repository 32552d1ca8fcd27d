package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	paramYears   = "years"
	paramRegions = "regions"
)

// parseSelection monta a seleção a partir da query string.
// Parâmetro ausente usa o padrão (todos); parâmetro presente e vazio seleciona nada.
// Aceita tanto "years=2020,2021" quanto "years=2020&years=2021"; regiões repetidas
// ("regions=A&regions=B") não são separadas por vírgula.
func parseSelection(r *http.Request, defaults domain.Selection) (domain.Selection, error) {
	query := r.URL.Query()
	selection := defaults

	if values, ok := query[paramYears]; ok {
		years, err := utils.ParseIntList(strings.Join(values, ","))
		if err != nil {
			return domain.Selection{}, err
		}
		selection.Years = years
	}

	if values, ok := query[paramRegions]; ok {
		selection.Regions = parseRegions(values)
	}

	return selection, nil
}

// parseRegions separa por vírgula apenas quando o parâmetro aparece uma vez.
// Parâmetros repetidos são usados como estão, permitindo nomes com vírgula ou espaços.
func parseRegions(values []string) []string {
	if len(values) == 1 {
		return utils.SplitList(values[0])
	}
	return append(make([]string, 0, len(values)), values...)
}

func writeRenderError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("dashboard: requisição cancelada durante o cálculo")
		apiErrors.WriteError(w, apiErrors.ErrRequestCanceled, "Requisição cancelada", nil)
		return
	}

	logger.Error("dashboard: erro ao gerar relatório")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório", nil)
}

// GetDashboard retorna agregados, insights e gráficos para a seleção informada
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selection, err := parseSelection(r, service.DefaultSelection())
		if err != nil {
			apiErr := apiErrors.FromError(err, apiErrors.ErrInvalidFormat)
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, map[string]string{"param": paramYears})
			return
		}

		report, err := service.Render(r.Context(), selection)
		if err != nil {
			writeRenderError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"report_id": report.ID,
			"years":     report.Selection.Years,
			"regions":   report.Selection.Regions,
			"records":   report.RecordCount,
		}).Info("dashboard: relatório gerado")

		writeJSON(w, r, http.StatusOK, report)
	})
}

// GetFilterOptions retorna os anos, regiões e modelos disponíveis
func GetFilterOptions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Options())
	})
}

// GetAggregate retorna uma única tabela agregada (region, model ou year)
func GetAggregate(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fieldName := httprouter.ParamsFromContext(r.Context()).ByName("field")
		field, err := domain.ParseField(fieldName)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidField, err.Error(), map[string][]domain.Field{
				"allowed": {domain.FieldRegion, domain.FieldModel, domain.FieldYear},
			})
			return
		}

		selection, err := parseSelection(r, service.DefaultSelection())
		if err != nil {
			apiErr := apiErrors.FromError(err, apiErrors.ErrInvalidFormat)
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, map[string]string{"param": paramYears})
			return
		}

		table, err := service.Aggregate(r.Context(), selection, field)
		if err != nil {
			writeRenderError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"field": field,
			"rows":  len(table.Rows),
		}).Debug("dashboard: tabela agregada gerada")

		writeJSON(w, r, http.StatusOK, table)
	})
}
