package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

var errInvalidQuery = errors.New("parâmetro de consulta inválido")

// insightCall adapta cada operação do Insighter para o mesmo formato de handler
type insightCall func(ctx context.Context, filters *domain.InsightFilters) (any, error)

// parseInsightFilters lê start_date, end_date, marketing_spend e top_categories.
// end_date é estendido até o fim do dia para que o intervalo seja inclusivo.
func parseInsightFilters(r *http.Request, defaults config.Analytics) (*domain.InsightFilters, string, error) {
	query := r.URL.Query()
	filters := &domain.InsightFilters{
		MarketingSpend: defaults.MarketingSpend,
	}

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, "start_date deve estar no formato YYYY-MM-DD", errInvalidQuery
	}
	filters.StartDate = startDate

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, "end_date deve estar no formato YYYY-MM-DD", errInvalidQuery
	}
	if endDate != nil {
		end := utils.EndOfDay(*endDate)
		filters.EndDate = &end
	}

	if raw := query.Get("marketing_spend"); raw != "" {
		spend, err := strconv.ParseFloat(raw, 64)
		if err != nil || spend < 0 {
			return nil, "marketing_spend deve ser um número maior ou igual a zero", errInvalidQuery
		}
		filters.MarketingSpend = spend
	}

	if raw := query.Get("top_categories"); raw != "" {
		top, err := strconv.Atoi(raw)
		if err != nil || top <= 0 {
			return nil, "top_categories deve ser um inteiro positivo", errInvalidQuery
		}
		filters.TopCategories = top
	}

	return filters, "", nil
}

func insightHandler(name string, defaults config.Analytics, call insightCall) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, message, err := parseInsightFilters(r, defaults)
		if err != nil {
			logger.WithError(err).Warnf("insights: %s com parâmetros inválidos", name)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, message, nil)
			return
		}

		result, err := call(r.Context(), filters)
		if err != nil {
			code := insighting.ErrorCode(err)
			entry := logger.WithError(err).WithField("code", code)
			if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
				entry.Errorf("insights: erro ao calcular %s", name)
			} else {
				entry.Warnf("insights: %s recusado", name)
			}

			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		logger.Debugf("insights: %s calculado", name)
		writeJSON(w, r, http.StatusOK, result)
	})
}

func GetKPIs(service insighting.Insighter, defaults config.Analytics) http.Handler {
	return insightHandler("kpis", defaults, func(ctx context.Context, f *domain.InsightFilters) (any, error) {
		return service.GetKPIs(ctx, f)
	})
}

func GetAcquisitionRetention(service insighting.Insighter, defaults config.Analytics) http.Handler {
	return insightHandler("aquisição e retenção", defaults, func(ctx context.Context, f *domain.InsightFilters) (any, error) {
		return service.GetAcquisitionRetention(ctx, f)
	})
}

func GetRevenueForecast(service insighting.Insighter, defaults config.Analytics) http.Handler {
	return insightHandler("previsão de receita", defaults, func(ctx context.Context, f *domain.InsightFilters) (any, error) {
		return service.GetRevenueForecast(ctx, f)
	})
}

func GetCategoryDemand(service insighting.Insighter, defaults config.Analytics) http.Handler {
	return insightHandler("demanda por categoria", defaults, func(ctx context.Context, f *domain.InsightFilters) (any, error) {
		return service.GetCategoryDemand(ctx, f)
	})
}

func GetRecommendations(service insighting.Insighter, defaults config.Analytics) http.Handler {
	return insightHandler("recomendações de estoque", defaults, func(ctx context.Context, f *domain.InsightFilters) (any, error) {
		return service.GetRecommendations(ctx, f)
	})
}

func GetOverview(service insighting.Insighter, defaults config.Analytics) http.Handler {
	return insightHandler("visão geral", defaults, func(ctx context.Context, f *domain.InsightFilters) (any, error) {
		return service.GetOverview(ctx, f)
	})
}

func GetDashboard(service insighting.Insighter, defaults config.Analytics) http.Handler {
	return insightHandler("dashboard", defaults, func(ctx context.Context, f *domain.InsightFilters) (any, error) {
		return service.GetDashboard(ctx, f)
	})
}
