package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
	"github.com/vfg2006/ads-manager-api/pkg/utils"
)

// GetAccountInsights retorna o resumo de métricas da conta no período solicitado
func GetAccountInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - GetAccountInsights")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		filters, err := insightFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		metrics, err := service.GetAccountMetrics(accountID, filters)
		if err != nil {
			logger.WithError(err).WithField("account_id", accountID).Error("Erro ao obter métricas da conta")
			if writeGraphError(w, err) {
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(metrics)
	}
}

// GetCampaignInsights retorna as métricas por campanha da conta
func GetCampaignInsights(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - GetCampaignInsights")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		filters, err := insightFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		metrics, err := service.GetCampaignMetrics(accountID, filters)
		if err != nil {
			logger.WithError(err).WithField("account_id", accountID).Error("Erro ao obter métricas das campanhas")
			if writeGraphError(w, err) {
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(metrics)
	}
}

// insightFilters monta os filtros de período a partir da query string.
// Aceita start_date/end_date (YYYY-MM-DD) ou date_preset (last_7d, last_30d, ...).
func insightFilters(r *http.Request) (*domain.InsightFilters, error) {
	filters := &domain.InsightFilters{
		Preset: r.URL.Query().Get("date_preset"),
	}

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		parsed, err := utils.ParseDate(startDate)
		if err != nil {
			return nil, err
		}
		filters.StartDate = parsed
	}

	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		parsed, err := utils.ParseDate(endDate)
		if err != nil {
			return nil, err
		}
		filters.EndDate = parsed
	}

	return filters, nil
}
