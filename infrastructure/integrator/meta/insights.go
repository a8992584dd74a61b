package meta

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/utils"
)

func (s *MetaIntegrator) GetAccountMetrics(accountID string, filters *domain.InsightFilters) (*domain.AccountMetrics, error) {
	resp, err := s.Client.GetAccountInsights(accountID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get account insights from API")
		return nil, err
	}

	if resp == nil {
		// Sem entrega no período
		return emptyAccountMetrics(accountID, filters), nil
	}

	metrics := factoryAccountMetrics(resp)

	logrus.WithFields(logrus.Fields{
		"account_id":   accountID,
		"account_name": metrics.AccountName,
	}).Debug("insights: successfully retrieved account metrics")

	return metrics, nil
}

func (s *MetaIntegrator) GetCampaignMetrics(accountID string, filters *domain.InsightFilters) ([]domain.CampaignMetrics, error) {
	resp, err := s.Client.GetCampaignInsights(accountID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaign insights from API")
		return nil, err
	}

	metrics := make([]domain.CampaignMetrics, 0, len(resp))
	for i := range resp {
		metrics = append(metrics, factoryCampaignMetrics(&resp[i]))
	}

	return metrics, nil
}

func factoryAccountMetrics(in *metadomain.AccountInsight) *domain.AccountMetrics {
	return &domain.AccountMetrics{
		AccountID:   in.AccountID,
		AccountName: in.AccountName,
		Spend:       parseFloat(in.Spend),
		Impressions: parseInt(in.Impressions),
		Reach:       parseInt(in.Reach),
		Clicks:      parseInt(in.Clicks),
		Frequency:   utils.RoundWithTwoDecimalPlace(parseFloat(in.Frequency)),
		CPC:         utils.RoundWithTwoDecimalPlace(parseFloat(in.CPC)),
		CTR:         utils.RoundWithTwoDecimalPlace(parseFloat(in.CTR)),
		StartDate:   in.DateStart,
		EndDate:     in.DateStop,
	}
}

func factoryCampaignMetrics(in *metadomain.CampaignInsight) domain.CampaignMetrics {
	return domain.CampaignMetrics{
		CampaignID:    in.CampaignID,
		CampaignName:  in.CampaignName,
		Objective:     in.Objective,
		Spend:         parseFloat(in.Spend),
		Impressions:   parseInt(in.Impressions),
		Reach:         parseInt(in.Reach),
		Clicks:        parseInt(in.Clicks),
		Results:       in.GetResult(),
		CostPerResult: utils.RoundWithTwoDecimalPlace(in.GetCostPerResult()),
	}
}

func emptyAccountMetrics(accountID string, filters *domain.InsightFilters) *domain.AccountMetrics {
	metrics := &domain.AccountMetrics{AccountID: accountID}
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil {
		metrics.StartDate = filters.StartDate.Format(time.DateOnly)
		metrics.EndDate = filters.EndDate.Format(time.DateOnly)
	}
	return metrics
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logrus.WithField("value", s).Warn("insights: valor numérico inválido na resposta do Meta")
		return 0
	}
	return value
}

func parseInt(s string) int {
	if s == "" {
		return 0
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		logrus.WithField("value", s).Warn("insights: valor inteiro inválido na resposta do Meta")
		return 0
	}
	return value
}
