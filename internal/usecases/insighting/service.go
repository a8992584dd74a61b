package insighting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

type Service struct {
	cfg               *config.Config
	metaService       MetaInsighter
	insightRepository repository.InsightRepository
	useCache          bool
}

// NewService cria uma nova instância do serviço de insights
func NewService(cfg *config.Config, metaService MetaInsighter) *Service {
	return &Service{
		cfg:         cfg,
		metaService: metaService,
	}
}

// WithCache habilita o cache local de insights
func (s *Service) WithCache(insightRepo repository.InsightRepository) *Service {
	s.insightRepository = insightRepo
	s.useCache = insightRepo != nil
	return s
}

// GetAccountMetrics obtém o resumo de métricas da conta. Consultas de um
// único dia passam pelo cache local: uma linha fresca é servida direto do
// Postgres; caso contrário a consulta vai ao Graph e o resultado é
// persistido para as próximas leituras.
func (s *Service) GetAccountMetrics(accountID string, filters *domain.InsightFilters) (*domain.AccountMetrics, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	cacheDate, cacheable := cacheableDate(filters)
	if s.useCache && cacheable {
		entry, err := s.insightRepository.GetByAccountIDAndDate(accountID, cacheDate)
		if err != nil {
			logrus.WithError(err).WithField("account_id", accountID).
				Warn("Erro ao consultar o cache de insights, seguindo para o Graph")
		}

		if entry != nil && time.Since(entry.UpdatedAt) < s.cacheTTL() {
			return entry.Metrics, nil
		}
	}

	metrics, err := s.metaService.GetAccountMetrics(accountID, filters)
	if err != nil {
		return nil, err
	}

	if s.useCache && cacheable {
		saveErr := s.insightRepository.SaveOrUpdate(&domain.InsightEntry{
			AccountID: accountID,
			Date:      cacheDate,
			Metrics:   metrics,
		})
		if saveErr != nil {
			// Falha de cache não derruba a resposta
			logrus.WithError(saveErr).WithField("account_id", accountID).
				Warn("Erro ao persistir insights no cache")
		}
	}

	return metrics, nil
}

func (s *Service) GetCampaignMetrics(accountID string, filters *domain.InsightFilters) ([]domain.CampaignMetrics, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	return s.metaService.GetCampaignMetrics(accountID, filters)
}

// PruneCache remove do cache linhas mais antigas que a retenção configurada
func (s *Service) PruneCache() (int64, error) {
	if !s.useCache {
		return 0, nil
	}

	retention := s.cfg.InsightsCache.RetentionDays
	if retention <= 0 {
		retention = 90
	}

	return s.insightRepository.DeleteOlderThan(retention)
}

func (s *Service) cacheTTL() time.Duration {
	hours := s.cfg.InsightsCache.TTLHours
	if hours <= 0 {
		hours = 6
	}
	return time.Duration(hours) * time.Hour
}

func validateFilters(filters *domain.InsightFilters) error {
	if filters == nil {
		return fmt.Errorf("é necessário informar o período da consulta")
	}

	if filters.Preset != "" {
		return nil
	}

	if filters.StartDate == nil || filters.EndDate == nil {
		return fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.EndDate.Before(*filters.StartDate) {
		return fmt.Errorf("a data final não pode ser anterior à inicial")
	}

	return nil
}

// cacheableDate identifica consultas de um único dia, as únicas que passam
// pelo cache. Períodos arbitrários e presets vão sempre ao Graph.
func cacheableDate(filters *domain.InsightFilters) (time.Time, bool) {
	if filters.StartDate == nil || filters.EndDate == nil {
		return time.Time{}, false
	}

	start := filters.StartDate.Truncate(24 * time.Hour)
	end := filters.EndDate.Truncate(24 * time.Hour)
	if !start.Equal(end) {
		return time.Time{}, false
	}

	return start, true
}
