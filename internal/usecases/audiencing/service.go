package audiencing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// Audiencer é o serviço de audiências personalizadas e lookalike
type Audiencer interface {
	ListAudiences(accountID string) ([]domain.CustomAudience, error)
	CreateAudience(accountID string, form *domain.AudienceForm) (*domain.CustomAudience, error)
	CreateLookalike(accountID string, req *domain.CreateLookalikeRequest) (*domain.CustomAudience, error)
	DeleteAudience(audienceID string) error
	ImportMembers(req *domain.AudienceImportRequest) (*domain.AudienceImportResult, error)
}

type Service struct {
	metaService MetaAudiencer
}

func NewService(metaService MetaAudiencer) Audiencer {
	return &Service{
		metaService: metaService,
	}
}

func (s *Service) ListAudiences(accountID string) ([]domain.CustomAudience, error) {
	return s.metaService.ListAudiences(accountID)
}

// CreateAudience valida o formulário, monta o payload e cria a audiência.
// Erros de validação retornam antes de qualquer chamada ao Graph.
func (s *Service) CreateAudience(accountID string, form *domain.AudienceForm) (*domain.CustomAudience, error) {
	params, err := BuildCreateParams(form)
	if err != nil {
		return nil, err
	}

	audienceID, err := s.metaService.CreateAudience(accountID, params)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  accountID,
		"audience_id": audienceID,
		"subtype":     form.Subtype,
	}).Info("Audiência criada com sucesso")

	return &domain.CustomAudience{
		ID:      audienceID,
		Name:    params.Name,
		Subtype: string(form.Subtype),
	}, nil
}

func (s *Service) CreateLookalike(accountID string, req *domain.CreateLookalikeRequest) (*domain.CustomAudience, error) {
	if req.OriginAudienceID == "" {
		return nil, newValidationError("origin_audience_id", ErrMissingOrigin)
	}

	if req.Ratio < 0.01 || req.Ratio > 0.20 {
		return nil, newValidationError("ratio", ErrInvalidRatio)
	}

	if req.Name == "" {
		return nil, newValidationError("name", ErrMissingName)
	}

	audienceID, err := s.metaService.CreateLookalike(accountID, req)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  accountID,
		"audience_id": audienceID,
		"origin_id":   req.OriginAudienceID,
	}).Info("Audiência lookalike criada com sucesso")

	return &domain.CustomAudience{
		ID:                audienceID,
		Name:              req.Name,
		Subtype:           "LOOKALIKE",
		LookalikeOriginID: req.OriginAudienceID,
	}, nil
}

func (s *Service) DeleteAudience(audienceID string) error {
	return s.metaService.DeleteAudience(audienceID)
}

// ImportMembers processa o CSV e envia os membros em lotes para o Graph.
// O resultado resume linhas lidas, importadas, puladas e lotes enviados.
func (s *Service) ImportMembers(req *domain.AudienceImportRequest) (*domain.AudienceImportResult, error) {
	batches, result, err := parseImport(req)
	if err != nil {
		return nil, err
	}

	for _, batch := range batches {
		if _, err := s.metaService.AddAudienceUsers(req.AudienceID, batch); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"audience_id":   req.AudienceID,
		"rows_imported": result.RowsImported,
		"rows_skipped":  result.RowsSkipped,
		"batches":       result.Batches,
	}).Info("Importação de membros concluída")

	return result, nil
}
