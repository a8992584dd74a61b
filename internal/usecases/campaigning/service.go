package campaigning

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Campaigner é o serviço de orquestração de campanhas, conjuntos e anúncios
type Campaigner interface {
	Overview(ctx context.Context, accountID string) (*domain.CampaignOverview, error)
	ListCampaigns(accountID string) ([]domain.Campaign, error)
	CreateCampaign(accountID string, req *domain.CreateCampaignRequest) ([]domain.Campaign, error)
	ListAdSets(accountID string) ([]domain.AdSet, error)
	CreateAdSet(accountID string, req *domain.CreateAdSetRequest) ([]domain.AdSet, error)
	ListAds(accountID string) ([]domain.Ad, error)
	CreateAd(accountID string, req *domain.CreateAdRequest) ([]domain.Ad, error)
	UpdateStatus(objectID, status string) error
	DeleteObject(objectID string) error

	SaveDraft(draft *domain.CampaignDraft) (*domain.CampaignDraft, error)
	ListDrafts(workspaceID string) ([]*domain.CampaignDraft, error)
	DeleteDraft(workspaceID, draftID string) error
}

type Service struct {
	metaService MetaCampaigner
	draftRepo   repository.DraftRepository
}

func NewService(metaService MetaCampaigner, draftRepo repository.DraftRepository) Campaigner {
	return &Service{
		metaService: metaService,
		draftRepo:   draftRepo,
	}
}

// Overview carrega campanhas e audiências em paralelo. As duas leituras são
// independentes: a falha de uma cancela a outra e o erro sobe para o handler.
func (s *Service) Overview(ctx context.Context, accountID string) (*domain.CampaignOverview, error) {
	overview := &domain.CampaignOverview{}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		campaigns, err := s.metaService.ListCampaigns(accountID)
		if err != nil {
			return err
		}
		overview.Campaigns = campaigns
		return nil
	})

	g.Go(func() error {
		audiences, err := s.metaService.ListAudiences(accountID)
		if err != nil {
			return err
		}
		overview.Audiences = audiences
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return overview, nil
}

func (s *Service) ListCampaigns(accountID string) ([]domain.Campaign, error) {
	return s.metaService.ListCampaigns(accountID)
}

// CreateCampaign cria a campanha e devolve a coleção recarregada do Graph,
// em vez de remendar o estado local com o objeto recém-criado.
func (s *Service) CreateCampaign(accountID string, req *domain.CreateCampaignRequest) ([]domain.Campaign, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if req.Objective == "" {
		return nil, ErrMissingObjective
	}

	campaignID, err := s.metaService.CreateCampaign(accountID, req)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  accountID,
		"campaign_id": campaignID,
		"objective":   req.Objective,
	}).Info("Campanha criada com sucesso")

	return s.metaService.ListCampaigns(accountID)
}

func (s *Service) ListAdSets(accountID string) ([]domain.AdSet, error) {
	return s.metaService.ListAdSets(accountID)
}

func (s *Service) CreateAdSet(accountID string, req *domain.CreateAdSetRequest) ([]domain.AdSet, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if req.CampaignID == "" {
		return nil, ErrMissingCampaign
	}

	adSetID, err := s.metaService.CreateAdSet(accountID, req)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  accountID,
		"ad_set_id":   adSetID,
		"campaign_id": req.CampaignID,
	}).Info("Conjunto de anúncios criado com sucesso")

	return s.metaService.ListAdSets(accountID)
}

func (s *Service) ListAds(accountID string) ([]domain.Ad, error) {
	return s.metaService.ListAds(accountID)
}

func (s *Service) CreateAd(accountID string, req *domain.CreateAdRequest) ([]domain.Ad, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if req.AdSetID == "" {
		return nil, ErrMissingAdSet
	}
	if req.CreativeID == "" {
		return nil, ErrMissingCreative
	}

	adID, err := s.metaService.CreateAd(accountID, req)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"ad_id":      adID,
		"ad_set_id":  req.AdSetID,
	}).Info("Anúncio criado com sucesso")

	return s.metaService.ListAds(accountID)
}

// UpdateStatus pausa ou reativa campanhas, conjuntos e anúncios
func (s *Service) UpdateStatus(objectID, status string) error {
	if status != domain.EntityStatusActive && status != domain.EntityStatusPaused {
		return ErrInvalidStatus
	}

	return s.metaService.UpdateObjectStatus(objectID, status)
}

func (s *Service) DeleteObject(objectID string) error {
	return s.metaService.DeleteObject(objectID)
}

// SaveDraft cria ou atualiza um rascunho de campanha no Postgres
func (s *Service) SaveDraft(draft *domain.CampaignDraft) (*domain.CampaignDraft, error) {
	if draft.Name == "" {
		return nil, ErrMissingName
	}

	if draft.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}
		draft.ID = id
	}

	if err := s.draftRepo.Save(draft); err != nil {
		return nil, err
	}

	return draft, nil
}

func (s *Service) ListDrafts(workspaceID string) ([]*domain.CampaignDraft, error) {
	return s.draftRepo.ListByWorkspace(workspaceID)
}

// DeleteDraft remove o rascunho do workspace. A exclusão é otimista: o
// cliente já removeu a linha da lista e só é avisado se o rascunho não
// existir mais.
func (s *Service) DeleteDraft(workspaceID, draftID string) error {
	draft, err := s.draftRepo.GetByID(draftID)
	if err != nil {
		return err
	}
	if draft == nil || draft.WorkspaceID != workspaceID {
		return ErrDraftNotFound
	}

	return s.draftRepo.Delete(workspaceID, draftID)
}
