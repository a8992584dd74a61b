package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/ads-manager-api/internal/usecases/workspacing"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
	"github.com/vfg2006/ads-manager-api/pkg/middleware"
)

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type SaveDraftRequest struct {
	Name    string `json:"name"`
	Payload string `json:"payload"`
}

// CampaignOverview retorna campanhas e audiências da conta em uma única resposta
func CampaignOverview(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - CampaignOverview")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		overview, err := service.Overview(r.Context(), accountID)
		if err != nil {
			logger.WithError(err).Error("Erro ao carregar o resumo da conta")
			if writeGraphError(w, err) {
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao carregar o resumo da conta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overview)
	}
}

// ListCampaigns lista as campanhas de uma conta de anúncios
func ListCampaigns(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		campaigns, err := service.ListCampaigns(accountID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar campanhas")
			if writeGraphError(w, err) {
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar campanhas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(campaigns)
	}
}

// CreateCampaign cria a campanha e devolve a coleção atualizada
func CreateCampaign(service campaigning.Campaigner, workspaces workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - CreateCampaign")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		var req domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		campaigns, err := service.CreateCampaign(accountID, &req)
		if err != nil {
			logger.WithError(err).Error("Erro ao criar campanha")
			writeCampaignError(w, err)
			return
		}

		recordActivity(r, workspaces, domain.ActivityCampaignCreated, "campaign", "", req.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(campaigns)
	}
}

// ListAdSets lista os conjuntos de anúncios de uma conta
func ListAdSets(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		adSets, err := service.ListAdSets(accountID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar conjuntos de anúncios")
			if writeGraphError(w, err) {
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar conjuntos de anúncios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(adSets)
	}
}

// CreateAdSet cria o conjunto de anúncios e devolve a coleção atualizada
func CreateAdSet(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - CreateAdSet")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		var req domain.CreateAdSetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		adSets, err := service.CreateAdSet(accountID, &req)
		if err != nil {
			logger.WithError(err).Error("Erro ao criar conjunto de anúncios")
			writeCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(adSets)
	}
}

// ListAds lista os anúncios de uma conta
func ListAds(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		ads, err := service.ListAds(accountID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar anúncios")
			if writeGraphError(w, err) {
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar anúncios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ads)
	}
}

// CreateAd cria o anúncio e devolve a coleção atualizada
func CreateAd(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - CreateAd")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		var req domain.CreateAdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		ads, err := service.CreateAd(accountID, &req)
		if err != nil {
			logger.WithError(err).Error("Erro ao criar anúncio")
			writeCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ads)
	}
}

// UpdateObjectStatus pausa ou reativa uma campanha, conjunto ou anúncio
func UpdateObjectStatus(service campaigning.Campaigner, workspaces workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - UpdateObjectStatus")

		objectID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if objectID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do objeto não fornecido", nil)
			return
		}

		var req UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.UpdateStatus(objectID, req.Status); err != nil {
			logger.WithError(err).WithField("object_id", objectID).Error("Erro ao atualizar status")
			writeCampaignError(w, err)
			return
		}

		action := domain.ActivityCampaignPaused
		if req.Status == domain.EntityStatusActive {
			action = domain.ActivityCampaignResumed
		}
		recordActivity(r, workspaces, action, "campaign", objectID, "")

		w.WriteHeader(http.StatusOK)
	}
}

// DeleteObject exclui uma campanha, conjunto ou anúncio no Meta
func DeleteObject(service campaigning.Campaigner, workspaces workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - DeleteObject")

		objectID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if objectID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do objeto não fornecido", nil)
			return
		}

		if err := service.DeleteObject(objectID); err != nil {
			logger.WithError(err).WithField("object_id", objectID).Error("Erro ao excluir objeto")
			writeCampaignError(w, err)
			return
		}

		recordActivity(r, workspaces, domain.ActivityCampaignDeleted, "campaign", objectID, "")

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListDrafts lista os rascunhos de campanha do workspace do usuário
func ListDrafts(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		drafts, err := service.ListDrafts(userClaims.UserWorkspaceID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar rascunhos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar rascunhos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(drafts)
	}
}

// SaveDraft salva um rascunho de campanha para edição posterior
func SaveDraft(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - SaveDraft")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		var req SaveDraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		draft, err := service.SaveDraft(&domain.CampaignDraft{
			WorkspaceID: userClaims.UserWorkspaceID,
			Name:        req.Name,
			Payload:     req.Payload,
			CreatedBy:   userClaims.UserID,
		})
		if err != nil {
			logger.WithError(err).Error("Erro ao salvar rascunho")
			writeCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(draft)
	}
}

// DeleteDraft remove um rascunho do workspace do usuário
func DeleteDraft(service campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - DeleteDraft")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		draftID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if draftID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do rascunho não fornecido", nil)
			return
		}

		if err := service.DeleteDraft(userClaims.UserWorkspaceID, draftID); err != nil {
			logger.WithError(err).WithField("draft_id", draftID).Error("Erro ao excluir rascunho")
			if errors.Is(err, campaigning.ErrDraftNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Rascunho não encontrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir rascunho", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeCampaignError traduz os erros do serviço de campanhas para a resposta HTTP
func writeCampaignError(w http.ResponseWriter, err error) {
	if writeGraphError(w, err) {
		return
	}

	switch {
	case errors.Is(err, campaigning.ErrMissingName),
		errors.Is(err, campaigning.ErrMissingObjective),
		errors.Is(err, campaigning.ErrMissingCampaign),
		errors.Is(err, campaigning.ErrMissingAdSet),
		errors.Is(err, campaigning.ErrMissingCreative):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, campaigning.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, campaigning.ErrDraftNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao comunicar com o Meta", nil)
	}
}

// recordActivity registra a ação no log do workspace do usuário autenticado.
// O registro nunca bloqueia a resposta da operação que o originou.
func recordActivity(r *http.Request, workspaces workspacing.Workspacer, action, entityType, entityID, detail string) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return
	}

	workspaces.RecordActivity(&domain.ActivityEntry{
		WorkspaceID: userClaims.UserWorkspaceID,
		UserID:      userClaims.UserID,
		UserName:    userClaims.UserName,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Detail:      detail,
	})
}
