package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/audiencing"
	"github.com/vfg2006/ads-manager-api/internal/usecases/workspacing"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
)

// ListAudiences lista as audiências personalizadas de uma conta
func ListAudiences(service audiencing.Audiencer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		audiences, err := service.ListAudiences(accountID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar audiências")
			if writeGraphError(w, err) {
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao listar audiências", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(audiences)
	}
}

// CreateAudience cria uma audiência personalizada a partir do formulário.
// A validação do formulário acontece antes de qualquer chamada à Graph API.
func CreateAudience(service audiencing.Audiencer, workspaces workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - CreateAudience")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		var form domain.AudienceForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		audience, err := service.CreateAudience(accountID, &form)
		if err != nil {
			logger.WithError(err).WithField("subtype", form.Subtype).Error("Erro ao criar audiência")
			writeAudienceError(w, err)
			return
		}

		recordActivity(r, workspaces, domain.ActivityAudienceCreated, "audience", audience.ID, audience.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(audience)
	}
}

// CreateLookalike cria uma audiência semelhante a partir de uma audiência de origem
func CreateLookalike(service audiencing.Audiencer, workspaces workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - CreateLookalike")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		var req domain.CreateLookalikeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		audience, err := service.CreateLookalike(accountID, &req)
		if err != nil {
			logger.WithError(err).Error("Erro ao criar lookalike")
			writeAudienceError(w, err)
			return
		}

		recordActivity(r, workspaces, domain.ActivityAudienceCreated, "audience", audience.ID, audience.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(audience)
	}
}

// DeleteAudience exclui uma audiência personalizada
func DeleteAudience(service audiencing.Audiencer, workspaces workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - DeleteAudience")

		audienceID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if audienceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da audiência não fornecido", nil)
			return
		}

		if err := service.DeleteAudience(audienceID); err != nil {
			logger.WithError(err).WithField("audience_id", audienceID).Error("Erro ao excluir audiência")
			writeAudienceError(w, err)
			return
		}

		recordActivity(r, workspaces, domain.ActivityAudienceDeleted, "audience", audienceID, "")

		w.WriteHeader(http.StatusNoContent)
	}
}

// ImportAudienceMembers importa membros de um CSV para a audiência
func ImportAudienceMembers(service audiencing.Audiencer, workspaces workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - ImportAudienceMembers")

		audienceID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if audienceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da audiência não fornecido", nil)
			return
		}

		var req domain.AudienceImportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.AudienceID = audienceID

		result, err := service.ImportMembers(&req)
		if err != nil {
			logger.WithError(err).WithField("audience_id", audienceID).Error("Erro ao importar membros")
			writeAudienceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"audience_id":   audienceID,
			"rows_imported": result.RowsImported,
			"rows_skipped":  result.RowsSkipped,
		}).Info("Importação de membros concluída")

		recordActivity(r, workspaces, domain.ActivityAudienceImported, "audience", audienceID, "")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// writeAudienceError traduz os erros do serviço de audiências para a resposta HTTP
func writeAudienceError(w http.ResponseWriter, err error) {
	if writeGraphError(w, err) {
		return
	}

	var validationErr *audiencing.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, validationErr.Error(), map[string]any{
			"field": validationErr.Field,
		})
		return
	}

	switch {
	case errors.Is(err, audiencing.ErrInvalidRatio),
		errors.Is(err, audiencing.ErrInvalidRetention),
		errors.Is(err, audiencing.ErrUnknownSubtype),
		errors.Is(err, audiencing.ErrUnsupportedSchemaKey):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, audiencing.ErrMissingOrigin),
		errors.Is(err, audiencing.ErrEmptyImport),
		errors.Is(err, audiencing.ErrNoMappedColumns):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao comunicar com o Meta", nil)
	}
}
