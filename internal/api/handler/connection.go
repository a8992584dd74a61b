package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/scheduler"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
	"github.com/vfg2006/ads-manager-api/pkg/middleware"
)

// GetConnectionStatus retorna o último estado conhecido da conexão Meta do
// workspace. Sem registro prévio, consulta o Graph na hora e persiste.
func GetConnectionStatus(repo repository.ConnectionRepository, checker scheduler.ConnectionChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - GetConnectionStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		status, err := repo.GetStatus(userClaims.UserWorkspaceID)
		if err != nil {
			logger.WithError(err).Error("Erro ao consultar o estado da conexão")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o estado da conexão", nil)
			return
		}

		if status == nil {
			status, err = checkAndSave(repo, checker, userClaims.UserWorkspaceID)
			if err != nil {
				logger.WithError(err).Error("Erro ao verificar a conexão com o Meta")
				if writeGraphError(w, err) {
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao verificar a conexão com o Meta", nil)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

// CheckConnection força uma verificação imediata da conexão Meta do workspace
func CheckConnection(repo repository.ConnectionRepository, checker scheduler.ConnectionChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - CheckConnection")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		status, err := checkAndSave(repo, checker, userClaims.UserWorkspaceID)
		if err != nil {
			logger.WithError(err).Error("Erro ao verificar a conexão com o Meta")
			if writeGraphError(w, err) {
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao verificar a conexão com o Meta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

func checkAndSave(repo repository.ConnectionRepository, checker scheduler.ConnectionChecker, workspaceID string) (*domain.ConnectionStatus, error) {
	status, err := checker.CheckConnection(workspaceID)
	if err != nil {
		return nil, err
	}

	if err := repo.SaveStatus(status); err != nil {
		logrus.WithError(err).WithField("workspace_id", workspaceID).
			Warn("Erro ao persistir o estado da conexão")
	}

	return status, nil
}
