package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-manager-api/internal/usecases/workspacing"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
	"github.com/vfg2006/ads-manager-api/pkg/middleware"
)

type RegisterRequest struct {
	WorkspaceName string `json:"workspace_name"`
	Name          string `json:"name"`
	Lastname      string `json:"lastname"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

type CreateInviteRequest struct {
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
}

type AcceptInviteRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Password string `json:"password"`
}

type ChangeMemberRoleRequest struct {
	RoleID int `json:"role_id"`
}

// Register cria um workspace novo com o primeiro usuário como administrador.
// Rota pública, usada no cadastro inicial do produto.
func Register(workspaces workspacing.Workspacer, auth authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - Register")

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.WorkspaceName == "" || req.Name == "" || req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do workspace, nome, email e senha são obrigatórios", nil)
			return
		}

		workspace, err := workspaces.CreateWorkspace(req.WorkspaceName)
		if err != nil {
			logger.WithError(err).Error("Erro ao criar workspace")
			writeWorkspaceError(w, err)
			return
		}

		user, err := auth.CreateUser(&domain.User{
			Name:         req.Name,
			Lastname:     req.Lastname,
			Email:        req.Email,
			PasswordHash: req.Password,
			RoleID:       domain.RoleAdmin,
			WorkspaceID:  workspace.ID,
			Active:       true,
		})
		if err != nil {
			logger.WithError(err).Error("Erro ao criar usuário administrador do workspace")
			if errors.Is(err, authenticating.ErrUserAlreadyExists) {
				apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Email já cadastrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"workspace": workspace,
			"user":      user,
		})
	}
}

// GetWorkspace retorna o workspace do usuário autenticado
func GetWorkspace(service workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		workspace, err := service.GetWorkspace(userClaims.UserWorkspaceID)
		if err != nil {
			writeWorkspaceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(workspace)
	}
}

// UpdateWorkspaceSettings atualiza nome e vínculos da conta Meta do workspace
func UpdateWorkspaceSettings(service workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - UpdateWorkspaceSettings")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		var req domain.UpdateWorkspaceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.ID = userClaims.UserWorkspaceID

		workspace, err := service.UpdateSettings(&req)
		if err != nil {
			logger.WithError(err).Error("Erro ao atualizar configurações do workspace")
			writeWorkspaceError(w, err)
			return
		}

		recordActivity(r, service, domain.ActivitySettingsUpdated, "workspace", workspace.ID, "")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(workspace)
	}
}

// ListMembers lista os membros do workspace do usuário autenticado
func ListMembers(service workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		members, err := service.ListMembers(userClaims.UserWorkspaceID)
		if err != nil {
			writeWorkspaceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(members)
	}
}

// RemoveMember remove um membro do workspace. O último administrador não pode
// ser removido.
func RemoveMember(service workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RemoveMember")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		memberID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do membro inválido", nil)
			return
		}

		if err := service.RemoveMember(userClaims.UserWorkspaceID, memberID); err != nil {
			logger.WithError(err).WithField("member_id", memberID).Error("Erro ao remover membro")
			writeWorkspaceError(w, err)
			return
		}

		recordActivity(r, service, domain.ActivityMemberRemoved, "member", strconv.Itoa(memberID), "")

		w.WriteHeader(http.StatusNoContent)
	}
}

// ChangeMemberRole altera o perfil de acesso de um membro do workspace
func ChangeMemberRole(service workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - ChangeMemberRole")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		memberID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do membro inválido", nil)
			return
		}

		var req ChangeMemberRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.ChangeMemberRole(userClaims.UserWorkspaceID, memberID, req.RoleID); err != nil {
			logger.WithError(err).WithField("member_id", memberID).Error("Erro ao alterar perfil do membro")
			writeWorkspaceError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// CreateInvite convida um email para o workspace do usuário autenticado
func CreateInvite(service workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - CreateInvite")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		var req CreateInviteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		invite, err := service.CreateInvite(userClaims.UserWorkspaceID, req.Email, req.RoleID, userClaims.UserID)
		if err != nil {
			logger.WithError(err).WithField("email", req.Email).Error("Erro ao criar convite")
			writeWorkspaceError(w, err)
			return
		}

		recordActivity(r, service, domain.ActivityMemberInvited, "invite", invite.ID, req.Email)

		// O token só aparece na resposta da criação, para ser enviado ao convidado
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"invite": invite,
			"token":  invite.Token,
		})
	}
}

// ListInvites lista os convites do workspace do usuário autenticado
func ListInvites(service workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		invites, err := service.ListInvites(userClaims.UserWorkspaceID)
		if err != nil {
			writeWorkspaceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(invites)
	}
}

// AcceptInvite aceita um convite pendente e cria a conta do convidado.
// Rota pública: o convidado ainda não tem credenciais.
func AcceptInvite(workspaces workspacing.Workspacer, auth authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - AcceptInvite")

		var req AcceptInviteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Token == "" || req.Name == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Token, nome e senha são obrigatórios", nil)
			return
		}

		// Valida o convite sem consumi-lo: se a criação da conta falhar,
		// o convite continua pendente e utilizável
		invite, err := workspaces.GetInviteByToken(req.Token)
		if err != nil {
			logger.WithError(err).Error("Erro ao validar convite")
			writeWorkspaceError(w, err)
			return
		}

		user, err := auth.CreateUser(&domain.User{
			Name:         req.Name,
			Lastname:     req.Lastname,
			Email:        invite.Email,
			PasswordHash: req.Password,
			RoleID:       invite.RoleID,
			WorkspaceID:  invite.WorkspaceID,
			Active:       true,
		})
		if err != nil {
			logger.WithError(err).Error("Erro ao criar a conta do convidado")
			if errors.Is(err, authenticating.ErrUserAlreadyExists) {
				apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Email já cadastrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário", nil)
			return
		}

		// A conta existe, agora o convite pode ser consumido. Uma falha aqui
		// não desfaz o cadastro, só é registrada.
		if _, err := workspaces.AcceptInvite(req.Token); err != nil {
			logger.WithError(err).WithField("invite_id", invite.ID).
				Warn("Erro ao marcar convite como aceito")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(user)
	}
}

// RevokeInvite revoga um convite pendente do workspace
func RevokeInvite(service workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RevokeInvite")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		inviteID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if inviteID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do convite não fornecido", nil)
			return
		}

		if err := service.RevokeInvite(userClaims.UserWorkspaceID, inviteID); err != nil {
			logger.WithError(err).WithField("invite_id", inviteID).Error("Erro ao revogar convite")
			writeWorkspaceError(w, err)
			return
		}

		recordActivity(r, service, domain.ActivityInviteRevoked, "invite", inviteID, "")

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListActivity lista o log de atividades do workspace, paginado
func ListActivity(service workspacing.Workspacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		if err != nil || limit <= 0 || limit > 100 {
			limit = 50
		}

		offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
		if err != nil || offset < 0 {
			offset = 0
		}

		entries, err := service.ListActivity(userClaims.UserWorkspaceID, limit, offset)
		if err != nil {
			writeWorkspaceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}

// writeWorkspaceError traduz os erros do serviço de workspaces para a resposta HTTP
func writeWorkspaceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, workspacing.ErrWorkspaceNotFound),
		errors.Is(err, workspacing.ErrMemberNotFound),
		errors.Is(err, workspacing.ErrInviteNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, workspacing.ErrMissingName),
		errors.Is(err, workspacing.ErrMissingEmail):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, workspacing.ErrInvalidRole):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, workspacing.ErrInviteExpired):
		apiErrors.WriteError(w, apiErrors.ErrInviteExpired, err.Error(), nil)

	case errors.Is(err, workspacing.ErrInviteNotPending):
		apiErrors.WriteError(w, apiErrors.ErrInviteAlreadyUsed, err.Error(), nil)

	case errors.Is(err, workspacing.ErrLastAdmin),
		errors.Is(err, workspacing.ErrPendingInviteExists):
		apiErrors.WriteError(w, apiErrors.ErrResourceConflict, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar os dados do workspace", nil)
	}
}
