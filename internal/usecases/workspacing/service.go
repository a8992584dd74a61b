package workspacing

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/utils"
)

// Alfabeto e tamanho do token de convite enviado por email
const (
	inviteTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	inviteTokenLength   = 32
)

// Workspacer é o serviço de administração de workspaces
type Workspacer interface {
	CreateWorkspace(name string) (*domain.Workspace, error)
	GetWorkspace(workspaceID string) (*domain.Workspace, error)
	UpdateSettings(req *domain.UpdateWorkspaceRequest) (*domain.Workspace, error)

	ListMembers(workspaceID string) ([]*domain.Member, error)
	RemoveMember(workspaceID string, userID int) error
	ChangeMemberRole(workspaceID string, userID, roleID int) error

	CreateInvite(workspaceID, email string, roleID, invitedBy int) (*domain.Invite, error)
	ListInvites(workspaceID string) ([]*domain.Invite, error)
	GetInviteByToken(token string) (*domain.Invite, error)
	AcceptInvite(token string) (*domain.Invite, error)
	RevokeInvite(workspaceID, inviteID string) error

	RecordActivity(entry *domain.ActivityEntry)
	ListActivity(workspaceID string, limit, offset int) ([]*domain.ActivityEntry, error)
}

type Service struct {
	cfg           *config.Config
	workspaceRepo repository.WorkspaceRepository
	userRepo      repository.UserRepository
	inviteRepo    repository.InviteRepository
	activityRepo  repository.ActivityRepository
}

func NewService(
	cfg *config.Config,
	workspaceRepo repository.WorkspaceRepository,
	userRepo repository.UserRepository,
	inviteRepo repository.InviteRepository,
	activityRepo repository.ActivityRepository,
) Workspacer {
	return &Service{
		cfg:           cfg,
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
		inviteRepo:    inviteRepo,
		activityRepo:  activityRepo,
	}
}

func (s *Service) CreateWorkspace(name string) (*domain.Workspace, error) {
	if name == "" {
		return nil, ErrMissingName
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	workspace := &domain.Workspace{
		ID:     id,
		Name:   name,
		Status: domain.WorkspaceStatusActive,
	}

	if err := s.workspaceRepo.Create(workspace); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"workspace_id": workspace.ID,
		"name":         name,
	}).Info("Workspace criado com sucesso")

	return workspace, nil
}

func (s *Service) GetWorkspace(workspaceID string) (*domain.Workspace, error) {
	workspace, err := s.workspaceRepo.GetByID(workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, ErrWorkspaceNotFound
	}

	return workspace, nil
}

// UpdateSettings altera nome e vínculos da conta Meta (portfólio ativo,
// conta de anúncios, pixel, página e app) do workspace
func (s *Service) UpdateSettings(req *domain.UpdateWorkspaceRequest) (*domain.Workspace, error) {
	workspace, err := s.GetWorkspace(req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrMissingName
		}
		workspace.Name = *req.Name
	}

	if req.ActiveBusinessID != nil {
		workspace.ActiveBusinessID = req.ActiveBusinessID
	}

	if req.AdAccountID != nil {
		workspace.AdAccountID = req.AdAccountID
	}

	if req.PixelID != nil {
		workspace.PixelID = req.PixelID
	}

	if req.PageID != nil {
		workspace.PageID = req.PageID
	}

	if req.AppID != nil {
		workspace.AppID = req.AppID
	}

	if err := s.workspaceRepo.Update(workspace); err != nil {
		return nil, err
	}

	return workspace, nil
}

func (s *Service) ListMembers(workspaceID string) ([]*domain.Member, error) {
	return s.workspaceRepo.ListMembers(workspaceID)
}

// RemoveMember desativa o usuário no workspace. O último administrador
// ativo nunca pode ser removido.
func (s *Service) RemoveMember(workspaceID string, userID int) error {
	members, err := s.workspaceRepo.ListMembers(workspaceID)
	if err != nil {
		return err
	}

	var target *domain.Member
	admins := 0
	for _, member := range members {
		if member.RoleID == domain.RoleAdmin && member.Active {
			admins++
		}
		if member.UserID == userID {
			target = member
		}
	}

	if target == nil {
		return ErrMemberNotFound
	}

	if target.RoleID == domain.RoleAdmin && admins <= 1 {
		return ErrLastAdmin
	}

	return s.workspaceRepo.RemoveMember(workspaceID, userID)
}

func (s *Service) ChangeMemberRole(workspaceID string, userID, roleID int) error {
	if roleID != domain.RoleAdmin && roleID != domain.RoleManager && roleID != domain.RoleAnalyst {
		return ErrInvalidRole
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil || user.WorkspaceID != workspaceID {
		return ErrMemberNotFound
	}

	// Rebaixar o último administrador deixaria o workspace sem gestão
	if user.RoleID == domain.RoleAdmin && roleID != domain.RoleAdmin {
		members, err := s.workspaceRepo.ListMembers(workspaceID)
		if err != nil {
			return err
		}

		admins := 0
		for _, member := range members {
			if member.RoleID == domain.RoleAdmin && member.Active {
				admins++
			}
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	user.RoleID = roleID
	return s.userRepo.UpdateUser(user)
}

func (s *Service) CreateInvite(workspaceID, email string, roleID, invitedBy int) (*domain.Invite, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}

	if roleID != domain.RoleAdmin && roleID != domain.RoleManager && roleID != domain.RoleAnalyst {
		return nil, ErrInvalidRole
	}

	existing, err := s.inviteRepo.ListByWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, invite := range existing {
		if invite.Email == email && invite.Status == domain.InviteStatusPending && !invite.IsExpired(now) {
			return nil, ErrPendingInviteExists
		}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	token, err := gonanoid.Generate(inviteTokenAlphabet, inviteTokenLength)
	if err != nil {
		return nil, err
	}

	expirationDays := s.cfg.Invites.ExpirationDays
	if expirationDays <= 0 {
		expirationDays = 7
	}

	invite := &domain.Invite{
		ID:          id,
		WorkspaceID: workspaceID,
		Email:       email,
		RoleID:      roleID,
		Token:       token,
		Status:      domain.InviteStatusPending,
		InvitedBy:   invitedBy,
		ExpiresAt:   now.AddDate(0, 0, expirationDays),
	}

	if err := s.inviteRepo.Create(invite); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"workspace_id": workspaceID,
		"invite_id":    invite.ID,
		"role_id":      roleID,
	}).Info("Convite criado com sucesso")

	return invite, nil
}

// ListInvites marca convites pendentes vencidos como expirados na resposta
func (s *Service) ListInvites(workspaceID string) ([]*domain.Invite, error) {
	invites, err := s.inviteRepo.ListByWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, invite := range invites {
		if invite.IsExpired(now) {
			invite.Status = domain.InviteStatusExpired
		}
	}

	return invites, nil
}

// GetInviteByToken valida o token e devolve o convite sem consumi-lo.
// Convites vencidos são marcados como expirados no caminho.
func (s *Service) GetInviteByToken(token string) (*domain.Invite, error) {
	invite, err := s.inviteRepo.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, ErrInviteNotFound
	}

	if invite.IsExpired(time.Now()) {
		if err := s.inviteRepo.UpdateStatus(invite.ID, domain.InviteStatusExpired, nil); err != nil {
			logrus.WithError(err).WithField("invite_id", invite.ID).
				Warn("Erro ao marcar convite como expirado")
		}
		return nil, ErrInviteExpired
	}

	if invite.Status != domain.InviteStatusPending {
		return nil, ErrInviteNotPending
	}

	return invite, nil
}

// AcceptInvite valida o token e marca o convite como aceito. Deve ser chamado
// só depois que a conta do convidado existe, para um erro na criação do
// usuário não consumir o convite.
func (s *Service) AcceptInvite(token string) (*domain.Invite, error) {
	invite, err := s.GetInviteByToken(token)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.inviteRepo.UpdateStatus(invite.ID, domain.InviteStatusAccepted, &now); err != nil {
		return nil, err
	}

	invite.Status = domain.InviteStatusAccepted
	invite.AcceptedAt = &now
	return invite, nil
}

func (s *Service) RevokeInvite(workspaceID, inviteID string) error {
	invite, err := s.inviteRepo.GetByID(inviteID)
	if err != nil {
		return err
	}
	if invite == nil || invite.WorkspaceID != workspaceID {
		return ErrInviteNotFound
	}

	if invite.Status != domain.InviteStatusPending {
		return ErrInviteNotPending
	}

	return s.inviteRepo.UpdateStatus(inviteID, domain.InviteStatusRevoked, nil)
}

// RecordActivity registra a ação no log do workspace. Falha de escrita não
// interrompe a operação que a originou, só é logada.
func (s *Service) RecordActivity(entry *domain.ActivityEntry) {
	if err := s.activityRepo.Append(entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"workspace_id": entry.WorkspaceID,
			"action":       entry.Action,
		}).Warn("Erro ao registrar atividade do workspace")
	}
}

func (s *Service) ListActivity(workspaceID string, limit, offset int) ([]*domain.ActivityEntry, error) {
	return s.activityRepo.ListByWorkspace(workspaceID, limit, offset)
}
