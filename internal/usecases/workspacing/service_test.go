package workspacing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	workspaceRepo *mocks.MockWorkspaceRepository
	userRepo      *mocks.MockUserRepository
	inviteRepo    *mocks.MockInviteRepository
	activityRepo  *mocks.MockActivityRepository
}

func newTestService(t *testing.T) (Workspacer, *testMocks) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		workspaceRepo: mocks.NewMockWorkspaceRepository(ctrl),
		userRepo:      mocks.NewMockUserRepository(ctrl),
		inviteRepo:    mocks.NewMockInviteRepository(ctrl),
		activityRepo:  mocks.NewMockActivityRepository(ctrl),
	}

	cfg := &config.Config{
		Invites: config.Invites{ExpirationDays: 7},
	}

	return NewService(cfg, m.workspaceRepo, m.userRepo, m.inviteRepo, m.activityRepo), m
}

func TestService_CreateInvite(t *testing.T) {
	service, m := newTestService(t)

	m.inviteRepo.EXPECT().
		ListByWorkspace("ws_1").
		Return(nil, nil)

	m.inviteRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(invite *domain.Invite) error {
			assert.Equal(t, "ws_1", invite.WorkspaceID)
			assert.Equal(t, "ana@email.com", invite.Email)
			assert.Equal(t, domain.InviteStatusPending, invite.Status)
			assert.Len(t, invite.Token, 32)

			// Prazo de 7 dias configurado
			expected := time.Now().AddDate(0, 0, 7)
			assert.WithinDuration(t, expected, invite.ExpiresAt, time.Minute)
			return nil
		})

	invite, err := service.CreateInvite("ws_1", "ana@email.com", domain.RoleAnalyst, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, invite.ID)
	assert.NotEmpty(t, invite.Token)
}

func TestService_CreateInvite_Validacoes(t *testing.T) {
	service, m := newTestService(t)

	_, err := service.CreateInvite("ws_1", "", domain.RoleAnalyst, 10)
	assert.ErrorIs(t, err, ErrMissingEmail)

	_, err = service.CreateInvite("ws_1", "ana@email.com", 99, 10)
	assert.ErrorIs(t, err, ErrInvalidRole)

	// Convite pendente e válido para o mesmo email bloqueia um novo
	m.inviteRepo.EXPECT().
		ListByWorkspace("ws_1").
		Return([]*domain.Invite{
			{
				Email:     "ana@email.com",
				Status:    domain.InviteStatusPending,
				ExpiresAt: time.Now().AddDate(0, 0, 3),
			},
		}, nil)

	_, err = service.CreateInvite("ws_1", "ana@email.com", domain.RoleAnalyst, 10)
	assert.ErrorIs(t, err, ErrPendingInviteExists)
}

func TestService_AcceptInvite(t *testing.T) {
	tests := []struct {
		name    string
		invite  *domain.Invite
		setup   func(m *testMocks, invite *domain.Invite)
		wantErr error
	}{
		{
			name: "Aceite com sucesso",
			invite: &domain.Invite{
				ID:        "inv_1",
				Status:    domain.InviteStatusPending,
				ExpiresAt: time.Now().AddDate(0, 0, 3),
			},
			setup: func(m *testMocks, invite *domain.Invite) {
				m.inviteRepo.EXPECT().GetByToken("tok").Return(invite, nil)
				m.inviteRepo.EXPECT().
					UpdateStatus("inv_1", domain.InviteStatusAccepted, gomock.Any()).
					Return(nil)
			},
		},
		{
			name:   "Token desconhecido",
			invite: nil,
			setup: func(m *testMocks, _ *domain.Invite) {
				m.inviteRepo.EXPECT().GetByToken("tok").Return(nil, nil)
			},
			wantErr: ErrInviteNotFound,
		},
		{
			name: "Convite vencido é marcado como expirado",
			invite: &domain.Invite{
				ID:        "inv_1",
				Status:    domain.InviteStatusPending,
				ExpiresAt: time.Now().AddDate(0, 0, -1),
			},
			setup: func(m *testMocks, invite *domain.Invite) {
				m.inviteRepo.EXPECT().GetByToken("tok").Return(invite, nil)
				m.inviteRepo.EXPECT().
					UpdateStatus("inv_1", domain.InviteStatusExpired, nil).
					Return(nil)
			},
			wantErr: ErrInviteExpired,
		},
		{
			name: "Convite revogado não pode ser aceito",
			invite: &domain.Invite{
				ID:        "inv_1",
				Status:    domain.InviteStatusRevoked,
				ExpiresAt: time.Now().AddDate(0, 0, 3),
			},
			setup: func(m *testMocks, invite *domain.Invite) {
				m.inviteRepo.EXPECT().GetByToken("tok").Return(invite, nil)
			},
			wantErr: ErrInviteNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m, tt.invite)

			invite, err := service.AcceptInvite("tok")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, invite)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.InviteStatusAccepted, invite.Status)
			assert.NotNil(t, invite.AcceptedAt)
		})
	}
}

func TestService_GetInviteByToken_NaoConsomeConvite(t *testing.T) {
	service, m := newTestService(t)

	invite := &domain.Invite{
		ID:        "inv_1",
		Status:    domain.InviteStatusPending,
		ExpiresAt: time.Now().AddDate(0, 0, 3),
	}

	// Só a leitura do token: nenhuma chamada de UpdateStatus esperada
	m.inviteRepo.EXPECT().GetByToken("tok").Return(invite, nil)

	found, err := service.GetInviteByToken("tok")
	require.NoError(t, err)
	assert.Equal(t, domain.InviteStatusPending, found.Status)
	assert.Nil(t, found.AcceptedAt)
}

func TestService_RemoveMember_UltimoAdmin(t *testing.T) {
	service, m := newTestService(t)

	m.workspaceRepo.EXPECT().
		ListMembers("ws_1").
		Return([]*domain.Member{
			{UserID: 1, RoleID: domain.RoleAdmin, Active: true},
			{UserID: 2, RoleID: domain.RoleAnalyst, Active: true},
		}, nil)

	err := service.RemoveMember("ws_1", 1)
	assert.ErrorIs(t, err, ErrLastAdmin)
}

func TestService_RemoveMember(t *testing.T) {
	service, m := newTestService(t)

	gomock.InOrder(
		m.workspaceRepo.EXPECT().
			ListMembers("ws_1").
			Return([]*domain.Member{
				{UserID: 1, RoleID: domain.RoleAdmin, Active: true},
				{UserID: 2, RoleID: domain.RoleAdmin, Active: true},
				{UserID: 3, RoleID: domain.RoleAnalyst, Active: true},
			}, nil),
		m.workspaceRepo.EXPECT().RemoveMember("ws_1", 2).Return(nil),
	)

	assert.NoError(t, service.RemoveMember("ws_1", 2))
}

func TestService_ChangeMemberRole_RebaixarUltimoAdmin(t *testing.T) {
	service, m := newTestService(t)

	m.userRepo.EXPECT().
		GetUserByID(1).
		Return(&domain.User{ID: 1, WorkspaceID: "ws_1", RoleID: domain.RoleAdmin}, nil)

	m.workspaceRepo.EXPECT().
		ListMembers("ws_1").
		Return([]*domain.Member{
			{UserID: 1, RoleID: domain.RoleAdmin, Active: true},
		}, nil)

	err := service.ChangeMemberRole("ws_1", 1, domain.RoleAnalyst)
	assert.ErrorIs(t, err, ErrLastAdmin)
}

func TestService_ChangeMemberRole(t *testing.T) {
	service, m := newTestService(t)

	m.userRepo.EXPECT().
		GetUserByID(2).
		Return(&domain.User{ID: 2, WorkspaceID: "ws_1", RoleID: domain.RoleAnalyst}, nil)

	m.userRepo.EXPECT().
		UpdateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) error {
			assert.Equal(t, domain.RoleManager, user.RoleID)
			return nil
		})

	assert.NoError(t, service.ChangeMemberRole("ws_1", 2, domain.RoleManager))
}

func TestService_ChangeMemberRole_OutroWorkspace(t *testing.T) {
	service, m := newTestService(t)

	m.userRepo.EXPECT().
		GetUserByID(2).
		Return(&domain.User{ID: 2, WorkspaceID: "ws_2"}, nil)

	err := service.ChangeMemberRole("ws_1", 2, domain.RoleManager)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestService_UpdateSettings(t *testing.T) {
	service, m := newTestService(t)

	businessID := "biz_1"
	pixelID := "px_1"

	m.workspaceRepo.EXPECT().
		GetByID("ws_1").
		Return(&domain.Workspace{ID: "ws_1", Name: "Agência"}, nil)

	m.workspaceRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(workspace *domain.Workspace) error {
			assert.Equal(t, &businessID, workspace.ActiveBusinessID)
			assert.Equal(t, &pixelID, workspace.PixelID)
			assert.Equal(t, "Agência", workspace.Name)
			return nil
		})

	workspace, err := service.UpdateSettings(&domain.UpdateWorkspaceRequest{
		ID:               "ws_1",
		ActiveBusinessID: &businessID,
		PixelID:          &pixelID,
	})
	require.NoError(t, err)
	assert.Equal(t, &businessID, workspace.ActiveBusinessID)
}

func TestService_ListInvites_MarcaExpirados(t *testing.T) {
	service, m := newTestService(t)

	m.inviteRepo.EXPECT().
		ListByWorkspace("ws_1").
		Return([]*domain.Invite{
			{ID: "inv_1", Status: domain.InviteStatusPending, ExpiresAt: time.Now().AddDate(0, 0, -2)},
			{ID: "inv_2", Status: domain.InviteStatusPending, ExpiresAt: time.Now().AddDate(0, 0, 2)},
		}, nil)

	invites, err := service.ListInvites("ws_1")
	require.NoError(t, err)

	assert.Equal(t, domain.InviteStatusExpired, invites[0].Status)
	assert.Equal(t, domain.InviteStatusPending, invites[1].Status)
}
