package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-manager-api/internal/usecases/workspacing"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type acceptInviteMocks struct {
	inviteRepo *mocks.MockInviteRepository
	userRepo   *mocks.MockUserRepository
}

func newAcceptInviteHandler(t *testing.T) (http.HandlerFunc, *acceptInviteMocks) {
	ctrl := gomock.NewController(t)
	m := &acceptInviteMocks{
		inviteRepo: mocks.NewMockInviteRepository(ctrl),
		userRepo:   mocks.NewMockUserRepository(ctrl),
	}

	cfg := &config.Config{SecretKey: "chave-de-teste"}

	workspaces := workspacing.NewService(
		cfg,
		mocks.NewMockWorkspaceRepository(ctrl),
		m.userRepo,
		m.inviteRepo,
		mocks.NewMockActivityRepository(ctrl),
	)
	auth := authenticating.NewService(m.userRepo, cfg)

	return AcceptInvite(workspaces, auth), m
}

func pendingInvite() *domain.Invite {
	return &domain.Invite{
		ID:          "inv_1",
		WorkspaceID: "ws_1",
		Email:       "ana@email.com",
		RoleID:      domain.RoleAnalyst,
		Token:       "token-convite",
		Status:      domain.InviteStatusPending,
		ExpiresAt:   time.Now().AddDate(0, 0, 7),
	}
}

func acceptInviteRequest() *http.Request {
	body := `{"token":"token-convite","name":"Ana","lastname":"Souza","password":"Senha@123"}`
	return httptest.NewRequest(http.MethodPost, "/v1/invites/accept", strings.NewReader(body))
}

func TestAcceptInvite(t *testing.T) {
	handler, m := newAcceptInviteHandler(t)

	m.inviteRepo.EXPECT().
		GetByToken("token-convite").
		Return(pendingInvite(), nil).
		Times(2)

	m.userRepo.EXPECT().
		GetUserByEmail("ana@email.com").
		Return(nil, nil)

	createUser := m.userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, "ws_1", user.WorkspaceID)
			assert.Equal(t, domain.RoleAnalyst, user.RoleID)
			assert.True(t, user.Active)
			user.ID = 10
			return user, nil
		})

	// O convite só é consumido depois da conta criada
	gomock.InOrder(
		createUser,
		m.inviteRepo.EXPECT().
			UpdateStatus("inv_1", domain.InviteStatusAccepted, gomock.Any()).
			Return(nil),
	)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, acceptInviteRequest())

	require.Equal(t, http.StatusCreated, recorder.Code)

	var user domain.User
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&user))
	assert.Equal(t, 10, user.ID)
	assert.Equal(t, "ana@email.com", user.Email)
}

func TestAcceptInvite_EmailJaCadastradoNaoConsomeConvite(t *testing.T) {
	handler, m := newAcceptInviteHandler(t)

	m.inviteRepo.EXPECT().
		GetByToken("token-convite").
		Return(pendingInvite(), nil)

	// Conta já existe para o email do convite
	m.userRepo.EXPECT().
		GetUserByEmail("ana@email.com").
		Return(&domain.User{ID: 5, Email: "ana@email.com"}, nil)

	// Nenhuma expectativa de UpdateStatus: o convite deve permanecer
	// pendente quando a criação da conta falha

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, acceptInviteRequest())

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrUserAlreadyExists, apiErr.Code)
}

func TestAcceptInvite_ConviteExpirado(t *testing.T) {
	handler, m := newAcceptInviteHandler(t)

	expired := pendingInvite()
	expired.ExpiresAt = time.Now().AddDate(0, 0, -1)

	m.inviteRepo.EXPECT().
		GetByToken("token-convite").
		Return(expired, nil)

	m.inviteRepo.EXPECT().
		UpdateStatus("inv_1", domain.InviteStatusExpired, nil).
		Return(nil)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, acceptInviteRequest())

	assert.Equal(t, http.StatusGone, recorder.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrInviteExpired, apiErr.Code)
}
