package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type fakeChecker struct {
	statuses map[string]*domain.ConnectionStatus
	errs     map[string]error
	calls    []string
}

func (f *fakeChecker) CheckConnection(workspaceID string) (*domain.ConnectionStatus, error) {
	f.calls = append(f.calls, workspaceID)
	if err := f.errs[workspaceID]; err != nil {
		return nil, err
	}
	return f.statuses[workspaceID], nil
}

func newSyncService(t *testing.T, checker ConnectionChecker) (*ConnectionSyncService, *mocks.MockWorkspaceRepository, *mocks.MockConnectionRepository) {
	ctrl := gomock.NewController(t)
	workspaceRepo := mocks.NewMockWorkspaceRepository(ctrl)
	connectionRepo := mocks.NewMockConnectionRepository(ctrl)

	cfg := &config.Config{
		ConnectionSync: config.ConnectionSync{
			CronSchedule:        "0 */6 * * *",
			RequestDelaySeconds: 0,
			Enabled:             true,
		},
	}

	return NewConnectionSyncService(workspaceRepo, connectionRepo, checker, nil, cfg), workspaceRepo, connectionRepo
}

func TestConnectionSyncService_syncAllConnections(t *testing.T) {
	now := time.Now()
	checker := &fakeChecker{
		statuses: map[string]*domain.ConnectionStatus{
			"ws_1": {WorkspaceID: "ws_1", State: domain.ConnectionStateActive, LastCheckedAt: now},
			"ws_2": {WorkspaceID: "ws_2", State: domain.ConnectionStateExpired, LastCheckedAt: now},
		},
	}

	service, workspaceRepo, connectionRepo := newSyncService(t, checker)

	workspaceRepo.EXPECT().
		ListActive().
		Return([]*domain.Workspace{
			{ID: "ws_1", Status: domain.WorkspaceStatusActive},
			{ID: "ws_2", Status: domain.WorkspaceStatusActive},
		}, nil)

	saved := make([]*domain.ConnectionStatus, 0, 2)
	connectionRepo.EXPECT().
		SaveStatus(gomock.Any()).
		DoAndReturn(func(status *domain.ConnectionStatus) error {
			saved = append(saved, status)
			return nil
		}).
		Times(2)

	service.syncAllConnections()

	assert.Equal(t, []string{"ws_1", "ws_2"}, checker.calls)
	assert.Len(t, saved, 2)

	status := service.GetStatus()
	assert.False(t, status.Running)
	assert.Equal(t, 2, status.LastChecked)
	assert.Zero(t, status.LastFailures)
	assert.NotNil(t, status.LastStartedAt)
	assert.NotNil(t, status.LastCompletedAt)
}

func TestConnectionSyncService_FalhaDeUmWorkspaceNaoInterrompe(t *testing.T) {
	checker := &fakeChecker{
		statuses: map[string]*domain.ConnectionStatus{
			"ws_2": {WorkspaceID: "ws_2", State: domain.ConnectionStateActive},
		},
		errs: map[string]error{
			"ws_1": errors.New("token expirado"),
		},
	}

	service, workspaceRepo, connectionRepo := newSyncService(t, checker)

	workspaceRepo.EXPECT().
		ListActive().
		Return([]*domain.Workspace{
			{ID: "ws_1"},
			{ID: "ws_2"},
		}, nil)

	connectionRepo.EXPECT().
		SaveStatus(gomock.Any()).
		Return(nil)

	service.syncAllConnections()

	status := service.GetStatus()
	assert.Equal(t, 1, status.LastChecked)
	assert.Equal(t, 1, status.LastFailures)
}

func TestConnectionSyncService_SemWorkspaces(t *testing.T) {
	checker := &fakeChecker{}
	service, workspaceRepo, _ := newSyncService(t, checker)

	workspaceRepo.EXPECT().ListActive().Return(nil, nil)

	service.syncAllConnections()

	assert.Empty(t, checker.calls)
	assert.Zero(t, service.GetStatus().LastChecked)
}
