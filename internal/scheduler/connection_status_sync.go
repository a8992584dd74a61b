package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// Horário da limpeza diária do cache de insights
const cachePruneSchedule = "0 4 * * *"

// ConnectionChecker consulta o estado da conexão de um workspace no Graph
type ConnectionChecker interface {
	CheckConnection(workspaceID string) (*domain.ConnectionStatus, error)
}

// CachePruner remove entradas vencidas do cache de insights
type CachePruner interface {
	PruneCache() (int64, error)
}

// ConnectionSyncConfig representa a configuração do agendador de conexões
type ConnectionSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// SyncStatus resume o estado corrente do agendador para o endpoint de cron
type SyncStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	LastChecked     int        `json:"last_checked"`
	LastFailures    int        `json:"last_failures"`
}

// ConnectionSyncService agenda e executa a verificação periódica do estado
// das conexões Meta de cada workspace
type ConnectionSyncService struct {
	scheduler      *gocron.Scheduler
	config         ConnectionSyncConfig
	workspaceRepo  repository.WorkspaceRepository
	connectionRepo repository.ConnectionRepository
	metaService    ConnectionChecker
	pruner         CachePruner

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastChecked         int
	lastFailures        int
}

// NewConnectionSyncService cria uma nova instância do serviço de sincronização de conexões
func NewConnectionSyncService(
	workspaceRepo repository.WorkspaceRepository,
	connectionRepo repository.ConnectionRepository,
	metaService ConnectionChecker,
	pruner CachePruner,
	appConfig *config.Config,
) *ConnectionSyncService {
	syncConfig := ConnectionSyncConfig{
		CronSchedule:        appConfig.ConnectionSync.CronSchedule,
		RequestDelaySeconds: appConfig.ConnectionSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.ConnectionSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de conexões carregada")

	return &ConnectionSyncService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         syncConfig,
		workspaceRepo:  workspaceRepo,
		connectionRepo: connectionRepo,
		metaService:    metaService,
		pruner:         pruner,
	}
}

// Start inicia o agendador
func (s *ConnectionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de conexões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de conexões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllConnections()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de conexões: %w", err)
	}

	if s.pruner != nil {
		_, err = s.scheduler.Cron(cachePruneSchedule).Do(func() {
			removed, err := s.pruner.PruneCache()
			if err != nil {
				logrus.WithError(err).Error("Erro ao limpar o cache de insights")
				return
			}

			logrus.WithField("removed", removed).Info("Limpeza do cache de insights concluída")
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar limpeza do cache de insights: %w", err)
		}
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de conexões")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma verificação fora do agendamento
func (s *ConnectionSyncService) TriggerManualSync() {
	go s.syncAllConnections()
}

// GetStatus retorna o estado corrente do agendador
func (s *ConnectionSyncService) GetStatus() *SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := &SyncStatus{
		Running:      s.syncRunning,
		LastChecked:  s.lastChecked,
		LastFailures: s.lastFailures,
	}

	if !s.lastSyncStartedAt.IsZero() {
		started := s.lastSyncStartedAt
		status.LastStartedAt = &started
	}

	if !s.lastSyncCompletedAt.IsZero() {
		completed := s.lastSyncCompletedAt
		status.LastCompletedAt = &completed
	}

	return status
}

// syncAllConnections verifica o estado da conexão de todos os workspaces ativos
func (s *ConnectionSyncService) syncAllConnections() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de conexões já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando verificação das conexões Meta dos workspaces")

	workspaces, err := s.workspaceRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar workspaces para verificação de conexão")
		return
	}

	if len(workspaces) == 0 {
		logrus.Info("Nenhum workspace ativo para verificação de conexão")
		return
	}

	checked, failures := s.processWorkspaces(workspaces)

	s.syncMutex.Lock()
	s.lastChecked = checked
	s.lastFailures = failures
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"workspaces": len(workspaces),
		"checked":    checked,
		"failures":   failures,
	}).Info("Verificação das conexões Meta concluída")
}

func (s *ConnectionSyncService) processWorkspaces(workspaces []*domain.Workspace) (checked, failures int) {
	delay := time.Duration(s.config.RequestDelaySeconds) * time.Second

	for i, workspace := range workspaces {
		// Espaçar as chamadas ao Graph para não estourar o rate limit
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}

		status, err := s.metaService.CheckConnection(workspace.ID)
		if err != nil {
			failures++
			logrus.WithError(err).WithField("workspace_id", workspace.ID).
				Error("Erro ao verificar conexão do workspace")
			continue
		}

		if err := s.connectionRepo.SaveStatus(status); err != nil {
			failures++
			logrus.WithError(err).WithField("workspace_id", workspace.ID).
				Error("Erro ao persistir status da conexão")
			continue
		}

		checked++
	}

	return checked, failures
}
