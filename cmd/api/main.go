package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/api"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/scheduler"
	"github.com/vfg2006/ads-manager-api/internal/usecases/audiencing"
	"github.com/vfg2006/ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/ads-manager-api/internal/usecases/creative"
	"github.com/vfg2006/ads-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-manager-api/internal/usecases/workspacing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	workspaceRepo := repository.NewWorkspaceRepository(pgConn)
	inviteRepo := repository.NewInviteRepository(pgConn)
	activityRepo := repository.NewActivityRepository(pgConn)
	draftRepo := repository.NewDraftRepository(pgConn)
	connectionRepo := repository.NewConnectionRepository(pgConn)
	insightRepo := repository.NewInsightRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// O token de longa duração renovado fica persistido junto às conexões
	tokenManager := metaclient.NewTokenManager(cfg, connectionRepo)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	workspacer := workspacing.NewService(cfg, workspaceRepo, userRepo, inviteRepo, activityRepo)
	campaigner := campaigning.NewService(metaIntegrator, draftRepo)
	audiencer := audiencing.NewService(metaIntegrator)
	creativer := creative.NewService(metaIntegrator)

	// Serviço de insights com cache local em Postgres
	insighter := insighting.NewService(cfg, metaIntegrator).WithCache(insightRepo)

	connectionSyncService := scheduler.NewConnectionSyncService(
		workspaceRepo,
		connectionRepo,
		metaIntegrator,
		insighter,
		cfg,
	)

	if err := connectionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação de conexões")
	} else {
		logrus.Info("Agendador de verificação de conexões iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:   authenticator,
		Workspacer:      workspacer,
		Campaigner:      campaigner,
		Audiencer:       audiencer,
		Creativer:       creativer,
		Insighter:       insighter,
		Directory:       metaIntegrator,
		ConnectionRepo:  connectionRepo,
		ConnectionSync:  connectionSyncService,
		ConnectionProbe: metaIntegrator,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
