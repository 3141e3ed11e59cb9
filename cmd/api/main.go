package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/godcrm-api/infrastructure/database/postgres"
	"github.com/vfg2006/godcrm-api/infrastructure/integrator/openai"
	"github.com/vfg2006/godcrm-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/godcrm-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/godcrm-api/infrastructure/integrator/youtube/youtubeclient"
	"github.com/vfg2006/godcrm-api/infrastructure/repository"
	"github.com/vfg2006/godcrm-api/internal/api"
	"github.com/vfg2006/godcrm-api/internal/config"
	"github.com/vfg2006/godcrm-api/internal/scheduler"
	"github.com/vfg2006/godcrm-api/internal/usecases/analyzing"
	"github.com/vfg2006/godcrm-api/internal/usecases/authenticating"
	"github.com/vfg2006/godcrm-api/internal/usecases/billing"
	"github.com/vfg2006/godcrm-api/internal/usecases/clients"
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
	clientRepo := repository.NewClientRepository(pgConn)
	noteRepo := repository.NewNoteRepository(pgConn)
	assetRepo := repository.NewAssetRepository(pgConn)
	editRepo := repository.NewClientEditRepository(pgConn)
	closedClientRepo := repository.NewClosedClientRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	tweetRepo := repository.NewTweetRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	openaiClient := openaiclient.NewClient(cfg)
	openaiIntegrator := openai.New(openaiClient)

	youtubeClient := youtubeclient.NewClient(cfg)
	youtubeIntegrator := youtube.New(youtubeClient)

	clientService := clients.NewService(clientRepo, noteRepo, assetRepo, editRepo)
	billingService := billing.NewService(closedClientRepo, invoiceRepo)
	analyzerService := analyzing.NewService(tweetRepo, clientRepo, closedClientRepo, openaiIntegrator)

	// Inicializa o agendador de lembrete de faturas pendentes
	invoiceReminderService := scheduler.NewInvoiceReminderService(closedClientRepo, cfg)

	if err := invoiceReminderService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de lembrete de faturas")
	} else {
		logrus.Info("Agendador de lembrete de faturas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		clientService,
		billingService,
		analyzerService,
		youtubeIntegrator,
		authenticator,
		invoiceReminderService,
	)
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
