// Package scheduler contém os serviços de agendamento de tarefas periódicas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/godcrm-api/infrastructure/repository"
	"github.com/vfg2006/godcrm-api/internal/config"
)

type InvoiceReminderConfig struct {
	CronSchedule string
	Enabled      bool
}

// InvoiceReminderService percorre mensalmente os clientes fechados sem fatura
// registrada para o mês corrente e registra os pendentes no log, para a equipe
// de cobrança emitir as faturas que faltam.
type InvoiceReminderService struct {
	scheduler           *gocron.Scheduler
	closedClientRepo    repository.ClosedClientRepository
	config              InvoiceReminderConfig
	reminderRunning     bool
	reminderMutex       sync.Mutex
	lastRunStartedAt    time.Time
	lastRunCompletedAt  time.Time
	lastPendingAccounts int
}

func NewInvoiceReminderService(
	closedClientRepo repository.ClosedClientRepository,
	cfg *config.Config,
) *InvoiceReminderService {
	reminderConfig := InvoiceReminderConfig{
		CronSchedule: cfg.InvoiceReminder.CronSchedule, // Default: dia 1 de cada mês às 9h
		Enabled:      cfg.InvoiceReminder.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reminderConfig.CronSchedule,
	}).Info("Configuração do agendador de lembrete de faturas carregada")

	return &InvoiceReminderService{
		scheduler:        scheduler,
		closedClientRepo: closedClientRepo,
		config:           reminderConfig,
	}
}

func (s *InvoiceReminderService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de lembrete de faturas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de lembrete de faturas")

	// Agendar a verificação de faturas pendentes
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RemindPendingInvoices(); err != nil {
			logrus.WithError(err).Error("Erro na verificação de faturas pendentes")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar lembrete de faturas: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de lembrete de faturas")
		s.scheduler.Stop()
	}()

	return nil
}

// RemindPendingInvoices verifica os clientes fechados sem fatura no mês corrente
func (s *InvoiceReminderService) RemindPendingInvoices() error {
	s.reminderMutex.Lock()
	if s.reminderRunning {
		s.reminderMutex.Unlock()
		logrus.Warn("Verificação de faturas pendentes já está em execução")
		return nil
	}
	s.reminderRunning = true
	s.lastRunStartedAt = time.Now()
	s.reminderMutex.Unlock()

	defer func() {
		s.reminderMutex.Lock()
		s.reminderRunning = false
		s.lastRunCompletedAt = time.Now()
		s.reminderMutex.Unlock()
	}()

	month := time.Now().Format("2006-01")

	logrus.WithField("month", month).Info("Iniciando verificação de faturas pendentes")

	pending, err := s.closedClientRepo.ListWithoutInvoiceForMonth(month)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar clientes fechados sem fatura no mês")
		return err
	}

	s.reminderMutex.Lock()
	s.lastPendingAccounts = len(pending)
	s.reminderMutex.Unlock()

	if len(pending) == 0 {
		logrus.WithField("month", month).Info("Todos os clientes fechados possuem fatura no mês")
		return nil
	}

	for _, client := range pending {
		logrus.WithFields(logrus.Fields{
			"closed_client_id": client.ID,
			"client_name":      client.Name,
			"month":            month,
			"monthly_revenue":  client.MonthlyRevenue,
		}).Warn("Cliente fechado sem fatura emitida no mês")
	}

	logrus.WithFields(logrus.Fields{
		"month":           month,
		"pending_clients": len(pending),
	}).Info("Verificação de faturas pendentes concluída")

	return nil
}

// TriggerManualRun inicia manualmente uma verificação de faturas pendentes
func (s *InvoiceReminderService) TriggerManualRun() {
	s.reminderMutex.Lock()
	if s.reminderRunning {
		s.reminderMutex.Unlock()
		logrus.Info("Verificação de faturas pendentes já em andamento, ignorando solicitação manual")
		return
	}
	s.reminderMutex.Unlock()

	logrus.Info("Iniciando verificação manual de faturas pendentes")
	go s.RemindPendingInvoices()
}

// GetStatus retorna o status atual do agendador
func (s *InvoiceReminderService) GetStatus() map[string]any {
	s.reminderMutex.Lock()
	defer s.reminderMutex.Unlock()

	return map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_pending_accounts": s.lastPendingAccounts,
		"reminder_running":      s.reminderRunning,
	}
}
