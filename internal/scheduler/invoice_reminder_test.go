package scheduler

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/godcrm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/godcrm-api/internal/config"
	"github.com/vfg2006/godcrm-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newReminderService(t *testing.T) (*InvoiceReminderService, *mocks.MockClosedClientRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	closedClientRepo := mocks.NewMockClosedClientRepository(ctrl)
	cfg := &config.Config{
		InvoiceReminder: config.InvoiceReminder{
			CronSchedule: "0 9 1 * *",
			Enabled:      false,
		},
	}

	return NewInvoiceReminderService(closedClientRepo, cfg), closedClientRepo
}

func TestRemindPendingInvoices(t *testing.T) {
	t.Run("Deve registrar a quantidade de clientes sem fatura no mês", func(t *testing.T) {
		service, closedClientRepo := newReminderService(t)

		closedClientRepo.EXPECT().
			ListWithoutInvoiceForMonth(gomock.Any()).
			Return([]*domain.ClosedClient{{ID: "cc-1", Name: "Ana"}}, nil)

		err := service.RemindPendingInvoices()
		assert.NoError(t, err)

		status := service.GetStatus()
		assert.Equal(t, 1, status["last_pending_accounts"])
		assert.Equal(t, false, status["reminder_running"])
	})

	t.Run("Status pode ser consultado enquanto a verificação roda", func(t *testing.T) {
		service, closedClientRepo := newReminderService(t)

		started := make(chan struct{})
		release := make(chan struct{})

		closedClientRepo.EXPECT().
			ListWithoutInvoiceForMonth(gomock.Any()).
			DoAndReturn(func(month string) ([]*domain.ClosedClient, error) {
				close(started)
				<-release
				return nil, nil
			})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = service.RemindPendingInvoices()
		}()

		<-started
		status := service.GetStatus()
		assert.Equal(t, true, status["reminder_running"])

		close(release)
		wg.Wait()

		status = service.GetStatus()
		assert.Equal(t, false, status["reminder_running"])
		assert.Equal(t, 0, status["last_pending_accounts"])
	})
}
