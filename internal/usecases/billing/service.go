package billing

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/godcrm-api/infrastructure/repository"
	"github.com/vfg2006/godcrm-api/internal/domain"
	"github.com/vfg2006/godcrm-api/pkg/utils"
)

var (
	ErrClosedClientNotFound = errors.New("cliente fechado não encontrado")
	ErrInvoiceNotFound      = errors.New("fatura não encontrada")
	ErrMissingName          = errors.New("nome é obrigatório")
	ErrInvalidInvoiceStatus = errors.New("status de fatura inválido")
	ErrInvalidMonth         = errors.New("mês deve estar no formato YYYY-MM")
)

type BillingService interface {
	ListClosedClients(actorID int) ([]*domain.ClosedClient, error)
	GetClosedClient(actorID int, id string) (*domain.ClosedClient, error)
	CreateClosedClient(actorID int, name string, videosPerMonth int, chargePerVideo float64) (*domain.ClosedClient, error)
	UpdateClosedClient(actorID int, req *domain.UpdateClosedClientRequest) (*domain.ClosedClient, error)
	DeleteClosedClient(actorID int, id string) error

	ListInvoices(actorID int, closedClientID string) ([]*domain.Invoice, error)
	CreateInvoice(actorID int, invoice *domain.Invoice) (*domain.Invoice, error)
	UpdateInvoiceStatus(actorID int, id string, status string) error
	DeleteInvoice(actorID int, id string) error
}

type Service struct {
	closedClientRepo repository.ClosedClientRepository
	invoiceRepo      repository.InvoiceRepository
}

func NewService(
	closedClientRepo repository.ClosedClientRepository,
	invoiceRepo repository.InvoiceRepository,
) BillingService {
	return &Service{
		closedClientRepo: closedClientRepo,
		invoiceRepo:      invoiceRepo,
	}
}

func (s *Service) ListClosedClients(actorID int) ([]*domain.ClosedClient, error) {
	return s.closedClientRepo.List(actorID)
}

func (s *Service) GetClosedClient(actorID int, id string) (*domain.ClosedClient, error) {
	return s.closedClientRepo.GetByID(actorID, id)
}

func (s *Service) CreateClosedClient(actorID int, name string, videosPerMonth int, chargePerVideo float64) (*domain.ClosedClient, error) {
	if name == "" {
		return nil, ErrMissingName
	}

	// A validação e o cálculo acontecem antes de qualquer chamada de persistência
	revenue, err := MonthlyRevenue(videosPerMonth, chargePerVideo)
	if err != nil {
		return nil, err
	}

	client := &domain.ClosedClient{
		Name:           name,
		VideosPerMonth: videosPerMonth,
		ChargePerVideo: chargePerVideo,
		MonthlyRevenue: revenue,
	}

	return s.closedClientRepo.Create(actorID, client)
}

// UpdateClosedClient aplica uma atualização parcial. Quando o payload traz só
// um dos campos de receita, o outro é resolvido a partir do registro
// armazenado antes do recálculo: recalcular apenas com os campos enviados
// corromperia o monthlyRevenue silenciosamente.
func (s *Service) UpdateClosedClient(actorID int, req *domain.UpdateClosedClientRequest) (*domain.ClosedClient, error) {
	stored, err := s.closedClientRepo.GetByID(actorID, req.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrClosedClientNotFound
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrMissingName
		}
		stored.Name = *req.Name
	}

	if req.VideosPerMonth != nil {
		stored.VideosPerMonth = *req.VideosPerMonth
	}

	if req.ChargePerVideo != nil {
		stored.ChargePerVideo = *req.ChargePerVideo
	}

	revenue, err := MonthlyRevenue(stored.VideosPerMonth, stored.ChargePerVideo)
	if err != nil {
		return nil, err
	}
	stored.MonthlyRevenue = revenue

	if err := s.closedClientRepo.Update(actorID, stored); err != nil {
		return nil, err
	}

	return stored, nil
}

func (s *Service) DeleteClosedClient(actorID int, id string) error {
	return s.closedClientRepo.Delete(actorID, id)
}

func (s *Service) ListInvoices(actorID int, closedClientID string) ([]*domain.Invoice, error) {
	return s.invoiceRepo.ListByClosedClient(actorID, closedClientID)
}

func (s *Service) CreateInvoice(actorID int, invoice *domain.Invoice) (*domain.Invoice, error) {
	parent, err := s.closedClientRepo.GetByID(actorID, invoice.ClosedClientID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, ErrClosedClientNotFound
	}

	if invoice.Status == "" {
		invoice.Status = domain.InvoicePending
	}
	if !domain.ValidInvoiceStatus(invoice.Status) {
		return nil, ErrInvalidInvoiceStatus
	}

	if !validMonth(invoice.Month) {
		return nil, ErrInvalidMonth
	}

	if invoice.Number == "" {
		number, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}
		invoice.Number = "INV-" + number
	}

	return s.invoiceRepo.Create(actorID, invoice)
}

func (s *Service) UpdateInvoiceStatus(actorID int, id string, status string) error {
	if !domain.ValidInvoiceStatus(status) {
		return ErrInvalidInvoiceStatus
	}

	invoice, err := s.invoiceRepo.GetByID(actorID, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return ErrInvoiceNotFound
	}

	return s.invoiceRepo.UpdateStatus(actorID, id, status)
}

func (s *Service) DeleteInvoice(actorID int, id string) error {
	return s.invoiceRepo.Delete(actorID, id)
}

// validMonth aceita apenas o formato YYYY-MM
func validMonth(month string) bool {
	if len(month) != 7 || month[4] != '-' {
		return false
	}
	for i, r := range month {
		if i == 4 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	mm := (int(month[5]-'0') * 10) + int(month[6]-'0')
	return mm >= 1 && mm <= 12
}
