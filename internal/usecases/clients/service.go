package clients

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/godcrm-api/infrastructure/repository"
	"github.com/vfg2006/godcrm-api/internal/domain"
)

var (
	ErrClientNotFound        = errors.New("cliente não encontrado")
	ErrMissingName           = errors.New("nome é obrigatório")
	ErrInvalidTemperature    = errors.New("temperatura de lead inválida")
	ErrInvalidStatus         = errors.New("status de cliente inválido")
	ErrNegativeFollowUpCount = errors.New("follow_up_count não pode ser negativo")
	ErrMissingContent        = errors.New("conteúdo da nota é obrigatório")
	ErrMissingFileReference  = errors.New("url e nome do arquivo são obrigatórios")
)

type ClientService interface {
	List(actorID int) ([]*domain.Client, error)
	Get(actorID int, id string) (*domain.Client, error)
	Create(actorID int, client *domain.Client) (*domain.Client, error)
	Update(actorID int, req *domain.UpdateClientRequest) (*domain.Client, error)
	Delete(actorID int, id string) error
	EditHistory(actorID int, clientID string) ([]*domain.ClientEdit, error)

	ListNotes(actorID int, clientID string) ([]*domain.Note, error)
	AddNote(actorID int, clientID, content string) (*domain.Note, error)
	DeleteNote(actorID int, id string) error

	ListAssets(actorID int, clientID string) ([]*domain.Asset, error)
	AddAsset(actorID int, clientID, fileURL, fileName string) (*domain.Asset, error)
	DeleteAsset(actorID int, id string) error
}

type Service struct {
	clientRepo repository.ClientRepository
	noteRepo   repository.NoteRepository
	assetRepo  repository.AssetRepository
	editRepo   repository.ClientEditRepository
}

func NewService(
	clientRepo repository.ClientRepository,
	noteRepo repository.NoteRepository,
	assetRepo repository.AssetRepository,
	editRepo repository.ClientEditRepository,
) ClientService {
	return &Service{
		clientRepo: clientRepo,
		noteRepo:   noteRepo,
		assetRepo:  assetRepo,
		editRepo:   editRepo,
	}
}

func (s *Service) List(actorID int) ([]*domain.Client, error) {
	return s.clientRepo.List(actorID)
}

func (s *Service) Get(actorID int, id string) (*domain.Client, error) {
	return s.clientRepo.GetByID(actorID, id)
}

func (s *Service) Create(actorID int, client *domain.Client) (*domain.Client, error) {
	if client.Name == "" {
		return nil, ErrMissingName
	}

	if client.LeadTemperature == "" {
		client.LeadTemperature = domain.TemperatureCold
	}
	if !domain.ValidTemperature(client.LeadTemperature) {
		return nil, ErrInvalidTemperature
	}

	if client.Status == "" {
		client.Status = domain.StatusActive
	}
	if !domain.ValidStatus(client.Status) {
		return nil, ErrInvalidStatus
	}

	if client.FollowUpCount < 0 {
		return nil, ErrNegativeFollowUpCount
	}

	return s.clientRepo.Create(actorID, client)
}

// Update aplica a edição sobre o registro armazenado e, quando ao menos um
// campo mudou, grava um registro no log de edições. A escrita do log é
// sequenciada depois da atualização e é best-effort: se falhar, a atualização
// não é desfeita; a falha é apenas logada.
func (s *Service) Update(actorID int, req *domain.UpdateClientRequest) (*domain.Client, error) {
	stored, err := s.clientRepo.GetByID(actorID, req.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrClientNotFound
	}

	original := stored.FieldMap()

	merged := *stored
	applyUpdate(&merged, req)

	if !domain.ValidTemperature(merged.LeadTemperature) {
		return nil, ErrInvalidTemperature
	}
	if !domain.ValidStatus(merged.Status) {
		return nil, ErrInvalidStatus
	}
	if merged.FollowUpCount < 0 {
		return nil, ErrNegativeFollowUpCount
	}

	changes := Diff(original, merged.FieldMap())
	if len(changes) == 0 {
		// Nada mudou: não atualiza nem grava registro de edição
		return stored, nil
	}

	if err := s.clientRepo.Update(actorID, &merged); err != nil {
		return nil, err
	}

	edit := &domain.ClientEdit{
		ClientID:      merged.ID,
		ChangedFields: changes,
	}
	if _, err := s.editRepo.Create(actorID, edit); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"client_id": merged.ID,
			"actor_id":  actorID,
		}).Warn("Falha ao gravar registro de edição do cliente")
	}

	return &merged, nil
}

func (s *Service) Delete(actorID int, id string) error {
	return s.clientRepo.Delete(actorID, id)
}

// EditHistory retorna o log de edições de um cliente do próprio usuário
func (s *Service) EditHistory(actorID int, clientID string) ([]*domain.ClientEdit, error) {
	client, err := s.clientRepo.GetByID(actorID, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	return s.editRepo.ListByClient(actorID, clientID)
}

func (s *Service) ListNotes(actorID int, clientID string) ([]*domain.Note, error) {
	return s.noteRepo.ListByClient(actorID, clientID)
}

func (s *Service) AddNote(actorID int, clientID, content string) (*domain.Note, error) {
	if content == "" {
		return nil, ErrMissingContent
	}

	client, err := s.clientRepo.GetByID(actorID, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	return s.noteRepo.Create(actorID, &domain.Note{
		ClientID: clientID,
		Content:  content,
	})
}

func (s *Service) DeleteNote(actorID int, id string) error {
	return s.noteRepo.Delete(actorID, id)
}

func (s *Service) ListAssets(actorID int, clientID string) ([]*domain.Asset, error) {
	return s.assetRepo.ListByClient(actorID, clientID)
}

func (s *Service) AddAsset(actorID int, clientID, fileURL, fileName string) (*domain.Asset, error) {
	if fileURL == "" || fileName == "" {
		return nil, ErrMissingFileReference
	}

	client, err := s.clientRepo.GetByID(actorID, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	return s.assetRepo.Create(actorID, &domain.Asset{
		ClientID: clientID,
		FileURL:  fileURL,
		FileName: fileName,
	})
}

func (s *Service) DeleteAsset(actorID int, id string) error {
	return s.assetRepo.Delete(actorID, id)
}

// applyUpdate sobrepõe os campos enviados na requisição ao registro armazenado
func applyUpdate(client *domain.Client, req *domain.UpdateClientRequest) {
	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Company != nil {
		client.Company = *req.Company
	}
	if req.Contact != nil {
		client.Contact = *req.Contact
	}
	if req.YoutubeLink != nil {
		client.YoutubeLink = *req.YoutubeLink
	}
	if req.InstagramLink != nil {
		client.InstagramLink = *req.InstagramLink
	}
	if req.TiktokLink != nil {
		client.TiktokLink = *req.TiktokLink
	}
	if req.TwitterLink != nil {
		client.TwitterLink = *req.TwitterLink
	}
	if req.LinkedinLink != nil {
		client.LinkedinLink = *req.LinkedinLink
	}
	if req.Subscribers != nil {
		client.Subscribers = *req.Subscribers
	}
	if req.OutreachType != nil {
		client.OutreachType = *req.OutreachType
	}
	if req.OutreachPlatform != nil {
		client.OutreachPlatform = *req.OutreachPlatform
	}
	if req.OutreachDate != nil {
		client.OutreachDate = req.OutreachDate
	}
	if req.OutreachNotes != nil {
		client.OutreachNotes = *req.OutreachNotes
	}
	if req.LinkSent != nil {
		client.LinkSent = *req.LinkSent
	}
	if req.LeadTemperature != nil {
		client.LeadTemperature = *req.LeadTemperature
	}
	if req.Replied != nil {
		client.Replied = *req.Replied
	}
	if req.FollowUpStatus != nil {
		client.FollowUpStatus = *req.FollowUpStatus
	}
	if req.FollowUpCount != nil {
		client.FollowUpCount = *req.FollowUpCount
	}
	if req.NextFollowUpAt != nil {
		client.NextFollowUpAt = req.NextFollowUpAt
	}
	if req.FollowUpPlatforms != nil {
		client.FollowUpPlatforms = *req.FollowUpPlatforms
	}
	if req.Tags != nil {
		client.Tags = *req.Tags
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.Status != nil {
		client.Status = *req.Status
	}
}
