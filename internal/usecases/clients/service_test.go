package clients

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/godcrm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/godcrm-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

func newTestService(ctrl *gomock.Controller) (
	ClientService,
	*mocks.MockClientRepository,
	*mocks.MockNoteRepository,
	*mocks.MockAssetRepository,
	*mocks.MockClientEditRepository,
) {
	clientRepo := mocks.NewMockClientRepository(ctrl)
	noteRepo := mocks.NewMockNoteRepository(ctrl)
	assetRepo := mocks.NewMockAssetRepository(ctrl)
	editRepo := mocks.NewMockClientEditRepository(ctrl)

	return NewService(clientRepo, noteRepo, assetRepo, editRepo), clientRepo, noteRepo, assetRepo, editRepo
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, _, _, _ := newTestService(ctrl)

	tests := []struct {
		name     string
		client   *domain.Client
		setup    func()
		validate func(t *testing.T, result *domain.Client, err error)
	}{
		{
			name:   "Deve aplicar temperatura cold e status active como padrão",
			client: &domain.Client{Name: "Ana"},
			setup: func() {
				clientRepo.EXPECT().
					Create(1, gomock.Any()).
					DoAndReturn(func(actorID int, client *domain.Client) (*domain.Client, error) {
						client.ID = "c-1"
						return client, nil
					})
			},
			validate: func(t *testing.T, result *domain.Client, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.TemperatureCold, result.LeadTemperature)
				assert.Equal(t, domain.StatusActive, result.Status)
			},
		},
		{
			name:   "Deve rejeitar cliente sem nome",
			client: &domain.Client{},
			setup:  func() {},
			validate: func(t *testing.T, result *domain.Client, err error) {
				assert.ErrorIs(t, err, ErrMissingName)
				assert.Nil(t, result)
			},
		},
		{
			name:   "Deve rejeitar temperatura desconhecida",
			client: &domain.Client{Name: "Ana", LeadTemperature: "boiling"},
			setup:  func() {},
			validate: func(t *testing.T, result *domain.Client, err error) {
				assert.ErrorIs(t, err, ErrInvalidTemperature)
				assert.Nil(t, result)
			},
		},
		{
			name:   "Deve rejeitar status desconhecido",
			client: &domain.Client{Name: "Ana", Status: "paused"},
			setup:  func() {},
			validate: func(t *testing.T, result *domain.Client, err error) {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				assert.Nil(t, result)
			},
		},
		{
			name:   "Deve rejeitar contador de follow-up negativo",
			client: &domain.Client{Name: "Ana", FollowUpCount: -1},
			setup:  func() {},
			validate: func(t *testing.T, result *domain.Client, err error) {
				assert.ErrorIs(t, err, ErrNegativeFollowUpCount)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.Create(1, tt.client)
			tt.validate(t, result, err)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, _, _, editRepo := newTestService(ctrl)

	stored := func() *domain.Client {
		return &domain.Client{
			ID:              "c-1",
			Name:            "Ana",
			Company:         "Alfa",
			LeadTemperature: domain.TemperatureWarm,
			Status:          domain.StatusActive,
			CreatedBy:       1,
		}
	}

	tests := []struct {
		name     string
		req      *domain.UpdateClientRequest
		setup    func()
		validate func(t *testing.T, result *domain.Client, err error)
	}{
		{
			name: "Atualização com mudança grava registro de edição com os campos alterados",
			req: &domain.UpdateClientRequest{
				ID:              "c-1",
				Name:            stringPtr("Beatriz"),
				LeadTemperature: stringPtr(domain.TemperatureHot),
			},
			setup: func() {
				clientRepo.EXPECT().
					GetByID(1, "c-1").
					Return(stored(), nil)

				clientRepo.EXPECT().
					Update(1, gomock.Any()).
					Return(nil)

				editRepo.EXPECT().
					Create(1, gomock.Any()).
					DoAndReturn(func(actorID int, edit *domain.ClientEdit) (*domain.ClientEdit, error) {
						assert.Equal(t, "c-1", edit.ClientID)
						assert.Len(t, edit.ChangedFields, 2)
						assert.Equal(t, domain.FieldChange{Old: "Ana", New: "Beatriz"}, edit.ChangedFields["name"])
						assert.Equal(t, domain.FieldChange{Old: "warm", New: "hot"}, edit.ChangedFields["lead_temperature"])
						return edit, nil
					})
			},
			validate: func(t *testing.T, result *domain.Client, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Beatriz", result.Name)
				assert.Equal(t, domain.TemperatureHot, result.LeadTemperature)
			},
		},
		{
			name: "Atualização sem mudança efetiva não toca em Update nem no log de edições",
			req: &domain.UpdateClientRequest{
				ID:   "c-1",
				Name: stringPtr("Ana"),
			},
			setup: func() {
				clientRepo.EXPECT().
					GetByID(1, "c-1").
					Return(stored(), nil)
			},
			validate: func(t *testing.T, result *domain.Client, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Ana", result.Name)
			},
		},
		{
			name: "Falha ao gravar o log de edições não desfaz a atualização",
			req: &domain.UpdateClientRequest{
				ID:      "c-1",
				Company: stringPtr("Beta"),
			},
			setup: func() {
				clientRepo.EXPECT().
					GetByID(1, "c-1").
					Return(stored(), nil)

				clientRepo.EXPECT().
					Update(1, gomock.Any()).
					Return(nil)

				editRepo.EXPECT().
					Create(1, gomock.Any()).
					Return(nil, errors.New("erro de banco"))
			},
			validate: func(t *testing.T, result *domain.Client, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Beta", result.Company)
			},
		},
		{
			name: "Deve retornar erro quando o cliente não existe",
			req: &domain.UpdateClientRequest{
				ID:   "c-missing",
				Name: stringPtr("Beatriz"),
			},
			setup: func() {
				clientRepo.EXPECT().
					GetByID(1, "c-missing").
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.Client, err error) {
				assert.ErrorIs(t, err, ErrClientNotFound)
				assert.Nil(t, result)
			},
		},
		{
			name: "Deve rejeitar contador de follow-up negativo na atualização",
			req: &domain.UpdateClientRequest{
				ID:            "c-1",
				FollowUpCount: intPtr(-2),
			},
			setup: func() {
				clientRepo.EXPECT().
					GetByID(1, "c-1").
					Return(stored(), nil)
			},
			validate: func(t *testing.T, result *domain.Client, err error) {
				assert.ErrorIs(t, err, ErrNegativeFollowUpCount)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.Update(1, tt.req)
			tt.validate(t, result, err)
		})
	}
}

func TestService_AddNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, noteRepo, _, _ := newTestService(ctrl)

	t.Run("Deve criar nota para cliente existente", func(t *testing.T) {
		clientRepo.EXPECT().
			GetByID(1, "c-1").
			Return(&domain.Client{ID: "c-1", Name: "Ana"}, nil)

		noteRepo.EXPECT().
			Create(1, gomock.Any()).
			DoAndReturn(func(actorID int, note *domain.Note) (*domain.Note, error) {
				note.ID = "n-1"
				return note, nil
			})

		note, err := service.AddNote(1, "c-1", "Cliente pediu proposta")
		assert.NoError(t, err)
		assert.Equal(t, "c-1", note.ClientID)
		assert.Equal(t, "Cliente pediu proposta", note.Content)
	})

	t.Run("Deve rejeitar nota sem conteúdo", func(t *testing.T) {
		note, err := service.AddNote(1, "c-1", "")
		assert.ErrorIs(t, err, ErrMissingContent)
		assert.Nil(t, note)
	})

	t.Run("Deve rejeitar nota para cliente inexistente", func(t *testing.T) {
		clientRepo.EXPECT().
			GetByID(1, "c-missing").
			Return(nil, nil)

		note, err := service.AddNote(1, "c-missing", "Conteúdo")
		assert.ErrorIs(t, err, ErrClientNotFound)
		assert.Nil(t, note)
	})
}

func TestService_AddAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, _, assetRepo, _ := newTestService(ctrl)

	t.Run("Deve criar anexo para cliente existente", func(t *testing.T) {
		clientRepo.EXPECT().
			GetByID(1, "c-1").
			Return(&domain.Client{ID: "c-1", Name: "Ana"}, nil)

		assetRepo.EXPECT().
			Create(1, gomock.Any()).
			DoAndReturn(func(actorID int, asset *domain.Asset) (*domain.Asset, error) {
				asset.ID = "a-1"
				return asset, nil
			})

		asset, err := service.AddAsset(1, "c-1", "https://files.example.com/briefing.pdf", "briefing.pdf")
		assert.NoError(t, err)
		assert.Equal(t, "briefing.pdf", asset.FileName)
	})

	t.Run("Deve rejeitar anexo sem url ou nome de arquivo", func(t *testing.T) {
		asset, err := service.AddAsset(1, "c-1", "", "briefing.pdf")
		assert.ErrorIs(t, err, ErrMissingFileReference)
		assert.Nil(t, asset)

		asset, err = service.AddAsset(1, "c-1", "https://files.example.com/briefing.pdf", "")
		assert.ErrorIs(t, err, ErrMissingFileReference)
		assert.Nil(t, asset)
	})
}

func TestService_EditHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clientRepo, _, _, editRepo := newTestService(ctrl)

	t.Run("Deve listar o histórico de um cliente do próprio usuário", func(t *testing.T) {
		clientRepo.EXPECT().
			GetByID(1, "c-1").
			Return(&domain.Client{ID: "c-1", Name: "Ana"}, nil)

		edits := []*domain.ClientEdit{
			{ID: "e-1", ClientID: "c-1", ChangedBy: 1},
		}
		editRepo.EXPECT().
			ListByClient(1, "c-1").
			Return(edits, nil)

		result, err := service.EditHistory(1, "c-1")
		assert.NoError(t, err)
		assert.Equal(t, edits, result)
	})

	t.Run("Deve negar histórico de cliente que não pertence ao usuário", func(t *testing.T) {
		// GetByID escopado por created_by responde nil para clientes de
		// outros usuários, então o log de edições nunca é consultado.
		clientRepo.EXPECT().
			GetByID(2, "c-1").
			Return(nil, nil)

		result, err := service.EditHistory(2, "c-1")
		assert.ErrorIs(t, err, ErrClientNotFound)
		assert.Nil(t, result)
	})
}
