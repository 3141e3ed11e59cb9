package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/godcrm-api/infrastructure/integrator/youtube"
	ytmocks "github.com/vfg2006/godcrm-api/infrastructure/integrator/youtube/mocks"
	"github.com/vfg2006/godcrm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/godcrm-api/internal/domain"
	"github.com/vfg2006/godcrm-api/internal/usecases/clients"
	"go.uber.org/mock/gomock"
)

func withClientID(r *http.Request, id string) *http.Request {
	return withTweetID(r, id)
}

func newClientServiceFixture(t *testing.T) (clients.ClientService, *mocks.MockClientRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	clientRepo := mocks.NewMockClientRepository(ctrl)
	noteRepo := mocks.NewMockNoteRepository(ctrl)
	assetRepo := mocks.NewMockAssetRepository(ctrl)
	editRepo := mocks.NewMockClientEditRepository(ctrl)

	return clients.NewService(clientRepo, noteRepo, assetRepo, editRepo), clientRepo
}

func TestClientYoutubeMetadata(t *testing.T) {
	tests := []struct {
		name         string
		clientID     string
		setup        func(clientRepo *mocks.MockClientRepository, yt *ytmocks.MockClient)
		expectedCode int
		expectedBody string
	}{
		{
			name:     "Deve responder 404 quando o cliente não existe",
			clientID: "cl_inexistente",
			setup: func(clientRepo *mocks.MockClientRepository, yt *ytmocks.MockClient) {
				clientRepo.EXPECT().GetByID(1, "cl_inexistente").Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `"code":"RES_001"`,
		},
		{
			name:     "Deve responder metadados indisponíveis quando o cliente não tem link",
			clientID: "cl_semlink",
			setup: func(clientRepo *mocks.MockClientRepository, yt *ytmocks.MockClient) {
				clientRepo.EXPECT().GetByID(1, "cl_semlink").Return(&domain.Client{ID: "cl_semlink", Name: "Ana"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"available":false`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, clientRepo := newClientServiceFixture(t)

			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)
			ytClient := ytmocks.NewMockClient(ctrl)

			tt.setup(clientRepo, ytClient)

			r := withClientID(authenticatedRequest(http.MethodGet, "/v1/clients/"+tt.clientID+"/youtube-metadata", ""), tt.clientID)
			w := httptest.NewRecorder()

			h := ClientYoutubeMetadata(service, youtube.New(ytClient))
			assert.NotPanics(t, func() {
				h.ServeHTTP(w, r)
			})

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
