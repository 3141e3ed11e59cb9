package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/godcrm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/godcrm-api/internal/config"
	"github.com/vfg2006/godcrm-api/internal/domain"
	"github.com/vfg2006/godcrm-api/internal/usecases/authenticating"
	"github.com/vfg2006/godcrm-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newAuthFixture(t *testing.T) (authenticating.Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepository(ctrl)
	return authenticating.NewService(userRepo, &config.Config{SecretKey: "segredo-de-teste"}), userRepo
}

func requestAs(claims *domain.Claims, method, target, body string) *http.Request {
	r := authenticatedRequest(method, target, body)
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, claims))
}

func TestGetUser(t *testing.T) {
	t.Run("Deve retornar o perfil sem o hash de senha", func(t *testing.T) {
		service, userRepo := newAuthFixture(t)

		userRepo.EXPECT().
			GetUserByID(7).
			Return(&domain.User{ID: 7, Name: "Ana", Email: "ana@agencia.com", PasswordHash: "hash"}, nil)

		r := withTweetID(authenticatedRequest(http.MethodGet, "/v1/users/7", ""), "7")
		w := httptest.NewRecorder()

		GetUser(service).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"ana@agencia.com"`)
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("Deve responder 404 quando o usuário não existe", func(t *testing.T) {
		service, userRepo := newAuthFixture(t)

		userRepo.EXPECT().
			GetUserByID(99).
			Return(nil, nil)

		r := withTweetID(authenticatedRequest(http.MethodGet, "/v1/users/99", ""), "99")
		w := httptest.NewRecorder()

		GetUser(service).ServeHTTP(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"AUTH_003"`)
	})

	t.Run("Deve rejeitar ID que não é numérico", func(t *testing.T) {
		service, _ := newAuthFixture(t)

		r := withTweetID(authenticatedRequest(http.MethodGet, "/v1/users/abc", ""), "abc")
		w := httptest.NewRecorder()

		GetUser(service).ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"VAL_003"`)
	})
}

func TestCreateUserHandler(t *testing.T) {
	t.Run("Deve cadastrar membro da equipe como inativo", func(t *testing.T) {
		service, userRepo := newAuthFixture(t)

		userRepo.EXPECT().
			GetUserByEmail("ana@agencia.com").
			Return(nil, nil)

		userRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.False(t, user.Active)
				user.ID = 7
				return user, nil
			})

		body := `{"name":"Ana","lastname":"Souza","email":"ana@agencia.com","password":"SenhaForte1!"}`
		w := httptest.NewRecorder()

		CreateUser(service).ServeHTTP(w, authenticatedRequest(http.MethodPost, "/v1/users", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":7`)
	})

	t.Run("Deve responder 400 para email já cadastrado", func(t *testing.T) {
		service, userRepo := newAuthFixture(t)

		userRepo.EXPECT().
			GetUserByEmail("ana@agencia.com").
			Return(&domain.User{ID: 7, Email: "ana@agencia.com"}, nil)

		body := `{"name":"Ana","lastname":"Souza","email":"ana@agencia.com","password":"SenhaForte1!"}`
		w := httptest.NewRecorder()

		CreateUser(service).ServeHTTP(w, authenticatedRequest(http.MethodPost, "/v1/users", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"AUTH_009"`)
	})

	t.Run("Deve exigir nome, email e senha", func(t *testing.T) {
		service, _ := newAuthFixture(t)

		w := httptest.NewRecorder()

		CreateUser(service).ServeHTTP(w, authenticatedRequest(http.MethodPost, "/v1/users", `{"name":"Ana"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"VAL_002"`)
	})
}

func TestUpdateUserHandler(t *testing.T) {
	t.Run("Deve negar edição do perfil de outro usuário para não administrador", func(t *testing.T) {
		service, _ := newAuthFixture(t)

		claims := &domain.Claims{UserID: 2, UserRoleID: 3}
		r := withTweetID(requestAs(claims, http.MethodPut, "/v1/users/7", `{"name":"Ana"}`), "7")
		w := httptest.NewRecorder()

		UpdateUser(service).ServeHTTP(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"AUTH_008"`)
	})

	t.Run("Deve negar mudança de papel para não administrador", func(t *testing.T) {
		service, _ := newAuthFixture(t)

		claims := &domain.Claims{UserID: 7, UserRoleID: 3}
		r := withTweetID(requestAs(claims, http.MethodPut, "/v1/users/7", `{"role_id":1}`), "7")
		w := httptest.NewRecorder()

		UpdateUser(service).ServeHTTP(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"AUTH_008"`)
	})

	t.Run("Administrador pode editar qualquer perfil", func(t *testing.T) {
		service, userRepo := newAuthFixture(t)

		userRepo.EXPECT().
			GetUserByID(7).
			Return(&domain.User{ID: 7, Name: "Ana", Email: "ana@agencia.com"}, nil)

		userRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.Equal(t, "Beatriz", user.Name)
				return nil
			})

		claims := &domain.Claims{UserID: 1, UserRoleID: 1}
		r := withTweetID(requestAs(claims, http.MethodPut, "/v1/users/7", `{"name":"Beatriz"}`), "7")
		w := httptest.NewRecorder()

		UpdateUser(service).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
