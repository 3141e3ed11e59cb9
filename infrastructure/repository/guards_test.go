package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/godcrm-api/internal/domain"
)

// Os repositórios cortam toda operação sem sessão antes de tocar o banco,
// então uma conexão nula serve para exercitar só os guardas.
func TestRepositoriesSemSessao(t *testing.T) {
	clientRepo := NewClientRepository(nil)
	tweetRepo := NewTweetRepository(nil)
	closedRepo := NewClosedClientRepository(nil)
	editRepo := NewClientEditRepository(nil)

	t.Run("Leituras degradam para vazio", func(t *testing.T) {
		tests := []struct {
			name string
			read func() (any, error)
		}{
			{
				name: "clients.List",
				read: func() (any, error) { return clientRepo.List(0) },
			},
			{
				name: "clients.GetByID",
				read: func() (any, error) { return clientRepo.GetByID(0, "c-1") },
			},
			{
				name: "tweets.List",
				read: func() (any, error) { return tweetRepo.List(0) },
			},
			{
				name: "tweets.GetByID",
				read: func() (any, error) { return tweetRepo.GetByID(0, 1) },
			},
			{
				name: "closed_clients.List",
				read: func() (any, error) { return closedRepo.List(0) },
			},
			{
				name: "closed_clients.GetByID",
				read: func() (any, error) { return closedRepo.GetByID(0, "cc-1") },
			},
			{
				name: "client_edits.ListByClient",
				read: func() (any, error) { return editRepo.ListByClient(0, "c-1") },
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result, err := tt.read()
				assert.NoError(t, err)
				assert.Nil(t, result)
			})
		}
	})

	t.Run("Mutações falham com ErrUnauthenticated", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func() error
		}{
			{
				name: "clients.Create",
				mutate: func() error {
					_, err := clientRepo.Create(0, &domain.Client{Name: "Ana"})
					return err
				},
			},
			{
				name: "clients.Update",
				mutate: func() error {
					return clientRepo.Update(0, &domain.Client{ID: "c-1", Name: "Ana"})
				},
			},
			{
				name:   "clients.Delete",
				mutate: func() error { return clientRepo.Delete(0, "c-1") },
			},
			{
				name: "tweets.Create",
				mutate: func() error {
					_, err := tweetRepo.Create(0, &domain.Tweet{URL: "https://x.com/user/status/1"})
					return err
				},
			},
			{
				name:   "tweets.SaveAnalysis",
				mutate: func() error { return tweetRepo.SaveAnalysis(0, 1, "{}") },
			},
			{
				name:   "tweets.Delete",
				mutate: func() error { return tweetRepo.Delete(0, 1) },
			},
			{
				name: "closed_clients.Create",
				mutate: func() error {
					_, err := closedRepo.Create(0, &domain.ClosedClient{Name: "Ana"})
					return err
				},
			},
			{
				name:   "closed_clients.Delete",
				mutate: func() error { return closedRepo.Delete(0, "cc-1") },
			},
			{
				name: "client_edits.Create",
				mutate: func() error {
					_, err := editRepo.Create(0, &domain.ClientEdit{ClientID: "c-1"})
					return err
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.ErrorIs(t, tt.mutate(), ErrUnauthenticated)
			})
		}
	})
}
