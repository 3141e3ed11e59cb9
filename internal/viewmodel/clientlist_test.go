package viewmodel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/godcrm-api/internal/domain"
)

func buildClients(count int) []*domain.Client {
	clients := make([]*domain.Client, 0, count)
	for i := 1; i <= count; i++ {
		clients = append(clients, &domain.Client{
			ID:              fmt.Sprintf("c-%d", i),
			Name:            fmt.Sprintf("Cliente %d", i),
			Email:           fmt.Sprintf("cliente%d@example.com", i),
			Company:         "Alfa Filmes",
			LeadTemperature: domain.TemperatureCold,
		})
	}
	return clients
}

func TestClientList_Search(t *testing.T) {
	clients := []*domain.Client{
		{ID: "c-1", Name: "Ana Souza", Email: "ana@alfa.com", Company: "Alfa Filmes"},
		{ID: "c-2", Name: "Bruno Lima", Email: "bruno@beta.com", Company: "Beta Studios"},
		{ID: "c-3", Name: "Carla Dias", Email: "carla@alfa.com", Company: "Alfa Filmes"},
	}

	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{
			name:     "Busca por nome sem diferenciar maiúsculas",
			term:     "ANA",
			expected: []string{"c-1"},
		},
		{
			name:     "Busca por email",
			term:     "@alfa.com",
			expected: []string{"c-1", "c-3"},
		},
		{
			name:     "Busca por empresa",
			term:     "beta studios",
			expected: []string{"c-2"},
		},
		{
			name:     "Termo vazio devolve todos",
			term:     "",
			expected: []string{"c-1", "c-2", "c-3"},
		},
		{
			name:     "Termo sem correspondência devolve lista vazia",
			term:     "zeta",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewClientList(clients)
			list.SetSearch(tt.term)

			ids := []string{}
			for _, client := range list.Page() {
				ids = append(ids, client.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestClientList_FilterChangeResetsPage(t *testing.T) {
	clients := buildClients(30)
	clients[0].LeadTemperature = domain.TemperatureHot

	list := NewClientList(clients)
	list.SetPage(3)
	assert.Equal(t, 3, list.CurrentPage())

	list.SetTemperature(domain.TemperatureHot)

	assert.Equal(t, 1, list.CurrentPage())
	assert.Equal(t, 1, list.FilteredCount())
	assert.Equal(t, 1, list.TotalPages())
}

func TestClientList_CombinedFilters(t *testing.T) {
	clients := []*domain.Client{
		{ID: "c-1", LeadTemperature: "hot", FollowUpStatus: "pending", OutreachType: "email"},
		{ID: "c-2", LeadTemperature: "hot", FollowUpStatus: "done", OutreachType: "email"},
		{ID: "c-3", LeadTemperature: "cold", FollowUpStatus: "pending", OutreachType: "email"},
		{ID: "c-4", LeadTemperature: "hot", FollowUpStatus: "pending", OutreachType: "dm"},
	}

	list := NewClientList(clients)
	list.SetTemperature("hot")
	list.SetFollowUpStatus("pending")
	list.SetOutreachType("email")

	page := list.Page()
	assert.Len(t, page, 1)
	assert.Equal(t, "c-1", page[0].ID)

	// Voltar um filtro para "all" reabre a visão
	list.SetOutreachType(FilterAll)
	assert.Equal(t, 2, list.FilteredCount())
}

func TestClientList_Pagination(t *testing.T) {
	list := NewClientList(buildClients(25))

	assert.Equal(t, DefaultPageSize, list.PageSize())
	assert.Equal(t, 3, list.TotalPages())
	assert.Len(t, list.Page(), 10)

	list.SetPage(3)
	assert.Len(t, list.Page(), 5)

	t.Run("Página além do total é limitada ao total", func(t *testing.T) {
		list.SetPage(99)
		assert.Equal(t, 3, list.CurrentPage())
	})

	t.Run("Página abaixo de 1 é limitada a 1", func(t *testing.T) {
		list.SetPage(0)
		assert.Equal(t, 1, list.CurrentPage())

		list.SetPage(-5)
		assert.Equal(t, 1, list.CurrentPage())
	})

	t.Run("Tamanho de página fora da lista suportada cai para o padrão", func(t *testing.T) {
		list.SetPageSize(25)
		assert.Equal(t, 25, list.PageSize())
		assert.Equal(t, 1, list.CurrentPage())

		list.SetPageSize(7)
		assert.Equal(t, DefaultPageSize, list.PageSize())
	})
}

func TestClientList_EmptyList(t *testing.T) {
	list := NewClientList(nil)

	assert.Equal(t, 1, list.TotalPages())
	assert.Equal(t, 1, list.CurrentPage())
	assert.Empty(t, list.Page())
}

func TestClientList_Remove(t *testing.T) {
	list := NewClientList(buildClients(11))

	list.SetPage(2)
	assert.Len(t, list.Page(), 1)

	// Remover o único item da última página recua para a página anterior
	list.Remove("c-11")
	assert.Equal(t, 10, list.FilteredCount())
	assert.Equal(t, 1, list.TotalPages())
	assert.Equal(t, 1, list.CurrentPage())
	assert.Len(t, list.Page(), 10)

	// Remover id inexistente não altera nada
	list.Remove("c-999")
	assert.Equal(t, 10, list.FilteredCount())
}
