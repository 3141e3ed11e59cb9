// Package viewmodel contém as máquinas de estado das listagens: busca,
// filtros combináveis e janela de paginação sobre um array carregado uma
// única vez por tela. Transições puras, testáveis sem renderizar nada.
package viewmodel

import (
	"strings"

	"github.com/vfg2006/godcrm-api/internal/domain"
)

// FilterAll desativa um filtro individual
const FilterAll = "all"

var allowedPageSizes = map[int]struct{}{10: {}, 25: {}, 50: {}}

// DefaultPageSize é usado quando o tamanho de página pedido não é suportado
const DefaultPageSize = 10

// ClientList é o view-model da tela de clientes. Qualquer mudança de busca,
// filtro ou tamanho de página recalcula a visão filtrada e volta para a
// página 1: mudar um filtro nunca pode deixar o usuário numa página além
// do novo total.
type ClientList struct {
	source   []*domain.Client
	filtered []*domain.Client

	search         string
	temperature    string
	followUpStatus string
	outreachType   string

	page     int
	pageSize int
}

func NewClientList(clients []*domain.Client) *ClientList {
	list := &ClientList{
		source:         clients,
		temperature:    FilterAll,
		followUpStatus: FilterAll,
		outreachType:   FilterAll,
		page:           1,
		pageSize:       DefaultPageSize,
	}
	list.recompute()
	return list
}

func (l *ClientList) SetSearch(term string) {
	l.search = term
	l.recompute()
}

func (l *ClientList) SetTemperature(temperature string) {
	if temperature == "" {
		temperature = FilterAll
	}
	l.temperature = temperature
	l.recompute()
}

func (l *ClientList) SetFollowUpStatus(status string) {
	if status == "" {
		status = FilterAll
	}
	l.followUpStatus = status
	l.recompute()
}

func (l *ClientList) SetOutreachType(outreachType string) {
	if outreachType == "" {
		outreachType = FilterAll
	}
	l.outreachType = outreachType
	l.recompute()
}

// SetPageSize troca o tamanho da página e volta para a página 1.
// Tamanhos fora de {10, 25, 50} caem para o padrão.
func (l *ClientList) SetPageSize(size int) {
	if _, ok := allowedPageSizes[size]; !ok {
		size = DefaultPageSize
	}
	l.pageSize = size
	l.page = 1
}

// SetPage navega para a página pedida, limitada a [1, TotalPages]
func (l *ClientList) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if total := l.TotalPages(); page > total {
		page = total
	}
	l.page = page
}

// Remove retira um cliente da fonte e da visão atual sem refetch
// (atualização otimista após uma exclusão)
func (l *ClientList) Remove(id string) {
	l.source = removeByID(l.source, id)
	l.filtered = removeByID(l.filtered, id)

	if l.page > l.TotalPages() {
		l.page = l.TotalPages()
	}
}

// Page retorna a janela de clientes da página atual
func (l *ClientList) Page() []*domain.Client {
	start := (l.page - 1) * l.pageSize
	if start >= len(l.filtered) {
		return nil
	}

	end := start + l.pageSize
	if end > len(l.filtered) {
		end = len(l.filtered)
	}

	return l.filtered[start:end]
}

// TotalPages nunca retorna menos que 1: uma lista vazia ainda exibe
// "página 1 de 1"
func (l *ClientList) TotalPages() int {
	if len(l.filtered) == 0 {
		return 1
	}

	pages := len(l.filtered) / l.pageSize
	if len(l.filtered)%l.pageSize != 0 {
		pages++
	}
	return pages
}

func (l *ClientList) CurrentPage() int {
	return l.page
}

func (l *ClientList) PageSize() int {
	return l.pageSize
}

func (l *ClientList) FilteredCount() int {
	return len(l.filtered)
}

func (l *ClientList) recompute() {
	l.filtered = l.filtered[:0:0]

	term := strings.ToLower(strings.TrimSpace(l.search))

	for _, client := range l.source {
		if term != "" && !matchesSearch(client, term) {
			continue
		}
		if l.temperature != FilterAll && client.LeadTemperature != l.temperature {
			continue
		}
		if l.followUpStatus != FilterAll && client.FollowUpStatus != l.followUpStatus {
			continue
		}
		if l.outreachType != FilterAll && client.OutreachType != l.outreachType {
			continue
		}
		l.filtered = append(l.filtered, client)
	}

	l.page = 1
}

// matchesSearch procura o termo, sem diferenciar maiúsculas,
// em nome, email e empresa
func matchesSearch(client *domain.Client, term string) bool {
	return strings.Contains(strings.ToLower(client.Name), term) ||
		strings.Contains(strings.ToLower(client.Email), term) ||
		strings.Contains(strings.ToLower(client.Company), term)
}

func removeByID(clients []*domain.Client, id string) []*domain.Client {
	for i, client := range clients {
		if client.ID == id {
			return append(clients[:i], clients[i+1:]...)
		}
	}
	return clients
}
