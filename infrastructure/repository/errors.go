package repository

import (
	"database/sql"
	"strings"

	"github.com/pkg/errors"
)

// Categorias de erro do gateway de persistência. Toda classificação de erro
// de armazenamento acontece aqui: as camadas de cima apenas verificam com
// errors.Is, logam e exibem mensagem ao usuário.
var (
	// ErrUnauthenticated indica ausência de sessão válida ou rejeição de
	// política de acesso por linha. Operações de escrita propagam este erro;
	// leituras degradam para resultado vazio.
	ErrUnauthenticated = errors.New("usuário não autenticado")

	// ErrSchemaMissing indica tabela ou coluna inexistente, uma condição de
	// setup do ambiente e não de runtime.
	ErrSchemaMissing = errors.New("tabela ou coluna inexistente: execute migrations/schema.sql para criar o esquema")
)

// classifyStorageError traduz um erro do Postgres para uma das três categorias
// de domínio. A classificação é propositalmente frouxa, por substring: o
// vocabulário de erros do banco não é controlado por este código.
func classifyStorageError(err error, op string) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "permission denied"),
		strings.Contains(msg, "row-level security"),
		strings.Contains(msg, "not authorized"),
		strings.Contains(msg, "jwt"):
		return errors.Wrap(ErrUnauthenticated, op)

	case strings.Contains(msg, "does not exist") &&
		(strings.Contains(msg, "relation") || strings.Contains(msg, "column") || strings.Contains(msg, "table")):
		return errors.Wrap(ErrSchemaMissing, op)

	default:
		return errors.Wrap(err, op)
	}
}

// isPermissionDenied verifica se o erro já classificado é de autenticação,
// para que leituras possam degradar para uma lista vazia em vez de falhar.
func isPermissionDenied(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
