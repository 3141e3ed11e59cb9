package handler

import (
	"net/http"

	"github.com/vfg2006/godcrm-api/internal/domain"
	"github.com/vfg2006/godcrm-api/pkg/middleware"
)

// actorID extrai o ID do usuário autenticado do contexto da requisição.
// Retorna 0 quando não há sessão, e os repositórios tratam 0 como
// não autenticado.
func actorID(r *http.Request) int {
	claims := claimsFromRequest(r)
	if claims == nil {
		return 0
	}
	return claims.UserID
}

// claimsFromRequest retorna as claims completas da sessão, para as rotas que
// precisam checar papel além do ID
func claimsFromRequest(r *http.Request) *domain.Claims {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return nil
	}
	return claims
}
