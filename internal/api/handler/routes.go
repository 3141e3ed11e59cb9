package handler

import (
	"net/http"

	"github.com/vfg2006/godcrm-api/infrastructure/integrator/youtube"
	"github.com/vfg2006/godcrm-api/internal/api/handler/router"
	"github.com/vfg2006/godcrm-api/internal/usecases/analyzing"
	"github.com/vfg2006/godcrm-api/internal/usecases/authenticating"
	"github.com/vfg2006/godcrm-api/internal/usecases/billing"
	"github.com/vfg2006/godcrm-api/internal/usecases/clients"
	"github.com/vfg2006/godcrm-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Clients(service clients.ClientService, yt youtube.YoutubeIntegrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ClientList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     CreateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodGet,
			Handler:     GetClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/edits",
			Method:      http.MethodGet,
			Handler:     ClientEditHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/youtube-metadata",
			Method:      http.MethodGet,
			Handler:     ClientYoutubeMetadata(service, yt),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Notes(service clients.ClientService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients/:id/notes",
			Method:      http.MethodGet,
			Handler:     NoteList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/notes",
			Method:      http.MethodPost,
			Handler:     CreateNote(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/notes/:note_id",
			Method:      http.MethodDelete,
			Handler:     DeleteNote(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Assets(service clients.ClientService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients/:id/assets",
			Method:      http.MethodGet,
			Handler:     AssetList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients/:id/assets",
			Method:      http.MethodPost,
			Handler:     CreateAsset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/assets/:asset_id",
			Method:      http.MethodDelete,
			Handler:     DeleteAsset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ClosedClients(service billing.BillingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/closed-clients",
			Method:      http.MethodGet,
			Handler:     ClosedClientList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/closed-clients",
			Method:      http.MethodPost,
			Handler:     CreateClosedClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/closed-clients/:id",
			Method:      http.MethodGet,
			Handler:     GetClosedClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/closed-clients/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClosedClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/closed-clients/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteClosedClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Invoices(service billing.BillingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/closed-clients/:id/invoices",
			Method:      http.MethodGet,
			Handler:     InvoiceList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/closed-clients/:id/invoices",
			Method:      http.MethodPost,
			Handler:     CreateInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/invoices/:invoice_id/status",
			Method:      http.MethodPut,
			Handler:     UpdateInvoiceStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/invoices/:invoice_id",
			Method:      http.MethodDelete,
			Handler:     DeleteInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Tweets expõe o painel de análise de tweets. O contrato de erro dessas
// rotas é {"error": "..."}, tratado nos próprios handlers.
func Tweets(service analyzing.AnalyzerService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/tweets",
			Method:  http.MethodGet,
			Handler: TweetList(service),
		},
		{
			Path:    "/api/tweets",
			Method:  http.MethodPost,
			Handler: CreateTweet(service),
		},
		{
			Path:    "/api/tweets/:id",
			Method:  http.MethodGet,
			Handler: GetTweet(service),
		},
		{
			Path:    "/api/tweets/:id",
			Method:  http.MethodPatch,
			Handler: UpdateTweet(service),
		},
		{
			Path:    "/api/tweets/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTweet(service),
		},
		{
			Path:    "/api/tweets/:id/analyze",
			Method:  http.MethodPost,
			Handler: AnalyzeTweet(service),
		},
	}
}

func Analysis(service analyzing.AnalyzerService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analysis",
			Method:      http.MethodPost,
			Handler:     Summary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Cron(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
