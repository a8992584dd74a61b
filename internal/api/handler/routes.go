package handler

import (
	"net/http"

	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/api/handler/router"
	"github.com/vfg2006/ads-manager-api/internal/scheduler"
	"github.com/vfg2006/ads-manager-api/internal/usecases/audiencing"
	"github.com/vfg2006/ads-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-manager-api/internal/usecases/campaigning"
	"github.com/vfg2006/ads-manager-api/internal/usecases/creative"
	"github.com/vfg2006/ads-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-manager-api/internal/usecases/workspacing"
	"github.com/vfg2006/ads-manager-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
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

// Workspaces retorna as rotas de administração do workspace. O cadastro
// inicial e o aceite de convite são públicos, o restante exige administrador.
func Workspaces(service workspacing.Workspacer, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service, auth),
		},
		{
			Path:    "/v1/invites/accept",
			Method:  http.MethodPost,
			Handler: AcceptInvite(service, auth),
		},
		{
			Path:        "/v1/workspace",
			Method:      http.MethodGet,
			Handler:     GetWorkspace(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/workspace/settings",
			Method:      http.MethodPut,
			Handler:     UpdateWorkspaceSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/workspace/members",
			Method:      http.MethodGet,
			Handler:     ListMembers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/workspace/members/:id",
			Method:      http.MethodDelete,
			Handler:     RemoveMember(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/workspace/members/:id/role",
			Method:      http.MethodPut,
			Handler:     ChangeMemberRole(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/workspace/invites",
			Method:      http.MethodGet,
			Handler:     ListInvites(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/workspace/invites",
			Method:      http.MethodPost,
			Handler:     CreateInvite(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/workspace/invites/:id",
			Method:      http.MethodDelete,
			Handler:     RevokeInvite(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/workspace/activity",
			Method:      http.MethodGet,
			Handler:     ListActivity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Campaigns retorna as rotas de campanhas, conjuntos, anúncios e rascunhos.
// Analistas têm acesso somente de leitura.
func Campaigns(service campaigning.Campaigner, workspaces workspacing.Workspacer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/overview",
			Method:      http.MethodGet,
			Handler:     CampaignOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service, workspaces),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/accounts/:id/adsets",
			Method:      http.MethodGet,
			Handler:     ListAdSets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/adsets",
			Method:      http.MethodPost,
			Handler:     CreateAdSet(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/accounts/:id/ads",
			Method:      http.MethodGet,
			Handler:     ListAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/ads",
			Method:      http.MethodPost,
			Handler:     CreateAd(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/objects/:id/status",
			Method:      http.MethodPut,
			Handler:     UpdateObjectStatus(service, workspaces),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/objects/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteObject(service, workspaces),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/drafts",
			Method:      http.MethodGet,
			Handler:     ListDrafts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/drafts",
			Method:      http.MethodPost,
			Handler:     SaveDraft(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/drafts/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteDraft(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Audiences(service audiencing.Audiencer, workspaces workspacing.Workspacer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/audiences",
			Method:      http.MethodGet,
			Handler:     ListAudiences(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/audiences",
			Method:      http.MethodPost,
			Handler:     CreateAudience(service, workspaces),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/accounts/:id/lookalikes",
			Method:      http.MethodPost,
			Handler:     CreateLookalike(service, workspaces),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/audiences/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAudience(service, workspaces),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/audiences/:id/import",
			Method:      http.MethodPost,
			Handler:     ImportAudienceMembers(service, workspaces),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Creatives(service creative.Creativer, workspaces workspacing.Workspacer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/creatives",
			Method:      http.MethodGet,
			Handler:     ListCreatives(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/images",
			Method:      http.MethodPost,
			Handler:     UploadImage(service, workspaces),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/insights",
			Method:      http.MethodGet,
			Handler:     GetAccountInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/insights/campaigns",
			Method:      http.MethodGet,
			Handler:     GetCampaignInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Directory(service DirectoryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/businesses",
			Method:      http.MethodGet,
			Handler:     ListBusinesses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/targeting/search",
			Method:      http.MethodGet,
			Handler:     SearchTargeting(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ad-library/search",
			Method:      http.MethodGet,
			Handler:     SearchAdLibrary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Connection(repo repository.ConnectionRepository, checker scheduler.ConnectionChecker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/connection",
			Method:      http.MethodGet,
			Handler:     GetConnectionStatus(repo, checker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/connection/check",
			Method:      http.MethodPost,
			Handler:     CheckConnection(repo, checker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
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
