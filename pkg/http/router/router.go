package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lintang-b-s/behaviorplanner/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/behaviorplanner/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/behaviorplanner/pkg/http/server"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "github.com/lintang-b-s/behaviorplanner/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

type API struct {
	log *zap.Logger
	hub *controllers.Hub
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler builds the routed and middleware-wrapped handler of the planner API.
func (api *API) Handler(ctx context.Context, useRateLimit bool, plannerService controllers.PlannerService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore

	})

	router.GET("/doc/*any", swaggerHandler)

	group := router_helper.NewRouteGroup(router, "/api")

	plannerRoutes := controllers.New(plannerService, api.log)
	plannerRoutes.Routes(group)

	api.hub = controllers.NewHub(plannerService, api.log)
	router.GET("/ws/cycle", api.handleWebsocket(ctx))

	var mwChain []alice.Constructor
	if useRateLimit {
		mwChain = append(mwChain, corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
			RealIP, Heartbeat("healthz"), Logger(api.log), Limit)
	} else {
		mwChain = append(mwChain, corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
			RealIP, Heartbeat("healthz"), Logger(api.log))
	}
	return alice.New(mwChain...).Then(router)
}

//	@title			Behavior Planner API
//	@version		1.0
//	@description	Cost estimation of candidate maneuvers for an autonomous vehicle behavior planner.

//	@contact.name	Lintang Birda Saputra
//	@contact.url	_
//	@contact.email	lintang.birda.saputra@mail.ugm.ac.id

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost
// @BasePath	/api
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	useRateLimit bool,
	plannerService controllers.PlannerService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(ctx, useRateLimit, plannerService), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		api.log.Info("HTTP server stopped", zap.Error(err), zap.Int("websocket_users", api.hub.Len()))
		api.hub.RemoveAllUser()
		return err

	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server", zap.Int("websocket_users", api.hub.Len()))
		api.hub.RemoveAllUser()
		_ = srv.Shutdown(context.Background())
		return ctx.Err()
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
