package components

import (
	"netcard-manager/internal/handler"
	"netcard-manager/internal/handler/api"
	"netcard-manager/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCardHandler,
		api.NewAdminCardHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, c *api.CardHandler, admin *api.AdminCardHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Card: c, AdminCard: admin}
		},
	),
	fx.Invoke(handler.NewRouter),
)
