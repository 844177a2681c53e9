package components

import (
	"slotswapper/internal/handler"
	"slotswapper/internal/handler/api"
	"slotswapper/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSlotHandler,
		api.NewSwapHandler,
		api.NewSystemHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
