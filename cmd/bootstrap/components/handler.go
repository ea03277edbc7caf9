package components

import (
	"stock-reservation/internal/handler"
	"stock-reservation/internal/handler/api"
	"stock-reservation/internal/handler/middleware"
	"stock-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPurchaseHandler,
		api.NewReservationHandler,
		api.NewInventoryHandler,
		api.NewAdminHandler,
		func(cfg config.Config) *middleware.AdminAuthMiddleware {
			return middleware.NewAdminAuthMiddleware(cfg.Server)
		},
		func(p *api.PurchaseHandler, r *api.ReservationHandler, i *api.InventoryHandler, a *api.AdminHandler) handler.Handlers {
			return handler.Handlers{Purchase: p, Reservation: r, Inventory: i, Admin: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
