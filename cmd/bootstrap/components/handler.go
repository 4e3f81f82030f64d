package components

import (
	"mentorsync/internal/handler"
	"mentorsync/internal/handler/api"
	"mentorsync/internal/handler/middleware"
	"mentorsync/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewTimeslotHandler,
		api.NewSessionHandler,
		api.NewPositionHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	timeslot *api.TimeslotHandler,
	session *api.SessionHandler,
	position *api.PositionHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Booking:  booking,
		Timeslot: timeslot,
		Session:  session,
		Position: position,
	}
}
