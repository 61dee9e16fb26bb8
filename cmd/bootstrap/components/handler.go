package components

import (
	"stayops/internal/handler"
	"stayops/internal/handler/api"
	"stayops/internal/handler/middleware"
	"stayops/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewHotelHandler,
		api.NewRoomTypeHandler,
		api.NewRoomHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
		func(cfg config.Config) *middleware.Logger {
			return middleware.NewLogger(cfg.Log)
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	user *api.UserHandler,
	hotel *api.HotelHandler,
	roomType *api.RoomTypeHandler,
	room *api.RoomHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		User:     user,
		Hotel:    hotel,
		RoomType: roomType,
		Room:     room,
	}
}
