package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stayops/internal/domain/user"
	"stayops/internal/handler/api"
	"stayops/internal/handler/middleware"
	"stayops/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	User     *api.UserHandler
	Hotel    *api.HotelHandler
	RoomType *api.RoomTypeHandler
	Room     *api.RoomHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operatorOnly := authMiddleware.RequireRoleAtLeast(user.RoleOperator)
	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api/v1")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: handlers.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "", Handler: handlers.User.Create, Mw: []gin.HandlerFunc{adminOnly}},
		})

		hotels := apiGroup.Group("/hotels")
		hotels.Use(authMiddleware.RequireAuth())
		addRoutes(hotels, []route{
			{Method: http.MethodGet, Path: "", Handler: handlers.Hotel.List, Mw: []gin.HandlerFunc{operatorOnly}},
			{Method: http.MethodGet, Path: "/:id", Handler: handlers.Hotel.Get, Mw: []gin.HandlerFunc{operatorOnly}},
			{Method: http.MethodGet, Path: "/:id/room-types", Handler: handlers.RoomType.ListByHotel, Mw: []gin.HandlerFunc{operatorOnly}},
			{Method: http.MethodPost, Path: "", Handler: handlers.Hotel.Create, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPut, Path: "/:id", Handler: handlers.Hotel.Update, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Hotel.Delete, Mw: []gin.HandlerFunc{adminOnly}},
		})

		roomTypes := apiGroup.Group("/room-types")
		roomTypes.Use(authMiddleware.RequireAuth())
		addRoutes(roomTypes, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: handlers.RoomType.Get, Mw: []gin.HandlerFunc{operatorOnly}},
			{Method: http.MethodPost, Path: "", Handler: handlers.RoomType.Create, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPut, Path: "/:id", Handler: handlers.RoomType.Update, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodDelete, Path: "/:id", Handler: handlers.RoomType.Delete, Mw: []gin.HandlerFunc{adminOnly}},
		})

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: handlers.Room.List, Mw: []gin.HandlerFunc{operatorOnly}},
			{Method: http.MethodGet, Path: "/summary", Handler: handlers.Room.Summary, Mw: []gin.HandlerFunc{operatorOnly}},
			{Method: http.MethodGet, Path: "/:id", Handler: handlers.Room.Get, Mw: []gin.HandlerFunc{operatorOnly}},
			{Method: http.MethodGet, Path: "/:id/history", Handler: handlers.Room.History, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPost, Path: "", Handler: handlers.Room.Create, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPut, Path: "/:id", Handler: handlers.Room.Update, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: handlers.Room.ChangeStatus, Mw: []gin.HandlerFunc{adminOnly}},
			{Method: http.MethodPatch, Path: "/:id/housekeeping-status", Handler: handlers.Room.ChangeHousekeepingStatus, Mw: []gin.HandlerFunc{operatorOnly}},
			{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Room.Delete, Mw: []gin.HandlerFunc{adminOnly}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
