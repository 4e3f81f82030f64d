package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mentorsync/internal/domain/user"
	"mentorsync/internal/handler/api"
	"mentorsync/internal/handler/middleware"
	"mentorsync/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Booking  *api.BookingHandler
	Timeslot *api.TimeslotHandler
	Session  *api.SessionHandler
	Position *api.PositionHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAccUser)}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListOwnBookings,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAccUser)}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
			})
		}

		mentor := apiGroup.Group("/mentor")
		mentor.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleMentor))
		{
			addRoutes(mentor, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListMentorBookings},
				{Method: http.MethodGet, Path: "/sessions", Handler: h.Session.ListOwnSessions},
			})
		}

		timeslots := apiGroup.Group("/timeslots")
		timeslots.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleMentor))
		{
			addRoutes(timeslots, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Timeslot.AddTimeslots},
				{Method: http.MethodGet, Path: "", Handler: h.Timeslot.ListOwnTimeslots},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Timeslot.UpdateTimeslot},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Timeslot.DeleteTimeslot},
			})
		}

		sessions := apiGroup.Group("/sessions")
		{
			addRoutes(sessions, []route{
				{Method: http.MethodGet, Path: "/available", Handler: h.Session.ListAvailableSessions},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Session.GetSession},
			})

			sessionOwner := sessions.Group("")
			sessionOwner.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleMentor))
			addRoutes(sessionOwner, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Session.CreateSession},
				{Method: http.MethodGet, Path: "/:id/timeslots", Handler: h.Timeslot.ListSessionTimeslots},
			})
		}

		positions := apiGroup.Group("/positions")
		{
			addRoutes(positions, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Position.ListPositions},
			})

			positionWrite := positions.Group("")
			positionWrite.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
			addRoutes(positionWrite, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Position.CreatePosition},
			})
		}
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
