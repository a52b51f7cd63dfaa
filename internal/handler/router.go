package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/infra/observability"
	"hotel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Rooms    *api.RoomHandler
	Bookings *api.BookingHandler
	Messages *api.MessageHandler
	Admin    *api.AdminHandler
}

func NewHandlers(rooms *api.RoomHandler, bookings *api.BookingHandler, messages *api.MessageHandler, admin *api.AdminHandler) Handlers {
	return Handlers{Rooms: rooms, Bookings: bookings, Messages: messages, Admin: admin}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics *observability.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, metrics)
	setupRoutes(engine, h, authMiddleware, metrics)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, metrics *observability.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(metrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, metrics *observability.Metrics) {
	engine.GET("/", welcome)
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/test/ping", ping)

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Bookings.Checkout},
		})

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/search", Handler: h.Rooms.SearchRooms},
				{Method: http.MethodGet, Path: "/search-combinations", Handler: h.Rooms.SearchCombinations},
				{Method: http.MethodGet, Path: "/all", Handler: h.Rooms.ListRooms},
				{Method: http.MethodGet, Path: "/dynamic-price", Handler: h.Rooms.DynamicPrice},
				{Method: http.MethodGet, Path: "/combinations", Handler: h.Rooms.ListCombinations},
				{Method: http.MethodGet, Path: "/combination/:combinationId", Handler: h.Rooms.CombinationDetails},
				{Method: http.MethodGet, Path: "/combination/:combinationId/booking", Handler: h.Rooms.CombinationBooking},
				{Method: http.MethodPost, Path: "/contact", Handler: h.Messages.Send},
				{Method: http.MethodPost, Path: "/booking", Handler: h.Bookings.Create},
			})

			adminOnly := []gin.HandlerFunc{authMiddleware.RequireAdmin()}
			addRoutes(rooms.Group("/admin"), []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Admin.Reservations, Mw: adminOnly},
				{Method: http.MethodGet, Path: "/messages", Handler: h.Admin.Messages, Mw: adminOnly},
			})
		}
	}
}

// @Summary Welcome
// @Tags system
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Router / [get]
func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Welcome to the Union of Scientists in Bulgaria Hotel API"})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags system
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{
		Status:  "ok",
		Message: "Service is healthy",
	})
}

// @Summary Ping
// @Tags system
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Router /api/test/ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "pong 🏓 working fine!"})
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
