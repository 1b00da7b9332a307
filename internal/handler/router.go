package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stayops/internal/domain/staff"
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

func NewRouter(engine *gin.Engine, cfg config.Config, wizardHandler *api.WizardHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, wizardHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, wizardHandler *api.WizardHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		sessions := apiGroup.Group("/wizard/sessions")
		sessions.Use(authMiddleware.RequireAuth())
		{
			// Viewers can inspect a session; everything that writes through
			// the channel manager needs at least the operator role.
			operator := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(staff.RoleOperator)}

			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "", Handler: wizardHandler.StartSession, Mw: operator},
				{Method: http.MethodPost, Path: "/resume", Handler: wizardHandler.Resume, Mw: operator},
				{Method: http.MethodGet, Path: "/:id", Handler: wizardHandler.GetState},
				{Method: http.MethodDelete, Path: "/:id", Handler: wizardHandler.Abandon, Mw: operator},

				{Method: http.MethodPut, Path: "/:id/header", Handler: wizardHandler.SubmitHeader, Mw: operator},

				{Method: http.MethodPost, Path: "/:id/rooms", Handler: wizardHandler.AddRoom, Mw: operator},
				{Method: http.MethodPut, Path: "/:id/rooms/:ref", Handler: wizardHandler.UpdateRoom, Mw: operator},
				{Method: http.MethodDelete, Path: "/:id/rooms/:ref", Handler: wizardHandler.RemoveRoom, Mw: operator},
				{Method: http.MethodPost, Path: "/:id/rooms/:ref/days", Handler: wizardHandler.SubmitRoomDays, Mw: operator},

				{Method: http.MethodPost, Path: "/:id/services", Handler: wizardHandler.AddService, Mw: operator},
				{Method: http.MethodDelete, Path: "/:id/services/:index", Handler: wizardHandler.RemoveService, Mw: operator},

				{Method: http.MethodPut, Path: "/:id/guarantee", Handler: wizardHandler.SubmitGuarantee, Mw: operator},

				{Method: http.MethodPost, Path: "/:id/guests", Handler: wizardHandler.AddGuest, Mw: operator},
				{Method: http.MethodPut, Path: "/:id/guests/:index", Handler: wizardHandler.UpdateGuest, Mw: operator},
				{Method: http.MethodDelete, Path: "/:id/guests/:index", Handler: wizardHandler.RemoveGuest, Mw: operator},

				{Method: http.MethodPost, Path: "/:id/skip", Handler: wizardHandler.Skip, Mw: operator},
				{Method: http.MethodPost, Path: "/:id/back", Handler: wizardHandler.Back, Mw: operator},
				{Method: http.MethodPost, Path: "/:id/goto", Handler: wizardHandler.Goto, Mw: operator},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: wizardHandler.Complete, Mw: operator},
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
