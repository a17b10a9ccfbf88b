package handlers

import (
	"net/http"

	"daily_companion/internal/logger"
	"daily_companion/internal/service"
	"daily_companion/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler wires the HTTP layer to services, sessions, and logging.
type Handler struct {
	services *service.Service
	sessions *session.Manager
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, sessions *session.Manager, log *logger.Logger) *Handler {
	return &Handler{services: services, sessions: sessions, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// The caller is responsible for loading the HTML templates onto the engine.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.observe)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public pages
	router.GET("/", h.index)
	h.registerAuthRoutes(router)

	// Everything behind the session gate
	h.registerPrivateRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/register", h.registerForm)
	r.POST("/register", h.register)
	r.GET("/login", h.loginForm)
	r.POST("/login", h.login)
	r.GET("/logout", h.logout)
}

func (h *Handler) registerPrivateRoutes(r *gin.Engine) {
	private := r.Group("/", h.requireAuth)
	{
		// todo list
		private.GET("/homepage", h.homepage)
		private.POST("/add", h.addTodo)
		private.GET("/delete/:todoid", h.deleteTodo)
		private.GET("/complete/:todoid", h.completeTodo)

		// journal
		private.GET("/journal", h.journal)
		private.GET("/new_entry", h.newEntry)
		private.GET("/open_entry/:entry_id", h.openEntry)
		private.POST("/insert_new_entry", h.insertNewEntry)
		private.POST("/update_entry", h.updateEntry)
		private.GET("/delete_entry/:entry_id", h.deleteEntry)

		// mood report
		private.GET("/mood_tracker", h.moodTracker)
		private.GET("/mood_tracker/chart.png", h.moodChart)
	}
}

// logAndError logs a store failure and answers with a bare 500. Details stay
// out of the response.
func (h *Handler) logAndError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.String(http.StatusInternalServerError, "Internal Server Error")
	c.Abort()
}
