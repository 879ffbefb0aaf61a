package server

import (
	"log"
	"net/http"
	"time"

	"escape-tracker/internal/config"
	"escape-tracker/internal/registry"
	"escape-tracker/internal/web"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	registry *registry.Registry
	db       *gorm.DB
	results  *resultsHub
	cfg      config.Config
}

func New(reg *registry.Registry, conn *gorm.DB, cfg config.Config) *Server {
	if reg == nil {
		reg = registry.New()
	}
	s := &Server{
		registry: reg,
		db:       conn,
		results:  newResultsHub(),
		cfg:      cfg,
	}
	reg.Observe(s.handleRegistryEvent)
	return s
}

func (s *Server) Handler() http.Handler {
	gin.SetMode(ginMode(s.cfg.GinMode))
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.StaticFS("/static", http.FS(web.Static()))
	router.GET("/", s.handleHome)
	router.GET("/play", s.handleGame)
	router.GET("/results", s.handleResultsView)
	router.POST("/register-player", s.handleRegisterPlayer)
	router.POST("/submit-result", s.handleSubmitResult)
	router.POST("/check-player", s.handleCheckPlayer)
	router.GET("/get-results", s.handleGetResults)
	router.GET("/healthz", s.handleHealth)
	router.GET("/ws/results", s.handleResultsWebsocket)
	return router
}

func ginMode(mode string) string {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		return mode
	default:
		return gin.ReleaseMode
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("http request method=%s path=%s status=%d duration=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func (s *Server) handleRegistryEvent(event registry.Event) {
	if err := s.persistEvent(event); err != nil {
		log.Printf("result event persist failed type=%s player=%s error=%v",
			event.Type, event.Record.PlayerName, err)
	}
	if s.cfg.ResultsPush {
		s.broadcastResults()
	}
}
