package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/velaraptor/pocas-backend/engine"
	"github.com/velaraptor/pocas-backend/geo"
	"github.com/velaraptor/pocas-backend/logmodule"
	"github.com/velaraptor/pocas-backend/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.PocasStore

	// External services
	geocoder geo.Geocoder

	// Matching engine
	engine *engine.Engine
}

// NewServer new instance of server
func NewServer(pocasStore store.PocasStore, geocoder geo.Geocoder) *Server {
	return &Server{
		store:    pocasStore,
		geocoder: geocoder,
		engine:   engine.New(pocasStore, geocoder),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api/v1")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/information", s.information)
	apiRoute.GET("/services", s.getServices)
	apiRoute.GET("/questions", s.getQuestions)

	// mutating and analytics routes require credentials
	authorized := apiRoute.Group("")
	authorized.Use(s.basicAuthentication())
	{
		authorized.POST("/services", s.createService)
		authorized.POST("/top_n", s.topN)
		authorized.POST("/radius_check", s.radiusCheck)

		platformRoute := authorized.Group("/platform")
		{
			platformRoute.GET("/zip_codes", s.zipCodes)
			platformRoute.GET("/data/:zipCode", s.userData)
		}
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "POCAS 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
