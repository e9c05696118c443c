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

	"github.com/caremate/companion-api/external/airquality"
	"github.com/caremate/companion-api/logmodule"
	"github.com/caremate/companion-api/reminder"
	"github.com/caremate/companion-api/store"
	"github.com/caremate/companion-api/triage"
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
	store      store.CompanionCore
	mongoStore store.MongoStore

	// Core components
	scheduler    *reminder.Scheduler
	triageEngine *triage.Engine

	// External services
	airQuality airquality.Provider
}

// NewServer new instance of server
func NewServer(
	companionStore store.CompanionCore,
	mongoStore store.MongoStore,
	scheduler *reminder.Scheduler,
	triageEngine *triage.Engine,
	airQuality airquality.Provider) *Server {
	return &Server{
		store:        companionStore,
		mongoStore:   mongoStore,
		scheduler:    scheduler,
		triageEngine: triageEngine,
		airQuality:   airQuality,
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

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/information", s.information)

	reminderRoute := apiRoute.Group("/reminders")
	{
		reminderRoute.GET("", s.listReminders)
		reminderRoute.POST("", s.createReminder)
		reminderRoute.PATCH("/:reminderID", s.toggleReminder)
		reminderRoute.DELETE("/:reminderID", s.deleteReminder)
		reminderRoute.POST("/:reminderID/snooze", s.snoozeReminder)
	}

	alarmRoute := apiRoute.Group("/alarm")
	{
		alarmRoute.GET("", s.activeAlarm)
		alarmRoute.POST("/stop", s.stopAlarm)
	}

	symptomRoute := apiRoute.Group("/symptoms")
	{
		symptomRoute.GET("", s.listKnownSymptoms)
		symptomRoute.POST("/check", s.checkSymptoms)
		symptomRoute.GET("/history", s.triageHistory)
	}

	apiRoute.GET("/air-quality", s.airQualityByLocation)
	apiRoute.GET("/emergency-numbers", s.emergencyNumbers)

	firstAidRoute := apiRoute.Group("/first-aid")
	{
		firstAidRoute.GET("", s.listFirstAidGuides)
		firstAidRoute.GET("/:topic", s.getFirstAidGuide)
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

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
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
			"system_version": "Companion 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
