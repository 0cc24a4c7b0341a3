package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/recruitu/backend/internal/core/ports"
	customMiddleware "github.com/recruitu/backend/internal/infrastructure/httpserver/middleware"
	"github.com/sirupsen/logrus"
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

type ServerDeps struct {
	QueryParsingService ports.QueryParsingService
	SuggestionService   ports.SuggestionService
	PeopleClient        ports.PeopleClient
	CacheMaintenance    ports.CacheMaintenance
	HealthCheckers      []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	queryParsing   ports.QueryParsingService
	suggestions    ports.SuggestionService
	people         ports.PeopleClient
	maintenance    ports.CacheMaintenance
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		queryParsing:   deps.QueryParsingService,
		suggestions:    deps.SuggestionService,
		people:         deps.PeopleClient,
		maintenance:    deps.CacheMaintenance,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
