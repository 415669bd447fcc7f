package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"agent-swarm-orchestrator/config"
	"agent-swarm-orchestrator/internal/model"
	"agent-swarm-orchestrator/internal/task"
	"agent-swarm-orchestrator/pkg/log"
)

// Pinger reports whether an agent's endpoint answers. Satisfied by
// *endpoint.Client.
type Pinger interface {
	Ping(ctx context.Context, id model.Identity) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Task domain
	taskUC task.UseCase

	// Health
	pinger Pinger

	// Security
	security config.SecurityConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	TaskUC   task.UseCase
	Pinger   Pinger
	Security config.SecurityConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		taskUC:      cfg.TaskUC,
		pinger:      cfg.Pinger,
		security:    cfg.Security,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	return nil
}
