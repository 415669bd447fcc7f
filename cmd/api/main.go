package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agent-swarm-orchestrator/config"
	"agent-swarm-orchestrator/internal/agent/decomposer"
	"agent-swarm-orchestrator/internal/agent/orchestrator"
	"agent-swarm-orchestrator/internal/agent/session"
	"agent-swarm-orchestrator/internal/convlog"
	"agent-swarm-orchestrator/internal/endpoint"
	"agent-swarm-orchestrator/internal/httpserver"
	"agent-swarm-orchestrator/internal/model"
	"agent-swarm-orchestrator/internal/task/usecase"
	"agent-swarm-orchestrator/pkg/lmstudio"
	"agent-swarm-orchestrator/pkg/log"
)

// @title       Agent Swarm Orchestrator API
// @description Multi-agent orchestration over local inference endpoints: a PM agent decomposes tasks and dispatches subtasks to workers sequentially.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Agent Swarm Orchestrator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Endpoint client: one backend per agent, shared retry policy.
	endpointClient := endpoint.New(logger, endpoint.RetryPolicy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay,
		Multiplier:  cfg.Retry.Multiplier,
		MaxDelay:    cfg.Retry.MaxDelay,
		Jitter:      cfg.Retry.Jitter,
	})

	agents := map[model.Identity]config.AgentConfig{
		model.IdentityPM: cfg.Agents.PM,
		model.IdentityA:  cfg.Agents.A,
		model.IdentityB:  cfg.Agents.B,
		model.IdentityC:  cfg.Agents.C,
	}
	prompts := make(map[model.Identity]string, len(agents))
	for id, agentCfg := range agents {
		backend, beErr := lmstudio.New(lmstudio.Config{
			BaseURL: agentCfg.Endpoint,
			Model:   agentCfg.Model,
			APIKey:  agentCfg.APIKey,
			Timeout: agentCfg.Timeout,
		})
		if beErr != nil {
			logger.Errorf(ctx, "agent %s backend: %v", id, beErr)
			return
		}
		endpointClient.Register(id, backend, agentCfg.Timeout)
		prompts[id] = agentCfg.SystemPrompt
		logger.Infof(ctx, "agent %s → %s (%s)", id, agentCfg.Endpoint, agentCfg.Model)
	}

	// 4. Session store and conversation transcript.
	sessionStore := session.New(prompts)
	transcript := convlog.New(cfg.ConvLog.Path)

	// 5. Decomposer and orchestrator.
	dec := decomposer.New(logger, endpointClient, sessionStore)
	orch := orchestrator.New(logger, endpointClient, sessionStore, dec, transcript, orchestrator.CarryForward{
		Mode:     orchestrator.CarryForwardMode(cfg.Orchestrator.CarryForward),
		MaxChars: cfg.Orchestrator.CarryForwardMaxChars,
	})

	// 6. Task use case.
	taskUC := usecase.New(logger, orch, sessionStore)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskUC:      taskUC,
		Pinger:      endpointClient,
		Security:    cfg.Security,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
