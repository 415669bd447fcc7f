package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Agent swarm specifics
	Agents       AgentsConfig
	Retry        RetryConfig
	Orchestrator OrchestratorConfig
	ConvLog      ConvLogConfig

	// Security
	Security SecurityConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AgentConfig describes one agent's inference endpoint.
type AgentConfig struct {
	Endpoint     string
	Model        string
	APIKey       string
	SystemPrompt string
	Timeout      time.Duration
}

// AgentsConfig holds the fixed roster: one PM and three workers.
type AgentsConfig struct {
	PM AgentConfig
	A  AgentConfig
	B  AgentConfig
	C  AgentConfig
}

// RetryConfig drives the endpoint client's backoff schedule.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
	MaxDelay    time.Duration
	Jitter      bool
}

// OrchestratorConfig controls forward-context chaining between subtasks.
type OrchestratorConfig struct {
	CarryForward         string // "full" or "truncated"
	CarryForwardMaxChars int
}

// ConvLogConfig points at the append-only conversation transcript.
type ConvLogConfig struct {
	Path string
}

// SecurityConfig drives bearer auth and per-IP rate limiting. The token
// itself is never stored in config, only the env var holding it.
type SecurityConfig struct {
	Enabled         bool
	TokenEnv        string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Agents
	cfg.Agents.PM = loadAgent("agents.pm")
	cfg.Agents.A = loadAgent("agents.a")
	cfg.Agents.B = loadAgent("agents.b")
	cfg.Agents.C = loadAgent("agents.c")

	// Retry
	cfg.Retry.MaxAttempts = viper.GetInt("retry.max_attempts")
	cfg.Retry.BaseDelay = viper.GetDuration("retry.base_delay")
	cfg.Retry.Multiplier = viper.GetFloat64("retry.multiplier")
	cfg.Retry.MaxDelay = viper.GetDuration("retry.max_delay")
	cfg.Retry.Jitter = viper.GetBool("retry.jitter")

	// Orchestrator
	cfg.Orchestrator.CarryForward = viper.GetString("orchestrator.carry_forward")
	cfg.Orchestrator.CarryForwardMaxChars = viper.GetInt("orchestrator.carry_forward_max_chars")

	// Conversation log
	cfg.ConvLog.Path = viper.GetString("convlog.path")

	// Security
	cfg.Security.Enabled = viper.GetBool("security.enabled")
	cfg.Security.TokenEnv = viper.GetString("security.token_env")
	cfg.Security.RateLimitPerMin = viper.GetInt("security.rate_limit_per_min")

	if err := validateAgents(&cfg.Agents); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadAgent(key string) AgentConfig {
	return AgentConfig{
		Endpoint:     viper.GetString(key + ".endpoint"),
		Model:        viper.GetString(key + ".model"),
		APIKey:       expandEnvVar(viper.GetString(key + ".api_key")),
		SystemPrompt: viper.GetString(key + ".system_prompt"),
		Timeout:      viper.GetDuration(key + ".timeout"),
	}
}

func validateAgents(agents *AgentsConfig) error {
	named := map[string]AgentConfig{
		"pm": agents.PM,
		"a":  agents.A,
		"b":  agents.B,
		"c":  agents.C,
	}
	for name, agent := range named {
		if agent.Endpoint == "" {
			return fmt.Errorf("agent %s: endpoint is required", name)
		}
		if agent.Model == "" {
			return fmt.Errorf("agent %s: model is required", name)
		}
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	for _, agent := range []string{"pm", "a", "b", "c"} {
		viper.SetDefault("agents."+agent+".model", "local-model")
		viper.SetDefault("agents."+agent+".timeout", "120s")
	}

	viper.SetDefault("retry.max_attempts", 3)
	viper.SetDefault("retry.base_delay", "1s")
	viper.SetDefault("retry.multiplier", 2.0)
	viper.SetDefault("retry.max_delay", "30s")
	viper.SetDefault("retry.jitter", true)

	viper.SetDefault("orchestrator.carry_forward", "full")
	viper.SetDefault("orchestrator.carry_forward_max_chars", 4000)

	viper.SetDefault("convlog.path", "./data/conversation.jsonl")

	viper.SetDefault("security.enabled", false)
	viper.SetDefault("security.token_env", "ORCHESTRATOR_API_TOKEN")
	viper.SetDefault("security.rate_limit_per_min", 60)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
