package lmstudio

import "time"

const (
	// DefaultModel is the model name LM Studio reports for a locally loaded model.
	DefaultModel = "local-model"

	// DefaultTimeout bounds a single request when no timeout is configured.
	DefaultTimeout = 120 * time.Second

	chatCompletionsPath = "/chat/completions"
	modelsPath          = "/models"
)
