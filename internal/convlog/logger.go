package convlog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"agent-swarm-orchestrator/internal/model"
)

// Record is one append-only transcript entry. The service writes records in
// arrival order and never reads them back.
type Record struct {
	Timestamp time.Time      `json:"timestamp"`
	TaskID    string         `json:"task_id"`
	Ordinal   int            `json:"ordinal"`
	Agent     model.Identity `json:"agent"`
	Request   string         `json:"request"`
	Response  string         `json:"response,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Logger appends conversation records to a JSONL file, one object per line.
type Logger struct {
	mu   sync.Mutex
	path string
}

// New creates a conversation logger writing to path. The parent directory
// is created on first append.
func New(path string) *Logger {
	return &Logger{path: path}
}

// Append writes one record. Appends are serialized so interleaved tasks
// produce whole lines in arrival order.
func (l *Logger) Append(ctx context.Context, rec Record) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open conversation log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}
