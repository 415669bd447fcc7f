package convlog

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"agent-swarm-orchestrator/internal/model"
)

func TestLogger_AppendsJSONLInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "conversations.jsonl")
	l := New(path)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := l.Append(ctx, Record{
			TaskID:   "task-1",
			Ordinal:  i,
			Agent:    model.IdentityA,
			Request:  fmt.Sprintf("request %d", i),
			Response: fmt.Sprintf("response %d", i),
		})
		if err != nil {
			t.Fatalf("append %d: unexpected error: %v", i, err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open log: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var ordinals []int
	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("line is not valid JSON: %v", err)
		}
		if rec.Timestamp.IsZero() {
			t.Error("expected timestamp to be stamped")
		}
		ordinals = append(ordinals, rec.Ordinal)
	}

	if len(ordinals) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(ordinals))
	}
	for i, ord := range ordinals {
		if ord != i+1 {
			t.Errorf("line %d: expected ordinal %d, got %d", i, i+1, ord)
		}
	}
}

func TestLogger_ErrorRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversations.jsonl")
	l := New(path)

	err := l.Append(context.Background(), Record{
		TaskID:  "task-2",
		Ordinal: 2,
		Agent:   model.IdentityB,
		Request: "do something",
		Error:   "endpoint unreachable",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}

	var rec Record
	if err := json.Unmarshal(data[:len(data)-1], &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Error != "endpoint unreachable" || rec.Response != "" {
		t.Errorf("unexpected record: %+v", rec)
	}
}
