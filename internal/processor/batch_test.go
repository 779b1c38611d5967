// internal/processor/batch_test.go
package processor_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jansunwai/grievance-classifier/internal/domain"
	"github.com/jansunwai/grievance-classifier/internal/processor"
)

// echoClassifier labels each text with itself so ordering can be
// checked from the outside.
type echoClassifier struct {
	calls atomic.Int32
}

func (e *echoClassifier) Classify(_ context.Context, text string, hint *domain.VisionHint) domain.ClassificationResult {
	e.calls.Add(1)

	category := text
	if hint != nil {
		category = text + "+" + hint.Category
	}

	return domain.ClassificationResult{Category: category}
}

// captureLogger records log messages. Workers log concurrently, so
// access is mutex guarded.
type captureLogger struct {
	mu       sync.Mutex
	messages []string
}

func (c *captureLogger) record(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
}

func (c *captureLogger) count(msg string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, m := range c.messages {
		if m == msg {
			n++
		}
	}
	return n
}

func (c *captureLogger) Debug(msg string, _ ...any) { c.record(msg) }
func (c *captureLogger) Info(msg string, _ ...any)  { c.record(msg) }
func (c *captureLogger) Warn(msg string, _ ...any)  { c.record(msg) }
func (c *captureLogger) Error(msg string, _ ...any) { c.record(msg) }

func TestProcess_PreservesInputOrder(t *testing.T) {
	classifier := &echoClassifier{}
	proc := processor.NewBatchProcessor(classifier, 3, &captureLogger{}, nil)

	items := make([]processor.Item, 12)
	for i := range items {
		items[i] = processor.Item{Text: "complaint-" + strconv.Itoa(i)}
	}

	results, err := proc.Process(context.Background(), items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(items) {
		t.Fatalf("expected %d results, got %d", len(items), len(results))
	}

	for i, res := range results {
		if res.Category != items[i].Text {
			t.Errorf("result %d: expected category %q, got %q", i, items[i].Text, res.Category)
		}
	}

	if got := classifier.calls.Load(); got != int32(len(items)) {
		t.Errorf("expected %d classify calls, got %d", len(items), got)
	}
}

func TestProcess_PassesVisionHint(t *testing.T) {
	proc := processor.NewBatchProcessor(&echoClassifier{}, 2, &captureLogger{}, nil)

	items := []processor.Item{
		{Text: "garbage pile"},
		{Text: "garbage pile", Hint: &domain.VisionHint{Category: "sanitation"}},
	}

	results, err := proc.Process(context.Background(), items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if results[0].Category != "garbage pile" {
		t.Errorf("expected plain category, got %q", results[0].Category)
	}
	if results[1].Category != "garbage pile+sanitation" {
		t.Errorf("expected hinted category, got %q", results[1].Category)
	}
}

func TestProcess_EmptyBatch(t *testing.T) {
	classifier := &echoClassifier{}
	proc := processor.NewBatchProcessor(classifier, 4, &captureLogger{}, nil)

	results, err := proc.Process(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
	if got := classifier.calls.Load(); got != 0 {
		t.Errorf("expected no classify calls, got %d", got)
	}
}

func TestProcess_StartsConfiguredWorkers(t *testing.T) {
	log := &captureLogger{}
	proc := processor.NewBatchProcessor(&echoClassifier{}, 3, log, nil)

	if _, err := proc.Process(context.Background(), []processor.Item{{Text: "streetlight out"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := log.count("Worker started"); got != 3 {
		t.Errorf("expected 3 workers started, got %d", got)
	}
}

func TestProcess_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	classifier := &echoClassifier{}
	proc := processor.NewBatchProcessor(classifier, 2, &captureLogger{}, nil)

	results, err := proc.Process(ctx, []processor.Item{{Text: "water leak"}, {Text: "power cut"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if results != nil {
		t.Errorf("expected nil results, got %v", results)
	}
	if got := classifier.calls.Load(); got != 0 {
		t.Errorf("expected no classify calls after cancellation, got %d", got)
	}
}

func TestNewBatchProcessor_DefaultConcurrency(t *testing.T) {
	proc := processor.NewBatchProcessor(&echoClassifier{}, 0, &captureLogger{}, nil)

	if got := proc.Concurrency(); got != 8 {
		t.Errorf("expected default concurrency 8, got %d", got)
	}
}
