// Package processor fans complaint classification out over a bounded
// worker pool.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/jansunwai/grievance-classifier/internal/domain"
	"github.com/jansunwai/grievance-classifier/internal/telemetry"
)

// defaultConcurrency bounds the pool when the caller gives no size.
const defaultConcurrency = 8

// Classifier scores a single complaint text. classifier.Analyzer
// satisfies this interface.
type Classifier interface {
	Classify(ctx context.Context, text string, hint *domain.VisionHint) domain.ClassificationResult
}

// Logger defines the logging interface
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Item is one complaint queued for batch classification.
type Item struct {
	Text string
	Hint *domain.VisionHint
}

// job carries an item together with its position in the input batch.
type job struct {
	index int
	item  Item
}

// outcome pairs a finished classification with its input position.
type outcome struct {
	index  int
	result domain.ClassificationResult
}

// BatchProcessor classifies batches of complaints in parallel while
// preserving input order in the results.
type BatchProcessor struct {
	classifier  Classifier
	concurrency int
	logger      Logger
	telemetry   *telemetry.Provider
}

// NewBatchProcessor creates a batch processor. A concurrency of zero or
// less falls back to defaultConcurrency.
func NewBatchProcessor(c Classifier, concurrency int, log Logger, tel *telemetry.Provider) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &BatchProcessor{
		classifier:  c,
		concurrency: concurrency,
		logger:      log,
		telemetry:   tel,
	}
}

// Concurrency reports the worker pool size.
func (b *BatchProcessor) Concurrency() int {
	return b.concurrency
}

// Process classifies every item using the worker pool. The returned
// slice is indexed like the input. A cancelled context abandons the
// batch and returns the context error.
func (b *BatchProcessor) Process(ctx context.Context, items []Item) ([]domain.ClassificationResult, error) {
	if len(items) == 0 {
		return []domain.ClassificationResult{}, nil
	}

	if b.telemetry != nil {
		b.telemetry.RecordBatchSize(len(items))
	}

	b.logger.Info("Starting batch classification",
		"batch_size", len(items),
		"concurrency", b.concurrency,
	)

	startTime := time.Now()

	jobs := make(chan job, len(items))
	results := make(chan outcome, len(items))

	var wg sync.WaitGroup
	for i := 0; i < b.concurrency; i++ {
		wg.Add(1)
		go b.worker(ctx, i, jobs, results, &wg)
	}

	for i, item := range items {
		jobs <- job{index: i, item: item}
	}
	close(jobs)

	wg.Wait()
	close(results)

	if err := ctx.Err(); err != nil {
		b.logger.Warn("Batch classification abandoned", "error", err)
		return nil, err
	}

	out := make([]domain.ClassificationResult, len(items))
	for res := range results {
		out[res.index] = res.result
	}

	duration := time.Since(startTime)
	b.logger.Info("Batch classification complete",
		"total", len(items),
		"duration_ms", duration.Milliseconds(),
		"items_per_second", float64(len(items))/duration.Seconds(),
	)

	return out, nil
}

// worker drains the jobs channel until it closes or the context ends.
func (b *BatchProcessor) worker(
	ctx context.Context,
	id int,
	jobs <-chan job,
	results chan<- outcome,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	b.logger.Debug("Worker started", "worker_id", id)

	for j := range jobs {
		select {
		case <-ctx.Done():
			b.logger.Warn("Worker stopping due to context cancellation", "worker_id", id)
			return
		default:
		}

		results <- outcome{index: j.index, result: b.classifier.Classify(ctx, j.item.Text, j.item.Hint)}
	}

	b.logger.Debug("Worker finished", "worker_id", id)
}
