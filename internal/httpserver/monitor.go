package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"time"
)

// MemoryMonitor watches heap and goroutine growth against a baseline
// taken shortly after startup. Growth beyond the threshold multiplier
// is reported through the warning callback passed to Start.
type MemoryMonitor struct {
	mu                 sync.RWMutex
	baselineHeap       uint64
	baselineGoroutines int

	threshold     float64
	checkInterval time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryMonitor builds a monitor that flags growth beyond threshold
// (2.0 means double the baseline) and checks every checkInterval.
func NewMemoryMonitor(threshold float64, checkInterval time.Duration) *MemoryMonitor {
	return &MemoryMonitor{
		threshold:     threshold,
		checkInterval: checkInterval,
		stop:          make(chan struct{}),
	}
}

// Start records the baseline and begins periodic growth checks in a
// background goroutine. onWarn receives a one-line report whenever heap
// or goroutine count exceeds the threshold. Call at most once.
func (m *MemoryMonitor) Start(onWarn func(string)) {
	go func() {
		m.recordBaseline()

		ticker := time.NewTicker(m.checkInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if report, grown := m.check(); grown && onWarn != nil {
					onWarn(report)
				}
			case <-m.stop:
				return
			}
		}
	}()
}

// Stop ends the periodic checks. Safe to call more than once.
func (m *MemoryMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// Baseline returns the recorded baseline heap in megabytes and the
// baseline goroutine count. Both are zero until Start has run.
func (m *MemoryMonitor) Baseline() (heapMB float64, goroutines int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return float64(m.baselineHeap) / 1024 / 1024, m.baselineGoroutines
}

// recordBaseline collects post-GC memory stats as the comparison point.
func (m *MemoryMonitor) recordBaseline() {
	runtime.GC()
	// Give the collector a moment to settle before sampling.
	time.Sleep(100 * time.Millisecond)

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	m.mu.Lock()
	m.baselineHeap = stats.Alloc
	m.baselineGoroutines = runtime.NumGoroutine()
	m.mu.Unlock()
}

// check compares current usage to the baseline. It returns a report and
// true when heap or goroutine growth exceeds the threshold.
func (m *MemoryMonitor) check() (report string, grown bool) {
	m.mu.RLock()
	baseHeap := m.baselineHeap
	baseGoroutines := m.baselineGoroutines
	threshold := m.threshold
	m.mu.RUnlock()

	if baseHeap == 0 {
		return "", false
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	if growth := float64(stats.Alloc) / float64(baseHeap); growth > threshold {
		return fmt.Sprintf("heap grew %.2fx (%.2f MB -> %.2f MB)",
			growth,
			float64(baseHeap)/1024/1024,
			float64(stats.Alloc)/1024/1024,
		), true
	}

	goroutines := runtime.NumGoroutine()
	if growth := float64(goroutines) / float64(baseGoroutines); growth > threshold {
		return fmt.Sprintf("goroutine count grew %.2fx (%d -> %d)",
			growth, baseGoroutines, goroutines,
		), true
	}

	return "", false
}

// MemoryHealth is the /health/memory payload.
type MemoryHealth struct {
	Timestamp          time.Time `json:"timestamp"`
	HeapAllocMB        float64   `json:"heap_alloc_mb"`
	HeapInuseMB        float64   `json:"heap_inuse_mb"`
	HeapIdleMB         float64   `json:"heap_idle_mb"`
	StackInuseMB       float64   `json:"stack_inuse_mb"`
	NumGC              uint32    `json:"num_gc"`
	NumGoroutine       int       `json:"num_goroutine"`
	GOMaxProcs         int       `json:"gomaxprocs"`
	LastGCPauseMs      float64   `json:"last_gc_pause_ms,omitempty"`
	BaselineHeapMB     float64   `json:"baseline_heap_mb,omitempty"`
	BaselineGoroutines int       `json:"baseline_goroutines,omitempty"`
}

// MemoryHealthHandler serves current runtime memory statistics as JSON.
// A nil monitor is fine; the baseline fields are simply omitted.
func MemoryHealthHandler(monitor *MemoryMonitor) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var stats runtime.MemStats
		runtime.ReadMemStats(&stats)

		health := MemoryHealth{
			Timestamp:    time.Now().UTC(),
			HeapAllocMB:  float64(stats.Alloc) / 1024 / 1024,
			HeapInuseMB:  float64(stats.HeapInuse) / 1024 / 1024,
			HeapIdleMB:   float64(stats.HeapIdle) / 1024 / 1024,
			StackInuseMB: float64(stats.StackInuse) / 1024 / 1024,
			NumGC:        stats.NumGC,
			NumGoroutine: runtime.NumGoroutine(),
			GOMaxProcs:   runtime.GOMAXPROCS(0),
		}
		if stats.NumGC > 0 {
			// PauseNs is a circular buffer of the last 256 pauses.
			health.LastGCPauseMs = float64(stats.PauseNs[(stats.NumGC+255)%256]) / 1e6
		}
		if monitor != nil {
			health.BaselineHeapMB, health.BaselineGoroutines = monitor.Baseline()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(health); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}
