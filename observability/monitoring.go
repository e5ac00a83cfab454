package observability

import (
	"chat-room/contract"
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

var (
	_ contract.RoomMonitor = (*MonitoringManager)(nil)
	_ contract.Worker      = (*MonitoringManager)(nil)
)

const defaultRefreshInterval = time.Second

// MonitoringStats aggregates the room activity exposed on /health.
type MonitoringStats struct {
	Messages          uint64  `json:"messages"`
	Replies           uint64  `json:"replies"`
	GenerationErrors  uint64  `json:"generation_errors"`
	StoreErrors       uint64  `json:"store_errors"`
	MessagesPerSecond float64 `json:"messages_per_second"`
	AllocMemMb        uint64  `json:"alloc_mem_mb"`
	NumGC             uint32  `json:"num_gc"`
	Goroutines        int     `json:"goroutines"`
}

// MonitoringManager counts room activity and refreshes derived stats on a ticker.
type MonitoringManager struct {
	log      *slog.Logger
	interval time.Duration

	mu          sync.RWMutex
	latestStats MonitoringStats
	lastCheck   time.Time
	lastCount   uint64

	messages         atomic.Uint64
	replies          atomic.Uint64
	generationErrors atomic.Uint64
	storeErrors      atomic.Uint64
}

func NewMonitoringManager(log *slog.Logger, interval time.Duration) *MonitoringManager {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &MonitoringManager{log: log, interval: interval, lastCheck: time.Now()}
}

func (mm *MonitoringManager) IncrMessages()         { mm.messages.Add(1) }
func (mm *MonitoringManager) IncrReplies()          { mm.replies.Add(1) }
func (mm *MonitoringManager) IncrGenerationErrors() { mm.generationErrors.Add(1) }
func (mm *MonitoringManager) IncrStoreErrors()      { mm.storeErrors.Add(1) }

// Run refreshes the stats until ctx is done.
func (mm *MonitoringManager) Run(ctx context.Context) error {
	ticker := time.NewTicker(mm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			mm.log.Info("Monitoring manager stopped")
			return nil
		case <-ticker.C:
			mm.Refresh()
		}
	}
}

// Refresh recomputes the throughput since the previous refresh and reads the Go runtime stats.
func (mm *MonitoringManager) Refresh() {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	now := time.Now()
	messages := mm.messages.Load()
	if elapsed := now.Sub(mm.lastCheck).Seconds(); elapsed > 0 {
		mm.latestStats.MessagesPerSecond = float64(messages-mm.lastCount) / elapsed
	}
	mm.lastCheck = now
	mm.lastCount = messages

	mm.latestStats.Messages = messages
	mm.latestStats.Replies = mm.replies.Load()
	mm.latestStats.GenerationErrors = mm.generationErrors.Load()
	mm.latestStats.StoreErrors = mm.storeErrors.Load()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC
	mm.latestStats.Goroutines = runtime.NumGoroutine()

	mm.log.Debug("Stats refreshed",
		"messages", mm.latestStats.Messages,
		"replies", mm.latestStats.Replies,
		"messages_per_second", mm.latestStats.MessagesPerSecond,
		"mem_mb", mm.latestStats.AllocMemMb,
	)
}

// GetLatest returns the stats of the last refresh, counters are read live.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	stats := mm.latestStats
	mm.mu.RUnlock()

	stats.Messages = mm.messages.Load()
	stats.Replies = mm.replies.Load()
	stats.GenerationErrors = mm.generationErrors.Load()
	stats.StoreErrors = mm.storeErrors.Load()
	return stats
}
