package workers

import (
	"context"
	"log"
	"time"

	"github.com/comitanigiacomo/kanso-widgets/internal/core/domain"
)

const defaultQueueSize = 100

type HeatmapRefresher interface {
	Refresh(ctx context.Context, userID, timezone string) (*domain.Heatmap, error)
}

type RefreshJob struct {
	UserID     string
	Timezone   string
	EnqueuedAt time.Time
}

// RefreshWorker recomputes heatmaps off the request path so the next widget
// read finds a warm cache.
type RefreshWorker struct {
	refresher HeatmapRefresher
	jobs      chan RefreshJob
	done      chan struct{}
}

func NewRefreshWorker(refresher HeatmapRefresher) *RefreshWorker {
	return NewRefreshWorkerWithQueue(refresher, defaultQueueSize)
}

func NewRefreshWorkerWithQueue(refresher HeatmapRefresher, size int) *RefreshWorker {
	return &RefreshWorker{
		refresher: refresher,
		jobs:      make(chan RefreshJob, size),
		done:      make(chan struct{}),
	}
}

func (w *RefreshWorker) Start(ctx context.Context) {
	go func() {
		defer close(w.done)
		log.Println("Refresh Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Refresh Worker shutting down...")
				return
			}
		}
	}()
}

// Done is closed once the worker loop has exited.
func (w *RefreshWorker) Done() <-chan struct{} {
	return w.done
}

// Enqueue never blocks; it reports false when the queue is full.
func (w *RefreshWorker) Enqueue(userID, timezone string) bool {
	select {
	case w.jobs <- RefreshJob{UserID: userID, Timezone: timezone, EnqueuedAt: time.Now()}:
		return true
	default:
		log.Printf("[WORKER] Refresh queue full! Dropping job for user %s", userID)
		return false
	}
}

func (w *RefreshWorker) processJob(ctx context.Context, job RefreshJob) {
	hm, err := w.refresher.Refresh(ctx, job.UserID, job.Timezone)
	if err != nil {
		log.Printf("[WORKER] Failed to refresh heatmap for %s: %v", job.UserID, err)
		return
	}

	log.Printf("[WORKER] Heatmap refreshed for %s in %s: Current=%d, Longest=%d",
		job.UserID, time.Since(job.EnqueuedAt).Round(time.Millisecond), hm.CurrentStreak, hm.LongestStreak)
}
