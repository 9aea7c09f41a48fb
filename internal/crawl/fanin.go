package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

func runLogWriter(lines <-chan string) {
	for s := range lines {
		fmt.Println(s)
	}
}

func runHeartbeat(ctx context.Context, interval time.Duration, totalBuckets int, mu *sync.Mutex, done, failed, tickTotal *int, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			mu.Lock()
			d, f, t := *done, *failed, *tickTotal
			mu.Unlock()
			logger.Info("heartbeat", "done", d, "total", totalBuckets, "failed", f, "ticks", t)
		}
	}
}
