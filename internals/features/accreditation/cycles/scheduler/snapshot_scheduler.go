// file: internals/features/accreditation/cycles/scheduler/snapshot_scheduler.go
package scheduler

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"akreditasi_backend/internals/features/accreditation/cycles/model"
)

type ActiveCycleLister interface {
	ListActiveCycleIDs(ctx context.Context) ([]uuid.UUID, error)
}

type SnapshotTaker interface {
	Take(ctx context.Context, cycleID uuid.UUID, trigger string) (model.SimulationSnapshotModel, error)
}

const roundTimeout = 10 * time.Minute

// RunSnapshotRound men-snapshot semua siklus aktif paralel (maks `workers`).
// Kegagalan per siklus hanya di-log; yang dikembalikan jumlah snapshot sukses.
func RunSnapshotRound(ctx context.Context, lister ActiveCycleLister, taker SnapshotTaker, workers int) (int, error) {
	ids, err := lister.ListActiveCycleIDs(ctx)
	if err != nil {
		return 0, err
	}
	if workers <= 0 {
		workers = 1
	}

	var ok atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			// panic di satu siklus tidak boleh mematikan proses
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[PANIC] [SNAPSHOT-CRON] cycle=%s: %v", id, r)
				}
			}()
			if _, err := taker.Take(gctx, id, model.SnapshotTriggerCron); err != nil {
				log.Printf("[SNAPSHOT-CRON] cycle=%s gagal: %v", id, err)
				return nil
			}
			ok.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return int(ok.Load()), ctx.Err()
}

// StartSnapshotScheduler: panggil dari main.go setelah DB siap.
func StartSnapshotScheduler(spec string, lister ActiveCycleLister, taker SnapshotTaker, workers int) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), roundTimeout)
		defer cancel()

		start := time.Now()
		n, err := RunSnapshotRound(ctx, lister, taker, workers)
		if err != nil {
			log.Printf("[SNAPSHOT-CRON] round error: %v", err)
		}
		log.Printf("[SNAPSHOT-CRON] %d snapshot tersimpan dalam %s", n, time.Since(start).Round(time.Millisecond))
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[SNAPSHOT-CRON] started schedule=%q workers=%d", spec, workers)
	c.Start()
	return c, nil
}
