// Command reconcile recomputes the cached per-department counters
// (item_count, capacity_used) from live item rows. It is intended to be
// invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/akulikova/stockroom-backend/internal/adapter/postgres"
	"github.com/akulikova/stockroom-backend/internal/adapter/postgres/department"
	"github.com/akulikova/stockroom-backend/internal/adapter/postgres/item"
	"github.com/akulikova/stockroom-backend/internal/app"
	"github.com/akulikova/stockroom-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	departmentRepo := department.New(pool)
	itemRepo := item.New(pool)

	depts, err := departmentRepo.ListAll(ctx)
	if err != nil {
		logger.Error("list departments", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repaired := 0
	for _, d := range depts {
		itemCount, err := itemRepo.CountByDepartment(ctx, d.ID)
		if err != nil {
			logger.Error("recompute counters",
				slog.String("department_id", d.ID.String()),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		capacityUsed := itemCount * cfg.Inventory.CapacityUnitPerItem

		if itemCount == d.ItemCount && capacityUsed == d.CapacityUsed {
			continue
		}

		if _, err := departmentRepo.SetCounters(ctx, d.ID, itemCount, capacityUsed); err != nil {
			logger.Error("set counters",
				slog.String("department_id", d.ID.String()),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}

		logger.Info("counters repaired",
			slog.String("department_id", d.ID.String()),
			slog.String("name", d.Name),
			slog.Int("item_count", itemCount),
			slog.Int("capacity_used", capacityUsed),
		)
		repaired++
	}

	logger.Info("reconcile completed",
		slog.Int("departments", len(depts)),
		slog.Int("repaired", repaired),
	)
}
