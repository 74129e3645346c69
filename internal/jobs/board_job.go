package jobs

import (
	"context"
	"errors"
	"fmt"

	"condo-ops-backend/internal/logger"
	"condo-ops-backend/internal/service"
)

// DailyBoardJob logs each tenant's board for the new day so staff digests
// and alerts can be built from the log stream.
type DailyBoardJob struct {
	scheduling service.SchedulingServiceInterface
	tenants    []string
	at         string
}

// NewDailyBoardJob creates the job, running every day at "HH:MM"
func NewDailyBoardJob(scheduling service.SchedulingServiceInterface, tenants []string, at string) *DailyBoardJob {
	return &DailyBoardJob{
		scheduling: scheduling,
		tenants:    tenants,
		at:         at,
	}
}

func (j *DailyBoardJob) Name() string {
	return "DailyBoard"
}

func (j *DailyBoardJob) Schedule() Schedule {
	return Schedule{DailyAt: j.at}
}

func (j *DailyBoardJob) Execute(ctx context.Context) error {
	var errs []error
	for _, tenantID := range j.tenants {
		board, err := j.scheduling.TodayBoard(ctx, tenantID, "")
		if err != nil {
			errs = append(errs, fmt.Errorf("tenant %s: %w", tenantID, err))
			continue
		}
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"tenant_id":   tenantID,
			"date":        board.Date,
			"day_items":   len(board.Day),
			"night_items": len(board.Night),
			"pending":     board.Pending,
			"done":        board.Done,
		}).Info("Daily board")
	}
	return errors.Join(errs...)
}
