package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"condo-ops-backend/internal/logger"
	"condo-ops-backend/internal/service"
)

// ReconcileJob re-derives cleaning duties that a failed completion left missing
type ReconcileJob struct {
	scheduling service.SchedulingServiceInterface
	tenants    []string
	every      time.Duration
}

// NewReconcileJob creates the job, running every interval
func NewReconcileJob(scheduling service.SchedulingServiceInterface, tenants []string, every time.Duration) *ReconcileJob {
	return &ReconcileJob{
		scheduling: scheduling,
		tenants:    tenants,
		every:      every,
	}
}

func (j *ReconcileJob) Name() string {
	return "ReconcileDerivations"
}

func (j *ReconcileJob) Schedule() Schedule {
	return Schedule{Every: j.every}
}

func (j *ReconcileJob) Execute(ctx context.Context) error {
	var errs []error
	for _, tenantID := range j.tenants {
		resp, err := j.scheduling.ReconcileDerivations(ctx, tenantID)
		if err != nil {
			errs = append(errs, fmt.Errorf("tenant %s: %w", tenantID, err))
			continue
		}
		if len(resp.Created) == 0 {
			continue
		}
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"tenant_id": tenantID,
			"checked":   resp.Checked,
			"created":   resp.Created,
		}).Warn("Re-created missing cleaning duties")
	}
	return errors.Join(errs...)
}
