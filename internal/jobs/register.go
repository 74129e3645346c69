package jobs

import (
	"fmt"

	"condo-ops-backend/internal/config"
	"condo-ops-backend/internal/logger"
	"condo-ops-backend/internal/service"
)

// RegisterAll registers every job for the configured tenant
func RegisterAll(s *Scheduler, cfg *config.Config, scheduling service.SchedulingServiceInterface) error {
	log := logger.New().WithField("component", "jobs")
	if !cfg.SchedulerEnabled {
		log.Info("Scheduler disabled, skipping job registration")
		return nil
	}

	tenants := []string{cfg.TenantID}

	if err := s.AddJob(NewDailyBoardJob(scheduling, tenants, cfg.BoardJobAt)); err != nil {
		return fmt.Errorf("daily board job: %w", err)
	}
	if cfg.ReconcileInterval > 0 {
		if err := s.AddJob(NewReconcileJob(scheduling, tenants, cfg.ReconcileInterval)); err != nil {
			return fmt.Errorf("reconcile job: %w", err)
		}
	}

	log.WithField("jobs", s.JobCount()).Info("Jobs registered")
	return nil
}
