package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "condo-ops-backend/internal/errors"
	"condo-ops-backend/internal/logger"

	"github.com/go-co-op/gocron"
)

// Schedule says when a job runs. DailyAt ("HH:MM" in the scheduler's
// location) takes precedence over Every.
type Schedule struct {
	DailyAt string
	Every   time.Duration
}

func (s Schedule) String() string {
	if s.DailyAt != "" {
		return "daily at " + s.DailyAt
	}
	return "every " + s.Every.String()
}

// Job is a scheduled task
type Job interface {
	Name() string
	Execute(ctx context.Context) error
	Schedule() Schedule
}

// Scheduler runs registered jobs on a gocron scheduler. A job never
// overlaps with a still running execution of itself.
type Scheduler struct {
	scheduler *gocron.Scheduler
	jobs      []Job
	started   bool
	mu        sync.Mutex
	ctx       context.Context
	cancel    context.CancelFunc
	log       *logger.Logger
}

// NewScheduler creates a scheduler whose daily times are read in loc
func NewScheduler(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	scheduler := gocron.NewScheduler(loc)
	scheduler.SingletonModeAll()

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		scheduler: scheduler,
		jobs:      make([]Job, 0),
		ctx:       ctx,
		cancel:    cancel,
		log:       logger.New().WithField("component", "scheduler"),
	}
}

func (s *Scheduler) execute(job Job) {
	log := s.log.WithField("job", job.Name())
	started := time.Now()
	if err := job.Execute(s.ctx); err != nil {
		log.WithError(err).Error("Job execution failed")
		return
	}
	log.WithField("duration", time.Since(started).String()).Debug("Job execution completed")
}

// AddJob registers a job with the scheduler
func (s *Scheduler) AddJob(job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule := job.Schedule()
	run := func() { s.execute(job) }

	var err error
	switch {
	case schedule.DailyAt != "":
		_, err = s.scheduler.Every(1).Day().At(schedule.DailyAt).Do(run)
	case schedule.Every > 0:
		_, err = s.scheduler.Every(schedule.Every).Do(run)
	default:
		err = fmt.Errorf("job %s has no schedule", job.Name())
	}
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", job.Name(), err)
	}

	s.jobs = append(s.jobs, job)
	s.log.WithFields(map[string]interface{}{
		"job":      job.Name(),
		"schedule": schedule.String(),
	}).Info("Job registered")
	return nil
}

// Start begins running jobs in the background. Interval jobs run once
// immediately.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	if len(s.jobs) == 0 {
		s.log.Info("No jobs registered, scheduler will not start")
		return
	}

	s.scheduler.StartAsync()
	s.started = true

	for _, job := range s.scheduler.Jobs() {
		s.log.WithField("next_run", job.NextRun()).Info("Job scheduled")
	}
}

// Stop cancels running executions and shuts the scheduler down
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancel()
	if !s.started {
		return
	}
	s.scheduler.Stop()
	s.started = false
	s.log.Info("Scheduler stopped")
}

// IsRunning returns whether the scheduler is currently running
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// JobCount returns the number of registered jobs
func (s *Scheduler) JobCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Trigger runs a registered job by name and waits for it
func (s *Scheduler) Trigger(ctx context.Context, name string) error {
	s.mu.Lock()
	var target Job
	for _, job := range s.jobs {
		if job.Name() == name {
			target = job
			break
		}
	}
	s.mu.Unlock()

	if target == nil {
		return apperrors.NewNotFoundError("job " + name)
	}
	return target.Execute(ctx)
}
