package modules

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// CronJob runs on every tick of Spec. Specs carry a leading seconds field.
type CronJob struct {
	Name string
	Spec string
	Run  func(context.Context)
}

type CronRunner struct {
	Jobs []CronJob
}

// Run schedules the jobs and stops the scheduler when ctx is done, waiting
// for running jobs to return.
func (c CronRunner) Run(ctx context.Context, g *errgroup.Group) error {
	scheduler := cron.New(cron.WithSeconds())

	for _, job := range c.Jobs {
		if _, err := scheduler.AddFunc(job.Spec, func() {
			logger(ctx).Info("cron job started", slog.String("job", job.Name))
			job.Run(ctx)
		}); err != nil {
			return fmt.Errorf("cron.AddFunc %s: %w", job.Name, err)
		}
	}

	g.Go(func() error {
		scheduler.Start()
		logger(ctx).Info("cron started", slog.Int("jobs", len(c.Jobs)))

		<-ctx.Done()

		<-scheduler.Stop().Done()
		logger(ctx).Info("cron stopped")

		return nil
	})

	return nil
}
