package shift

import (
	"context"
	"fmt"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	shiftbiz "tillpoint.app/shift/business/shift"
	"tillpoint.app/shift/domain"
	"tillpoint.app/shift/store"
	"tillpoint.app/shift/workflow"
)

var posDB = sqldb.NewDatabase("pos", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	business shiftbiz.Business
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(posDB)

	rlog.Info("Initializing store")
	repo := store.NewStore(pgxdb)

	stateMachine := domain.NewShiftStateMachine(pgxdb, repo.Shifts, repo.Sales)
	business := shiftbiz.NewShiftBusiness(repo.Shifts, repo.Sales, stateMachine)

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHostPort(),
		Namespace: cfg.TemporalNamespace(),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	workflow.SetActivityDependencies(business, closedNotifier{})

	w := worker.New(c, cfg.TaskQueue(), worker.Options{})
	w.RegisterWorkflow(workflow.ShiftSession)
	w.RegisterActivity(workflow.ForceCloseShiftActivity)

	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("Shift service initialized", "task_queue", cfg.TaskQueue(), "max_shift_hours", cfg.MaxShiftHours())
	return &Service{
		business: business,
		temporal: c,
		worker:   w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
