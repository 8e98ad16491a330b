package membership

import (
	"context"
	"fmt"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"tillpoint.app/membership/business/billing"
	"tillpoint.app/membership/store"
	"tillpoint.app/membership/workflow"
	"tillpoint.app/payments"
)

var membershipDB = sqldb.NewDatabase("membership", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var secrets struct {
	StripeSecretKey string
}

//encore:service
type Service struct {
	business billing.Business
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(membershipDB)

	rlog.Info("Initializing store")
	repo := store.NewStore(pgxdb)

	processor := payments.NewStripeProcessor(secrets.StripeSecretKey, cfg.Currency())
	business := billing.NewBillingBusiness(
		repo.Memberships,
		repo.BillingCycles,
		processor,
		shiftRecorder{},
		cfg.Currency(),
	)

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHostPort(),
		Namespace: cfg.TemporalNamespace(),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	workflow.SetActivityDependencies(business)

	w := worker.New(c, cfg.TaskQueue(), worker.Options{})
	w.RegisterWorkflow(workflow.BillingRun)
	w.RegisterActivity(workflow.LoadSettingsActivity)
	w.RegisterActivity(workflow.DueMembershipsActivity)
	w.RegisterActivity(workflow.ProcessMembershipActivity)

	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("Membership service initialized", "task_queue", cfg.TaskQueue())
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
