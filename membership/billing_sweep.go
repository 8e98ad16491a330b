package membership

import (
	"context"
	"time"

	"encore.dev/cron"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"tillpoint.app/membership/workflow"
)

var _ = cron.NewJob("billing-sweep", cron.JobConfig{
	Title:    "Bill due memberships for every location",
	Schedule: "0 6 * * *",
	Endpoint: BillingSweep,
})

type BillingSweepResponse struct {
	Started []string `json:"started"`
	Running []string `json:"running"`
	Failed  []string `json:"failed"`
}

// BillingSweep starts a billing run for each location with due memberships.
// Runs are started without waiting; a location whose run is still in flight
// is left alone.
//
//encore:api private method=POST path=/internal/billing/sweep
func (s *Service) BillingSweep(ctx context.Context) (*BillingSweepResponse, error) {
	resp := &BillingSweepResponse{Started: []string{}, Running: []string{}, Failed: []string{}}
	if !cfg.SweepEnabled() {
		rlog.Info("billing sweep disabled")
		return resp, nil
	}

	locations, err := s.business.ListLocationsDue(ctx, time.Now())
	if err != nil {
		rlog.Error("failed to list locations due for billing", "error", err)
		return nil, err
	}

	for _, locationID := range locations {
		workflowID := workflow.BillingRunWorkflowID(locationID)
		options := client.StartWorkflowOptions{
			ID:                                       workflowID,
			TaskQueue:                                cfg.TaskQueue(),
			WorkflowExecutionErrorWhenAlreadyStarted: true,
		}

		_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.BillingRun, workflow.BillingRunParams{LocationID: locationID})
		switch {
		case err == nil:
			resp.Started = append(resp.Started, locationID)
		case temporal.IsWorkflowExecutionAlreadyStartedError(err):
			rlog.Info("billing run already in flight", "location_id", locationID, "workflow_id", workflowID)
			resp.Running = append(resp.Running, locationID)
		default:
			rlog.Error("failed to start billing run", "location_id", locationID, "workflow_id", workflowID, "error", err)
			resp.Failed = append(resp.Failed, locationID)
		}
	}

	rlog.Info("billing sweep completed", "started", len(resp.Started), "running", len(resp.Running), "failed", len(resp.Failed))
	return resp, nil
}
