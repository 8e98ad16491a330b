package membership

import (
	"context"
	"runtime/debug"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"

	"tillpoint.app/membership/model"
	"tillpoint.app/membership/workflow"
)

type RunBillingResponse struct {
	Success     bool             `json:"success"`
	Results     model.RunResults `json:"results"`
	ProcessedAt time.Time        `json:"processed_at"`
}

// RunBilling bills the location's due memberships and waits for the run to
// finish. A call made while a run for the location is in flight joins that run.
//
//encore:api public path=/v1/locations/:locationID/billing/run method=POST
func (s *Service) RunBilling(ctx context.Context, locationID string) (*RunBillingResponse, error) {
	if locationID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "location ID is required"}
	}

	workflowID := workflow.BillingRunWorkflowID(locationID)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: cfg.TaskQueue(),
	}

	run, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.BillingRun, workflow.BillingRunParams{LocationID: locationID})
	if err != nil {
		rlog.Error("failed to start billing run", "location_id", locationID, "workflow_id", workflowID, "error", err)
		return nil, billingFault(err)
	}

	var result workflow.BillingRunResult
	if err := run.Get(ctx, &result); err != nil {
		rlog.Error("billing run failed", "location_id", locationID, "workflow_id", workflowID, "run_id", run.GetRunID(), "error", err)
		return nil, billingFault(err)
	}

	rlog.Info("billing run completed",
		"location_id", locationID,
		"processed", result.Results.Processed,
		"successful", result.Results.Successful,
		"failed", result.Results.Failed,
		"errors", len(result.Results.Errors))

	return &RunBillingResponse{
		Success:     true,
		Results:     result.Results,
		ProcessedAt: result.ProcessedAt,
	}, nil
}

func billingFault(err error) error {
	return &errs.Error{
		Code:    errs.Internal,
		Message: err.Error(),
		Meta: errs.Metadata{
			"error": err.Error(),
			"stack": string(debug.Stack()),
		},
	}
}
