package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	billingmock "tillpoint.app/membership/mocks/business/billing_business"
	"tillpoint.app/membership/model"
)

var testTime = time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

func newBillingRunEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *billingmock.MockBusiness) {
	ctrl := gomock.NewController(t)
	mockBiz := billingmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)
	t.Cleanup(func() { SetActivityDependencies(nil) })

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(LoadSettingsActivity)
	env.RegisterActivity(DueMembershipsActivity)
	env.RegisterActivity(ProcessMembershipActivity)
	return env, mockBiz
}

func TestBillingRun_FoldsOutcomesSequentially(t *testing.T) {
	env, mockBiz := newBillingRunEnv(t)
	settings := model.DefaultBillingSettings()

	mockBiz.EXPECT().LoadSettings(gomock.Any(), "loc_1").Return(settings, nil).Times(1)
	mockBiz.EXPECT().DueMemberships(gomock.Any(), "loc_1", gomock.Any()).Return([]int64{1, 2, 3, 4, 5}, nil).Times(1)

	gomock.InOrder(
		mockBiz.EXPECT().ProcessMembership(gomock.Any(), int64(1), settings, gomock.Any()).
			Return(model.Outcome{MembershipID: 1, Kind: model.OutcomeCharged, AmountCents: 2999, Status: model.BillingStatusActive}, nil),
		mockBiz.EXPECT().ProcessMembership(gomock.Any(), int64(2), settings, gomock.Any()).
			Return(model.Outcome{}, &errs.Error{Code: errs.Internal, Message: "failed to load membership plan"}),
		mockBiz.EXPECT().ProcessMembership(gomock.Any(), int64(3), settings, gomock.Any()).
			Return(model.Outcome{MembershipID: 3, Kind: model.OutcomePaymentFailed, Status: model.BillingStatusSuspended, Reason: "charge failed"}, nil),
		mockBiz.EXPECT().ProcessMembership(gomock.Any(), int64(4), settings, gomock.Any()).
			Return(model.Outcome{MembershipID: 4, Kind: model.OutcomeTrialConverted, Status: model.BillingStatusActive}, nil),
		mockBiz.EXPECT().ProcessMembership(gomock.Any(), int64(5), settings, gomock.Any()).
			Return(model.Outcome{MembershipID: 5, Kind: model.OutcomePaymentFailed, Status: model.BillingStatusPastDue, Reason: "no payment method"}, nil),
	)

	env.ExecuteWorkflow(BillingRun, BillingRunParams{LocationID: "loc_1"})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result BillingRunResult
	require.NoError(t, env.GetWorkflowResult(&result))

	assert.Equal(t, 3, result.Results.Processed)
	assert.Equal(t, 1, result.Results.Successful)
	assert.Equal(t, 2, result.Results.Failed)
	assert.Equal(t, 1, result.Results.TrialsConverted)
	assert.Equal(t, 1, result.Results.Suspended)
	require.Len(t, result.Results.Errors, 1)
	assert.Contains(t, result.Results.Errors[0], "membership 2")
	assert.Contains(t, result.Results.Errors[0], "failed to load membership plan")
	assert.False(t, result.ProcessedAt.IsZero())
}

func TestBillingRun_NoDueMemberships(t *testing.T) {
	env, mockBiz := newBillingRunEnv(t)

	mockBiz.EXPECT().LoadSettings(gomock.Any(), "loc_2").Return(model.DefaultBillingSettings(), nil).Times(1)
	mockBiz.EXPECT().DueMemberships(gomock.Any(), "loc_2", gomock.Any()).Return([]int64{}, nil).Times(1)

	env.ExecuteWorkflow(BillingRun, BillingRunParams{LocationID: "loc_2"})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result BillingRunResult
	require.NoError(t, env.GetWorkflowResult(&result))
	assert.Equal(t, model.NewRunResults(), result.Results)
}

func TestBillingRun_SelectionFailureFailsRun(t *testing.T) {
	env, mockBiz := newBillingRunEnv(t)

	mockBiz.EXPECT().LoadSettings(gomock.Any(), "loc_3").Return(model.DefaultBillingSettings(), nil).Times(1)
	mockBiz.EXPECT().DueMemberships(gomock.Any(), "loc_3", gomock.Any()).Return(nil, errors.New("connection refused")).Times(3)

	env.ExecuteWorkflow(BillingRun, BillingRunParams{LocationID: "loc_3"})
	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestProcessMembershipActivity_NotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBiz := billingmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)
	t.Cleanup(func() { SetActivityDependencies(nil) })

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	env.RegisterActivity(ProcessMembershipActivity)

	mockBiz.EXPECT().
		ProcessMembership(gomock.Any(), int64(9), gomock.Any(), gomock.Any()).
		Return(model.Outcome{}, errors.New("boom")).
		Times(1)

	_, err := env.ExecuteActivity(ProcessMembershipActivity, int64(9), model.DefaultBillingSettings(), testTime)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestActivities_MissingDependencies(t *testing.T) {
	SetActivityDependencies(nil)
	activityDeps = nil

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()
	env.RegisterActivity(LoadSettingsActivity)

	_, err := env.ExecuteActivity(LoadSettingsActivity, "loc_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "activity dependencies not initialized")
}
