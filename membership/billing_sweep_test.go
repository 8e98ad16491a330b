package membership

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"tillpoint.app/membership/mocks/business/billing_business"
	"tillpoint.app/membership/workflow"
)

func TestBillingSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBusiness := billing_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)
	service := &Service{
		business: mockBusiness,
		temporal: mockTemporal,
	}

	mockBusiness.EXPECT().
		ListLocationsDue(gomock.Any(), gomock.Any()).
		Return([]string{"loc_1", "loc_2", "loc_3"}, nil).
		Times(1)

	startFor := func(locationID string) interface{} {
		return mock.MatchedBy(func(o client.StartWorkflowOptions) bool {
			return o.ID == workflow.BillingRunWorkflowID(locationID) && o.WorkflowExecutionErrorWhenAlreadyStarted
		})
	}

	mockTemporal.On("ExecuteWorkflow", mock.Anything, startFor("loc_1"), mock.Anything, mock.Anything).
		Return(mocks.NewWorkflowRun(t), nil)
	mockTemporal.On("ExecuteWorkflow", mock.Anything, startFor("loc_2"), mock.Anything, mock.Anything).
		Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", ""))
	mockTemporal.On("ExecuteWorkflow", mock.Anything, startFor("loc_3"), mock.Anything, mock.Anything).
		Return(nil, errors.New("temporal unavailable"))

	resp, err := service.BillingSweep(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"loc_1"}, resp.Started)
	assert.Equal(t, []string{"loc_2"}, resp.Running)
	assert.Equal(t, []string{"loc_3"}, resp.Failed)
}

func TestBillingSweep_ListFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockBusiness := billing_business.NewMockBusiness(ctrl)
	service := &Service{
		business: mockBusiness,
		temporal: mocks.NewClient(t),
	}

	mockBusiness.EXPECT().ListLocationsDue(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error")).Times(1)

	resp, err := service.BillingSweep(context.Background())
	require.Error(t, err)
	assert.Nil(t, resp)
}
