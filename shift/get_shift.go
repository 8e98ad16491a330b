package shift

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	shiftbiz "tillpoint.app/shift/business/shift"
	"tillpoint.app/shift/model"
)

//encore:api public path=/v1/shifts/:id method=GET
func (s *Service) GetShift(ctx context.Context, id int64) (*ShiftResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid shift ID"}
	}

	result, err := s.business.GetShift(ctx, id)
	if err != nil {
		rlog.Error("failed to get shift", "error", err, "id", id)
		return nil, err
	}

	return &ShiftResponse{
		Shift: *result,
	}, nil
}

const defaultShiftPageSize = 50

type ListShiftsRequest struct {
	LocationID string `query:"location_id" validate:"required"`
	Status     string `query:"status" validate:"omitempty,oneof=active paused closed"`
	Limit      int32  `query:"limit" validate:"gte=0,lte=200"`
	Offset     int32  `query:"offset" validate:"gte=0"`
}

type ListShiftsResponse struct {
	Shifts []model.Shift `json:"shifts"`
	Total  int64         `json:"total"`
}

//encore:api public path=/v1/shifts method=GET
func (s *Service) ListShifts(ctx context.Context, req *ListShiftsRequest) (*ListShiftsResponse, error) {
	filter := shiftbiz.ListShiftsFilter{
		LocationID: req.LocationID,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	if filter.Limit == 0 {
		filter.Limit = defaultShiftPageSize
	}
	if req.Status != "" {
		status := model.ShiftStatus(req.Status)
		filter.Status = &status
	}

	result, total, err := s.business.ListShifts(ctx, filter)
	if err != nil {
		rlog.Error("failed to list shifts", "error", err, "location_id", req.LocationID)
		return nil, err
	}

	shifts := make([]model.Shift, 0, len(result))
	for _, sh := range result {
		shifts = append(shifts, *sh)
	}

	return &ListShiftsResponse{
		Shifts: shifts,
		Total:  total,
	}, nil
}

func (r *ListShiftsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

type SalesSummaryResponse struct {
	Summary model.SalesSummary `json:"summary"`
}

// GetSalesSummary returns a shift's takings by tender and its expected cash.
//
//encore:api public path=/v1/shifts/:id/sales_summary method=GET
func (s *Service) GetSalesSummary(ctx context.Context, id int64) (*SalesSummaryResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid shift ID"}
	}

	if summary, ok := cachedSummary(ctx, id); ok {
		return &SalesSummaryResponse{Summary: *summary}, nil
	}

	summary, err := s.business.SalesSummary(ctx, id)
	if err != nil {
		rlog.Error("failed to build sales summary", "error", err, "id", id)
		return nil, err
	}
	storeSummary(ctx, summary)

	return &SalesSummaryResponse{
		Summary: *summary,
	}, nil
}
