package converter

import (
	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/domain/careplan"
	"maternal-care-backend/internal/domain/entity"
)

// LeaveToResponse converts a LeaveRequest entity to LeaveResponse DTO
func LeaveToResponse(leave *entity.LeaveRequest) *dto.LeaveResponse {
	if leave == nil {
		return nil
	}

	response := &dto.LeaveResponse{
		ID:         leave.ID,
		MidwifeID:  leave.MidwifeID,
		StartDate:  leave.StartDate.Format(careplan.DateLayout),
		EndDate:    leave.EndDate.Format(careplan.DateLayout),
		Reason:     leave.Reason,
		Status:     string(leave.Status),
		MOHComment: leave.MOHComment,
		CreatedAt:  leave.CreatedAt,
	}

	if leave.Midwife != nil {
		response.MidwifeName = leave.Midwife.FullName
	}

	return response
}

// LeavesToResponses converts a slice of LeaveRequest entities to slice of LeaveResponse DTOs
func LeavesToResponses(leaves []entity.LeaveRequest) []dto.LeaveResponse {
	responses := make([]dto.LeaveResponse, len(leaves))
	for i := range leaves {
		responses[i] = *LeaveToResponse(&leaves[i])
	}
	return responses
}
