package converter

import (
	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:        appointment.ID,
		MidwifeID: appointment.MidwifeID,
		MotherID:  appointment.MotherID,
		DateTime:  appointment.DateTime,
		VisitType: string(appointment.VisitType),
		Status:    string(appointment.Status),
		Notes:     appointment.Notes,
		CreatedAt: appointment.CreatedAt,
	}

	// Include mother name if preloaded
	if appointment.Mother != nil {
		response.MotherName = appointment.Mother.FullName
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
