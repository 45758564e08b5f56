package converter

import (
	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/domain/entity"
)

// MidwifeToResponse converts a Midwife entity to MidwifeResponse DTO
func MidwifeToResponse(midwife *entity.Midwife) *dto.MidwifeResponse {
	if midwife == nil {
		return nil
	}

	return &dto.MidwifeResponse{
		ID:                 midwife.ID,
		Username:           midwife.Username,
		FullName:           midwife.FullName,
		NIC:                midwife.NIC,
		DateOfBirth:        FormatDate(midwife.DateOfBirth),
		PhoneNumber:        midwife.PhoneNumber,
		Email:              stringValue(midwife.Email),
		ResidentialAddress: midwife.ResidentialAddress,
		SLMCRegNo:          midwife.SLMCRegNo,
		ServiceGrade:       midwife.ServiceGrade,
		AssignedMOHArea:    midwife.AssignedMOHArea,
		IsActive:           !midwife.IsSuspended(),
		CreatedAt:          midwife.CreatedAt,
	}
}

// MidwivesToResponses converts a slice of Midwife entities to slice of MidwifeResponse DTOs
func MidwivesToResponses(midwives []entity.Midwife) []dto.MidwifeResponse {
	responses := make([]dto.MidwifeResponse, len(midwives))
	for i := range midwives {
		responses[i] = *MidwifeToResponse(&midwives[i])
	}
	return responses
}

// MOHOfficerToResponse converts a MOHOfficer entity to MOHOfficerResponse DTO
func MOHOfficerToResponse(officer *entity.MOHOfficer) *dto.MOHOfficerResponse {
	if officer == nil {
		return nil
	}

	return &dto.MOHOfficerResponse{
		ID:        officer.ID,
		Username:  officer.Username,
		FullName:  officer.FullName,
		MOHArea:   officer.MOHArea,
		Email:     stringValue(officer.Email),
		CreatedAt: officer.CreatedAt,
	}
}
