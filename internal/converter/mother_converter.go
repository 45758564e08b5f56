package converter

import (
	"time"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/domain/careplan"
	"maternal-care-backend/internal/domain/entity"
)

// MotherToResponse converts a Mother entity to MotherResponse DTO.
// POA is reported for pregnant mothers with a known LMP.
func MotherToResponse(mother *entity.Mother, today time.Time) *dto.MotherResponse {
	if mother == nil {
		return nil
	}

	response := &dto.MotherResponse{
		ID:                 mother.ID,
		MidwifeID:          mother.MidwifeID,
		FullName:           mother.FullName,
		NIC:                stringValue(mother.NIC),
		Address:            mother.Address,
		ContactNumber:      mother.ContactNumber,
		Status:             string(mother.Status),
		RiskLevel:          string(mother.RiskLevel),
		PregnancyStartDate: FormatDate(mother.PregnancyStartDate),
		DeliveryDate:       FormatDate(mother.DeliveryDate),
		CreatedAt:          mother.CreatedAt,
		UpdatedAt:          mother.UpdatedAt,
	}

	if mother.IsPregnant() && mother.PregnancyStartDate != nil {
		response.POA = careplan.Elapsed(*mother.PregnancyStartDate, today).String()
	}

	return response
}

// MothersToResponses converts a slice of Mother entities to slice of MotherResponse DTOs
func MothersToResponses(mothers []entity.Mother, today time.Time) []dto.MotherResponse {
	responses := make([]dto.MotherResponse, len(mothers))
	for i := range mothers {
		responses[i] = *MotherToResponse(&mothers[i], today)
	}
	return responses
}

// RiskMotherToResponse enriches a mother with age, POA and active risks
// taken from her active pregnancy record, which may be nil.
func RiskMotherToResponse(mother *entity.Mother, record *entity.PregnancyRecord, today time.Time) dto.RiskMotherResponse {
	response := dto.RiskMotherResponse{
		MotherResponse: *MotherToResponse(mother, today),
		ActiveRisks:    []string{},
	}
	if mother.PregnancyStartDate != nil {
		response.POA = careplan.Elapsed(*mother.PregnancyStartDate, today).String()
	}
	if record != nil {
		response.Age = record.MotherAge
		response.ActiveRisks = careplan.ActiveRisks(record.RiskFlags)
	}
	return response
}

// RiskStatsToResponse converts aggregated risk counts to RiskStatsResponse DTO
func RiskStatsToResponse(stats careplan.RiskStats) *dto.RiskStatsResponse {
	return &dto.RiskStatsResponse{
		TotalHighRisk:      stats.TotalHighRisk,
		AgeRisk:            stats.AgeRisk,
		FifthPregnancy:     stats.FifthPregnancy,
		ShortBirthInterval: stats.ShortBirthInterval,
		HistoryPPH:         stats.HistoryPPH,
		Diabetes:           stats.Diabetes,
		Malaria:            stats.Malaria,
		Cardiac:            stats.Cardiac,
		Renal:              stats.Renal,
	}
}
