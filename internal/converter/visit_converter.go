package converter

import (
	"time"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/domain/careplan"
	"maternal-care-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// ANCVisitFromRequest builds an ANCVisit from a request whose visit date is already parsed
func ANCVisitFromRequest(req *dto.CreateANCVisitRequest, motherID uuid.UUID, visitDate time.Time) *entity.ANCVisit {
	return &entity.ANCVisit{
		MotherID:              motherID,
		AppointmentID:         req.AppointmentID,
		VisitDate:             visitDate,
		POAWeeks:              stringValue(req.POAWeeks),
		WeightKG:              nullDecimal(req.WeightKG),
		BPSystolic:            req.BPSystolic,
		BPDiastolic:           req.BPDiastolic,
		Pallor:                req.Pallor,
		Oedema:                req.Oedema,
		FundalHeightCM:        nullDecimal(req.FundalHeightCM),
		FetalLie:              req.FetalLie,
		FetalHeartSound:       req.FetalHeartSound,
		FetalMovement:         req.FetalMovement,
		UrineSugar:            req.UrineSugar,
		UrineAlbumin:          req.UrineAlbumin,
		NutrientSupplements:   req.NutrientSupplements,
		CounselNutrition:      req.CounselNutrition,
		CounselDangerSigns:    req.CounselDangerSigns,
		CounselFamilyPlanning: req.CounselFamilyPlanning,
		CounselBreastfeeding:  req.CounselBreastfeeding,
		CounselDeliveryPlan:   req.CounselDeliveryPlan,
	}
}

// ANCVisitToResponse converts an ANCVisit entity to ANCVisitResponse DTO
func ANCVisitToResponse(visit *entity.ANCVisit) *dto.ANCVisitResponse {
	if visit == nil {
		return nil
	}

	return &dto.ANCVisitResponse{
		ID:                    visit.ID,
		MotherID:              visit.MotherID,
		AppointmentID:         visit.AppointmentID,
		VisitDate:             visit.VisitDate.Format(careplan.DateLayout),
		POAWeeks:              visit.POAWeeks,
		WeightKG:              visit.WeightKG,
		BPSystolic:            visit.BPSystolic,
		BPDiastolic:           visit.BPDiastolic,
		Pallor:                visit.Pallor,
		Oedema:                visit.Oedema,
		FundalHeightCM:        visit.FundalHeightCM,
		FetalLie:              visit.FetalLie,
		FetalHeartSound:       visit.FetalHeartSound,
		FetalMovement:         visit.FetalMovement,
		UrineSugar:            visit.UrineSugar,
		UrineAlbumin:          visit.UrineAlbumin,
		NutrientSupplements:   visit.NutrientSupplements,
		CounselNutrition:      visit.CounselNutrition,
		CounselDangerSigns:    visit.CounselDangerSigns,
		CounselFamilyPlanning: visit.CounselFamilyPlanning,
		CounselBreastfeeding:  visit.CounselBreastfeeding,
		CounselDeliveryPlan:   visit.CounselDeliveryPlan,
		CreatedAt:             visit.CreatedAt,
	}
}

func ANCVisitsToResponses(visits []entity.ANCVisit) []dto.ANCVisitResponse {
	responses := make([]dto.ANCVisitResponse, len(visits))
	for i := range visits {
		responses[i] = *ANCVisitToResponse(&visits[i])
	}
	return responses
}

// PNCVisitFromRequest builds a PNCVisit from a request whose visit date is already parsed
func PNCVisitFromRequest(req *dto.CreatePNCVisitRequest, motherID uuid.UUID, visitDate time.Time) *entity.PNCVisit {
	return &entity.PNCVisit{
		MotherID:             motherID,
		AppointmentID:        req.AppointmentID,
		VisitDate:            visitDate,
		Temperature:          nullDecimal(req.Temperature),
		Pallor:               req.Pallor,
		BreastCondition:      req.BreastCondition,
		UterusInvolution:     req.UterusInvolution,
		LochiaCharacter:      req.LochiaCharacter,
		LochiaSmell:          req.LochiaSmell,
		PerineumInfection:    req.PerineumInfection,
		FissureInfection:     req.FissureInfection,
		VitaminAGiven:        req.VitaminAGiven,
		FamilyPlanningMethod: req.FamilyPlanningMethod,
		ReferredToHospital:   req.ReferredToHospital,
		BabyColor:            req.BabyColor,
		CordStatus:           req.CordStatus,
		Breastfeeding:        req.Breastfeeding,
		BabyStool:            req.BabyStool,
		BabyWeight:           nullDecimal(req.BabyWeight),
	}
}

// PNCVisitToResponse converts a PNCVisit entity to PNCVisitResponse DTO
func PNCVisitToResponse(visit *entity.PNCVisit) *dto.PNCVisitResponse {
	if visit == nil {
		return nil
	}

	return &dto.PNCVisitResponse{
		ID:                   visit.ID,
		MotherID:             visit.MotherID,
		AppointmentID:        visit.AppointmentID,
		VisitDate:            visit.VisitDate.Format(careplan.DateLayout),
		Temperature:          visit.Temperature,
		Pallor:               visit.Pallor,
		BreastCondition:      visit.BreastCondition,
		UterusInvolution:     visit.UterusInvolution,
		LochiaCharacter:      visit.LochiaCharacter,
		LochiaSmell:          visit.LochiaSmell,
		PerineumInfection:    visit.PerineumInfection,
		FissureInfection:     visit.FissureInfection,
		VitaminAGiven:        visit.VitaminAGiven,
		FamilyPlanningMethod: visit.FamilyPlanningMethod,
		ReferredToHospital:   visit.ReferredToHospital,
		BabyColor:            visit.BabyColor,
		CordStatus:           visit.CordStatus,
		Breastfeeding:        visit.Breastfeeding,
		BabyStool:            visit.BabyStool,
		BabyWeight:           visit.BabyWeight,
		CreatedAt:            visit.CreatedAt,
	}
}

func PNCVisitsToResponses(visits []entity.PNCVisit) []dto.PNCVisitResponse {
	responses := make([]dto.PNCVisitResponse, len(visits))
	for i := range visits {
		responses[i] = *PNCVisitToResponse(&visits[i])
	}
	return responses
}
