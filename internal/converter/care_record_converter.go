package converter

import (
	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryRecordFromRequest builds a DeliveryRecord for motherID.
// It returns careplan.ErrInvalidDate when a date field is malformed.
func DeliveryRecordFromRequest(req *dto.DeliveryRecordRequest, motherID uuid.UUID) (*entity.DeliveryRecord, error) {
	deliveryDate, err := ParseOptionalDate(req.DeliveryDate)
	if err != nil {
		return nil, err
	}
	dischargeDate, err := ParseOptionalDate(req.DischargeDate)
	if err != nil {
		return nil, err
	}

	return &entity.DeliveryRecord{
		MotherID:                 motherID,
		DeliveryDate:             deliveryDate,
		DeliveryMode:             req.DeliveryMode,
		Episiotomy:               req.Episiotomy,
		TempNormal:               req.TempNormal,
		VaginalExamDone:          req.VaginalExamDone,
		MaternalComplications:    req.MaternalComplications,
		WoundInfection:           req.WoundInfection,
		FamilyPlanningDiscussed:  req.FamilyPlanningDiscussed,
		DangerSignalsExplained:   req.DangerSignalsExplained,
		BreastFeedingEstablished: req.BreastFeedingEstablished,
		BirthWeight:              nullDecimal(req.BirthWeight),
		POAAtBirth:               req.POAAtBirth,
		ApgarScore:               req.ApgarScore,
		Abnormalities:            req.Abnormalities,
		VitaminAGiven:            req.VitaminAGiven,
		RubellaGiven:             req.RubellaGiven,
		AntiDGiven:               req.AntiDGiven,
		DiagnosisCardGiven:       req.DiagnosisCardGiven,
		CHDRCompleted:            req.CHDRCompleted,
		PrescriptionGiven:        req.PrescriptionGiven,
		ReferredToPHM:            req.ReferredToPHM,
		SpecialNotes:             req.SpecialNotes,
		DischargeDate:            dischargeDate,
	}, nil
}

func DeliveryRecordToResponse(record *entity.DeliveryRecord) *dto.DeliveryRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.DeliveryRecordResponse{
		ID:                       record.ID,
		MotherID:                 record.MotherID,
		DeliveryDate:             FormatDate(record.DeliveryDate),
		DeliveryMode:             record.DeliveryMode,
		CreatedAt:                record.CreatedAt,
		Episiotomy:               record.Episiotomy,
		TempNormal:               record.TempNormal,
		VaginalExamDone:          record.VaginalExamDone,
		MaternalComplications:    record.MaternalComplications,
		WoundInfection:           record.WoundInfection,
		FamilyPlanningDiscussed:  record.FamilyPlanningDiscussed,
		DangerSignalsExplained:   record.DangerSignalsExplained,
		BreastFeedingEstablished: record.BreastFeedingEstablished,
		BirthWeight:              record.BirthWeight,
		POAAtBirth:               record.POAAtBirth,
		ApgarScore:               record.ApgarScore,
		Abnormalities:            record.Abnormalities,
		VitaminAGiven:            record.VitaminAGiven,
		RubellaGiven:             record.RubellaGiven,
		AntiDGiven:               record.AntiDGiven,
		DiagnosisCardGiven:       record.DiagnosisCardGiven,
		CHDRCompleted:            record.CHDRCompleted,
		PrescriptionGiven:        record.PrescriptionGiven,
		ReferredToPHM:            record.ReferredToPHM,
		SpecialNotes:             record.SpecialNotes,
		DischargeDate:            FormatDate(record.DischargeDate),
	}
}

func DeliveryRecordsToResponses(records []entity.DeliveryRecord) []dto.DeliveryRecordResponse {
	responses := make([]dto.DeliveryRecordResponse, len(records))
	for i := range records {
		responses[i] = *DeliveryRecordToResponse(&records[i])
	}
	return responses
}

// AntenatalPlanFromRequest builds an AntenatalPlan for motherID.
// It returns careplan.ErrInvalidDate when a date field is malformed.
func AntenatalPlanFromRequest(req *dto.AntenatalPlanRequest, motherID uuid.UUID) (*entity.AntenatalPlan, error) {
	plan := &entity.AntenatalPlan{
		MotherID:                motherID,
		EmergencyContactName:    req.EmergencyContactName,
		EmergencyContactAddress: req.EmergencyContactAddress,
		EmergencyContactPhone:   req.EmergencyContactPhone,
		MOHOfficePhone:          req.MOHOfficePhone,
		PHMPhone:                req.PHMPhone,
		GramaNiladhariDivision:  req.GramaNiladhariDivision,
	}

	var err error
	if plan.NextClinicDate, err = ParseOptionalDate(req.NextClinicDate); err != nil {
		return nil, err
	}

	classes := []struct {
		dst *entity.ParentcraftClass
		src dto.ParentcraftClassRequest
	}{
		{&plan.FirstClass, req.FirstClass},
		{&plan.SecondClass, req.SecondClass},
		{&plan.ThirdClass, req.ThirdClass},
	}
	for _, c := range classes {
		if c.dst.Date, err = ParseOptionalDate(c.src.Date); err != nil {
			return nil, err
		}
		c.dst.Husband = c.src.Husband
		c.dst.Wife = c.src.Wife
		c.dst.Other = c.src.Other
	}

	loans := []struct {
		dst *entity.HandoutLoan
		src dto.HandoutLoanRequest
	}{
		{&plan.BookAntenatal, req.BookAntenatal},
		{&plan.BookBreastfeeding, req.BookBreastfeeding},
		{&plan.BookECCD, req.BookECCD},
		{&plan.LeafletFP, req.LeafletFP},
	}
	for _, l := range loans {
		if l.dst.Issued, err = ParseOptionalDate(l.src.Issued); err != nil {
			return nil, err
		}
		if l.dst.Returned, err = ParseOptionalDate(l.src.Returned); err != nil {
			return nil, err
		}
	}

	return plan, nil
}

func AntenatalPlanToResponse(plan *entity.AntenatalPlan) *dto.AntenatalPlanResponse {
	if plan == nil {
		return nil
	}

	return &dto.AntenatalPlanResponse{
		ID:                      plan.ID,
		MotherID:                plan.MotherID,
		NextClinicDate:          FormatDate(plan.NextClinicDate),
		CreatedAt:               plan.CreatedAt,
		FirstClass:              parentcraftClassToResponse(plan.FirstClass),
		SecondClass:             parentcraftClassToResponse(plan.SecondClass),
		ThirdClass:              parentcraftClassToResponse(plan.ThirdClass),
		BookAntenatal:           handoutLoanToResponse(plan.BookAntenatal),
		BookBreastfeeding:       handoutLoanToResponse(plan.BookBreastfeeding),
		BookECCD:                handoutLoanToResponse(plan.BookECCD),
		LeafletFP:               handoutLoanToResponse(plan.LeafletFP),
		EmergencyContactName:    plan.EmergencyContactName,
		EmergencyContactAddress: plan.EmergencyContactAddress,
		EmergencyContactPhone:   plan.EmergencyContactPhone,
		MOHOfficePhone:          plan.MOHOfficePhone,
		PHMPhone:                plan.PHMPhone,
		GramaNiladhariDivision:  plan.GramaNiladhariDivision,
	}
}

func AntenatalPlansToResponses(plans []entity.AntenatalPlan) []dto.AntenatalPlanResponse {
	responses := make([]dto.AntenatalPlanResponse, len(plans))
	for i := range plans {
		responses[i] = *AntenatalPlanToResponse(&plans[i])
	}
	return responses
}

func parentcraftClassToResponse(c entity.ParentcraftClass) dto.ParentcraftClassResponse {
	return dto.ParentcraftClassResponse{
		Date:    FormatDate(c.Date),
		Husband: c.Husband,
		Wife:    c.Wife,
		Other:   c.Other,
	}
}

func handoutLoanToResponse(l entity.HandoutLoan) dto.HandoutLoanResponse {
	return dto.HandoutLoanResponse{
		Issued:   FormatDate(l.Issued),
		Returned: FormatDate(l.Returned),
	}
}
