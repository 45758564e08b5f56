package converter

import (
	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/domain/entity"
)

// ApplyPregnancyRecordRequest copies the fields present in req onto record.
// It returns careplan.ErrInvalidDate when a date field is malformed.
func ApplyPregnancyRecordRequest(record *entity.PregnancyRecord, req *dto.PregnancyRecordRequest) error {
	if req == nil {
		return nil
	}

	setString(&record.RegistrationNo, req.RegistrationNo)
	if err := setDate(&record.RegistrationDate, req.RegistrationDate); err != nil {
		return err
	}
	setString(&record.RegistrationPlace, req.RegistrationPlace)
	setString(&record.FamilyRegisterNo, req.FamilyRegisterNo)
	setString(&record.VillageDivision, req.VillageDivision)
	setString(&record.MOHDivision, req.MOHDivision)
	setString(&record.PHIArea, req.PHIArea)

	setInt(&record.MotherAge, req.MotherAge)
	setString(&record.MotherEducation, req.MotherEducation)
	setString(&record.MotherOccupation, req.MotherOccupation)
	setDecimal(&record.DistanceToClinic, req.DistanceToClinic)
	setString(&record.HusbandName, req.HusbandName)
	setInt(&record.HusbandAge, req.HusbandAge)
	setString(&record.HusbandEducation, req.HusbandEducation)
	setString(&record.HusbandOccupation, req.HusbandOccupation)
	setInt(&record.MarriedAge, req.MarriedAge)
	setBool(&record.Consanguinity, req.Consanguinity)

	setDecimal(&record.BMI, req.BMI)
	setDecimal(&record.HeightCM, req.HeightCM)
	setDecimal(&record.WeightKG, req.WeightKG)
	setString(&record.BloodGroup, req.BloodGroup)

	setBool(&record.RubellaImmunization, req.RubellaImmunization)
	setBool(&record.PrePregnancyScreening, req.PrePregnancyScreening)
	setBool(&record.FolicAcid, req.FolicAcid)
	setBool(&record.HistoryOfSubfertility, req.HistoryOfSubfertility)
	setBool(&record.FamilyDiabetes, req.FamilyDiabetes)
	setBool(&record.FamilyHypertension, req.FamilyHypertension)
	setBool(&record.FamilyTwins, req.FamilyTwins)
	setString(&record.OtherFamilyHistory, req.OtherFamilyHistory)

	setInt(&record.Gravidity, req.Gravidity)
	setInt(&record.Parity, req.Parity)
	setInt(&record.NumLivingChildren, req.NumLivingChildren)
	setString(&record.AgeOfYoungestChild, req.AgeOfYoungestChild)
	if err := setDate(&record.LRMP, req.LRMP); err != nil {
		return err
	}
	if err := setDate(&record.EDD, req.EDD); err != nil {
		return err
	}
	if err := setDate(&record.USCorrectedEDD, req.USCorrectedEDD); err != nil {
		return err
	}
	setString(&record.POAAtRegistration, req.POAAtRegistration)

	setBool(&record.AgeUnder20Over35, req.RiskAgeUnder20Over35)
	setBool(&record.FifthPregnancy, req.RiskFifthPregnancy)
	setBool(&record.BirthIntervalUnder1Yr, req.RiskBirthIntervalUnder1Yr)
	setBool(&record.HistoryPPH, req.RiskHistoryPPH)
	setBool(&record.Diabetes, req.RiskDiabetes)
	setBool(&record.Malaria, req.RiskMalaria)
	setBool(&record.Cardiac, req.RiskCardiac)
	setBool(&record.Renal, req.RiskRenal)
	setString(&record.OtherRiskFactors, req.OtherRiskFactors)

	return nil
}

// PastPregnanciesFromRequest builds history rows; the mother id is set on save
func PastPregnanciesFromRequest(reqs []dto.PastPregnancyRequest) []entity.PastPregnancy {
	rows := make([]entity.PastPregnancy, len(reqs))
	for i, req := range reqs {
		rows[i] = entity.PastPregnancy{
			PregnancyOrder:  req.PregnancyOrder,
			Outcome:         req.Outcome,
			DeliveryMode:    req.DeliveryMode,
			PlaceOfDelivery: req.PlaceOfDelivery,
			Complications:   req.Complications,
			BirthWeight:     nullDecimal(req.BirthWeight),
			Sex:             req.Sex,
			AgeIfAlive:      req.AgeIfAlive,
		}
	}
	return rows
}

// PregnancyRecordToResponse converts a PregnancyRecord entity to PregnancyRecordResponse DTO
func PregnancyRecordToResponse(record *entity.PregnancyRecord) *dto.PregnancyRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.PregnancyRecordResponse{
		ID:        record.ID,
		MotherID:  record.MotherID,
		IsActive:  record.IsActive,
		CreatedAt: record.CreatedAt,

		RegistrationNo:    record.RegistrationNo,
		RegistrationDate:  FormatDate(record.RegistrationDate),
		RegistrationPlace: record.RegistrationPlace,
		FamilyRegisterNo:  record.FamilyRegisterNo,
		VillageDivision:   record.VillageDivision,
		MOHDivision:       record.MOHDivision,
		PHIArea:           record.PHIArea,

		MotherAge:         record.MotherAge,
		MotherEducation:   record.MotherEducation,
		MotherOccupation:  record.MotherOccupation,
		DistanceToClinic:  record.DistanceToClinic,
		HusbandName:       record.HusbandName,
		HusbandAge:        record.HusbandAge,
		HusbandEducation:  record.HusbandEducation,
		HusbandOccupation: record.HusbandOccupation,
		MarriedAge:        record.MarriedAge,
		Consanguinity:     record.Consanguinity,

		BMI:        record.BMI,
		HeightCM:   record.HeightCM,
		WeightKG:   record.WeightKG,
		BloodGroup: record.BloodGroup,

		RubellaImmunization:   record.RubellaImmunization,
		PrePregnancyScreening: record.PrePregnancyScreening,
		FolicAcid:             record.FolicAcid,
		HistoryOfSubfertility: record.HistoryOfSubfertility,
		FamilyDiabetes:        record.FamilyDiabetes,
		FamilyHypertension:    record.FamilyHypertension,
		FamilyTwins:           record.FamilyTwins,
		OtherFamilyHistory:    record.OtherFamilyHistory,

		Gravidity:          record.Gravidity,
		Parity:             record.Parity,
		NumLivingChildren:  record.NumLivingChildren,
		AgeOfYoungestChild: record.AgeOfYoungestChild,
		LRMP:               FormatDate(record.LRMP),
		EDD:                FormatDate(record.EDD),
		USCorrectedEDD:     FormatDate(record.USCorrectedEDD),
		POAAtRegistration:  record.POAAtRegistration,

		RiskAgeUnder20Over35:      record.AgeUnder20Over35,
		RiskFifthPregnancy:        record.FifthPregnancy,
		RiskBirthIntervalUnder1Yr: record.BirthIntervalUnder1Yr,
		RiskHistoryPPH:            record.HistoryPPH,
		RiskDiabetes:              record.Diabetes,
		RiskMalaria:               record.Malaria,
		RiskCardiac:               record.Cardiac,
		RiskRenal:                 record.Renal,
		OtherRiskFactors:          record.OtherRiskFactors,
	}
}

// PastPregnanciesToResponses converts history rows to PastPregnancyResponse DTOs
func PastPregnanciesToResponses(rows []entity.PastPregnancy) []dto.PastPregnancyResponse {
	responses := make([]dto.PastPregnancyResponse, len(rows))
	for i, row := range rows {
		responses[i] = dto.PastPregnancyResponse{
			ID:              row.ID,
			PregnancyOrder:  row.PregnancyOrder,
			Outcome:         row.Outcome,
			DeliveryMode:    row.DeliveryMode,
			PlaceOfDelivery: row.PlaceOfDelivery,
			Complications:   row.Complications,
			BirthWeight:     row.BirthWeight,
			Sex:             row.Sex,
			AgeIfAlive:      row.AgeIfAlive,
		}
	}
	return responses
}

func PregnancyRecordsToResponses(records []entity.PregnancyRecord) []dto.PregnancyRecordResponse {
	responses := make([]dto.PregnancyRecordResponse, len(records))
	for i := range records {
		responses[i] = *PregnancyRecordToResponse(&records[i])
	}
	return responses
}
