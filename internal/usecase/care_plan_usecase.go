package usecase

import (
	"context"
	"errors"
	"time"

	"maternal-care-backend/internal/converter"
	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/delivery/http/middleware"
	"maternal-care-backend/internal/domain/careplan"
	"maternal-care-backend/internal/domain/entity"
	"maternal-care-backend/internal/domain/repository"
	"maternal-care-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidRiskLevel        = errors.New("risk level must be Low or High")
	ErrInvalidDeliveryDate     = careplan.ErrInvalidDeliveryDate
	ErrPregnancyRecordNotFound = errors.New("no active pregnancy record")
)

type CarePlanUsecase interface {
	StartPregnancy(ctx context.Context, motherID uuid.UUID, req *dto.PregnancyPlanRequest) (*dto.CarePlanResult, error)
	UpdatePregnancyRecord(ctx context.Context, motherID uuid.UUID, req *dto.PregnancyPlanRequest) (*dto.CarePlanResult, error)
	ReportDelivery(ctx context.Context, motherID uuid.UUID, req *dto.ReportDeliveryRequest) (*dto.CarePlanResult, error)
	GetPregnancy(ctx context.Context, motherID uuid.UUID) (*dto.PregnancyPlanResponse, error)
	GetMyPregnancy(ctx context.Context) (*dto.PregnancyPlanResponse, error)
	ListPregnancyRecords(ctx context.Context, motherID uuid.UUID) (*dto.PregnancyRecordListResponse, error)
	ListMyPregnancyRecords(ctx context.Context) (*dto.PregnancyRecordListResponse, error)
}

type carePlanUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	motherRepo      repository.MotherRepository
	recordRepo      repository.PregnancyRecordRepository
	pastRepo        repository.PastPregnancyRepository
	appointmentRepo repository.AppointmentRepository
	deliveryRepo    repository.DeliveryRecordRepository
	auditService    service.AuditService
	riskStatsCache  service.RiskStatsCache
	now             func() time.Time
}

func NewCarePlanUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	motherRepo repository.MotherRepository,
	recordRepo repository.PregnancyRecordRepository,
	pastRepo repository.PastPregnancyRepository,
	appointmentRepo repository.AppointmentRepository,
	deliveryRepo repository.DeliveryRecordRepository,
	auditService service.AuditService,
	riskStatsCache service.RiskStatsCache,
) CarePlanUsecase {
	return &carePlanUsecase{
		db:              db,
		log:             log,
		motherRepo:      motherRepo,
		recordRepo:      recordRepo,
		pastRepo:        pastRepo,
		appointmentRepo: appointmentRepo,
		deliveryRepo:    deliveryRepo,
		auditService:    auditService,
		riskStatsCache:  riskStatsCache,
		now:             time.Now,
	}
}

// StartPregnancy registers a new pregnancy and replaces the generated schedule.
func (u *carePlanUsecase) StartPregnancy(ctx context.Context, motherID uuid.UUID, req *dto.PregnancyPlanRequest) (*dto.CarePlanResult, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	tier := entity.RiskLevel(req.RiskLevel)
	if !tier.IsValid() {
		return nil, ErrInvalidRiskLevel
	}

	record := &entity.PregnancyRecord{MotherID: motherID, IsActive: true}
	if err := converter.ApplyPregnancyRecordRequest(record, &req.RecordData); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	mother, err := u.lockMother(tx, motherID, midwifeID)
	if err != nil {
		return nil, err
	}

	result, err := u.startPregnancy(ctx, tx, mother, record, converter.PastPregnanciesFromRequest(req.PastHistory), tier, entity.AuditActionPregnancyStart)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.riskStatsCache.Invalidate(ctx, midwifeID)
	u.log.Infof("Started pregnancy for mother %s: %d visits scheduled, %d removed", motherID, len(result.GeneratedAppointments), result.RemovedAppointments)
	return result, nil
}

// UpdatePregnancyRecord edits the active record in place. Without an active
// record it behaves as StartPregnancy.
func (u *carePlanUsecase) UpdatePregnancyRecord(ctx context.Context, motherID uuid.UUID, req *dto.PregnancyPlanRequest) (*dto.CarePlanResult, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	tier := entity.RiskLevel(req.RiskLevel)
	if !tier.IsValid() {
		return nil, ErrInvalidRiskLevel
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	mother, err := u.lockMother(tx, motherID, midwifeID)
	if err != nil {
		return nil, err
	}

	history := converter.PastPregnanciesFromRequest(req.PastHistory)

	active, err := u.recordRepo.FindActiveByMotherID(tx, motherID)
	if err != nil {
		u.log.Warnf("Failed to find active pregnancy record for mother %s: %+v", motherID, err)
		return nil, err
	}

	var result *dto.CarePlanResult
	if active == nil {
		record := &entity.PregnancyRecord{MotherID: motherID, IsActive: true}
		if err := converter.ApplyPregnancyRecordRequest(record, &req.RecordData); err != nil {
			return nil, err
		}
		result, err = u.startPregnancy(ctx, tx, mother, record, history, tier, entity.AuditActionPregnancyUpdate)
		if err != nil {
			return nil, err
		}
	} else {
		result, err = u.updateActiveRecord(ctx, tx, mother, active, req, history, tier)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.riskStatsCache.Invalidate(ctx, midwifeID)
	u.log.Infof("Updated pregnancy record for mother %s", motherID)
	return result, nil
}

// ReportDelivery moves the mother to postnatal care and schedules PNC visits.
// Delivery details sent with the report are stored in the same transaction.
func (u *carePlanUsecase) ReportDelivery(ctx context.Context, motherID uuid.UUID, req *dto.ReportDeliveryRequest) (*dto.CarePlanResult, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	var details *entity.DeliveryRecord
	if req.DeliveryRecord != nil {
		var err error
		details, err = converter.DeliveryRecordFromRequest(req.DeliveryRecord, motherID)
		if err != nil {
			return nil, err
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	mother, err := u.lockMother(tx, motherID, midwifeID)
	if err != nil {
		return nil, err
	}

	deliveryDate, err := careplan.ParseDeliveryDate(req.DeliveryDate)
	if err != nil {
		return nil, ErrInvalidDeliveryDate
	}

	today := careplan.DateOf(u.now())
	before := converter.MotherToResponse(mother, today)

	mother.Status = entity.MotherStatusPostnatal
	mother.DeliveryDate = &deliveryDate
	if err := u.motherRepo.Update(tx, mother); err != nil {
		u.log.Warnf("Failed to update mother %s: %+v", motherID, err)
		return nil, err
	}

	removed, err := u.appointmentRepo.DeleteScheduledByMother(tx, motherID, entity.GeneratedVisitTypes)
	if err != nil {
		u.log.Warnf("Failed to delete scheduled visits for mother %s: %+v", motherID, err)
		return nil, err
	}

	appointments := scheduleAppointments(mother, careplan.GeneratePNC(deliveryDate), entity.VisitTypePNC)
	if err := u.appointmentRepo.CreateBatch(tx, appointments); err != nil {
		u.log.Warnf("Failed to create PNC visits for mother %s: %+v", motherID, err)
		return nil, err
	}

	result := &dto.CarePlanResult{
		Mother:                *converter.MotherToResponse(mother, today),
		RemovedAppointments:   removed,
		GeneratedAppointments: converter.AppointmentsToResponses(appointments),
	}

	if details != nil {
		details.DeliveryDate = &deliveryDate
		if err := u.deliveryRepo.Create(tx, details); err != nil {
			u.log.Warnf("Failed to create delivery record for mother %s: %+v", motherID, err)
			return nil, err
		}
		result.DeliveryRecord = converter.DeliveryRecordToResponse(details)
	}

	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionDeliveryReport, "mother", motherID.String(), before, result); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.riskStatsCache.Invalidate(ctx, midwifeID)
	u.log.Infof("Reported delivery for mother %s on %s", motherID, deliveryDate.Format(careplan.DateLayout))
	return result, nil
}

func (u *carePlanUsecase) GetPregnancy(ctx context.Context, motherID uuid.UUID) (*dto.PregnancyPlanResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	db := u.db.WithContext(ctx)
	mother, err := loadOwnedMother(db, u.motherRepo, motherID, midwifeID, false)
	if err != nil {
		return nil, err
	}

	return u.pregnancyPlan(db, mother)
}

func (u *carePlanUsecase) GetMyPregnancy(ctx context.Context) (*dto.PregnancyPlanResponse, error) {
	db := u.db.WithContext(ctx)
	mother, err := u.currentMother(ctx, db)
	if err != nil {
		return nil, err
	}

	return u.pregnancyPlan(db, mother)
}

// ListPregnancyRecords returns every record of the mother, newest first,
// the active one together with the history it replaced.
func (u *carePlanUsecase) ListPregnancyRecords(ctx context.Context, motherID uuid.UUID) (*dto.PregnancyRecordListResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	db := u.db.WithContext(ctx)
	if _, err := loadOwnedMother(db, u.motherRepo, motherID, midwifeID, false); err != nil {
		return nil, err
	}

	return u.pregnancyRecords(db, motherID)
}

func (u *carePlanUsecase) ListMyPregnancyRecords(ctx context.Context) (*dto.PregnancyRecordListResponse, error) {
	db := u.db.WithContext(ctx)
	mother, err := u.currentMother(ctx, db)
	if err != nil {
		return nil, err
	}

	return u.pregnancyRecords(db, mother.ID)
}

func (u *carePlanUsecase) currentMother(ctx context.Context, db *gorm.DB) (*entity.Mother, error) {
	motherID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	mother, err := u.motherRepo.FindByID(db, motherID)
	if err != nil {
		u.log.Warnf("Failed to find mother %s: %+v", motherID, err)
		return nil, err
	}
	if mother == nil {
		return nil, ErrMotherNotFound
	}
	return mother, nil
}

func (u *carePlanUsecase) pregnancyRecords(db *gorm.DB, motherID uuid.UUID) (*dto.PregnancyRecordListResponse, error) {
	records, err := u.recordRepo.FindByMotherID(db, motherID)
	if err != nil {
		u.log.Warnf("Failed to find pregnancy records for mother %s: %+v", motherID, err)
		return nil, err
	}

	return &dto.PregnancyRecordListResponse{
		Records: converter.PregnancyRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *carePlanUsecase) lockMother(tx *gorm.DB, motherID, midwifeID uuid.UUID) (*entity.Mother, error) {
	mother, err := loadOwnedMother(tx, u.motherRepo, motherID, midwifeID, true)
	if err != nil && !errors.Is(err, ErrMotherNotFound) && !errors.Is(err, ErrMotherNotOwned) {
		u.log.Warnf("Failed to lock mother %s: %+v", motherID, err)
	}
	return mother, err
}

// startPregnancy makes record the only active one, replaces the history and
// regenerates the ANC schedule. It runs inside tx with the mother row locked.
func (u *carePlanUsecase) startPregnancy(
	ctx context.Context,
	tx *gorm.DB,
	mother *entity.Mother,
	record *entity.PregnancyRecord,
	history []entity.PastPregnancy,
	tier entity.RiskLevel,
	action string,
) (*dto.CarePlanResult, error) {
	today := careplan.DateOf(u.now())
	before := converter.MotherToResponse(mother, today)

	if err := u.recordRepo.DeactivateByMotherID(tx, mother.ID); err != nil {
		u.log.Warnf("Failed to deactivate pregnancy records for mother %s: %+v", mother.ID, err)
		return nil, err
	}

	record.MotherID = mother.ID
	record.IsActive = true
	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create pregnancy record for mother %s: %+v", mother.ID, err)
		return nil, err
	}

	if err := u.pastRepo.ReplaceByMotherID(tx, mother.ID, history); err != nil {
		u.log.Warnf("Failed to replace pregnancy history for mother %s: %+v", mother.ID, err)
		return nil, err
	}

	mother.Status = entity.MotherStatusPregnant
	mother.RiskLevel = tier
	start, delivery := careplan.DeriveAnchors(record.LRMP, record.EDD)
	if start != nil {
		mother.PregnancyStartDate = start
	}
	if delivery != nil {
		mother.DeliveryDate = delivery
	}
	if err := u.motherRepo.Update(tx, mother); err != nil {
		u.log.Warnf("Failed to update mother %s: %+v", mother.ID, err)
		return nil, err
	}

	removed, err := u.appointmentRepo.DeleteScheduledByMother(tx, mother.ID, entity.GeneratedVisitTypes)
	if err != nil {
		u.log.Warnf("Failed to delete scheduled visits for mother %s: %+v", mother.ID, err)
		return nil, err
	}

	appointments := scheduleAppointments(mother, careplan.GenerateANC(record.LRMP, tier, today), entity.VisitTypeANC)
	if err := u.appointmentRepo.CreateBatch(tx, appointments); err != nil {
		u.log.Warnf("Failed to create ANC visits for mother %s: %+v", mother.ID, err)
		return nil, err
	}

	result := &dto.CarePlanResult{
		Mother:                *converter.MotherToResponse(mother, today),
		RemovedAppointments:   removed,
		GeneratedAppointments: converter.AppointmentsToResponses(appointments),
	}

	if err := u.auditService.LogUpdate(ctx, tx, action, "mother", mother.ID.String(), before, result); err != nil {
		return nil, err
	}

	return result, nil
}

// updateActiveRecord applies the fields present in req onto the active record.
// Appointments are left untouched.
func (u *carePlanUsecase) updateActiveRecord(
	ctx context.Context,
	tx *gorm.DB,
	mother *entity.Mother,
	record *entity.PregnancyRecord,
	req *dto.PregnancyPlanRequest,
	history []entity.PastPregnancy,
	tier entity.RiskLevel,
) (*dto.CarePlanResult, error) {
	today := careplan.DateOf(u.now())
	before := converter.MotherToResponse(mother, today)

	if err := converter.ApplyPregnancyRecordRequest(record, &req.RecordData); err != nil {
		return nil, err
	}
	if err := u.recordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update pregnancy record %d: %+v", record.ID, err)
		return nil, err
	}

	if err := u.pastRepo.ReplaceByMotherID(tx, mother.ID, history); err != nil {
		u.log.Warnf("Failed to replace pregnancy history for mother %s: %+v", mother.ID, err)
		return nil, err
	}

	// Only dates sent in this request move the mother's anchors.
	var lmp, edd *time.Time
	if req.RecordData.LRMP != nil {
		lmp = record.LRMP
	}
	if req.RecordData.EDD != nil {
		edd = record.EDD
	}
	start, delivery := careplan.DeriveAnchors(lmp, edd)

	mother.RiskLevel = tier
	if start != nil {
		mother.PregnancyStartDate = start
	}
	if delivery != nil {
		mother.DeliveryDate = delivery
	}
	if err := u.motherRepo.Update(tx, mother); err != nil {
		u.log.Warnf("Failed to update mother %s: %+v", mother.ID, err)
		return nil, err
	}

	result := &dto.CarePlanResult{
		Mother:                *converter.MotherToResponse(mother, today),
		GeneratedAppointments: []dto.AppointmentResponse{},
	}

	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionPregnancyUpdate, "mother", mother.ID.String(), before, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (u *carePlanUsecase) pregnancyPlan(db *gorm.DB, mother *entity.Mother) (*dto.PregnancyPlanResponse, error) {
	record, err := u.recordRepo.FindActiveByMotherID(db, mother.ID)
	if err != nil {
		u.log.Warnf("Failed to find active pregnancy record for mother %s: %+v", mother.ID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrPregnancyRecordNotFound
	}

	history, err := u.pastRepo.FindByMotherID(db, mother.ID)
	if err != nil {
		u.log.Warnf("Failed to find pregnancy history for mother %s: %+v", mother.ID, err)
		return nil, err
	}

	return &dto.PregnancyPlanResponse{
		Mother:      *converter.MotherToResponse(mother, careplan.DateOf(u.now())),
		RecordData:  *converter.PregnancyRecordToResponse(record),
		PastHistory: converter.PastPregnanciesToResponses(history),
		RiskLevel:   string(mother.RiskLevel),
		ActiveRisks: careplan.ActiveRisks(record.RiskFlags),
	}, nil
}

// scheduleAppointments turns generated visits into Scheduled appointments
// owned by the mother's midwife.
func scheduleAppointments(mother *entity.Mother, visits []careplan.Visit, visitType entity.VisitType) []entity.Appointment {
	appointments := make([]entity.Appointment, 0, len(visits))
	for _, v := range visits {
		appointments = append(appointments, entity.Appointment{
			MidwifeID: mother.MidwifeID,
			MotherID:  mother.ID,
			DateTime:  v.Date,
			VisitType: visitType,
			Status:    entity.AppointmentStatusScheduled,
			Notes:     v.Label,
		})
	}
	return appointments
}
