package usecase

import (
	"context"
	"strconv"

	"maternal-care-backend/internal/converter"
	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/delivery/http/middleware"
	"maternal-care-backend/internal/domain/entity"
	"maternal-care-backend/internal/domain/repository"
	"maternal-care-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CareRecordUsecase manages the delivery and antenatal-plan pages of a
// mother's pregnancy record. Midwives write, mothers read their own.
type CareRecordUsecase interface {
	CreateDeliveryRecord(ctx context.Context, motherID uuid.UUID, req *dto.DeliveryRecordRequest) (*dto.DeliveryRecordResponse, error)
	GetMotherDeliveryRecords(ctx context.Context, motherID uuid.UUID) (*dto.DeliveryRecordListResponse, error)
	GetMyDeliveryRecords(ctx context.Context) (*dto.DeliveryRecordListResponse, error)
	CreateAntenatalPlan(ctx context.Context, motherID uuid.UUID, req *dto.AntenatalPlanRequest) (*dto.AntenatalPlanResponse, error)
	GetMotherAntenatalPlans(ctx context.Context, motherID uuid.UUID) (*dto.AntenatalPlanListResponse, error)
	GetMyAntenatalPlans(ctx context.Context) (*dto.AntenatalPlanListResponse, error)
}

type careRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	deliveryRepo repository.DeliveryRecordRepository
	planRepo     repository.AntenatalPlanRepository
	motherRepo   repository.MotherRepository
	auditService service.AuditService
}

func NewCareRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	deliveryRepo repository.DeliveryRecordRepository,
	planRepo repository.AntenatalPlanRepository,
	motherRepo repository.MotherRepository,
	auditService service.AuditService,
) CareRecordUsecase {
	return &careRecordUsecase{
		db:           db,
		log:          log,
		deliveryRepo: deliveryRepo,
		planRepo:     planRepo,
		motherRepo:   motherRepo,
		auditService: auditService,
	}
}

func (u *careRecordUsecase) CreateDeliveryRecord(ctx context.Context, motherID uuid.UUID, req *dto.DeliveryRecordRequest) (*dto.DeliveryRecordResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	record, err := converter.DeliveryRecordFromRequest(req, motherID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := loadOwnedMother(tx, u.motherRepo, motherID, midwifeID, false); err != nil {
		return nil, err
	}

	if err := u.deliveryRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create delivery record for mother %s: %+v", motherID, err)
		return nil, err
	}

	response := converter.DeliveryRecordToResponse(record)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionDeliveryRecord, "delivery_record", strconv.Itoa(record.ID), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *careRecordUsecase) GetMotherDeliveryRecords(ctx context.Context, motherID uuid.UUID) (*dto.DeliveryRecordListResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	db := u.db.WithContext(ctx)
	if _, err := loadOwnedMother(db, u.motherRepo, motherID, midwifeID, false); err != nil {
		return nil, err
	}

	return u.deliveryRecords(db, motherID)
}

func (u *careRecordUsecase) GetMyDeliveryRecords(ctx context.Context) (*dto.DeliveryRecordListResponse, error) {
	db := u.db.WithContext(ctx)
	motherID, err := u.currentMother(ctx, db)
	if err != nil {
		return nil, err
	}

	return u.deliveryRecords(db, motherID)
}

func (u *careRecordUsecase) CreateAntenatalPlan(ctx context.Context, motherID uuid.UUID, req *dto.AntenatalPlanRequest) (*dto.AntenatalPlanResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	plan, err := converter.AntenatalPlanFromRequest(req, motherID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := loadOwnedMother(tx, u.motherRepo, motherID, midwifeID, false); err != nil {
		return nil, err
	}

	if err := u.planRepo.Create(tx, plan); err != nil {
		u.log.Warnf("Failed to create antenatal plan for mother %s: %+v", motherID, err)
		return nil, err
	}

	response := converter.AntenatalPlanToResponse(plan)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionAntenatalPlan, "antenatal_plan", strconv.Itoa(plan.ID), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *careRecordUsecase) GetMotherAntenatalPlans(ctx context.Context, motherID uuid.UUID) (*dto.AntenatalPlanListResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	db := u.db.WithContext(ctx)
	if _, err := loadOwnedMother(db, u.motherRepo, motherID, midwifeID, false); err != nil {
		return nil, err
	}

	return u.antenatalPlans(db, motherID)
}

func (u *careRecordUsecase) GetMyAntenatalPlans(ctx context.Context) (*dto.AntenatalPlanListResponse, error) {
	db := u.db.WithContext(ctx)
	motherID, err := u.currentMother(ctx, db)
	if err != nil {
		return nil, err
	}

	return u.antenatalPlans(db, motherID)
}

func (u *careRecordUsecase) currentMother(ctx context.Context, db *gorm.DB) (uuid.UUID, error) {
	motherID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, ErrUserNotInContext
	}

	mother, err := u.motherRepo.FindByID(db, motherID)
	if err != nil {
		u.log.Warnf("Failed to find mother %s: %+v", motherID, err)
		return uuid.Nil, err
	}
	if mother == nil {
		return uuid.Nil, ErrMotherNotFound
	}
	return mother.ID, nil
}

func (u *careRecordUsecase) deliveryRecords(db *gorm.DB, motherID uuid.UUID) (*dto.DeliveryRecordListResponse, error) {
	records, err := u.deliveryRepo.FindByMotherID(db, motherID)
	if err != nil {
		u.log.Warnf("Failed to find delivery records for mother %s: %+v", motherID, err)
		return nil, err
	}

	return &dto.DeliveryRecordListResponse{
		Records: converter.DeliveryRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func (u *careRecordUsecase) antenatalPlans(db *gorm.DB, motherID uuid.UUID) (*dto.AntenatalPlanListResponse, error) {
	plans, err := u.planRepo.FindByMotherID(db, motherID)
	if err != nil {
		u.log.Warnf("Failed to find antenatal plans for mother %s: %+v", motherID, err)
		return nil, err
	}

	return &dto.AntenatalPlanListResponse{
		Plans: converter.AntenatalPlansToResponses(plans),
		Total: len(plans),
	}, nil
}
