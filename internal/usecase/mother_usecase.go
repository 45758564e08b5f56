package usecase

import (
	"context"
	"errors"
	"strings"
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
	ErrMotherNotFound    = errors.New("mother not found")
	ErrMotherNotOwned    = errors.New("mother is not assigned to this midwife")
	ErrNICAlreadyExists  = errors.New("mother with this NIC already exists")
	ErrInvalidDateFormat = careplan.ErrInvalidDate
)

type MotherUsecase interface {
	CreateMother(ctx context.Context, req *dto.CreateMotherRequest) (*dto.MotherResponse, error)
	GetMyMothers(ctx context.Context, query *dto.MotherQuery) (*dto.MotherListResponse, error)
	GetMother(ctx context.Context, motherID uuid.UUID) (*dto.MotherResponse, error)
	UpdateMother(ctx context.Context, motherID uuid.UUID, req *dto.UpdateMotherRequest) (*dto.MotherResponse, error)
	GetCurrentMother(ctx context.Context) (*dto.MotherResponse, error)
}

type motherUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	motherRepo     repository.MotherRepository
	auditService   service.AuditService
	riskStatsCache service.RiskStatsCache
	now            func() time.Time
}

func NewMotherUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	motherRepo repository.MotherRepository,
	auditService service.AuditService,
	riskStatsCache service.RiskStatsCache,
) MotherUsecase {
	return &motherUsecase{
		db:             db,
		log:            log,
		motherRepo:     motherRepo,
		auditService:   auditService,
		riskStatsCache: riskStatsCache,
		now:            time.Now,
	}
}

func (u *motherUsecase) CreateMother(ctx context.Context, req *dto.CreateMotherRequest) (*dto.MotherResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	mother := &entity.Mother{
		FullName:      req.FullName,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		Password:      hashed,
		MidwifeID:     midwifeID,
		Status:        entity.MotherStatusEligible,
		RiskLevel:     entity.RiskLevelLow,
	}

	if nic := strings.TrimSpace(req.NIC); nic != "" {
		if err := u.ensureNICAvailable(tx, nic, uuid.Nil); err != nil {
			return nil, err
		}
		mother.NIC = &nic
	}

	if err := u.motherRepo.Create(tx, mother); err != nil {
		if isDuplicateKeyError(err, "nic") {
			return nil, ErrNICAlreadyExists
		}
		u.log.Warnf("Failed to create mother: %+v", err)
		return nil, err
	}

	today := careplan.DateOf(u.now())
	response := converter.MotherToResponse(mother, today)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionMotherCreate, "mother", mother.ID.String(), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Midwife %s registered mother %s", midwifeID, mother.ID)
	return response, nil
}

func (u *motherUsecase) GetMyMothers(ctx context.Context, query *dto.MotherQuery) (*dto.MotherListResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	page, limit := normalizePage(query.Page, query.Limit)
	filter := &entity.MotherFilter{
		Search: strings.TrimSpace(query.Search),
		Status: entity.MotherStatus(query.Status),
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	mothers, total, err := u.motherRepo.FindByMidwifeID(u.db.WithContext(ctx), midwifeID, filter)
	if err != nil {
		u.log.Warnf("Failed to find mothers for midwife %s: %+v", midwifeID, err)
		return nil, err
	}

	return &dto.MotherListResponse{
		Mothers: converter.MothersToResponses(mothers, careplan.DateOf(u.now())),
		Total:   total,
	}, nil
}

func (u *motherUsecase) GetMother(ctx context.Context, motherID uuid.UUID) (*dto.MotherResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	mother, err := loadOwnedMother(u.db.WithContext(ctx), u.motherRepo, motherID, midwifeID, false)
	if err != nil {
		return nil, err
	}

	return converter.MotherToResponse(mother, careplan.DateOf(u.now())), nil
}

func (u *motherUsecase) UpdateMother(ctx context.Context, motherID uuid.UUID, req *dto.UpdateMotherRequest) (*dto.MotherResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	startDate, err := converter.ParseOptionalDate(req.PregnancyStartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	deliveryDate, err := converter.ParseOptionalDate(req.DeliveryDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if req.RiskLevel != nil && !entity.RiskLevel(*req.RiskLevel).IsValid() {
		return nil, ErrInvalidRiskLevel
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	mother, err := loadOwnedMother(tx, u.motherRepo, motherID, midwifeID, true)
	if err != nil {
		if !errors.Is(err, ErrMotherNotFound) && !errors.Is(err, ErrMotherNotOwned) {
			u.log.Warnf("Failed to find mother %s: %+v", motherID, err)
		}
		return nil, err
	}

	today := careplan.DateOf(u.now())
	before := converter.MotherToResponse(mother, today)

	if req.FullName != nil {
		mother.FullName = *req.FullName
	}
	if req.NIC != nil {
		nic := strings.TrimSpace(*req.NIC)
		if nic == "" {
			mother.NIC = nil
		} else {
			if err := u.ensureNICAvailable(tx, nic, mother.ID); err != nil {
				return nil, err
			}
			mother.NIC = &nic
		}
	}
	if req.Address != nil {
		mother.Address = *req.Address
	}
	if req.ContactNumber != nil {
		mother.ContactNumber = *req.ContactNumber
	}
	if req.Status != nil {
		mother.Status = entity.MotherStatus(*req.Status)
	}
	if req.RiskLevel != nil {
		mother.RiskLevel = entity.RiskLevel(*req.RiskLevel)
	}
	if startDate != nil {
		mother.PregnancyStartDate = startDate
	}
	if deliveryDate != nil {
		mother.DeliveryDate = deliveryDate
	}

	if err := u.motherRepo.Update(tx, mother); err != nil {
		if isDuplicateKeyError(err, "nic") {
			return nil, ErrNICAlreadyExists
		}
		u.log.Warnf("Failed to update mother %s: %+v", motherID, err)
		return nil, err
	}

	after := converter.MotherToResponse(mother, today)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionMotherUpdate, "mother", mother.ID.String(), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.riskStatsCache.Invalidate(ctx, midwifeID)
	return after, nil
}

func (u *motherUsecase) GetCurrentMother(ctx context.Context) (*dto.MotherResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	mother, err := u.motherRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find mother %s: %+v", userID, err)
		return nil, err
	}
	if mother == nil {
		return nil, ErrMotherNotFound
	}

	return converter.MotherToResponse(mother, careplan.DateOf(u.now())), nil
}

// ensureNICAvailable fails with ErrNICAlreadyExists when another mother holds nic.
func (u *motherUsecase) ensureNICAvailable(db *gorm.DB, nic string, self uuid.UUID) error {
	existing, err := u.motherRepo.FindByNIC(db, nic)
	if err != nil {
		u.log.Warnf("Failed to check NIC: %+v", err)
		return err
	}
	if existing != nil && existing.ID != self {
		return ErrNICAlreadyExists
	}
	return nil
}
