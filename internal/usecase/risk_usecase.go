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
	ErrUnknownRiskType = errors.New("unknown risk type")
)

type RiskUsecase interface {
	GetRiskStats(ctx context.Context) (*dto.RiskStatsResponse, error)
	GetMothersByRisk(ctx context.Context, riskType string) (*dto.RiskMotherListResponse, error)
}

type riskUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	motherRepo     repository.MotherRepository
	recordRepo     repository.PregnancyRecordRepository
	riskStatsCache service.RiskStatsCache
	now            func() time.Time
}

func NewRiskUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	motherRepo repository.MotherRepository,
	recordRepo repository.PregnancyRecordRepository,
	riskStatsCache service.RiskStatsCache,
) RiskUsecase {
	return &riskUsecase{
		db:             db,
		log:            log,
		motherRepo:     motherRepo,
		recordRepo:     recordRepo,
		riskStatsCache: riskStatsCache,
		now:            time.Now,
	}
}

func (u *riskUsecase) GetRiskStats(ctx context.Context) (*dto.RiskStatsResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	if cached, ok := u.riskStatsCache.Get(ctx, midwifeID); ok {
		return converter.RiskStatsToResponse(*cached), nil
	}

	db := u.db.WithContext(ctx)
	mothers, err := u.motherRepo.FindActiveCases(db, midwifeID)
	if err != nil {
		u.log.Warnf("Failed to find active cases for midwife %s: %+v", midwifeID, err)
		return nil, err
	}

	records, err := u.activeRecords(db, mothers)
	if err != nil {
		return nil, err
	}

	stats := careplan.AggregateRiskStats(mothers, records)
	u.riskStatsCache.Set(ctx, midwifeID, stats)

	return converter.RiskStatsToResponse(stats), nil
}

func (u *riskUsecase) GetMothersByRisk(ctx context.Context, riskType string) (*dto.RiskMotherListResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	db := u.db.WithContext(ctx)

	var (
		mothers []entity.Mother
		err     error
	)
	if riskType == careplan.HighRiskKey {
		mothers, err = u.motherRepo.FindActiveCasesByRiskLevel(db, midwifeID, entity.RiskLevelHigh)
	} else {
		factor, found := careplan.LookupRiskFactor(riskType)
		if !found {
			return nil, ErrUnknownRiskType
		}
		mothers, err = u.motherRepo.FindActiveCasesByRiskFlag(db, midwifeID, factor.Column)
	}
	if err != nil {
		u.log.Warnf("Failed to find %s mothers for midwife %s: %+v", riskType, midwifeID, err)
		return nil, err
	}

	records, err := u.activeRecords(db, mothers)
	if err != nil {
		return nil, err
	}

	today := careplan.DateOf(u.now())
	responses := make([]dto.RiskMotherResponse, len(mothers))
	for i := range mothers {
		responses[i] = converter.RiskMotherToResponse(&mothers[i], records[mothers[i].ID], today)
	}

	return &dto.RiskMotherListResponse{
		RiskType: riskType,
		Mothers:  responses,
		Total:    len(responses),
	}, nil
}

func (u *riskUsecase) activeRecords(db *gorm.DB, mothers []entity.Mother) (map[uuid.UUID]*entity.PregnancyRecord, error) {
	ids := make([]uuid.UUID, len(mothers))
	for i := range mothers {
		ids[i] = mothers[i].ID
	}
	records, err := u.recordRepo.FindActiveByMotherIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to find active pregnancy records: %+v", err)
		return nil, err
	}
	return records, nil
}
