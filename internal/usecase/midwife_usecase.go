package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
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
	ErrMidwifeNotFound      = errors.New("midwife not found")
	ErrMidwifeAlreadyExists = errors.New("midwife with this NIC, email or phone number already exists")
)

const (
	generatedPasswordLength  = 10
	generatedPasswordCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"
)

type MidwifeUsecase interface {
	RegisterMidwife(ctx context.Context, req *dto.RegisterMidwifeRequest) (*dto.MidwifeResponse, error)
	GetAllMidwives(ctx context.Context) (*dto.MidwifeListResponse, error)
	SetMidwifeActive(ctx context.Context, midwifeID uuid.UUID, req *dto.UpdateMidwifeStatusRequest) (*dto.MidwifeResponse, error)
	GetCurrentMidwife(ctx context.Context) (*dto.MidwifeResponse, error)
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type midwifeUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	midwifeRepo     repository.MidwifeRepository
	motherRepo      repository.MotherRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	notifier        service.Notifier
	now             func() time.Time
}

func NewMidwifeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	midwifeRepo repository.MidwifeRepository,
	motherRepo repository.MotherRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	notifier service.Notifier,
) MidwifeUsecase {
	return &midwifeUsecase{
		db:              db,
		log:             log,
		midwifeRepo:     midwifeRepo,
		motherRepo:      motherRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		notifier:        notifier,
		now:             time.Now,
	}
}

func (u *midwifeUsecase) RegisterMidwife(ctx context.Context, req *dto.RegisterMidwifeRequest) (*dto.MidwifeResponse, error) {
	dob, err := careplan.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	password, err := generatePassword(generatedPasswordLength)
	if err != nil {
		u.log.Warnf("Failed to generate password: %+v", err)
		return nil, err
	}
	hashed, err := hashPassword(password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.midwifeRepo.FindConflicting(tx, req.NIC, req.Email, req.PhoneNumber)
	if err != nil {
		u.log.Warnf("Failed to check existing midwife: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrMidwifeAlreadyExists
	}

	midwife := &entity.Midwife{
		Username:           req.NIC,
		Password:           hashed,
		FullName:           req.FullName,
		NIC:                req.NIC,
		DateOfBirth:        &dob,
		PhoneNumber:        req.PhoneNumber,
		ResidentialAddress: req.ResidentialAddress,
		SLMCRegNo:          req.SLMCRegNo,
		ServiceGrade:       req.ServiceGrade,
		AssignedMOHArea:    req.AssignedMOHArea,
		IsActive:           req.IsActive,
	}
	if req.Email != "" {
		midwife.Email = &req.Email
	}

	if err := u.midwifeRepo.Create(tx, midwife); err != nil {
		if isDuplicateKeyError(err, "midwives") {
			return nil, ErrMidwifeAlreadyExists
		}
		u.log.Warnf("Failed to create midwife: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionMidwifeRegister, "midwife", midwife.ID.String(), converter.MidwifeToResponse(midwife)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if req.Email != "" {
		if err := u.notifier.SendMidwifeCredentials(ctx, req.Email, midwife.FullName, midwife.Username, password); err != nil {
			u.log.Warnf("Failed to send credentials to midwife %s: %+v", midwife.ID, err)
		}
	}

	u.log.Infof("Registered midwife %s", midwife.ID)
	return converter.MidwifeToResponse(midwife), nil
}

func (u *midwifeUsecase) GetAllMidwives(ctx context.Context) (*dto.MidwifeListResponse, error) {
	midwives, err := u.midwifeRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all midwives: %+v", err)
		return nil, err
	}

	return &dto.MidwifeListResponse{
		Midwives: converter.MidwivesToResponses(midwives),
		Total:    len(midwives),
	}, nil
}

func (u *midwifeUsecase) SetMidwifeActive(ctx context.Context, midwifeID uuid.UUID, req *dto.UpdateMidwifeStatusRequest) (*dto.MidwifeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.midwifeRepo.UpdateActive(tx, midwifeID, *req.IsActive)
	if err != nil {
		u.log.Warnf("Failed to update midwife status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrMidwifeNotFound
	}

	midwife, err := u.midwifeRepo.FindByID(tx, midwifeID)
	if err != nil {
		u.log.Warnf("Failed to find midwife: %+v", err)
		return nil, err
	}
	if midwife == nil {
		return nil, ErrMidwifeNotFound
	}

	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionMidwifeStatus, "midwife", midwifeID.String(), nil, map[string]bool{"is_active": *req.IsActive}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MidwifeToResponse(midwife), nil
}

func (u *midwifeUsecase) GetCurrentMidwife(ctx context.Context) (*dto.MidwifeResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	midwife, err := u.midwifeRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find midwife: %+v", err)
		return nil, err
	}
	if midwife == nil {
		return nil, ErrMidwifeNotFound
	}

	return converter.MidwifeToResponse(midwife), nil
}

func (u *midwifeUsecase) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	db := u.db.WithContext(ctx)

	mothers, err := u.motherRepo.CountByMidwifeID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to count mothers: %+v", err)
		return nil, err
	}

	today := careplan.DateOf(u.now())
	visits, err := u.appointmentRepo.CountByStatusBetween(db, userID, entity.AppointmentStatusCompleted, today, careplan.AddDays(today, 1))
	if err != nil {
		u.log.Warnf("Failed to count today's visits: %+v", err)
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		AssignedMothers: mothers,
		TodaysVisits:    visits,
	}, nil
}

// generatePassword returns a random password drawn from an unambiguous charset.
func generatePassword(length int) (string, error) {
	max := big.NewInt(int64(len(generatedPasswordCharset)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = generatedPasswordCharset[n.Int64()]
	}
	return string(buf), nil
}
