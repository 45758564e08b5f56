package usecase

import (
	"context"
	"errors"

	"maternal-care-backend/internal/converter"
	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/delivery/http/middleware"
	"maternal-care-backend/internal/domain/entity"
	"maternal-care-backend/internal/domain/repository"
	"maternal-care-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMOHNotFound      = errors.New("MOH officer not found")
	ErrMOHAlreadyExists = errors.New("MOH officer with this username or email already exists")
)

type MOHUsecase interface {
	RegisterMOH(ctx context.Context, req *dto.RegisterMOHRequest) (*dto.MOHOfficerResponse, error)
	GetCurrentMOH(ctx context.Context) (*dto.MOHOfficerResponse, error)
}

type mohUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	mohRepo      repository.MOHOfficerRepository
	auditService service.AuditService
}

func NewMOHUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	mohRepo repository.MOHOfficerRepository,
	auditService service.AuditService,
) MOHUsecase {
	return &mohUsecase{
		db:           db,
		log:          log,
		mohRepo:      mohRepo,
		auditService: auditService,
	}
}

func (u *mohUsecase) RegisterMOH(ctx context.Context, req *dto.RegisterMOHRequest) (*dto.MOHOfficerResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.mohRepo.FindByUsername(tx, req.Username)
	if err != nil {
		u.log.Warnf("Failed to check existing MOH officer: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrMOHAlreadyExists
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	officer := &entity.MOHOfficer{
		Username: req.Username,
		Password: hashed,
		FullName: req.FullName,
		MOHArea:  req.MOHArea,
	}
	if req.Email != "" {
		officer.Email = &req.Email
	}

	if err := u.mohRepo.Create(tx, officer); err != nil {
		if isDuplicateKeyError(err, "moh_officers") {
			return nil, ErrMOHAlreadyExists
		}
		u.log.Warnf("Failed to create MOH officer: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionMOHRegister, "moh_officer", officer.ID.String(), converter.MOHOfficerToResponse(officer)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Registered MOH officer %s", officer.Username)
	return converter.MOHOfficerToResponse(officer), nil
}

func (u *mohUsecase) GetCurrentMOH(ctx context.Context) (*dto.MOHOfficerResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	officer, err := u.mohRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find MOH officer: %+v", err)
		return nil, err
	}
	if officer == nil {
		return nil, ErrMOHNotFound
	}

	return converter.MOHOfficerToResponse(officer), nil
}
