package usecase

import (
	"context"
	"errors"
	"strconv"

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
	ErrVisitAlreadyRecorded = errors.New("a visit is already recorded for this appointment")
	ErrVisitNotFound        = errors.New("visit not found")
)

type VisitUsecase interface {
	RecordANCVisit(ctx context.Context, req *dto.CreateANCVisitRequest) (*dto.ANCVisitResponse, error)
	RecordPNCVisit(ctx context.Context, req *dto.CreatePNCVisitRequest) (*dto.PNCVisitResponse, error)
	GetANCVisit(ctx context.Context, appointmentID int) (*dto.ANCVisitResponse, error)
	GetPNCVisit(ctx context.Context, appointmentID int) (*dto.PNCVisitResponse, error)
	GetMotherANCVisits(ctx context.Context, motherID uuid.UUID) (*dto.ANCVisitListResponse, error)
	GetMotherPNCVisits(ctx context.Context, motherID uuid.UUID) (*dto.PNCVisitListResponse, error)
}

type visitUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	ancRepo         repository.ANCVisitRepository
	pncRepo         repository.PNCVisitRepository
	appointmentRepo repository.AppointmentRepository
	motherRepo      repository.MotherRepository
	auditService    service.AuditService
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ancRepo repository.ANCVisitRepository,
	pncRepo repository.PNCVisitRepository,
	appointmentRepo repository.AppointmentRepository,
	motherRepo repository.MotherRepository,
	auditService service.AuditService,
) VisitUsecase {
	return &visitUsecase{
		db:              db,
		log:             log,
		ancRepo:         ancRepo,
		pncRepo:         pncRepo,
		appointmentRepo: appointmentRepo,
		motherRepo:      motherRepo,
		auditService:    auditService,
	}
}

func (u *visitUsecase) RecordANCVisit(ctx context.Context, req *dto.CreateANCVisitRequest) (*dto.ANCVisitResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	visitDate, err := careplan.ParseDate(req.VisitDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findOwnedAppointment(tx, req.AppointmentID, midwifeID)
	if err != nil {
		return nil, err
	}

	existing, err := u.ancRepo.FindByAppointmentID(tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to check ANC visit for appointment %d: %+v", appointment.ID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrVisitAlreadyRecorded
	}

	visit := converter.ANCVisitFromRequest(req, appointment.MotherID, visitDate)
	if req.POAWeeks == nil && appointment.Mother != nil && appointment.Mother.PregnancyStartDate != nil {
		visit.POAWeeks = careplan.Elapsed(*appointment.Mother.PregnancyStartDate, visitDate).String()
	}

	if err := u.ancRepo.Create(tx, visit); err != nil {
		if isDuplicateKeyError(err, "appointment_id") {
			return nil, ErrVisitAlreadyRecorded
		}
		u.log.Warnf("Failed to create ANC visit: %+v", err)
		return nil, err
	}

	if err := u.completeAppointment(tx, appointment); err != nil {
		return nil, err
	}

	response := converter.ANCVisitToResponse(visit)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionVisitRecord, "anc_visit", strconv.Itoa(visit.ID), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *visitUsecase) RecordPNCVisit(ctx context.Context, req *dto.CreatePNCVisitRequest) (*dto.PNCVisitResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	visitDate, err := careplan.ParseDate(req.VisitDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findOwnedAppointment(tx, req.AppointmentID, midwifeID)
	if err != nil {
		return nil, err
	}

	existing, err := u.pncRepo.FindByAppointmentID(tx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to check PNC visit for appointment %d: %+v", appointment.ID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrVisitAlreadyRecorded
	}

	visit := converter.PNCVisitFromRequest(req, appointment.MotherID, visitDate)
	if err := u.pncRepo.Create(tx, visit); err != nil {
		if isDuplicateKeyError(err, "appointment_id") {
			return nil, ErrVisitAlreadyRecorded
		}
		u.log.Warnf("Failed to create PNC visit: %+v", err)
		return nil, err
	}

	if err := u.completeAppointment(tx, appointment); err != nil {
		return nil, err
	}

	response := converter.PNCVisitToResponse(visit)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionVisitRecord, "pnc_visit", strconv.Itoa(visit.ID), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *visitUsecase) GetANCVisit(ctx context.Context, appointmentID int) (*dto.ANCVisitResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	db := u.db.WithContext(ctx)
	if _, err := u.findOwnedAppointment(db, appointmentID, midwifeID); err != nil {
		return nil, err
	}

	visit, err := u.ancRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find ANC visit for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	return converter.ANCVisitToResponse(visit), nil
}

func (u *visitUsecase) GetPNCVisit(ctx context.Context, appointmentID int) (*dto.PNCVisitResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	db := u.db.WithContext(ctx)
	if _, err := u.findOwnedAppointment(db, appointmentID, midwifeID); err != nil {
		return nil, err
	}

	visit, err := u.pncRepo.FindByAppointmentID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find PNC visit for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	return converter.PNCVisitToResponse(visit), nil
}

func (u *visitUsecase) GetMotherANCVisits(ctx context.Context, motherID uuid.UUID) (*dto.ANCVisitListResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	db := u.db.WithContext(ctx)
	if _, err := loadOwnedMother(db, u.motherRepo, motherID, midwifeID, false); err != nil {
		return nil, err
	}

	visits, err := u.ancRepo.FindByMotherID(db, motherID)
	if err != nil {
		u.log.Warnf("Failed to find ANC visits for mother %s: %+v", motherID, err)
		return nil, err
	}

	return &dto.ANCVisitListResponse{
		Visits: converter.ANCVisitsToResponses(visits),
		Total:  len(visits),
	}, nil
}

func (u *visitUsecase) GetMotherPNCVisits(ctx context.Context, motherID uuid.UUID) (*dto.PNCVisitListResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	db := u.db.WithContext(ctx)
	if _, err := loadOwnedMother(db, u.motherRepo, motherID, midwifeID, false); err != nil {
		return nil, err
	}

	visits, err := u.pncRepo.FindByMotherID(db, motherID)
	if err != nil {
		u.log.Warnf("Failed to find PNC visits for mother %s: %+v", motherID, err)
		return nil, err
	}

	return &dto.PNCVisitListResponse{
		Visits: converter.PNCVisitsToResponses(visits),
		Total:  len(visits),
	}, nil
}

func (u *visitUsecase) findOwnedAppointment(db *gorm.DB, id int, midwifeID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.MidwifeID != midwifeID {
		return nil, ErrAppointmentNotOwned
	}
	return appointment, nil
}

// completeAppointment marks the attended appointment Completed.
func (u *visitUsecase) completeAppointment(tx *gorm.DB, appointment *entity.Appointment) error {
	if !appointment.IsScheduled() {
		return nil
	}
	appointment.Complete()
	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to complete appointment %d: %+v", appointment.ID, err)
		return err
	}
	return nil
}
