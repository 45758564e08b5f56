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
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment belongs to another midwife")
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, error)
	GetMotherAppointments(ctx context.Context, motherID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetMyMotherAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id int) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	motherRepo      repository.MotherRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	motherRepo repository.MotherRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		motherRepo:      motherRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	mother, err := loadOwnedMother(tx, u.motherRepo, req.MotherID, midwifeID, false)
	if err != nil {
		return nil, err
	}

	visitType := entity.VisitTypeHomeVisit
	if req.VisitType != "" {
		visitType = entity.VisitType(req.VisitType)
	}

	appointment := &entity.Appointment{
		MidwifeID: midwifeID,
		MotherID:  mother.ID,
		DateTime:  req.DateTime.UTC(),
		VisitType: visitType,
		Status:    entity.AppointmentStatusScheduled,
		Notes:     req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}
	appointment.Mother = mother

	response := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionAppointmentCreate, "appointment", strconv.Itoa(appointment.ID), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, query *dto.AppointmentQuery) (*dto.AppointmentListResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	filter, err := appointmentFilter(query)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByMidwifeID(u.db.WithContext(ctx), midwifeID, filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments for midwife %s: %+v", midwifeID, err)
		return nil, err
	}

	return appointmentList(appointments), nil
}

func (u *appointmentUsecase) GetMotherAppointments(ctx context.Context, motherID uuid.UUID) (*dto.AppointmentListResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	db := u.db.WithContext(ctx)
	if _, err := loadOwnedMother(db, u.motherRepo, motherID, midwifeID, false); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByMotherID(db, motherID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for mother %s: %+v", motherID, err)
		return nil, err
	}

	return appointmentList(appointments), nil
}

func (u *appointmentUsecase) GetMyMotherAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	motherID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	appointments, err := u.appointmentRepo.FindByMotherID(u.db.WithContext(ctx), motherID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for mother %s: %+v", motherID, err)
		return nil, err
	}

	return appointmentList(appointments), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findOwnedAppointment(tx, id, midwifeID)
	if err != nil {
		return nil, err
	}

	before := converter.AppointmentToResponse(appointment)

	if req.DateTime != nil {
		appointment.DateTime = req.DateTime.UTC()
	}
	if req.VisitType != nil {
		appointment.VisitType = entity.VisitType(*req.VisitType)
	}
	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	after := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionAppointmentUpdate, "appointment", strconv.Itoa(id), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return after, nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id int) error {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotInContext
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findOwnedAppointment(tx, id, midwifeID)
	if err != nil {
		return err
	}

	affected, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, entity.AuditActionAppointmentDelete, "appointment", strconv.Itoa(id), converter.AppointmentToResponse(appointment)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *appointmentUsecase) findOwnedAppointment(db *gorm.DB, id int, midwifeID uuid.UUID) (*entity.Appointment, error) {
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

// appointmentFilter turns an inclusive YYYY-MM-DD range into a half-open one.
func appointmentFilter(query *dto.AppointmentQuery) (*entity.AppointmentFilter, error) {
	filter := &entity.AppointmentFilter{}
	if query == nil {
		return filter, nil
	}
	if query.StartDate != "" {
		from, err := careplan.ParseDate(query.StartDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		filter.From = &from
	}
	if query.EndDate != "" {
		end, err := careplan.ParseDate(query.EndDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		to := careplan.AddDays(end, 1)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && !filter.To.After(*filter.From) {
		return nil, ErrInvalidDateRange
	}
	return filter, nil
}

func appointmentList(appointments []entity.Appointment) *dto.AppointmentListResponse {
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}
}
