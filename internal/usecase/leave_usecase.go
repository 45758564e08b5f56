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

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLeaveNotFound      = errors.New("leave request not found")
	ErrLeaveOverlap       = errors.New("leave request overlaps an existing request")
	ErrInvalidLeaveStatus = errors.New("invalid leave status")
)

type LeaveUsecase interface {
	CreateLeaveRequest(ctx context.Context, req *dto.CreateLeaveRequest) (*dto.LeaveResponse, error)
	GetMyLeaveRequests(ctx context.Context) (*dto.LeaveListResponse, error)
	GetAllLeaveRequests(ctx context.Context, status string) (*dto.LeaveListResponse, error)
	ReviewLeaveRequest(ctx context.Context, id int, req *dto.ReviewLeaveRequest) (*dto.LeaveResponse, error)
}

type leaveUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	leaveRepo    repository.LeaveRequestRepository
	auditService service.AuditService
}

func NewLeaveUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	leaveRepo repository.LeaveRequestRepository,
	auditService service.AuditService,
) LeaveUsecase {
	return &leaveUsecase{
		db:           db,
		log:          log,
		leaveRepo:    leaveRepo,
		auditService: auditService,
	}
}

func (u *leaveUsecase) CreateLeaveRequest(ctx context.Context, req *dto.CreateLeaveRequest) (*dto.LeaveResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	start, err := careplan.ParseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := careplan.ParseDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	overlapping, err := u.leaveRepo.FindOverlapping(tx, midwifeID, start, end)
	if err != nil {
		u.log.Warnf("Failed to check overlapping leave for midwife %s: %+v", midwifeID, err)
		return nil, err
	}
	if overlapping != nil {
		return nil, ErrLeaveOverlap
	}

	leave := &entity.LeaveRequest{
		MidwifeID: midwifeID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
		Status:    entity.LeaveStatusPending,
	}

	if err := u.leaveRepo.Create(tx, leave); err != nil {
		u.log.Warnf("Failed to create leave request: %+v", err)
		return nil, err
	}

	response := converter.LeaveToResponse(leave)
	if err := u.auditService.LogCreate(ctx, tx, entity.AuditActionLeaveRequest, "leave_request", strconv.Itoa(leave.ID), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *leaveUsecase) GetMyLeaveRequests(ctx context.Context) (*dto.LeaveListResponse, error) {
	midwifeID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotInContext
	}

	leaves, err := u.leaveRepo.FindByMidwifeID(u.db.WithContext(ctx), midwifeID)
	if err != nil {
		u.log.Warnf("Failed to find leave requests for midwife %s: %+v", midwifeID, err)
		return nil, err
	}

	return &dto.LeaveListResponse{
		LeaveRequests: converter.LeavesToResponses(leaves),
		Total:         len(leaves),
	}, nil
}

func (u *leaveUsecase) GetAllLeaveRequests(ctx context.Context, status string) (*dto.LeaveListResponse, error) {
	if status != "" && !isLeaveStatus(entity.LeaveStatus(status)) {
		return nil, ErrInvalidLeaveStatus
	}

	leaves, err := u.leaveRepo.FindAll(u.db.WithContext(ctx), entity.LeaveStatus(status))
	if err != nil {
		u.log.Warnf("Failed to find all leave requests: %+v", err)
		return nil, err
	}

	return &dto.LeaveListResponse{
		LeaveRequests: converter.LeavesToResponses(leaves),
		Total:         len(leaves),
	}, nil
}

func (u *leaveUsecase) ReviewLeaveRequest(ctx context.Context, id int, req *dto.ReviewLeaveRequest) (*dto.LeaveResponse, error) {
	status := entity.LeaveStatus(req.Status)
	if !isLeaveStatus(status) {
		return nil, ErrInvalidLeaveStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	leave, err := u.leaveRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find leave request %d: %+v", id, err)
		return nil, err
	}
	if leave == nil {
		return nil, ErrLeaveNotFound
	}

	before := converter.LeaveToResponse(leave)

	leave.Status = status
	leave.MOHComment = req.MOHComment
	if err := u.leaveRepo.Update(tx, leave); err != nil {
		u.log.Warnf("Failed to update leave request %d: %+v", id, err)
		return nil, err
	}

	after := converter.LeaveToResponse(leave)
	if err := u.auditService.LogUpdate(ctx, tx, entity.AuditActionLeaveReview, "leave_request", strconv.Itoa(id), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Leave request %d reviewed: %s", id, status)
	return after, nil
}

func isLeaveStatus(status entity.LeaveStatus) bool {
	switch status {
	case entity.LeaveStatusPending, entity.LeaveStatusApproved, entity.LeaveStatusRejected:
		return true
	}
	return false
}
