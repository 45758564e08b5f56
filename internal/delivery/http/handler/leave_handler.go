package handler

import (
	"encoding/json"
	"net/http"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/usecase"
	"maternal-care-backend/pkg/response"
	"maternal-care-backend/pkg/validator"
)

type LeaveHandler struct {
	leaveUsecase usecase.LeaveUsecase
	validator    *validator.CustomValidator
}

func NewLeaveHandler(leaveUsecase usecase.LeaveUsecase, validator *validator.CustomValidator) *LeaveHandler {
	return &LeaveHandler{
		leaveUsecase: leaveUsecase,
		validator:    validator,
	}
}

func (h *LeaveHandler) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	leave, err := h.leaveUsecase.CreateLeaveRequest(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.BadRequest(w, err.Error())
		case usecase.ErrLeaveOverlap:
			response.Conflict(w, err.Error())
		case usecase.ErrUserNotInContext:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to create leave request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Leave request created successfully", leave)
}

func (h *LeaveHandler) GetMyLeaveRequests(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveUsecase.GetMyLeaveRequests(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrUserNotInContext:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to get leave requests")
		}
		return
	}

	response.Success(w, http.StatusOK, "Leave requests retrieved successfully", leaves)
}

func (h *LeaveHandler) GetAllLeaveRequests(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveUsecase.GetAllLeaveRequests(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidLeaveStatus:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to get leave requests")
		}
		return
	}

	response.Success(w, http.StatusOK, "Leave requests retrieved successfully", leaves)
}

func (h *LeaveHandler) ReviewLeaveRequest(w http.ResponseWriter, r *http.Request) {
	leaveID, err := intParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid leave request ID")
		return
	}

	var req dto.ReviewLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	leave, err := h.leaveUsecase.ReviewLeaveRequest(r.Context(), leaveID, &req)
	if err != nil {
		switch err {
		case usecase.ErrLeaveNotFound:
			response.NotFound(w, "Leave request not found")
		case usecase.ErrInvalidLeaveStatus:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to review leave request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Leave request reviewed successfully", leave)
}
