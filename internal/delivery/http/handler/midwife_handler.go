package handler

import (
	"encoding/json"
	"net/http"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/usecase"
	"maternal-care-backend/pkg/response"
	"maternal-care-backend/pkg/validator"
)

type MidwifeHandler struct {
	midwifeUsecase usecase.MidwifeUsecase
	validator      *validator.CustomValidator
}

func NewMidwifeHandler(midwifeUsecase usecase.MidwifeUsecase, validator *validator.CustomValidator) *MidwifeHandler {
	return &MidwifeHandler{
		midwifeUsecase: midwifeUsecase,
		validator:      validator,
	}
}

// RegisterMidwife handles midwife registration by a MOH officer
// @Summary Register midwife
// @Description Create a midwife account. Login credentials are emailed when an address is given.
// @Tags MOH
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RegisterMidwifeRequest true "Register Midwife Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /moh/midwives [post]
func (h *MidwifeHandler) RegisterMidwife(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterMidwifeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	midwife, err := h.midwifeUsecase.RegisterMidwife(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrMidwifeAlreadyExists:
			response.Conflict(w, err.Error())
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to register midwife")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Midwife registered successfully", midwife)
}

// GetAllMidwives handles listing every midwife
// @Summary List midwives
// @Tags MOH
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /moh/midwives [get]
func (h *MidwifeHandler) GetAllMidwives(w http.ResponseWriter, r *http.Request) {
	midwives, err := h.midwifeUsecase.GetAllMidwives(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get midwives")
		return
	}

	response.Success(w, http.StatusOK, "Midwives retrieved successfully", midwives)
}

// UpdateMidwifeStatus handles suspending or reactivating a midwife
// @Summary Update midwife status
// @Tags MOH
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Midwife ID"
// @Param request body dto.UpdateMidwifeStatusRequest true "Status Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /moh/midwives/{id}/status [patch]
func (h *MidwifeHandler) UpdateMidwifeStatus(w http.ResponseWriter, r *http.Request) {
	midwifeID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid midwife ID")
		return
	}

	var req dto.UpdateMidwifeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	midwife, err := h.midwifeUsecase.SetMidwifeActive(r.Context(), midwifeID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMidwifeNotFound:
			response.NotFound(w, "Midwife not found")
		default:
			response.InternalServerError(w, "Failed to update midwife status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Midwife status updated successfully", midwife)
}

// GetMe handles the authenticated midwife profile
// @Summary Get midwife profile
// @Tags Midwife
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /midwife/me [get]
func (h *MidwifeHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	midwife, err := h.midwifeUsecase.GetCurrentMidwife(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrUserNotInContext:
			response.Unauthorized(w, "Invalid token")
		case usecase.ErrMidwifeNotFound:
			response.NotFound(w, "Midwife not found")
		default:
			response.InternalServerError(w, "Failed to get midwife profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Midwife retrieved successfully", midwife)
}

// GetDashboardStats handles the midwife dashboard counters
// @Summary Get dashboard stats
// @Tags Midwife
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /midwife/dashboard [get]
func (h *MidwifeHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.midwifeUsecase.GetDashboardStats(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrUserNotInContext:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to get dashboard stats")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}
