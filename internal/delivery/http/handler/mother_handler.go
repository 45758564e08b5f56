package handler

import (
	"encoding/json"
	"net/http"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/usecase"
	"maternal-care-backend/pkg/response"
	"maternal-care-backend/pkg/validator"
)

type MotherHandler struct {
	motherUsecase usecase.MotherUsecase
	validator     *validator.CustomValidator
}

func NewMotherHandler(motherUsecase usecase.MotherUsecase, validator *validator.CustomValidator) *MotherHandler {
	return &MotherHandler{
		motherUsecase: motherUsecase,
		validator:     validator,
	}
}

// CreateMother handles mother registration by the assigned midwife
// @Summary Register mother
// @Tags Mothers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMotherRequest true "Create Mother Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /mothers [post]
func (h *MotherHandler) CreateMother(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMotherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	mother, err := h.motherUsecase.CreateMother(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrNICAlreadyExists:
			response.Conflict(w, err.Error())
		case usecase.ErrUserNotInContext:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to create mother")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Mother created successfully", mother)
}

// GetMyMothers handles listing the caseload of the authenticated midwife
// @Summary List assigned mothers
// @Tags Mothers
// @Security BearerAuth
// @Produce json
// @Param search query string false "Name or NIC"
// @Param status query string false "Mother status"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Router /mothers [get]
func (h *MotherHandler) GetMyMothers(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	query := &dto.MotherQuery{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
		Page:   page,
		Limit:  limit,
	}

	mothers, err := h.motherUsecase.GetMyMothers(r.Context(), query)
	if err != nil {
		switch err {
		case usecase.ErrUserNotInContext:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to get mothers")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Mothers retrieved successfully", mothers.Mothers, response.NewMeta(page, limit, mothers.Total))
}

// GetMother handles a single mother of the caseload
// @Summary Get mother
// @Tags Mothers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Mother ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /mothers/{id} [get]
func (h *MotherHandler) GetMother(w http.ResponseWriter, r *http.Request) {
	motherID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid mother ID")
		return
	}

	mother, err := h.motherUsecase.GetMother(r.Context(), motherID)
	if err != nil {
		switch err {
		case usecase.ErrMotherNotFound:
			response.NotFound(w, "Mother not found")
		case usecase.ErrMotherNotOwned:
			response.Forbidden(w, err.Error())
		case usecase.ErrUserNotInContext:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to get mother")
		}
		return
	}

	response.Success(w, http.StatusOK, "Mother retrieved successfully", mother)
}

// UpdateMother handles a partial update of a mother
// @Summary Update mother
// @Tags Mothers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Mother ID"
// @Param request body dto.UpdateMotherRequest true "Update Mother Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /mothers/{id} [patch]
func (h *MotherHandler) UpdateMother(w http.ResponseWriter, r *http.Request) {
	motherID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid mother ID")
		return
	}

	var req dto.UpdateMotherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	mother, err := h.motherUsecase.UpdateMother(r.Context(), motherID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMotherNotFound:
			response.NotFound(w, "Mother not found")
		case usecase.ErrMotherNotOwned:
			response.Forbidden(w, err.Error())
		case usecase.ErrNICAlreadyExists:
			response.Conflict(w, err.Error())
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidRiskLevel:
			response.BadRequest(w, err.Error())
		case usecase.ErrUserNotInContext:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to update mother")
		}
		return
	}

	response.Success(w, http.StatusOK, "Mother updated successfully", mother)
}

// GetMe handles the authenticated mother profile
// @Summary Get own profile
// @Tags Mother
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /me [get]
func (h *MotherHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	mother, err := h.motherUsecase.GetCurrentMother(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrMotherNotFound:
			response.NotFound(w, "Mother not found")
		case usecase.ErrUserNotInContext:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", mother)
}
