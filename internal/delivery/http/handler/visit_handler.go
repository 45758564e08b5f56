package handler

import (
	"encoding/json"
	"net/http"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/usecase"
	"maternal-care-backend/pkg/response"
	"maternal-care-backend/pkg/validator"
)

type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
	validator    *validator.CustomValidator
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase, validator *validator.CustomValidator) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
		validator:    validator,
	}
}

// RecordANCVisit handles the clinical record of an antenatal visit
// @Summary Record ANC visit
// @Description Store the visit against its appointment and mark the appointment completed
// @Tags Visits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateANCVisitRequest true "ANC Visit Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /anc-visits [post]
func (h *VisitHandler) RecordANCVisit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateANCVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.RecordANCVisit(r.Context(), &req)
	if err != nil {
		writeVisitError(w, err, "Failed to record ANC visit")
		return
	}

	response.Success(w, http.StatusCreated, "ANC visit recorded successfully", visit)
}

// RecordPNCVisit handles the clinical record of a postnatal visit
// @Summary Record PNC visit
// @Tags Visits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePNCVisitRequest true "PNC Visit Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /pnc-visits [post]
func (h *VisitHandler) RecordPNCVisit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePNCVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	visit, err := h.visitUsecase.RecordPNCVisit(r.Context(), &req)
	if err != nil {
		writeVisitError(w, err, "Failed to record PNC visit")
		return
	}

	response.Success(w, http.StatusCreated, "PNC visit recorded successfully", visit)
}

func (h *VisitHandler) GetANCVisit(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := intParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	visit, err := h.visitUsecase.GetANCVisit(r.Context(), appointmentID)
	if err != nil {
		writeVisitError(w, err, "Failed to get ANC visit")
		return
	}

	response.Success(w, http.StatusOK, "ANC visit retrieved successfully", visit)
}

func (h *VisitHandler) GetPNCVisit(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := intParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	visit, err := h.visitUsecase.GetPNCVisit(r.Context(), appointmentID)
	if err != nil {
		writeVisitError(w, err, "Failed to get PNC visit")
		return
	}

	response.Success(w, http.StatusOK, "PNC visit retrieved successfully", visit)
}

func (h *VisitHandler) GetMotherANCVisits(w http.ResponseWriter, r *http.Request) {
	motherID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid mother ID")
		return
	}

	visits, err := h.visitUsecase.GetMotherANCVisits(r.Context(), motherID)
	if err != nil {
		writeVisitError(w, err, "Failed to get ANC visits")
		return
	}

	response.Success(w, http.StatusOK, "ANC visits retrieved successfully", visits)
}

func (h *VisitHandler) GetMotherPNCVisits(w http.ResponseWriter, r *http.Request) {
	motherID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid mother ID")
		return
	}

	visits, err := h.visitUsecase.GetMotherPNCVisits(r.Context(), motherID)
	if err != nil {
		writeVisitError(w, err, "Failed to get PNC visits")
		return
	}

	response.Success(w, http.StatusOK, "PNC visits retrieved successfully", visits)
}

func writeVisitError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrVisitNotFound:
		response.NotFound(w, "Visit not found")
	case usecase.ErrMotherNotFound:
		response.NotFound(w, "Mother not found")
	case usecase.ErrAppointmentNotOwned, usecase.ErrMotherNotOwned:
		response.Forbidden(w, err.Error())
	case usecase.ErrVisitAlreadyRecorded:
		response.Conflict(w, err.Error())
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, err.Error())
	case usecase.ErrUserNotInContext:
		response.Unauthorized(w, "Invalid token")
	default:
		response.InternalServerError(w, fallback)
	}
}
