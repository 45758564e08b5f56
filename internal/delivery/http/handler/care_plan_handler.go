package handler

import (
	"encoding/json"
	"net/http"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/usecase"
	"maternal-care-backend/pkg/response"
	"maternal-care-backend/pkg/validator"
)

type CarePlanHandler struct {
	carePlanUsecase usecase.CarePlanUsecase
	validator       *validator.CustomValidator
}

func NewCarePlanHandler(carePlanUsecase usecase.CarePlanUsecase, validator *validator.CustomValidator) *CarePlanHandler {
	return &CarePlanHandler{
		carePlanUsecase: carePlanUsecase,
		validator:       validator,
	}
}

// StartPregnancy handles opening a new pregnancy and generating the ANC schedule
// @Summary Start pregnancy
// @Description Archive any active record, store the registration form and generate ANC appointments
// @Tags Care Plan
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Mother ID"
// @Param request body dto.PregnancyPlanRequest true "Pregnancy Plan Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /mothers/{id}/pregnancy [post]
func (h *CarePlanHandler) StartPregnancy(w http.ResponseWriter, r *http.Request) {
	motherID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid mother ID")
		return
	}

	var req dto.PregnancyPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.carePlanUsecase.StartPregnancy(r.Context(), motherID, &req)
	if err != nil {
		writeCarePlanError(w, err, "Failed to start pregnancy")
		return
	}

	response.Success(w, http.StatusCreated, "Pregnancy started successfully", result)
}

// UpdatePregnancyRecord handles edits to the active pregnancy record
// @Summary Update pregnancy record
// @Description Update the active record. A changed LRMP or EDD regenerates future ANC appointments.
// @Tags Care Plan
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Mother ID"
// @Param request body dto.PregnancyPlanRequest true "Pregnancy Plan Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /mothers/{id}/pregnancy [put]
func (h *CarePlanHandler) UpdatePregnancyRecord(w http.ResponseWriter, r *http.Request) {
	motherID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid mother ID")
		return
	}

	var req dto.PregnancyPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.carePlanUsecase.UpdatePregnancyRecord(r.Context(), motherID, &req)
	if err != nil {
		writeCarePlanError(w, err, "Failed to update pregnancy record")
		return
	}

	response.Success(w, http.StatusOK, "Pregnancy record updated successfully", result)
}

// ReportDelivery handles a delivery report and generates the PNC schedule
// @Summary Report delivery
// @Tags Care Plan
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Mother ID"
// @Param request body dto.ReportDeliveryRequest true "Report Delivery Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /mothers/{id}/delivery [post]
func (h *CarePlanHandler) ReportDelivery(w http.ResponseWriter, r *http.Request) {
	motherID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid mother ID")
		return
	}

	var req dto.ReportDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.carePlanUsecase.ReportDelivery(r.Context(), motherID, &req)
	if err != nil {
		writeCarePlanError(w, err, "Failed to report delivery")
		return
	}

	response.Success(w, http.StatusOK, "Delivery reported successfully", result)
}

func (h *CarePlanHandler) GetPregnancy(w http.ResponseWriter, r *http.Request) {
	motherID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid mother ID")
		return
	}

	plan, err := h.carePlanUsecase.GetPregnancy(r.Context(), motherID)
	if err != nil {
		writeCarePlanError(w, err, "Failed to get pregnancy")
		return
	}

	response.Success(w, http.StatusOK, "Pregnancy retrieved successfully", plan)
}

func (h *CarePlanHandler) GetMyPregnancy(w http.ResponseWriter, r *http.Request) {
	plan, err := h.carePlanUsecase.GetMyPregnancy(r.Context())
	if err != nil {
		writeCarePlanError(w, err, "Failed to get pregnancy")
		return
	}

	response.Success(w, http.StatusOK, "Pregnancy retrieved successfully", plan)
}

// ListPregnancyRecords returns the active record and the ones it replaced
// @Summary List pregnancy records
// @Tags Care Plan
// @Security BearerAuth
// @Produce json
// @Param id path string true "Mother ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /mothers/{id}/pregnancy-records [get]
func (h *CarePlanHandler) ListPregnancyRecords(w http.ResponseWriter, r *http.Request) {
	motherID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid mother ID")
		return
	}

	records, err := h.carePlanUsecase.ListPregnancyRecords(r.Context(), motherID)
	if err != nil {
		writeCarePlanError(w, err, "Failed to get pregnancy records")
		return
	}

	response.Success(w, http.StatusOK, "Pregnancy records retrieved successfully", records)
}

func (h *CarePlanHandler) ListMyPregnancyRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.carePlanUsecase.ListMyPregnancyRecords(r.Context())
	if err != nil {
		writeCarePlanError(w, err, "Failed to get pregnancy records")
		return
	}

	response.Success(w, http.StatusOK, "Pregnancy records retrieved successfully", records)
}

func writeCarePlanError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrMotherNotFound:
		response.NotFound(w, "Mother not found")
	case usecase.ErrPregnancyRecordNotFound:
		response.NotFound(w, err.Error())
	case usecase.ErrMotherNotOwned:
		response.Forbidden(w, err.Error())
	case usecase.ErrInvalidRiskLevel, usecase.ErrInvalidDeliveryDate, usecase.ErrInvalidDateFormat:
		response.BadRequest(w, err.Error())
	case usecase.ErrUserNotInContext:
		response.Unauthorized(w, "Invalid token")
	default:
		response.InternalServerError(w, fallback)
	}
}
