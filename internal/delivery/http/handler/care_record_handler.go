package handler

import (
	"encoding/json"
	"net/http"

	"maternal-care-backend/internal/delivery/dto"
	"maternal-care-backend/internal/usecase"
	"maternal-care-backend/pkg/response"
	"maternal-care-backend/pkg/validator"
)

type CareRecordHandler struct {
	careRecordUsecase usecase.CareRecordUsecase
	validator         *validator.CustomValidator
}

func NewCareRecordHandler(careRecordUsecase usecase.CareRecordUsecase, validator *validator.CustomValidator) *CareRecordHandler {
	return &CareRecordHandler{
		careRecordUsecase: careRecordUsecase,
		validator:         validator,
	}
}

// CreateDeliveryRecord handles a delivery and discharge record
// @Summary Create delivery record
// @Tags Care Records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Mother ID"
// @Param request body dto.DeliveryRecordRequest true "Delivery Record Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /mothers/{id}/delivery-records [post]
func (h *CareRecordHandler) CreateDeliveryRecord(w http.ResponseWriter, r *http.Request) {
	motherID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid mother ID")
		return
	}

	var req dto.DeliveryRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.careRecordUsecase.CreateDeliveryRecord(r.Context(), motherID, &req)
	if err != nil {
		writeCareRecordError(w, err, "Failed to create delivery record")
		return
	}

	response.Success(w, http.StatusCreated, "Delivery record created successfully", record)
}

func (h *CareRecordHandler) GetMotherDeliveryRecords(w http.ResponseWriter, r *http.Request) {
	motherID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid mother ID")
		return
	}

	records, err := h.careRecordUsecase.GetMotherDeliveryRecords(r.Context(), motherID)
	if err != nil {
		writeCareRecordError(w, err, "Failed to get delivery records")
		return
	}

	response.Success(w, http.StatusOK, "Delivery records retrieved successfully", records)
}

func (h *CareRecordHandler) GetMyDeliveryRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.careRecordUsecase.GetMyDeliveryRecords(r.Context())
	if err != nil {
		writeCareRecordError(w, err, "Failed to get delivery records")
		return
	}

	response.Success(w, http.StatusOK, "Delivery records retrieved successfully", records)
}

// CreateAntenatalPlan handles the birth-preparedness plan of a mother
// @Summary Create antenatal plan
// @Tags Care Records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Mother ID"
// @Param request body dto.AntenatalPlanRequest true "Antenatal Plan Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /mothers/{id}/antenatal-plans [post]
func (h *CareRecordHandler) CreateAntenatalPlan(w http.ResponseWriter, r *http.Request) {
	motherID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid mother ID")
		return
	}

	var req dto.AntenatalPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.careRecordUsecase.CreateAntenatalPlan(r.Context(), motherID, &req)
	if err != nil {
		writeCareRecordError(w, err, "Failed to create antenatal plan")
		return
	}

	response.Success(w, http.StatusCreated, "Antenatal plan created successfully", plan)
}

func (h *CareRecordHandler) GetMotherAntenatalPlans(w http.ResponseWriter, r *http.Request) {
	motherID, err := uuidParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid mother ID")
		return
	}

	plans, err := h.careRecordUsecase.GetMotherAntenatalPlans(r.Context(), motherID)
	if err != nil {
		writeCareRecordError(w, err, "Failed to get antenatal plans")
		return
	}

	response.Success(w, http.StatusOK, "Antenatal plans retrieved successfully", plans)
}

func (h *CareRecordHandler) GetMyAntenatalPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.careRecordUsecase.GetMyAntenatalPlans(r.Context())
	if err != nil {
		writeCareRecordError(w, err, "Failed to get antenatal plans")
		return
	}

	response.Success(w, http.StatusOK, "Antenatal plans retrieved successfully", plans)
}

func writeCareRecordError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrMotherNotFound:
		response.NotFound(w, "Mother not found")
	case usecase.ErrMotherNotOwned:
		response.Forbidden(w, err.Error())
	case usecase.ErrInvalidDateFormat:
		response.BadRequest(w, err.Error())
	case usecase.ErrUserNotInContext:
		response.Unauthorized(w, "Invalid token")
	default:
		response.InternalServerError(w, fallback)
	}
}
