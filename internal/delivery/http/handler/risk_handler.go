package handler

import (
	"net/http"

	"maternal-care-backend/internal/usecase"
	"maternal-care-backend/pkg/response"

	"github.com/gorilla/mux"
)

type RiskHandler struct {
	riskUsecase usecase.RiskUsecase
}

func NewRiskHandler(riskUsecase usecase.RiskUsecase) *RiskHandler {
	return &RiskHandler{
		riskUsecase: riskUsecase,
	}
}

// GetRiskStats handles the risk counters of the midwife caseload
// @Summary Get risk stats
// @Tags Risk
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /mothers/risks/stats [get]
func (h *RiskHandler) GetRiskStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.riskUsecase.GetRiskStats(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrUserNotInContext:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to get risk stats")
		}
		return
	}

	response.Success(w, http.StatusOK, "Risk stats retrieved successfully", stats)
}

// GetMothersByRisk handles listing mothers by risk category
// @Summary List mothers by risk
// @Tags Risk
// @Security BearerAuth
// @Produce json
// @Param type path string true "high_risk or a risk factor key"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /mothers/risks/{type} [get]
func (h *RiskHandler) GetMothersByRisk(w http.ResponseWriter, r *http.Request) {
	riskType := mux.Vars(r)["type"]

	mothers, err := h.riskUsecase.GetMothersByRisk(r.Context(), riskType)
	if err != nil {
		switch err {
		case usecase.ErrUnknownRiskType:
			response.BadRequest(w, "Unknown risk type")
		case usecase.ErrUserNotInContext:
			response.Unauthorized(w, "Invalid token")
		default:
			response.InternalServerError(w, "Failed to get mothers")
		}
		return
	}

	response.Success(w, http.StatusOK, "Mothers retrieved successfully", mothers)
}
