package handler

import (
	"net/http"

	"maternal-care-backend/internal/usecase"
	"maternal-care-backend/pkg/response"
)

type MOHHandler struct {
	mohUsecase usecase.MOHUsecase
}

func NewMOHHandler(mohUsecase usecase.MOHUsecase) *MOHHandler {
	return &MOHHandler{
		mohUsecase: mohUsecase,
	}
}

func (h *MOHHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	officer, err := h.mohUsecase.GetCurrentMOH(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrUserNotInContext:
			response.Unauthorized(w, "Invalid token")
		case usecase.ErrMOHNotFound:
			response.NotFound(w, "MOH officer not found")
		default:
			response.InternalServerError(w, "Failed to get MOH officer")
		}
		return
	}

	response.Success(w, http.StatusOK, "MOH officer retrieved successfully", officer)
}
