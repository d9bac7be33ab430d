package passwordreset

import (
	"encoding/json"
	"net/http"

	"github.com/jpdeguzman/alkansave/internal/apperror"
	"github.com/jpdeguzman/alkansave/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RequestReset(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RequestResetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Fail(w, apperror.Validation("Invalid request body"))
		return
	}

	if err := h.service.RequestReset(dto.Email); err != nil {
		log.WithError(err).Error("Failed to create reset request")
		config.Fail(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "If the email is registered, a verification code has been sent",
	})
}

func (h *Handler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto VerifyCodeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Fail(w, apperror.Validation("Invalid request body"))
		return
	}

	if err := h.service.VerifyCode(dto.Email, dto.Code); err != nil {
		log.WithError(err).Warn("Code verification failed")
		config.Fail(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Verification code accepted",
	})
}

func (h *Handler) ConfirmReset(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto ConfirmResetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Fail(w, apperror.Validation("Invalid request body"))
		return
	}

	if err := h.service.ConfirmReset(dto.Email, dto.Code, dto.NewPassword); err != nil {
		log.WithError(err).Warn("Password reset failed")
		config.Fail(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Password has been reset",
	})
}
