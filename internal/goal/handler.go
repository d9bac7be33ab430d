package goal

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jpdeguzman/alkansave/internal/apperror"
	"github.com/jpdeguzman/alkansave/internal/auth"
	"github.com/jpdeguzman/alkansave/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Fail(w, apperror.Unauthorized("Unauthorized access"))
		return
	}

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Fail(w, apperror.Validation("Invalid request body"))
		return
	}

	response, err := h.service.Create(userID, dto)
	if err != nil {
		log.WithError(err).Error("Failed to create goal")
		config.Fail(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Fail(w, apperror.Unauthorized("Unauthorized access"))
		return
	}

	responses, err := h.service.List(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list goals")
		config.Fail(w, err)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Fail(w, apperror.Unauthorized("Unauthorized access"))
		return
	}

	id, err := goalID(r)
	if err != nil {
		config.Fail(w, err)
		return
	}

	var dto UpdateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Fail(w, apperror.Validation("Invalid request body"))
		return
	}

	response, err := h.service.Update(id, userID, dto)
	if err != nil {
		log.WithError(err).Error("Failed to update goal")
		config.Fail(w, err)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Fail(w, apperror.Unauthorized("Unauthorized access"))
		return
	}

	id, err := goalID(r)
	if err != nil {
		config.Fail(w, err)
		return
	}

	if err := h.service.Delete(id, userID); err != nil {
		log.WithError(err).Error("Failed to delete goal")
		config.Fail(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Fail(w, apperror.Unauthorized("Unauthorized access"))
		return
	}

	id, err := goalID(r)
	if err != nil {
		config.Fail(w, err)
		return
	}

	var dto DepositDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.Fail(w, apperror.Validation("Invalid request body"))
		return
	}

	response, err := h.service.Deposit(id, userID, dto)
	if err != nil {
		log.WithError(err).Error("Failed to record deposit")
		config.Fail(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		config.Fail(w, apperror.Unauthorized("Unauthorized access"))
		return
	}

	id, err := goalID(r)
	if err != nil {
		config.Fail(w, err)
		return
	}

	txns, err := h.service.ListDeposits(id, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list deposits")
		config.Fail(w, err)
		return
	}

	config.JSON(w, http.StatusOK, txns)
}

func goalID(r *http.Request) (uint, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return 0, apperror.Validation("id required")
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, apperror.Validation("invalid id")
	}
	return uint(id), nil
}
