package goal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/workcal/workcal/internal/rest"
	"github.com/workcal/workcal/pkg/datekey"
)

// GoalDTO carries targets as strings because goal editors submit free text;
// the service parses them with a 0 fallback.
type GoalDTO struct {
	TargetHours    string `json:"targetHours"`
	TargetEarnings string `json:"targetEarnings"`
}

type StoredGoalDTO struct {
	TargetHours    float64 `json:"targetHours"`
	TargetEarnings float64 `json:"targetEarnings"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) SetMonthlyGoal(w http.ResponseWriter, r *http.Request) {
	log.Debug("Setting monthly goal")
	w.Header().Set("Content-Type", "application/json")
	month := mux.Vars(r)["month"]

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := h.service.SetMonthlyGoal(r.Context(), month, dto.TargetHours, dto.TargetEarnings)
	if err != nil {
		writeGoalError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toStoredDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetMonthlyGoal(w http.ResponseWriter, r *http.Request) {
	log.Debug("Reading monthly goal")
	w.Header().Set("Content-Type", "application/json")
	month := mux.Vars(r)["month"]

	goal, err := h.service.GetMonthlyGoal(r.Context(), month)
	if err != nil {
		writeGoalError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toStoredDTO(goal)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) SetYearlyGoal(w http.ResponseWriter, r *http.Request) {
	log.Debug("Setting yearly goal")
	w.Header().Set("Content-Type", "application/json")

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := h.service.SetYearlyGoal(r.Context(), dto.TargetHours, dto.TargetEarnings)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toStoredDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetYearlyGoal(w http.ResponseWriter, r *http.Request) {
	log.Debug("Reading yearly goal")
	w.Header().Set("Content-Type", "application/json")

	goal, err := h.service.GetYearlyGoal(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toStoredDTO(goal)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toStoredDTO(goal Goal) StoredGoalDTO {
	return StoredGoalDTO{
		TargetHours:    goal.TargetHours,
		TargetEarnings: goal.TargetEarnings,
	}
}

func writeGoalError(w http.ResponseWriter, err error) {
	if errors.Is(err, datekey.ErrInvalidFormat) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid month key",
			Details: "month must be a YYYY-MM-DD date key within the month",
		})
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
