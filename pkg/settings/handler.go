package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/workcal/workcal/internal/rest"
)

type RateDTO struct {
	HourlyRate float64 `json:"hourlyRate"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	log.Debug("Reading hourly rate")
	w.Header().Set("Content-Type", "application/json")

	rate, err := h.service.GetHourlyRate(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(RateDTO{HourlyRate: rate}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) SetRate(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating hourly rate")
	w.Header().Set("Content-Type", "application/json")

	var dto RateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.SetHourlyRate(r.Context(), dto.HourlyRate); err != nil {
		if errors.Is(err, ErrNegativeRate) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Invalid hourly rate",
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
