package entry

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/workcal/workcal/internal/rest"
	"github.com/workcal/workcal/pkg/datekey"
)

type DayDTO struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
	Note  string  `json:"note,omitempty"`
}

type SaveDayDTO struct {
	Hours float64 `json:"hours"`
	// Note is optional; when absent the stored note is left untouched.
	Note *string `json:"note,omitempty"`
}

type MonthDTO struct {
	Entries map[string]float64 `json:"entries"`
	Notes   map[string]string  `json:"notes"`
}

type SearchResultDTO struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours,omitempty"`
	Note  string  `json:"note,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// SaveDay upserts the hours for a day and optionally its note. Non-positive
// hours remove the entry, so saving and clearing share one endpoint.
func (h *Handler) SaveDay(w http.ResponseWriter, r *http.Request) {
	log.Debug("Saving day entry")
	w.Header().Set("Content-Type", "application/json")
	date := mux.Vars(r)["date"]

	var dto SaveDayDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Upsert(r.Context(), date, dto.Hours); err != nil {
		writeServiceError(w, err)
		return
	}
	if dto.Note != nil {
		if err := h.service.SetNote(r.Context(), date, *dto.Note); err != nil {
			writeServiceError(w, err)
			return
		}
	}

	note, err := h.service.GetNote(r.Context(), date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	stored := DayDTO{Date: date, Note: note}
	entries, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	stored.Hours = entries[date]

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stored); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) DeleteDay(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting day entry")
	date := mux.Vars(r)["date"]

	if err := h.service.Remove(r.Context(), date); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetEntries returns entries and notes, restricted to one month when the
// year and month query parameters are present.
func (h *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing entries")
	w.Header().Set("Content-Type", "application/json")

	var (
		entries map[string]float64
		notes   map[string]string
		err     error
	)

	yearParam := r.URL.Query().Get("year")
	monthParam := r.URL.Query().Get("month")
	if yearParam != "" || monthParam != "" {
		year, yearErr := strconv.Atoi(yearParam)
		month, monthErr := strconv.Atoi(monthParam)
		if yearErr != nil || monthErr != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid month selection",
				Details: "year and month must both be integers",
			})
			return
		}
		entries, err = h.service.GetForMonth(r.Context(), year, month)
		if err == nil {
			notes, err = h.service.GetNotesForMonth(r.Context(), year, month)
		}
	} else {
		entries, err = h.service.GetAll(r.Context())
		if err == nil {
			notes, err = h.service.GetAllNotes(r.Context())
		}
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(MonthDTO{Entries: entries, Notes: notes}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	log.Debug("Searching entries and notes")
	w.Header().Set("Content-Type", "application/json")

	results, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]SearchResultDTO, 0, len(results))
	for _, result := range results {
		dtos = append(dtos, SearchResultDTO(result))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, datekey.ErrInvalidFormat) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid date",
			Details: "date must be formatted as YYYY-MM-DD",
		})
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
