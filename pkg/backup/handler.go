package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/workcal/workcal/internal/rest"
)

type ImportResultDTO struct {
	Entries      int  `json:"entries"`
	Notes        int  `json:"notes"`
	MonthlyGoals int  `json:"monthlyGoals"`
	RateApplied  bool `json:"rateApplied"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Download serves the backup as JSON, or as CSV when the client asks for
// text/csv via the Accept header.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	var (
		data     []byte
		fileName string
		err      error
	)
	if strings.Contains(r.Header.Get("Accept"), "text/csv") {
		data, fileName, err = h.service.ExportCSV(r.Context())
		w.Header().Set("Content-Type", "text/csv")
	} else {
		data, fileName, err = h.service.ExportJSON(r.Context())
		w.Header().Set("Content-Type", "application/json")
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Debugf("Serving backup download %s", fileName)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Import(r.Context(), raw)
	if err != nil {
		if errors.Is(err, ErrInvalidJSON) || errors.Is(err, ErrMissingEntries) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid backup file",
				Details: err.Error(),
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	dto := ImportResultDTO{
		Entries:      result.Entries,
		Notes:        result.Notes,
		MonthlyGoals: result.MonthlyGoals,
		RateApplied:  result.RateApplied,
	}
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
