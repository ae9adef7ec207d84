package stats

import (
	"encoding/json"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/workcal/workcal/internal/rest"
)

type BestDayDTO struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// ProgressDTO is omitted entirely when no goal is set, so clients never
// confuse "no goal" with 0%.
type ProgressDTO struct {
	Percent float64 `json:"percent"`
	Capped  float64 `json:"capped"`
}

type MonthSummaryDTO struct {
	Month            string       `json:"month"`
	TotalHours       float64      `json:"totalHours"`
	AverageHours     float64      `json:"averageHours"`
	ActiveDays       int          `json:"activeDays"`
	BestDay          *BestDayDTO  `json:"bestDay,omitempty"`
	Earnings         float64      `json:"earnings"`
	HoursProgress    *ProgressDTO `json:"hoursProgress,omitempty"`
	EarningsProgress *ProgressDTO `json:"earningsProgress,omitempty"`
}

type YearSummaryDTO struct {
	Year              int          `json:"year"`
	TotalHours        float64      `json:"totalHours"`
	AverageHours      float64      `json:"averageHours"`
	ActiveDays        int          `json:"activeDays"`
	BestDay           *BestDayDTO  `json:"bestDay,omitempty"`
	Earnings          float64      `json:"earnings"`
	RemainingDays     int          `json:"remainingDays"`
	ProjectedEarnings float64      `json:"projectedEarnings"`
	HoursProgress     *ProgressDTO `json:"hoursProgress,omitempty"`
	EarningsProgress  *ProgressDTO `json:"earningsProgress,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetMonthSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	year, errYear := strconv.Atoi(r.URL.Query().Get("year"))
	month, errMonth := strconv.Atoi(r.URL.Query().Get("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "year and month query parameters are required",
		})
		return
	}
	log.Debugf("Computing summary for %d-%02d", year, month)

	summary, err := h.service.MonthSummary(r.Context(), year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(monthSummaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetYearSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := h.service.YearSummary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(yearSummaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func monthSummaryToDTO(summary MonthSummary) MonthSummaryDTO {
	return MonthSummaryDTO{
		Month:            summary.Month,
		TotalHours:       summary.Stats.TotalHours,
		AverageHours:     summary.Stats.AverageHours,
		ActiveDays:       summary.Stats.ActiveDays,
		BestDay:          bestDayToDTO(summary.Stats.BestDay),
		Earnings:         summary.Earnings,
		HoursProgress:    progressToDTO(summary.HoursProgress),
		EarningsProgress: progressToDTO(summary.EarningsProgress),
	}
}

func yearSummaryToDTO(summary YearSummary) YearSummaryDTO {
	return YearSummaryDTO{
		Year:              summary.Year,
		TotalHours:        summary.Stats.TotalHours,
		AverageHours:      summary.Stats.AverageHours,
		ActiveDays:        summary.Stats.ActiveDays,
		BestDay:           bestDayToDTO(summary.Stats.BestDay),
		Earnings:          summary.Earnings,
		RemainingDays:     summary.Projection.RemainingDays,
		ProjectedEarnings: summary.Projection.ProjectedEarnings,
		HoursProgress:     progressToDTO(summary.HoursProgress),
		EarningsProgress:  progressToDTO(summary.EarningsProgress),
	}
}

func bestDayToDTO(bestDay *BestDay) *BestDayDTO {
	if bestDay == nil {
		return nil
	}
	return &BestDayDTO{Date: bestDay.Date, Hours: bestDay.Hours}
}

func progressToDTO(progress Progress) *ProgressDTO {
	if !progress.Active {
		return nil
	}
	return &ProgressDTO{Percent: progress.Percent, Capped: progress.Capped()}
}
