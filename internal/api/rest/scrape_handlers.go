package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fortuna/athena/internal/scrapejob"
)

type apiScrapeRequest struct {
	Operation   string   `json:"operation"`
	LeagueCode  string   `json:"league_code"`
	LeagueCodes []string `json:"league_codes"`
	Date        string   `json:"date"`
}

// HandleScrapeRequest handles POST /api/v1/scrape
func (h *Handler) HandleScrapeRequest(w http.ResponseWriter, r *http.Request) {
	if h.jobs == nil {
		respondError(w, http.StatusServiceUnavailable, "Scrape jobs are not enabled", nil)
		return
	}

	var req apiScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	scrapeReq := scrapejob.Request{
		Operation: req.Operation,
	}

	if len(req.LeagueCodes) > 0 {
		scrapeReq.LeagueCodes = append(scrapeReq.LeagueCodes, req.LeagueCodes...)
	}
	if req.LeagueCode != "" {
		scrapeReq.LeagueCodes = append(scrapeReq.LeagueCodes, req.LeagueCode)
	}

	if req.Date != "" {
		date, err := time.ParseInLocation("2006-01-02", req.Date, h.loc)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date format (YYYY-MM-DD)", err)
			return
		}
		scrapeReq.Date = &date
	}

	job, err := h.jobs.Enqueue(r.Context(), scrapeReq)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scrapejob.ErrInvalidRequest) {
			status = http.StatusBadRequest
		}
		respondError(w, status, "Failed to enqueue scrape job", err)
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"job": jobPayload(job),
	})
}

// HandleScrapeStatus handles GET /api/v1/scrape/status
func (h *Handler) HandleScrapeStatus(w http.ResponseWriter, r *http.Request) {
	if h.jobs == nil {
		respondError(w, http.StatusServiceUnavailable, "Scrape jobs are not enabled", nil)
		return
	}

	summary, err := h.jobs.GetStatus(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch status", err)
		return
	}

	respondJSON(w, http.StatusOK, buildStatusPayload(summary))
}

func buildStatusPayload(summary *scrapejob.StatusSummary) map[string]interface{} {
	response := map[string]interface{}{
		"status":  "idle",
		"message": "No active jobs",
		"history": []map[string]interface{}{},
	}

	if summary.ActiveJob != nil {
		response["status"] = summary.ActiveJob.Status
		if summary.ActiveJob.StatusMessage.Valid {
			response["message"] = summary.ActiveJob.StatusMessage.String
		}
		response["active_job"] = jobPayload(summary.ActiveJob)
	}

	history := make([]map[string]interface{}, 0, len(summary.History))
	for _, job := range summary.History {
		history = append(history, jobPayload(job))
	}

	response["history"] = history
	return response
}

func jobPayload(job *scrapejob.Job) map[string]interface{} {
	if job == nil {
		return nil
	}

	payload := map[string]interface{}{
		"job_id":           job.JobID,
		"operation":        job.JobType,
		"status":           job.Status,
		"progress_current": job.ProgressCurrent,
		"progress_total":   job.ProgressTotal,
		"created_at":       job.CreatedAt,
		"updated_at":       job.UpdatedAt,
	}

	if job.StatusMessage.Valid {
		payload["status_message"] = job.StatusMessage.String
	}
	if len(job.LeagueCodes) > 0 {
		payload["league_codes"] = []string(job.LeagueCodes)
	}
	if job.RunDate.Valid {
		payload["date"] = job.RunDate.Time.Format("2006-01-02")
	}
	if job.StartedAt.Valid {
		payload["started_at"] = job.StartedAt.Time
	}
	if job.CompletedAt.Valid {
		payload["completed_at"] = job.CompletedAt.Time
	}
	if job.LastError.Valid {
		payload["last_error"] = job.LastError.String
	}

	return payload
}
