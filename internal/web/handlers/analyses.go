package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/UsmanZaka51/emotion-api/internal/ai"
	"github.com/UsmanZaka51/emotion-api/internal/config"
	"github.com/UsmanZaka51/emotion-api/internal/constants"
	"github.com/UsmanZaka51/emotion-api/internal/engine"
	"github.com/UsmanZaka51/emotion-api/internal/report"
	"github.com/UsmanZaka51/emotion-api/internal/ui"
)

// AnalysesHandler handles async analysis job endpoints. A job uploads the
// video to the engine in the background while clients follow progress over
// SSE or poll the job status.
type AnalysesHandler struct {
	config     *config.Config
	jobManager *JobManager
}

// NewAnalysesHandler creates a new analyses handler.
func NewAnalysesHandler(cfg *config.Config, jm *JobManager) *AnalysesHandler {
	return &AnalysesHandler{
		config:     cfg,
		jobManager: jm,
	}
}

// Start accepts a video upload and starts an analysis job. The video is
// spooled to a temp file so the background goroutine can stream it to the
// engine after this request's body is gone.
func (h *AnalysesHandler) Start(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(h.config.Web.MaxVideoUploadMB)
	if maxBytes <= 0 {
		maxBytes = constants.DefaultMaxVideoUploadMB
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes<<20)

	if err := r.ParseMultipartForm(constants.UploadMemoryBuffer); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("video exceeds the %dMB upload limit", maxBytes))
			return
		}
		respondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("video_file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "no video file provided")
		return
	}
	defer file.Close()

	tempFile, err := os.CreateTemp("", "emotion-api-video-*")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create temp file")
		return
	}

	size, err := io.Copy(tempFile, file)
	tempFile.Close()
	if err != nil {
		os.Remove(tempFile.Name())
		respondError(w, http.StatusInternalServerError, "failed to save video")
		return
	}

	fileName := filepath.Base(header.Filename)
	jobID := uuid.New().String()
	job := h.jobManager.CreateJob(jobID, fileName)

	// Start job in background
	go h.runAnalysis(job, tempFile.Name(), size)

	respondJSON(w, http.StatusAccepted, map[string]string{
		"job_id":    jobID,
		"file_name": fileName,
		"status":    string(JobStatusPending),
	})
}

// Status returns the status of an analysis job
func (h *AnalysesHandler) Status(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")
	if jobID == "" {
		respondError(w, http.StatusBadRequest, "missing job ID")
		return
	}

	job := h.jobManager.GetJob(jobID)
	if job == nil {
		respondError(w, http.StatusNotFound, "job not found")
		return
	}

	respondJSON(w, http.StatusOK, job)
}

// Events streams job view events via SSE
func (h *AnalysesHandler) Events(w http.ResponseWriter, r *http.Request) {
	streamSSEEvents(w, r,
		func(id string) SSEJob {
			job := h.jobManager.GetJob(id)
			if job == nil {
				return nil
			}
			return job
		},
		func(job SSEJob) any {
			return job
		},
	)
}

// Cancel cancels an analysis job
func (h *AnalysesHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobId")
	if jobID == "" {
		respondError(w, http.StatusBadRequest, "missing job ID")
		return
	}

	job := h.jobManager.GetJob(jobID)
	if job == nil {
		respondError(w, http.StatusNotFound, "job not found")
		return
	}

	job.Cancel()
	respondJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}

// runAnalysis runs the analysis job in the background
func (h *AnalysesHandler) runAnalysis(job *AnalysisJob, tempPath string, size int64) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer os.Remove(tempPath)

	job.mu.Lock()
	job.cancel = cancel
	job.Status = JobStatusRunning
	job.mu.Unlock()
	job.view.Dispatch(ui.ProcessingStarted(job.ID))

	file, err := os.Open(tempPath)
	if err != nil {
		h.failJob(job, "failed to open uploaded video")
		return
	}
	defer file.Close()

	eng, err := engine.New(h.config.Engine.URL, h.config.Engine.GetAPIKey())
	if err != nil {
		h.failJob(job, fmt.Sprintf("failed to create engine client: %v", err))
		return
	}

	lastPercent := -1
	result, err := eng.ProcessVideo(ctx, job.FileName, size, file, func(sent, total int64) {
		if total <= 0 {
			return
		}
		percent := int(float64(sent) / float64(total) * 100)
		if percent == lastPercent {
			return
		}
		lastPercent = percent
		job.mu.Lock()
		job.Progress = percent
		job.mu.Unlock()
		job.view.Dispatch(ui.ProcessingProgress(job.ID, percent))
	})
	if err != nil {
		if ctx.Err() != nil {
			job.mu.Lock()
			job.Status = JobStatusCancelled
			job.mu.Unlock()
			return
		}
		h.failJob(job, engineErrorMessage(err))
		return
	}

	rep := report.Build(result, &h.config.Emotions)
	summary := h.summarize(ctx, rep)

	now := time.Now()
	job.mu.Lock()
	job.Status = JobStatusCompleted
	job.CompletedAt = &now
	job.Progress = 100
	job.Result = rep
	job.Summary = summary
	job.mu.Unlock()

	job.view.Dispatch(ui.ProcessingSucceeded(job.ID, rep.OutputURL, rep))
}

func (h *AnalysesHandler) failJob(job *AnalysisJob, message string) {
	now := time.Now()
	job.mu.Lock()
	job.Status = JobStatusFailed
	job.Error = message
	job.CompletedAt = &now
	job.mu.Unlock()
	job.view.Dispatch(ui.ProcessingFailed(job.ID, message))
}

// summarize produces a short narrative for the report when a summary
// provider is configured. Failures only cost the summary, never the job.
func (h *AnalysesHandler) summarize(ctx context.Context, rep *report.Report) string {
	provider, err := ai.FromConfig(ctx, h.config)
	if err != nil {
		log.Printf("Summary provider unavailable: %v", err)
		return ""
	}
	if provider == nil {
		return ""
	}

	summary, err := provider.Summarize(ctx, report.FormatText(rep))
	if err != nil {
		log.Printf("Summary generation failed: %v", err)
		return ""
	}
	return summary
}
