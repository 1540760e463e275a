package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dgallion1/docmap/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleSubmitJob(w http.ResponseWriter, r *http.Request) {
	up, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	defer r.MultipartForm.RemoveAll()

	path, err := s.uploads.Save(up.filename, up.data)
	if err != nil {
		s.log.Error("store upload", "error", err)
		jsonError(w, "failed to store upload", http.StatusInternalServerError)
		return
	}

	job := pipeline.NewJob(uuid.NewString(), pipeline.ContentHashHex(up.data)[:16], up.filename, path)
	if err := s.orchestrator.Submit(job); err != nil {
		if rmErr := s.uploads.Remove(path); rmErr != nil {
			s.log.Warn("upload cleanup failed", "path", path, "error", rmErr)
		}
		if errors.Is(err, pipeline.ErrQueueFull) || errors.Is(err, pipeline.ErrStopped) {
			jsonError(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.log.Info("job queued", "job_id", job.ID, "doc_id", job.DocID, "filename", up.filename)
	writeJSON(w, http.StatusAccepted, map[string]any{
		"job_id":   job.ID,
		"doc_id":   job.DocID,
		"status":   pipeline.StatusQueued,
		"poll_url": fmt.Sprintf("/api/mindmaps/%s", job.ID),
	})
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, job.Snapshot())
}
