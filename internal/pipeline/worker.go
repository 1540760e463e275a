package pipeline

import (
	"context"
	"log/slog"
)

// UploadRemover deletes a stored upload once it has been processed.
type UploadRemover interface {
	Remove(path string) error
}

// Worker processes a single mindmap job.
type Worker struct {
	gen     *Generator
	uploads UploadRemover
	log     *slog.Logger
}

func NewWorker(gen *Generator, uploads UploadRemover, log *slog.Logger) *Worker {
	return &Worker{gen: gen, uploads: uploads, log: log}
}

// Abandon fails a job that will never be processed and releases its upload.
func (w *Worker) Abandon(job *Job, reason string) {
	path := job.UploadPath()
	if err := w.uploads.Remove(path); err != nil {
		w.log.Warn("upload cleanup failed", "job_id", job.ID, "path", path, "error", err)
	}
	job.Fail(reason)
	w.log.Info("job abandoned", "job_id", job.ID, "reason", reason)
}

// Process runs the full pipeline for a job and records the outcome on it.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)
	path := job.UploadPath()
	defer func() {
		if err := w.uploads.Remove(path); err != nil {
			log.Warn("upload cleanup failed", "path", path, "error", err)
		}
	}()

	res, err := w.gen.GenerateFile(ctx, path, job.Filename, Hooks{
		OnPhase:     job.SetStatus,
		OnChunks:    job.SetTotalChunks,
		OnChunkDone: func(int) { job.IncrChunksSummarized() },
	})
	if err != nil {
		if IsIntakeError(err) {
			log.Info("document rejected", "error", err)
		} else {
			log.Error("mindmap generation failed", "error", err)
		}
		job.Fail(err.Error())
		return
	}

	job.Complete(res)
	log.Info("mindmap generated",
		"chunks", res.Chunks,
		"topics", res.Stats.Topics,
		"sentences", res.Stats.Sentences,
	)
}
