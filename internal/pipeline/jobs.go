package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/docmap/internal/mindmap"
)

// JobStatus represents the state of a mindmap job.
type JobStatus string

const (
	StatusQueued      JobStatus = "queued"
	StatusParsing     JobStatus = "parsing"
	StatusSummarizing JobStatus = "summarizing"
	StatusBuilding    JobStatus = "building"
	StatusCompleted   JobStatus = "completed"
	StatusFailed      JobStatus = "failed"
)

// Done reports whether the status is terminal.
func (s JobStatus) Done() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Job tracks one asynchronous mindmap generation.
type Job struct {
	mu sync.Mutex

	ID       string
	DocID    string
	Filename string

	Status   JobStatus
	Progress Progress

	CreatedAt time.Time
	UpdatedAt time.Time

	uploadPath string
	result     *Result
	errMsg     string
}

// Progress tracks summarization progress.
type Progress struct {
	TotalChunks      int `json:"total_chunks"`
	ChunksSummarized int `json:"chunks_summarized"`
}

// NewJob creates a queued job for an upload stored at uploadPath.
func NewJob(id, docID, filename, uploadPath string) *Job {
	now := time.Now()
	return &Job{
		ID:         id,
		DocID:      docID,
		Filename:   filename,
		Status:     StatusQueued,
		CreatedAt:  now,
		UpdatedAt:  now,
		uploadPath: uploadPath,
	}
}

// UploadPath returns where the job's document is stored.
func (j *Job) UploadPath() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.uploadPath
}

// SetStatus updates job status.
func (j *Job) SetStatus(status JobStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.UpdatedAt = time.Now()
}

// SetTotalChunks records the chunk count.
func (j *Job) SetTotalChunks(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.TotalChunks = n
	j.UpdatedAt = time.Now()
}

// IncrChunksSummarized counts one summarized chunk.
func (j *Job) IncrChunksSummarized() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.ChunksSummarized++
	j.UpdatedAt = time.Now()
}

// Complete stores the result and marks the job completed.
func (j *Job) Complete(res *Result) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = res
	j.Status = StatusCompleted
	j.UpdatedAt = time.Now()
}

// Fail records the error and marks the job failed.
func (j *Job) Fail(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errMsg = msg
	j.Status = StatusFailed
	j.UpdatedAt = time.Now()
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string         `json:"job_id"`
	DocID    string         `json:"doc_id"`
	Filename string         `json:"filename"`
	Status   JobStatus      `json:"status"`
	Progress Progress       `json:"progress"`
	Error    string         `json:"error,omitempty"`
	Summary  string         `json:"summary,omitempty"`
	Stats    *mindmap.Stats `json:"stats,omitempty"`
	Mindmap  *mindmap.Node  `json:"mindmap,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	snap := JobSnapshot{
		ID:        j.ID,
		DocID:     j.DocID,
		Filename:  j.Filename,
		Status:    j.Status,
		Progress:  j.Progress,
		Error:     j.errMsg,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
	if j.result != nil {
		stats := j.result.Stats
		snap.Summary = j.result.Summary
		snap.Stats = &stats
		snap.Mindmap = j.result.Mindmap
	}
	return snap
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

func (s *JobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Cleanup removes finished jobs idle for longer than the TTL.
func (s *JobStore) Cleanup(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, job := range s.jobs {
		job.mu.Lock()
		expired := job.Status.Done() && now.Sub(job.UpdatedAt) > s.ttl
		job.mu.Unlock()
		if expired {
			delete(s.jobs, id)
			removed++
		}
	}
	return removed
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
