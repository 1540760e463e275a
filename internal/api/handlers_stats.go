package api

import (
	"net/http"
)

func (s *Server) handleSummarizerStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		jsonError(w, "summarizer stats unavailable", http.StatusServiceUnavailable)
		return
	}

	body := map[string]any{
		"backend": s.backend,
		"stats":   s.stats.Snapshot(),
	}
	if s.orchestrator != nil {
		body["queue_depth"] = s.orchestrator.QueueDepth()
	}
	writeJSON(w, http.StatusOK, body)
}
