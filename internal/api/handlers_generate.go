package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dgallion1/docmap/internal/parser"
	"github.com/dgallion1/docmap/internal/pipeline"
)

// Form overhead allowed on top of the file size limit.
const multipartOverhead = 1 << 20

// upload is a validated document taken from a multipart request.
type upload struct {
	filename string
	data     []byte
}

// readUpload pulls the "document" file out of the request, writing the
// error response itself when the request is unusable.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*upload, bool) {
	if s.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+multipartOverhead)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, "File exceeds the maximum upload size", http.StatusRequestEntityTooLarge)
			return nil, false
		}
		jsonError(w, "No document part in the request", http.StatusBadRequest)
		return nil, false
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		// A file input submitted with nothing chosen arrives as a plain value.
		if _, ok := r.MultipartForm.Value["document"]; ok {
			jsonError(w, "No selected file", http.StatusBadRequest)
			return nil, false
		}
		jsonError(w, "No document part in the request", http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	if header.Filename == "" {
		jsonError(w, "No selected file", http.StatusBadRequest)
		return nil, false
	}
	if !parser.IsAllowed(header.Filename) {
		jsonError(w, "File type not allowed or no file selected", http.StatusBadRequest)
		return nil, false
	}

	var src io.Reader = file
	if s.cfg.MaxUploadBytes > 0 {
		src = io.LimitReader(file, s.cfg.MaxUploadBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return nil, false
	}
	if s.cfg.MaxUploadBytes > 0 && int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, "File exceeds the maximum upload size", http.StatusRequestEntityTooLarge)
		return nil, false
	}
	return &upload{filename: header.Filename, data: data}, true
}

func (s *Server) handleUploadAndGenerate(w http.ResponseWriter, r *http.Request) {
	up, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	defer r.MultipartForm.RemoveAll()

	path, err := s.uploads.Save(up.filename, up.data)
	if err != nil {
		s.log.Error("store upload", "error", err)
		jsonError(w, "An error occurred during processing: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := s.uploads.Remove(path); err != nil {
			s.log.Warn("upload cleanup failed", "path", path, "error", err)
		}
	}()

	res, err := s.generator.GenerateFile(r.Context(), path, up.filename, pipeline.Hooks{})
	if err != nil {
		if pipeline.IsIntakeError(err) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.log.Error("mindmap generation failed", "filename", up.filename, "error", err)
		jsonError(w, "An error occurred during processing: "+err.Error(), http.StatusInternalServerError)
		return
	}

	s.log.Info("mindmap generated",
		"filename", up.filename,
		"chunks", res.Chunks,
		"topics", res.Stats.Topics,
		"sentences", res.Stats.Sentences,
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Mindmap generated successfully",
		"mindmap": res.Mindmap,
	})
}

type outlineRequest struct {
	Summary string `json:"summary"`
}

// handleOutline builds a mindmap from summary text the client already has.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	if s.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	}
	var req outlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}

	res := s.generator.Outline(req.Summary)
	writeJSON(w, http.StatusOK, map[string]any{
		"mindmap": res.Mindmap,
		"stats":   res.Stats,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
