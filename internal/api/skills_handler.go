package api

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"interview-coach/internal/resume"
)

type extractSkillsResponse struct {
	Filename string   `json:"filename"`
	Skills   []string `json:"skills"`
}

// ExtractSkillsHandler handles resume uploads and returns extracted skills
// @Summary Extract skills from a resume
// @Description Upload a resume (PDF or DOCX) and extract candidate skills
// @Tags skills
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file (PDF or DOCX)"
// @Success 200 {object} extractSkillsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /extract_skills [post]
func (a *API) ExtractSkillsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Max 10MB upload.
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid (max 10MB)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	parsed, err := a.parser.Parse(header.Filename, file)
	if errors.Is(err, resume.ErrUnsupportedFormat) {
		// Soft error payload, not an HTTP error status. The front end
		// switches on the "error" field.
		writeJSON(w, http.StatusOK, map[string]string{"error": "Unsupported file format"})
		return
	}
	if err != nil {
		a.logger.Error("resume parsing failed",
			zap.String("filename", header.Filename),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to parse resume: %v", err))
		return
	}

	a.logger.Info("resume parsed",
		zap.String("filename", parsed.Filename),
		zap.Int64("file_size", parsed.FileSize),
		zap.Int("text_length", len(parsed.Text)))

	found := a.extractor.Extract(r.Context(), parsed.Text)

	writeJSON(w, http.StatusOK, extractSkillsResponse{
		Filename: parsed.Filename,
		Skills:   found,
	})
}
