package editor

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-press/internal/shared/server/respond"
	"resume-press/internal/shared/util"
)

// Handler exposes the editing page, the generate action and the JSON API.
type Handler struct {
	svc *Service
}

// NewHandler creates a Handler backed by the given service.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Page serves the editing form with the stored resume document.
func (h *Handler) Page(c *gin.Context) {
	data := pageData{HasPDF: h.svc.PDFExists(c.Request.Context())}

	raw, err := h.svc.CurrentJSON(c.Request.Context())
	switch {
	case errors.Is(err, ErrResumeMissing):
		data.Blocked = true
		data.Error = "No resume data found."
	case err != nil:
		data.Blocked = true
		data.Error = "The resume data could not be read."
	default:
		data.JSON = raw
	}

	h.renderPage(c, http.StatusOK, data)
}

// Generate accepts the edited document from the form, validates and stores
// it, then regenerates the PDF.
func (h *Handler) Generate(c *gin.Context) {
	raw := c.PostForm("resume")
	if strings.TrimSpace(raw) == "" {
		h.renderPage(c, http.StatusUnprocessableEntity, pageData{
			JSON:   raw,
			HasPDF: h.svc.PDFExists(c.Request.Context()),
			Error:  "The resume document is empty.",
		})
		return
	}

	if err := h.svc.SaveJSON(c.Request.Context(), raw); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			h.renderPage(c, http.StatusUnprocessableEntity, pageData{
				JSON:   raw,
				HasPDF: h.svc.PDFExists(c.Request.Context()),
				Error:  "Invalid resume document: " + strings.Join(verr.Problems, "; "),
			})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to save resume", nil)
		return
	}

	result, err := h.svc.Generate(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to generate pdf", nil)
		return
	}
	c.Set("renderId", result.RenderID)

	stored, err := h.svc.CurrentJSON(c.Request.Context())
	if err != nil {
		stored = raw
	}
	h.renderPage(c, http.StatusOK, pageData{
		JSON:   stored,
		HasPDF: true,
		Notice: fmt.Sprintf("Generated %d page(s).", result.Pages),
	})
}

// Download streams the generated PDF as an attachment.
func (h *Handler) Download(c *gin.Context) {
	rc, err := h.svc.OpenPDF(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrResumeMissing) {
			respond.Error(c, http.StatusNotFound, "not_found", "no generated pdf available", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to open pdf", nil)
		return
	}
	defer rc.Close()

	name, err := util.SanitizeFileName(h.svc.DocumentName(c.Request.Context()) + "_Resume.pdf")
	if err != nil || name == "" {
		name = "Resume.pdf"
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		// Headers are already gone out; nothing useful to send back.
		c.Abort()
	}
}

// GetResume returns the stored resume document as JSON.
func (h *Handler) GetResume(c *gin.Context) {
	raw, err := h.svc.CurrentJSON(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrResumeMissing) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume document not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to read resume", nil)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(raw))
}

// PutResume replaces the stored resume document.
func (h *Handler) PutResume(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "failed to read request body", nil)
		return
	}

	if err := h.svc.SaveJSON(c.Request.Context(), string(body)); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusUnprocessableEntity, "invalid_resume", "resume document failed validation", verr.Problems)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to save resume", nil)
		return
	}
	respond.OK(c, gin.H{"status": "saved"})
}

// Render regenerates the PDF from the stored document.
func (h *Handler) Render(c *gin.Context) {
	result, err := h.svc.Generate(c.Request.Context())
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.Is(err, ErrResumeMissing):
			respond.Error(c, http.StatusNotFound, "not_found", "resume document not found", nil)
		case errors.As(err, &verr):
			respond.Error(c, http.StatusUnprocessableEntity, "invalid_resume", "resume document failed validation", verr.Problems)
		default:
			respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to generate pdf", nil)
		}
		return
	}
	c.Set("renderId", result.RenderID)
	respond.OK(c, result)
}

func (h *Handler) renderPage(c *gin.Context, status int, data pageData) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := pageTemplate.Execute(c.Writer, data); err != nil {
		c.Abort()
	}
}
