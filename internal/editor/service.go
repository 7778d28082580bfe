package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"resume-press/internal/shared/metrics"
	"resume-press/internal/shared/storage/object"
	"resume-press/resume/model"
	"resume-press/resume/render"
)

// ErrResumeMissing indicates no resume document has been stored yet.
var ErrResumeMissing = errors.New("resume document not found")

// ValidationError carries the reasons a submitted resume was rejected.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid resume: " + strings.Join(e.Problems, "; ")
}

// RenderResult summarizes a completed PDF generation.
type RenderResult struct {
	RenderID  string `json:"render_id"`
	Pages     int    `json:"pages"`
	SizeBytes int64  `json:"size_bytes"`
}

// Service owns the stored resume document and its rendered PDF.
type Service struct {
	Store     object.ObjectStore
	ResumeKey string
	OutputKey string
}

// CurrentJSON returns the stored resume document verbatim.
func (s *Service) CurrentJSON(ctx context.Context) (string, error) {
	rc, err := s.Store.Open(ctx, s.ResumeKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrResumeMissing
		}
		return "", fmt.Errorf("open resume: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read resume: %w", err)
	}
	return string(data), nil
}

// SaveJSON validates the submitted document and persists it pretty-printed.
// The stored file is not touched when validation fails.
func (s *Service) SaveJSON(ctx context.Context, raw string) error {
	if err := validate(raw); err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(raw), "", "  "); err != nil {
		return &ValidationError{Problems: []string{err.Error()}}
	}
	pretty.WriteByte('\n')

	if _, err := s.Store.Save(ctx, s.ResumeKey, "application/json", &pretty); err != nil {
		return fmt.Errorf("save resume: %w", err)
	}
	return nil
}

// Generate renders the stored resume into a PDF and persists it, replacing
// any previous output.
func (s *Service) Generate(ctx context.Context) (RenderResult, error) {
	raw, err := s.CurrentJSON(ctx)
	if err != nil {
		return RenderResult{}, err
	}

	doc, err := model.Parse([]byte(raw))
	if err != nil {
		return RenderResult{}, &ValidationError{Problems: []string{err.Error()}}
	}
	doc.ApplyDefaults()

	metrics.IncRenderStarted()
	start := metrics.NowMillis()

	pdf, pages, err := render.Render(doc)
	if err != nil {
		metrics.IncRenderFailed()
		return RenderResult{}, fmt.Errorf("render pdf: %w", err)
	}

	written, err := s.Store.Save(ctx, s.OutputKey, "application/pdf", bytes.NewReader(pdf))
	if err != nil {
		metrics.IncRenderFailed()
		return RenderResult{}, fmt.Errorf("save pdf: %w", err)
	}

	metrics.IncRenderCompleted()
	metrics.ObserveRenderDurationMs(metrics.NowMillis() - start)

	return RenderResult{
		RenderID:  uuid.NewString(),
		Pages:     pages,
		SizeBytes: written,
	}, nil
}

// OpenPDF opens the most recently generated PDF for reading.
func (s *Service) OpenPDF(ctx context.Context) (io.ReadCloser, error) {
	rc, err := s.Store.Open(ctx, s.OutputKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrResumeMissing
		}
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return rc, nil
}

// PDFExists reports whether a generated PDF is available for download.
func (s *Service) PDFExists(ctx context.Context) bool {
	ok, err := s.Store.Exists(ctx, s.OutputKey)
	return err == nil && ok
}

// DocumentName returns the display name of the stored resume, falling back
// to the default when the document is missing or unreadable.
func (s *Service) DocumentName(ctx context.Context) string {
	raw, err := s.CurrentJSON(ctx)
	if err != nil {
		return model.DefaultName
	}
	doc, err := model.Parse([]byte(raw))
	if err != nil {
		return model.DefaultName
	}
	doc.ApplyDefaults()
	return doc.Name
}

func validate(raw string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(resumeSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return &ValidationError{Problems: []string{err.Error()}}
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return &ValidationError{Problems: problems}
	}
	if _, err := model.Parse([]byte(raw)); err != nil {
		return &ValidationError{Problems: []string{err.Error()}}
	}
	return nil
}
