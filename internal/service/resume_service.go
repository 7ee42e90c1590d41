package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"

	"github.com/skillforge/skillforge/internal/apperror"
)

// DocumentTextExtractor pulls plain text out of a candidate's uploaded
// resume, addressed by URL. Failures surface as ExtractionError.
type DocumentTextExtractor interface {
	Extract(ctx context.Context, resumeURL string) (string, error)
}

type pdfTextExtractor struct {
	httpClient *http.Client
}

func NewPDFTextExtractor() DocumentTextExtractor {
	return &pdfTextExtractor{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *pdfTextExtractor) Extract(ctx context.Context, resumeURL string) (string, error) {
	if resumeURL == "" {
		return "", apperror.NewExtraction(fmt.Errorf("resume URL is empty"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resumeURL, nil)
	if err != nil {
		return "", apperror.NewExtraction(err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", apperror.NewExtraction(fmt.Errorf("failed to fetch resume from %s: %w", resumeURL, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperror.NewExtraction(fmt.Errorf("failed to fetch resume (status %d) from %s", resp.StatusCode, resumeURL))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperror.NewExtraction(fmt.Errorf("failed to read resume data: %w", err))
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Warn().Err(err).Str("url", resumeURL).Msg("Resume is not a readable PDF")
		return "", apperror.NewExtraction(fmt.Errorf("unreadable PDF: %w", err))
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", apperror.NewExtraction(fmt.Errorf("failed to extract PDF text: %w", err))
	}

	var text strings.Builder
	if _, err := io.Copy(&text, textReader); err != nil {
		return "", apperror.NewExtraction(fmt.Errorf("failed to read PDF text: %w", err))
	}

	extracted := strings.TrimSpace(text.String())
	if extracted == "" {
		return "", apperror.NewExtraction(fmt.Errorf("PDF contains no extractable text"))
	}
	return extracted, nil
}
