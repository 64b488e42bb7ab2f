package moderationimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/whispr-campus/whispr/internal/domain"
	"github.com/whispr-campus/whispr/pkg/errors"
)

var (
	errEmptyResults    = errors.New("classifier returned no results")
	errMalformedResult = errors.New("classifier result is missing the flagged field")
)

type moderationRequest struct {
	Input string `json:"input"`
}

type moderationResult struct {
	Flagged    *bool           `json:"flagged"`
	Categories map[string]bool `json:"categories"`
}

type moderationResponse struct {
	Results []*moderationResult `json:"results"`
}

// Moderate sends the content to the classifier once. The text itself is
// never logged.
func (m *ModerationImpl) Moderate(ctx context.Context, content string, kind domain.ContentKind) (*domain.Verdict, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.InvalidInput("Content is required")
	}
	if !kind.Valid() {
		return nil, errors.InvalidInput(fmt.Sprintf("unknown content type %q", kind))
	}
	if m.apiKey == "" {
		m.logger.Error("OpenAI API key not configured")
		return nil, errors.ModerationUnavailable(errors.ErrNotConfigured)
	}

	body, err := json.Marshal(moderationRequest{Input: content})
	if err != nil {
		return nil, errors.ModerationUnavailable(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/moderations", bytes.NewReader(body))
	if err != nil {
		return nil, errors.ModerationUnavailable(err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		m.logger.Error("Moderation request failed", "kind", kind, "error", err)
		return nil, errors.ModerationUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		m.logger.Error("Moderation endpoint returned non-2xx", "kind", kind, "status", resp.StatusCode)
		return nil, errors.ModerationUnavailable(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var decoded moderationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		m.logger.Error("Failed to decode moderation response", "kind", kind, "error", err)
		return nil, errors.ModerationUnavailable(err)
	}
	if len(decoded.Results) == 0 {
		m.logger.Error("Moderation response had no results", "kind", kind)
		return nil, errors.ModerationUnavailable(errEmptyResults)
	}

	result := decoded.Results[0]
	if result == nil || result.Flagged == nil {
		m.logger.Error("Moderation response was malformed", "kind", kind)
		return nil, errors.ModerationUnavailable(errMalformedResult)
	}
	verdict := domain.NewVerdict(*result.Flagged, result.Categories)

	m.logger.Info("Content moderated",
		"kind", kind,
		"flagged", verdict.Flagged,
		"categories", verdict.FlaggedCategories(),
	)

	return verdict, nil
}
