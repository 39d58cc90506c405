package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"sort"

	"github.com/pkordes/nc-news/backend/internal/domain"
)

// decodeAllowed decodes a JSON object body into dst after checking that every
// key is one of allowed. The first unexpected key (in sorted order) is
// reported as a *domain.PayloadError for entity.
func decodeAllowed(r *http.Request, entity string, allowed []string, dst any) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return fmt.Errorf("%w: read body: %w", domain.ErrMalformedInput, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !slices.Contains(allowed, k) {
			return &domain.PayloadError{Entity: entity, Field: k}
		}
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
	}
	return nil
}

// voteRequest is the PATCH body for articles and comments.
type voteRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// decodeVote reads {inc_votes: <integer>}. A missing or non-integer inc_votes
// is ErrMalformedInput. Other keys are ignored.
func decodeVote(r *http.Request) (int, error) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
	}
	if req.IncVotes == nil {
		return 0, fmt.Errorf("%w: inc_votes is required", domain.ErrMalformedInput)
	}
	return *req.IncVotes, nil
}
