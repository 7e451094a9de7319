package org

import (
	"errors"
	"fmt"
	"strings"

	"talentlms-sync/internal/domain"
)

// FindWorker resolves a free-form identifier (raw worker id, work email, or
// full name) against the full directory. Ids match exactly; email and name
// match case-insensitively. Exactly one worker must match — no match and
// ambiguous matches are both errors, callers treat them as fatal CLI input
// failures.
func FindWorker(workers []domain.Worker, identifier string) (domain.Worker, error) {
	exact := strings.TrimSpace(identifier)
	needle := strings.ToLower(exact)
	if needle == "" {
		return nil, errors.New("empty worker identifier")
	}

	var matches []domain.Worker
	for _, w := range workers {
		switch {
		case w.ID() == exact:
			matches = append(matches, w)
		case strings.ToLower(w.WorkEmail()) == needle:
			matches = append(matches, w)
		case strings.ToLower(w.FullName()) == needle:
			matches = append(matches, w)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no worker matches %q", identifier)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("identifier %q is ambiguous: %d workers match", identifier, len(matches))
	}
}
