package org

import "talentlms-sync/internal/domain"

// Active returns the workers whose ADP status is active, input order
// preserved.
func Active(workers []domain.Worker) []domain.Worker {
	out := make([]domain.Worker, 0, len(workers))
	for _, w := range workers {
		if w.IsActive() {
			out = append(out, w)
		}
	}
	return out
}

// Intersect keeps the workers from list whose id also appears in subset,
// preserving list order. Membership is keyed by worker id, never by object
// identity — the two slices hold separately decoded records.
func Intersect(list, subset []domain.Worker) []domain.Worker {
	ids := make(map[string]bool, len(subset))
	for _, w := range subset {
		if id := w.ID(); id != "" {
			ids[id] = true
		}
	}

	out := make([]domain.Worker, 0, len(list))
	for _, w := range list {
		if ids[w.ID()] {
			out = append(out, w)
		}
	}
	return out
}
