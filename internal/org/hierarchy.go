package org

import "talentlms-sync/internal/domain"

// Hierarchy is the org tree derived from the flat ADP directory: a manager-id
// to direct-reports mapping plus an id lookup. Records stay immutable
// snapshots; nothing back-references into them. Rebuilt fresh each run.
type Hierarchy struct {
	Reports map[string][]domain.Worker
	ByID    map[string]domain.Worker
}

// Build derives the Hierarchy from the full worker list (all statuses, not
// just active — inactive managers must still resolve). The build is tolerant:
// a worker whose manager id matches no record is simply absent from every
// reports list, and a worker without an id is not registered in the lookup.
// Direct reports keep input order.
func Build(workers []domain.Worker) Hierarchy {
	h := Hierarchy{
		Reports: make(map[string][]domain.Worker),
		ByID:    make(map[string]domain.Worker, len(workers)),
	}
	for _, w := range workers {
		if mgr := w.ManagerID(); mgr != "" {
			h.Reports[mgr] = append(h.Reports[mgr], w)
		}
		if id := w.ID(); id != "" {
			h.ByID[id] = w
		}
	}
	return h
}

// Subtree returns every direct and indirect report under managerID, depth
// first, pre-order (a report appears before its own reports). Iterative with
// a visited set: ADP has shipped cyclic reportsTo chains before, and a cycle
// must terminate the walk, not hang the run. On acyclic data the output is
// identical to the plain recursion.
func (h Hierarchy) Subtree(managerID string) []domain.Worker {
	var out []domain.Worker

	visited := map[string]bool{managerID: true}
	stack := make([]domain.Worker, 0, len(h.Reports[managerID]))

	// push in reverse so the stack pops in input order
	push := func(ws []domain.Worker) {
		for i := len(ws) - 1; i >= 0; i-- {
			stack = append(stack, ws[i])
		}
	}

	push(h.Reports[managerID])
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id := w.ID()
		if id != "" {
			if visited[id] {
				continue
			}
			visited[id] = true
		}

		out = append(out, w)
		if id != "" {
			push(h.Reports[id])
		}
	}

	return out
}
