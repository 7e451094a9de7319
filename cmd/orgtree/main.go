// Print the ADP reporting tree as an indented listing. With -manager, only
// the subtree under that manager; otherwise the whole directory forest.
// Read-only; useful for checking what a scoped sync run would cover.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"talentlms-sync/internal/config"
	"talentlms-sync/internal/domain"
	"talentlms-sync/internal/org"
	"talentlms-sync/internal/providers/adp"
)

func main() {
	manager := flag.String("manager", "", "only print the subtree under this manager (email, name, or worker id)")
	flag.Parse()

	if err := run(*manager); err != nil {
		log.Fatalf("Job failed: %v", err)
	}
}

func run(manager string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	cfg := config.Load()

	hr, err := adp.New(cfg)
	if err != nil {
		return err
	}

	log.Printf("Fetching workers from ADP...")
	workers, err := hr.ListAllWorkers(ctx)
	if err != nil {
		return fmt.Errorf("fetch adp workers: %w", err)
	}
	log.Printf("Found %d workers", len(workers))

	h := org.Build(workers)

	if manager != "" {
		mgr, err := org.FindWorker(workers, manager)
		if err != nil {
			return err
		}
		printWorker(os.Stdout, mgr, 0)
		printTree(os.Stdout, h, mgr.ID(), 1, map[string]bool{mgr.ID(): true})
		return nil
	}

	// Whole forest: roots are workers with no manager reference, or whose
	// manager id resolves to no record we have.
	for _, w := range workers {
		mgr := w.ManagerID()
		if mgr != "" {
			if _, ok := h.ByID[mgr]; ok {
				continue
			}
		}
		printWorker(os.Stdout, w, 0)
		printTree(os.Stdout, h, w.ID(), 1, map[string]bool{w.ID(): true})
	}
	return nil
}

func printTree(out io.Writer, h org.Hierarchy, managerID string, depth int, visited map[string]bool) {
	if managerID == "" {
		return
	}
	for _, w := range h.Reports[managerID] {
		id := w.ID()
		if id != "" && visited[id] {
			fmt.Fprintf(out, "%s!! cycle: %s already printed\n", indent(depth), w.FullName())
			continue
		}
		printWorker(out, w, depth)
		if id != "" {
			visited[id] = true
			printTree(out, h, id, depth+1, visited)
		}
	}
}

func printWorker(out io.Writer, w domain.Worker, depth int) {
	status := "inactive"
	if w.IsActive() {
		status = "active"
	}
	email := w.WorkEmail()
	if email == "" {
		email = "no work email"
	}
	fmt.Fprintf(out, "%s%s (%s) [%s] %s\n", indent(depth), w.FullName(), w.ID(), status, email)
}

func indent(depth int) string {
	s := ""
	for i := 0; i < depth; i++ {
		s += "  "
	}
	return s
}
