// Sync ADP employees to TalentLMS.
//
// Fetches all TalentLMS users, fetches active employees from ADP (optionally
// scoped to one manager's org subtree), and creates TalentLMS accounts for
// employees who don't have one yet.
//
//	# Sync all active employees
//	sync
//
//	# Sync only employees under a specific manager
//	sync -manager manager@company.com
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"talentlms-sync/internal/config"
	"talentlms-sync/internal/org"
	"talentlms-sync/internal/providers/adp"
	"talentlms-sync/internal/providers/talentlms"
	"talentlms-sync/internal/sync"
)

func main() {
	manager := flag.String("manager", "", "only sync employees under this manager (email, name, or worker id)")
	flag.Parse()

	start := time.Now()

	err := run(*manager)

	log.Printf("Execution finished in %s", time.Since(start))

	if err != nil {
		log.Fatalf("Job failed: %v", err)
	}
}

func run(manager string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	cfg := config.Load()

	if cfg.TalentLMSDomain == "" || cfg.TalentLMSAPIKey == "" {
		return fmt.Errorf("missing env: TALENTLMS_DOMAIN / TALENTLMS_API_KEY")
	}
	lms := talentlms.New(cfg.TalentLMSDomain, cfg.TalentLMSAPIKey, cfg.HTTPTimeout)

	hr, err := adp.New(cfg)
	if err != nil {
		return err
	}

	log.Printf("Fetching all TalentLMS users...")
	users, err := lms.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("fetch talentlms users: %w", err)
	}
	existing := sync.NewEmailSet(users)
	log.Printf("Found %d TalentLMS users", len(existing))

	log.Printf("Fetching workers from ADP...")
	workers, err := hr.ListAllWorkers(ctx)
	if err != nil {
		return fmt.Errorf("fetch adp workers: %w", err)
	}

	active := org.Active(workers)
	log.Printf("Found %d active workers in ADP", len(active))

	if manager != "" {
		mgr, err := org.FindWorker(workers, manager)
		if err != nil {
			return fmt.Errorf("manager filter: %w", err)
		}
		mgrID := mgr.ID()
		if mgrID == "" {
			return fmt.Errorf("manager filter: %s has no associateOID/workerID", mgr.FullName())
		}

		log.Printf("Filtering to employees under %s...", mgr.FullName())
		h := org.Build(workers)
		active = org.Intersect(active, h.Subtree(mgrID))
		log.Printf("Found %d active workers under this manager", len(active))
	}

	if len(active) == 0 {
		fmt.Println("No active workers found. Nothing to sync.")
		return nil
	}

	fmt.Println("\nStarting sync...")
	res := sync.SyncWorkers(ctx, os.Stdout, active, existing, lms)
	sync.PrintSummary(os.Stdout, res)

	return nil
}
