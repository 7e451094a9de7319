// Sync exactly one ADP employee to TalentLMS, located by the same free-form
// identifier resolution the manager filter uses (email, name, or worker id).
// Creates the account if missing and enrolls it into the onboarding course.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"talentlms-sync/internal/config"
	"talentlms-sync/internal/domain"
	"talentlms-sync/internal/org"
	"talentlms-sync/internal/providers/adp"
	"talentlms-sync/internal/providers/talentlms"
	"talentlms-sync/internal/sync"
)

func main() {
	worker := flag.String("worker", "", "employee to sync (email, name, or worker id)")
	flag.Parse()

	if *worker == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*worker); err != nil {
		log.Fatalf("Job failed: %v", err)
	}
}

func run(identifier string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
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

	log.Printf("Fetching workers from ADP...")
	workers, err := hr.ListAllWorkers(ctx)
	if err != nil {
		return fmt.Errorf("fetch adp workers: %w", err)
	}

	w, err := org.FindWorker(workers, identifier)
	if err != nil {
		return err
	}
	if !w.IsActive() {
		log.Printf("WARN: %s is not an active worker in ADP", w.FullName())
	}

	log.Printf("Fetching all TalentLMS users...")
	users, err := lms.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("fetch talentlms users: %w", err)
	}
	existing := sync.NewEmailSet(users)

	res := sync.SyncWorkers(ctx, os.Stdout, []domain.Worker{w}, existing, lms)
	sync.PrintSummary(os.Stdout, res)

	return nil
}
