// Dump the ADP worker directory to CSV for HR audits, optionally scoped to
// active workers or one manager's subtree, optionally uploaded to the SFTP
// drop afterwards.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"talentlms-sync/internal/config"
	"talentlms-sync/internal/export"
	"talentlms-sync/internal/org"
	"talentlms-sync/internal/providers/adp"
	"talentlms-sync/internal/sftpclient"
)

func main() {
	var (
		outPath    = flag.String("out", "WORKERS_ALL.csv", "output csv path")
		activeOnly = flag.Bool("active-only", false, "export only active workers")
		manager    = flag.String("manager", "", "only export workers under this manager (email, name, or worker id)")
		uploadSFTP = flag.Bool("sftp", false, "upload the generated CSV via SFTP")
	)
	flag.Parse()

	if err := run(*outPath, *activeOnly, *manager, *uploadSFTP); err != nil {
		log.Fatalf("Job failed: %v", err)
	}
}

func run(outPath string, activeOnly bool, manager string, uploadSFTP bool) error {
	rootCtx, rootCancel := context.WithTimeout(context.Background(), 1*time.Hour)
	defer rootCancel()

	cfg := config.Load()

	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	hr, err := adp.New(cfg)
	if err != nil {
		return err
	}

	log.Printf("Fetching workers from ADP...")
	workers, err := hr.ListAllWorkers(rootCtx)
	if err != nil {
		return fmt.Errorf("fetch adp workers: %w", err)
	}

	selected := workers
	if manager != "" {
		mgr, err := org.FindWorker(workers, manager)
		if err != nil {
			return err
		}
		h := org.Build(workers)
		selected = org.Intersect(selected, h.Subtree(mgr.ID()))
	}
	if activeOnly {
		selected = org.Active(selected)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := export.WriteWorkerCSV(f, selected); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Printf("wrote %d workers to %s (directory total=%d)", len(selected), outPath, len(workers))

	if uploadSFTP {
		remoteName := filepath.Base(outPath)

		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		upCtx, upCancel := context.WithTimeout(rootCtx, 5*time.Minute)
		defer upCancel()

		if err := sftpclient.UploadFile(upCtx, upCfg, outPath, remoteName); err != nil {
			return err
		}
		log.Printf("uploaded to sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, remoteName)
	}

	return nil
}
