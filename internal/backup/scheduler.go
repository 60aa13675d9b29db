package backup

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/omer2190/portfolio-backend/internal/content"
)

// Scheduler writes a nightly snapshot of the content document to the backup
// directory. It only runs on the file-backed store; the relational backend
// has its own backup story.
type Scheduler struct {
	snapshots content.Snapshotter
	dir       string
}

func NewScheduler(snapshots content.Snapshotter, dir string) *Scheduler {
	return &Scheduler{snapshots: snapshots, dir: dir}
}

// Start registers the nightly job (12:00 AM).
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", func() {
		if err := s.RunOnce(); err != nil {
			log.Printf("Nightly backup failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Backup scheduler started (running nightly at 12:00AM)")
	c.Start()
}

// RunOnce exports the current document into the backup directory. Re-running
// on the same day overwrites that day's file.
func (s *Scheduler) RunOnce() error {
	raw, filename, err := s.snapshots.Export()
	if err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	log.Println("Nightly backup completed successfully at:", time.Now().Format(time.RFC1123))
	return nil
}
