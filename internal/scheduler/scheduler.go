package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/norskbot/internal/ingest"
	"github.com/go-co-op/gocron"
)

// DefaultReimportHours is how often the verb source file is re-imported
const DefaultReimportHours = 24

// Importer is the ingestion surface the scheduler drives
type Importer interface {
	ImportVerbs(config ingest.ImportConfig) (*ingest.ImportResult, error)
}

// Scheduler periodically re-runs the verb import so the table tracks an
// edited source file. The replace step is transactional, so readers see the
// old contents until the new batch commits.
type Scheduler struct {
	scheduler *gocron.Scheduler
	importer  Importer
	config    ingest.ImportConfig
}

// New creates a new scheduler instance
func New(importer Importer, config ingest.ImportConfig) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		importer:  importer,
		config:    config,
	}
}

// Start begins running the periodic re-import
func (s *Scheduler) Start() {
	hours := DefaultReimportHours
	if hoursStr := os.Getenv("REIMPORT_INTERVAL_HOURS"); hoursStr != "" {
		if h, err := strconv.Atoi(hoursStr); err == nil && h > 0 {
			hours = h
		}
	}

	s.scheduler.Every(hours).Hours().Do(s.runImport)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// runImport executes one re-import and logs the outcome
func (s *Scheduler) runImport() {
	result, err := s.importer.ImportVerbs(s.config)
	if err != nil {
		log.Printf("Scheduled verb import failed: %v", err)
		return
	}
	log.Printf("Scheduled verb import: %d imported, %d skipped", result.Imported, result.Skipped)
}
