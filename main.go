package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/norskbot/internal/bot"
	"github.com/example/norskbot/internal/database"
	"github.com/example/norskbot/internal/ingest"
	"github.com/example/norskbot/internal/quiz"
	"github.com/example/norskbot/internal/reference"
	"github.com/example/norskbot/internal/scheduler"
	"github.com/example/norskbot/internal/verbs"
	"github.com/joho/godotenv"
)

func main() {
	importFile := flag.String("import", "", "import a verb list into the database and exit")
	exportFile := flag.String("export-json", "", "convert a verb list to interchange JSON and exit")
	outFile := flag.String("out", "word_json.json", "output path for -export-json")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Standalone conversion step, no database needed
	if *exportFile != "" {
		if err := ingest.ExportInterchange(*exportFile, *outFile); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		log.Printf("Interchange JSON written to %s", *outFile)
		return
	}

	db, err := database.Connect(database.ConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	verbRepo := database.NewVerbRepository(db)
	testRepo := database.NewTestRepository(db)
	themeRepo := database.NewThemeRepository(db)
	resultRepo := database.NewResultRepository(db)

	// Rebuild the seeded tables on every start so question IDs and replay
	// order stay stable across runs
	if err := testRepo.ReplaceAll(quiz.SeedQuestions()); err != nil {
		log.Fatalf("Failed to seed grammar tests: %v", err)
	}
	if err := themeRepo.ReplaceAll(reference.OralThemes()); err != nil {
		log.Fatalf("Failed to seed themes: %v", err)
	}

	importer := ingest.NewImporter(verbRepo)

	// One-shot batch ingestion
	if *importFile != "" {
		cfg := ingest.DefaultImportConfig()
		cfg.FilePath = *importFile
		result, err := importer.ImportVerbs(cfg)
		if err != nil {
			log.Fatalf("Verb import failed: %v", err)
		}
		log.Printf("Imported %d verbs (%d skipped)", result.Imported, result.Skipped)
		return
	}

	// VERB_FILE triggers an import at startup plus a periodic re-import
	if verbFile := os.Getenv("VERB_FILE"); verbFile != "" {
		cfg := ingest.DefaultImportConfig()
		cfg.FilePath = verbFile

		result, err := importer.ImportVerbs(cfg)
		if err != nil {
			log.Printf("Startup verb import failed: %v", err)
		} else {
			log.Printf("Imported %d verbs (%d skipped)", result.Imported, result.Skipped)
		}

		if os.Getenv("ENABLE_SCHEDULER") != "false" {
			sched := scheduler.New(importer, cfg)
			sched.Start()
			defer sched.Stop()
		}
	}

	botConfig, err := bot.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load bot configuration: %v", err)
	}

	b, err := bot.New(
		botConfig,
		verbs.NewResolver(verbRepo),
		quiz.NewStoreLoader(testRepo),
		themeRepo,
		resultRepo,
	)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		cancel()
		b.Stop()
		close(done)
	}()

	log.Println("Bot started. Press Ctrl+C to stop.")
	go func() {
		if err := b.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("Bot error: %v", err)
		}
	}()

	<-done
	log.Println("Bot stopped successfully")
}
