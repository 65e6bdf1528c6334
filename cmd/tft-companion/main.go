package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ramonehamilton/TFT-Companion/internal/config"
	"github.com/ramonehamilton/TFT-Companion/internal/display"
	"github.com/ramonehamilton/TFT-Companion/internal/tft/advisor"
	"github.com/ramonehamilton/TFT-Companion/internal/tft/catalog"
	"github.com/ramonehamilton/TFT-Companion/internal/tft/state"
	"github.com/ramonehamilton/TFT-Companion/internal/watch"
)

var (
	// Pick context flags
	augments   = flag.String("augments", "", "Comma-separated augments being offered (required)")
	stageFlag  = flag.String("stage", "3-2", "Current stage, e.g. 3-2")
	hpFlag     = flag.Int("hp", 60, "Current HP (0-100)")
	traits     = flag.String("traits", "", "Fielded traits as name=count pairs, e.g. Sorcerer=3,Bruiser=2")
	components = flag.String("components", "", "Bench components as name=count pairs, e.g. Belt=1,Rod=1")
	taken      = flag.String("taken", "", "Comma-separated augments already taken")

	// Data source flags
	dataDir   = flag.String("data-dir", "data", "Directory containing augments.yaml, traits.yaml, items.yaml and config.toml")
	stateFile = flag.String("state-file", "", "Optional TOML state file; explicit flags override its fields")

	// Application mode flags
	watchMode      = flag.Bool("watch", false, "Keep running and re-score when the state file or reference data changes")
	debugMode      = flag.Bool("debug-mode", false, "Enable verbose debug logging")
	debugModeShort = flag.Bool("d", false, "Enable debug logging (shorthand for -debug-mode)")
)

func main() {
	flag.Parse()

	if *debugModeShort {
		*debugMode = true
	}
	if *augments == "" {
		flag.Usage()
		fmt.Fprintln(os.Stderr)
		log.Fatal("-augments is required")
	}

	offered := state.ParseList(*augments)
	if len(offered) == 0 {
		log.Fatal("-augments contains no augment names")
	}

	run := func() error {
		cfg, err := config.Load(filepath.Join(*dataDir, "config.toml"))
		if err != nil {
			return err
		}
		db, err := catalog.Load(*dataDir)
		if err != nil {
			return err
		}

		snapshot, err := buildSnapshot()
		if err != nil {
			return err
		}

		engine := advisor.NewEngine(db, cfg)
		engine.SetDebug(*debugMode)

		displayer := display.NewRecommendationsDisplayer(os.Stdout, db)
		return displayer.DisplayRecommendations(engine.Recommend(snapshot, offered))
	}

	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}

	if !*watchMode {
		return
	}

	paths := []string{
		filepath.Join(*dataDir, "augments.yaml"),
		filepath.Join(*dataDir, "traits.yaml"),
		filepath.Join(*dataDir, "items.yaml"),
		filepath.Join(*dataDir, "config.toml"),
	}
	if *stateFile != "" {
		paths = append(paths, *stateFile)
	}

	watcher := watch.New(paths, 200*time.Millisecond, func() {
		if err := run(); err != nil {
			// Keep watching; the data may be mid-edit.
			log.Printf("Error re-scoring: %v", err)
		}
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		watcher.Stop()
	}()

	if *debugMode {
		log.Printf("watching %d files for changes", len(paths))
	}
	if err := watcher.Run(); err != nil {
		log.Fatalf("Error watching files: %v", err)
	}
}

// buildSnapshot assembles the board state from the optional state file plus
// flags. Flags the user set explicitly win over state-file fields.
func buildSnapshot() (*state.Snapshot, error) {
	snapshot := state.New()
	snapshot.Stage = *stageFlag
	snapshot.HP = *hpFlag

	if *stateFile != "" {
		loaded, err := state.LoadFile(*stateFile)
		if err != nil {
			return nil, err
		}
		snapshot = loaded

		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) {
			explicit[f.Name] = true
		})
		if explicit["stage"] {
			snapshot.Stage = *stageFlag
		}
		if explicit["hp"] {
			snapshot.HP = *hpFlag
		}
		if explicit["traits"] {
			snapshot.Traits = state.ParseCounts(*traits)
		}
		if explicit["components"] {
			snapshot.Components = state.ParseCounts(*components)
		}
		if explicit["taken"] {
			snapshot.Taken = state.ParseList(*taken)
		}
		return snapshot, nil
	}

	snapshot.Traits = state.ParseCounts(*traits)
	snapshot.Components = state.ParseCounts(*components)
	snapshot.Taken = state.ParseList(*taken)
	return snapshot, nil
}
