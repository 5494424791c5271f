package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"

	"github.com/nayyaratul/chatbot-creation-flow/internal/config"
	"github.com/nayyaratul/chatbot-creation-flow/internal/storage"
)

func main() {
	var (
		dir       = flag.String("dir", "", "Data directory (defaults to storage data_dir env/default)")
		all       = flag.Bool("all", false, "Run all seeders")
		agents    = flag.Bool("agents", false, "Seed sample agents")
		knowledge = flag.Bool("knowledge", false, "Seed sample knowledge-base files")
		force     = flag.Bool("force", false, "Overwrite collections that already contain records")
		list      = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		available := listSeeders()
		sort.Slice(available, func(i, j int) bool { return available[i].Name() < available[j].Name() })
		for _, s := range available {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	cfg := config.StorageConfig{DataDir: *dir}
	if err := cfg.Finalize(); err != nil {
		log.Fatalf("invalid storage configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store, err := storage.New(&cfg, logger)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}

	ctx := context.Background()

	var selected []Seeder
	switch {
	case *all:
		selected = listSeeders()
	default:
		if *agents {
			selected = append(selected, seeders["agents"])
		}
		if *knowledge {
			selected = append(selected, seeders["knowledge"])
		}
	}

	if len(selected) == 0 {
		log.Fatal("nothing to seed: use -all, -agents, or -knowledge (or -list to inspect)")
	}

	for _, s := range selected {
		if !*force {
			existing, err := store.ReadAll(ctx, s.Collection())
			if err != nil {
				log.Fatalf("failed to inspect %s: %v", s.Collection(), err)
			}
			if len(existing) > 0 {
				fmt.Printf("skipping %s: collection already has %d record(s), use -force to overwrite\n", s.Name(), len(existing))
				continue
			}
		}

		if err := s.Seed(ctx, store); err != nil {
			log.Fatalf("seeding %s failed: %v", s.Name(), err)
		}
		fmt.Printf("seeded %s\n", s.Name())
	}
}
