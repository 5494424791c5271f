// Package main provides the seed command for populating the JSON data
// files with sample data. It supports multiple seeders that can be run
// individually or together.
package main

import (
	"context"

	"github.com/nayyaratul/chatbot-creation-flow/internal/storage"
)

// Seeder defines the interface for data seeders. Each seeder is
// responsible for populating a single collection.
type Seeder interface {
	// Name returns the unique identifier for this seeder.
	Name() string

	// Description returns a human-readable description of what this seeder does.
	Description() string

	// Collection returns the collection this seeder populates.
	Collection() string

	// Seed writes the sample records through the given store.
	Seed(ctx context.Context, store storage.System) error
}

var seeders = map[string]Seeder{}

// registerSeeder adds a seeder to the global registry.
// Seeders self-register via init() functions.
func registerSeeder(s Seeder) {
	seeders[s.Name()] = s
}

// listSeeders returns all registered seeders.
func listSeeders() []Seeder {
	result := make([]Seeder, 0, len(seeders))
	for _, s := range seeders {
		result = append(result, s)
	}
	return result
}
