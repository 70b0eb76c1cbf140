// Package repository provides access to the collected bird dataset.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/myra/bird-quiz-bot/internal/domain/entities"
)

var (
	ErrSpeciesNotFound = errors.New("species not found")
	ErrEmptyDataset    = errors.New("dataset contains no species")
)

// SpeciesRepository serves the in-memory species list loaded from the
// dataset JSON produced by the collection pipeline. The list is
// immutable for the lifetime of the process.
type SpeciesRepository struct {
	species []*entities.Species
	byID    map[string]*entities.Species
	meta    entities.DatasetMetadata
	rng     *rand.Rand
}

// NewSpeciesRepository loads the dataset from path.
func NewSpeciesRepository(path string) (*SpeciesRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var ds entities.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	if len(ds.Species) == 0 {
		return nil, ErrEmptyDataset
	}

	byID := make(map[string]*entities.Species, len(ds.Species))
	for _, s := range ds.Species {
		byID[s.ID] = s
	}

	return &SpeciesRepository{
		species: ds.Species,
		byID:    byID,
		meta:    ds.Metadata,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// GetAll returns the full species list.
func (r *SpeciesRepository) GetAll() []*entities.Species {
	return r.species
}

// GetByID returns the species with the given identifier.
func (r *SpeciesRepository) GetByID(id string) (*entities.Species, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, ErrSpeciesNotFound
	}
	return s, nil
}

// GetRandom returns a uniformly random species.
func (r *SpeciesRepository) GetRandom() *entities.Species {
	return r.species[r.rng.Intn(len(r.species))]
}

// GetByRegion returns all species collected for the given region.
func (r *SpeciesRepository) GetByRegion(region string) []*entities.Species {
	out := make([]*entities.Species, 0)
	for _, s := range r.species {
		if s.Region == region {
			out = append(out, s)
		}
	}
	return out
}

// Count returns the number of species in the dataset.
func (r *SpeciesRepository) Count() int {
	return len(r.species)
}

// Metadata returns the dataset build metadata.
func (r *SpeciesRepository) Metadata() entities.DatasetMetadata {
	return r.meta
}
