package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"realestate-chat-api/pkg/models"
)

// DatasetService loads the real-estate table from a DatasetSource and normalizes it.
// With caching enabled the table and its LocationIndex are built once and shared
// read-only across requests; without it every call re-reads the source.
type DatasetService struct {
	mu       sync.RWMutex
	source   DatasetSource
	aliases  map[string]string
	useCache bool
	cache    models.Dataset
	index    *LocationIndex
	loaded   bool
	loadedAt time.Time
}

// NewDatasetService creates a new DatasetService.
func NewDatasetService(source DatasetSource, aliases map[string]string, useCache bool) *DatasetService {
	return &DatasetService{
		source:   source,
		aliases:  cloneMap(aliases),
		useCache: useCache,
	}
}

// Dataset returns the cached dataset, loading it on first use.
func (s *DatasetService) Dataset(ctx context.Context) (models.Dataset, error) {
	ds, _, err := s.Snapshot(ctx)
	return ds, err
}

// Snapshot returns the dataset together with the location index built from it.
func (s *DatasetService) Snapshot(ctx context.Context) (models.Dataset, *LocationIndex, error) {
	if !s.useCache {
		return s.load(ctx)
	}

	s.mu.RLock()
	if s.loaded {
		ds, index := s.cache, s.index
		s.mu.RUnlock()
		return ds, index, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded { // double-check
		return s.cache, s.index, nil
	}

	ds, index, err := s.load(ctx)
	if err != nil {
		return nil, nil, err
	}
	s.cache, s.index = ds, index
	s.loaded = true
	s.loadedAt = time.Now()
	return ds, index, nil
}

// Reload re-reads the source and swaps the cached dataset.
// The previous dataset stays in place if loading fails.
func (s *DatasetService) Reload(ctx context.Context) (models.Dataset, error) {
	ds, index, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.useCache {
		s.cache, s.index = ds, index
		s.loaded = true
		s.loadedAt = time.Now()
	}
	return ds, nil
}

// LoadedAt returns when the cache was last filled. Zero if never.
func (s *DatasetService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// SourceName identifies the configured source for logs and status endpoints.
func (s *DatasetService) SourceName() string {
	return s.source.Name()
}

func (s *DatasetService) load(ctx context.Context) (models.Dataset, *LocationIndex, error) {
	start := time.Now()
	rows, err := s.source.Rows(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dataset from %s: %w", s.source.Name(), err)
	}
	ds, err := NormalizeRows(rows, s.aliases)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to normalize dataset from %s: %w", s.source.Name(), err)
	}
	log.Printf("📂 [データセット] %s から %d 行を読み込みました (%v)", s.source.Name(), len(ds), time.Since(start))
	return ds, NewLocationIndex(KnownLocations(ds)), nil
}

// DescribeDataset lists the distinct locations and years of a dataset.
func DescribeDataset(ds models.Dataset) models.DatasetInfo {
	seenYears := make(map[int]bool)
	years := make([]int, 0)
	for _, r := range ds {
		if !seenYears[r.Year] {
			seenYears[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)

	return models.DatasetInfo{
		Locations: KnownLocations(ds),
		Years:     years,
		Rows:      len(ds),
	}
}

func cloneMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}
