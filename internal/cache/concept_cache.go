package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"company-pulse-be/internal/entity"
	"company-pulse-be/internal/pkg/logger"

	"golang.org/x/sync/semaphore"
)

// ConceptReader is the store boundary the cache loads from.
type ConceptReader interface {
	FindAllByKind(ctx context.Context, kind string) ([]*entity.CanonicalConceptRow, error)
}

// ConceptCache holds one immutable snapshot of the canonical vocabulary for a
// single concept kind. Reads are lock-free once a snapshot is published; a
// rebuild is single-flight behind a weighted-1 semaphore so N cold callers
// trigger exactly one store query.
type ConceptCache struct {
	kind     string
	reader   ConceptReader
	logger   logger.ILogger
	snapshot atomic.Pointer[[]*entity.CanonicalConcept]
	gate     *semaphore.Weighted
}

func NewConceptCache(kind string, reader ConceptReader, log logger.ILogger) *ConceptCache {
	return &ConceptCache{
		kind:   kind,
		reader: reader,
		logger: log,
		gate:   semaphore.NewWeighted(1),
	}
}

// GetConcepts returns the current snapshot, populating it on first demand.
// Callers share the exact same slice until Invalidate; they must not mutate it.
func (c *ConceptCache) GetConcepts(ctx context.Context) ([]*entity.CanonicalConcept, error) {
	if snap := c.snapshot.Load(); snap != nil {
		return *snap, nil
	}

	// Cold path. Acquire honors ctx, so a waiter can abort without affecting
	// the holder's load.
	if err := c.gate.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.gate.Release(1)

	// Re-check: another caller may have published while we waited.
	if snap := c.snapshot.Load(); snap != nil {
		return *snap, nil
	}

	rows, err := c.reader.FindAllByKind(ctx, c.kind)
	if err != nil {
		// Cache stays absent; the next caller retries the load.
		return nil, fmt.Errorf("load %s concepts: %w", c.kind, err)
	}

	concepts := make([]*entity.CanonicalConcept, 0, len(rows))
	for _, row := range rows {
		parsed, ok := c.parseEmbedding(row)
		if !ok {
			continue
		}
		concepts = append(concepts, &entity.CanonicalConcept{
			Id:          row.Id,
			Name:        row.Name,
			Description: row.Description,
			Embedding:   parsed,
		})
	}

	c.snapshot.Store(&concepts)
	c.logger.Info("concept_cache", "Snapshot rebuilt", map[string]interface{}{
		"kind":    c.kind,
		"rows":    len(rows),
		"cached":  len(concepts),
		"skipped": len(rows) - len(concepts),
	})

	return concepts, nil
}

// Invalidate drops the snapshot. Callers already holding the old slice keep
// it; only subsequent GetConcepts calls rebuild.
func (c *ConceptCache) Invalidate() {
	c.snapshot.Store(nil)
}

func (c *ConceptCache) Kind() string {
	return c.kind
}

func (c *ConceptCache) parseEmbedding(row *entity.CanonicalConceptRow) ([]float32, bool) {
	if row.EmbeddingJson == "" {
		c.logger.Warn("concept_cache", "Skipping concept without embedding", map[string]interface{}{
			"kind": c.kind,
			"id":   row.Id,
			"name": row.Name,
		})
		return nil, false
	}

	var vec []float32
	if err := json.Unmarshal([]byte(row.EmbeddingJson), &vec); err != nil {
		c.logger.Warn("concept_cache", "Skipping concept with unparseable embedding", map[string]interface{}{
			"kind":  c.kind,
			"id":    row.Id,
			"name":  row.Name,
			"error": err.Error(),
		})
		return nil, false
	}
	if len(vec) == 0 {
		c.logger.Warn("concept_cache", "Skipping concept with empty embedding", map[string]interface{}{
			"kind": c.kind,
			"id":   row.Id,
			"name": row.Name,
		})
		return nil, false
	}
	return vec, true
}
