package domain

import "time"

// MemoryEntry is a stored (text, vector) pair used for nearest-neighbour recall.
// Similarity is only set on search results.
type MemoryEntry struct {
	ID         string
	Content    string
	Embedding  []float32
	CreatedAt  time.Time
	Similarity float32
}
