package projection

import "time"

// Metadata records when a stored entity was first written and last changed.
type Metadata struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Projection pairs an entity with its storage timestamps.
type Projection[T any] struct {
	Entity   T
	Metadata Metadata
}

// New stamps entity as created and updated at the same instant.
func New[T any](entity T, at time.Time) *Projection[T] {
	return &Projection[T]{Entity: entity, Metadata: Metadata{CreatedAt: at, UpdatedAt: at}}
}

// Map converts the entity while keeping the timestamps.
func Map[T, U any](p *Projection[T], fn func(T) U) *Projection[U] {
	if p == nil {
		return nil
	}
	return &Projection[U]{Entity: fn(p.Entity), Metadata: p.Metadata}
}
