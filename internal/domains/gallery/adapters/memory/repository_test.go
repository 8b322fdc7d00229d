package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
)

func titles(t *testing.T, r *Repository) []string {
	t.Helper()
	items, err := r.List(context.Background())
	require.NoError(t, err)
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Entity.Title)
	}
	return out
}

func TestSeededRepositoryListsNewestFirst(t *testing.T) {
	r := NewSeededRepository()
	assert.Equal(t, []string{"Curious Pup", "Lazy Afternoon", "Mountain Guardian", "Wild Whiskers"}, titles(t, r))

	_, err := r.Add(context.Background(), domain.NewImageItem("new", "astronaut cat", "data:image/png;base64,AA=="))
	require.NoError(t, err)
	assert.Equal(t, "astronaut cat", titles(t, r)[0])
	assert.Len(t, titles(t, r), 5)
}

func TestRepositoryStampsMetadataAndReturnsCopies(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	r := NewRepository()
	r.WithClock(func() time.Time { return now })

	saved, err := r.Add(context.Background(), domain.NewImageItem("a", "pug", "data:x"))
	require.NoError(t, err)
	assert.Equal(t, now, saved.Metadata.CreatedAt)

	saved.Entity.Title = "mutated"
	assert.Equal(t, []string{"pug"}, titles(t, r))
}

func TestRecordVideoIsIdempotentPerJob(t *testing.T) {
	r := NewRepository()
	job := domain.VideoJob{ID: "job-1", Prompt: "corgi", Status: domain.JobSucceeded}

	first, err := r.RecordVideo(context.Background(), domain.NewVideoItem("item-1", job, "/content/job-1"))
	require.NoError(t, err)
	second, err := r.RecordVideo(context.Background(), domain.NewVideoItem("item-2", job, "/content/job-1"))
	require.NoError(t, err)

	assert.Equal(t, first.Entity.ID, second.Entity.ID)
	assert.Len(t, titles(t, r), 1)
}

func TestJobStoreUpdate(t *testing.T) {
	s := NewJobStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, domain.NewVideoJob("job-1", "corgi", time.Time{})))

	got, err := s.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.IsZero())

	updated, err := s.Update(ctx, "job-1", func(j *domain.VideoJob) error { return j.Cancel(time.Now()) })
	require.NoError(t, err)
	assert.Equal(t, domain.JobCancelled, updated.Status)

	stale, err := s.Update(ctx, "job-1", func(j *domain.VideoJob) error {
		j.Prompt = "changed"
		return j.Cancel(time.Now())
	})
	assert.ErrorIs(t, err, domain.ErrJobFinished)
	assert.Equal(t, "corgi", stale.Prompt)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
	_, err = s.Update(ctx, "missing", func(*domain.VideoJob) error { return nil })
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}
