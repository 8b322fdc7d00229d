package mapper

import (
	"time"

	gallerytypes "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/application/types"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
)

// GenerateRequest is the body of both generation endpoints.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// Item is one gallery tile.
type Item struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Prompt    string    `json:"prompt,omitempty"`
	URL       string    `json:"url"`
	JobID     string    `json:"jobId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// VideoJob is the status document of a video job.
type VideoJob struct {
	ID         string    `json:"id"`
	Prompt     string    `json:"prompt"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	ContentURL string    `json:"contentUrl,omitempty"`
	Item       *Item     `json:"item,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Capabilities is the body of GET /api/v1/gallery/capabilities.
type Capabilities struct {
	GenerationEnabled bool `json:"generationEnabled"`
}

// ToGenerateInput maps the request body.
func ToGenerateInput(req GenerateRequest) gallerytypes.GenerateInput {
	return gallerytypes.GenerateInput{Prompt: req.Prompt}
}

// FromProjection maps a stored item.
func FromProjection(p *gallerytypes.ItemProjection) Item {
	if p == nil || p.Entity == nil {
		return Item{}
	}
	return Item{
		ID:        p.Entity.ID,
		Type:      string(p.Entity.Kind),
		Title:     p.Entity.Title,
		Prompt:    p.Entity.Prompt,
		URL:       p.Entity.URL,
		JobID:     p.Entity.JobID,
		CreatedAt: p.Metadata.CreatedAt,
	}
}

// FromProjectionList maps the gallery listing.
func FromProjectionList(list []*gallerytypes.ItemProjection) []Item {
	out := make([]Item, 0, len(list))
	for _, p := range list {
		if p == nil {
			continue
		}
		out = append(out, FromProjection(p))
	}
	return out
}

// FromVideoJobView maps a job status; contentPath is set once the clip can be streamed.
func FromVideoJobView(view *gallerytypes.VideoJobView, contentPath string) VideoJob {
	out := VideoJob{
		ID:        view.Job.ID,
		Prompt:    view.Job.Prompt,
		Status:    string(view.Job.Status),
		Error:     view.Job.Error,
		CreatedAt: view.Job.CreatedAt,
		UpdatedAt: view.Job.UpdatedAt,
	}
	if view.Job.Status == domain.JobSucceeded {
		out.ContentURL = contentPath
	}
	if view.Item != nil {
		item := FromProjection(view.Item)
		out.Item = &item
	}
	return out
}

// FromCapabilities maps generation availability.
func FromCapabilities(c gallerytypes.Capabilities) Capabilities {
	return Capabilities{GenerationEnabled: c.GenerationEnabled}
}
