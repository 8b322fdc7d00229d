package domain

import (
	"errors"
	"strings"
)

// MediaKind distinguishes still images from generated clips.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// ErrEmptyPrompt is returned when a generation prompt is blank after trimming.
var ErrEmptyPrompt = errors.New("prompt must not be empty")

// Item is one tile of the gallery.
type Item struct {
	ID     string
	Kind   MediaKind
	Title  string
	Prompt string
	URL    string
	// JobID links a video item to the job that produced it.
	JobID string
}

// NormalizePrompt trims the prompt and rejects blank input.
func NormalizePrompt(prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	return prompt, nil
}

// NewImageItem builds a generated image tile titled by its prompt.
func NewImageItem(id, prompt, dataURL string) Item {
	return Item{ID: id, Kind: MediaImage, Title: prompt, Prompt: prompt, URL: dataURL}
}

// NewVideoItem builds the tile recorded for a finished video job.
func NewVideoItem(id string, job VideoJob, contentURL string) Item {
	return Item{ID: id, Kind: MediaVideo, Title: job.Prompt, Prompt: job.Prompt, URL: contentURL, JobID: job.ID}
}

// SeedItems returns the stock tiles shown before anything is generated, in display order.
func SeedItems() []Item {
	return []Item{
		{ID: "1", Kind: MediaImage, Title: "Curious Pup", URL: "https://picsum.photos/id/1062/800/800"},
		{ID: "2", Kind: MediaImage, Title: "Lazy Afternoon", URL: "https://picsum.photos/id/1084/800/800"},
		{ID: "3", Kind: MediaImage, Title: "Mountain Guardian", URL: "https://picsum.photos/id/659/800/800"},
		{ID: "4", Kind: MediaImage, Title: "Wild Whiskers", URL: "https://picsum.photos/id/219/800/800"},
	}
}
