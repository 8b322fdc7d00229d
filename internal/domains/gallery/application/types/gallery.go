package types

import (
	"io"

	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
	"github.com/Apurer/pet-encyclopedia/internal/shared/projection"
)

// ItemProjection is a gallery tile plus its storage timestamps.
type ItemProjection = projection.Projection[*domain.Item]

// GenerateInput carries a user prompt for the AI lab.
type GenerateInput struct {
	Prompt string
}

// VideoJobInput identifies a video job.
type VideoJobInput struct {
	ID string
}

// Capabilities tells the client whether generation can be offered.
type Capabilities struct {
	GenerationEnabled bool
}

// VideoJobView is a job status plus the gallery item once recorded.
type VideoJobView struct {
	Job  domain.VideoJob
	Item *ItemProjection
}

// VideoContent is an open stream of a generated clip. The caller closes Body.
type VideoContent struct {
	Body        io.ReadCloser
	ContentType string
}
