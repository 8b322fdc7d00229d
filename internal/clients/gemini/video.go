package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrOperationNameMissing is returned when the API accepts a video request without an operation handle.
var ErrOperationNameMissing = errors.New("video operation has no name")

// VideoOperation is the polled state of a long-running video generation.
type VideoOperation struct {
	Name  string
	Done  bool
	URI   string
	Error string
}

// StartVideo submits a 720p 16:9 video generation and returns the operation handle.
func (c *Client) StartVideo(ctx context.Context, subject string) (string, error) {
	api, err := c.client(ctx)
	if err != nil {
		return "", err
	}
	prompt := fmt.Sprintf("A cute cinematic video of %s", strings.TrimSpace(subject))
	op, err := api.Models.GenerateVideos(ctx, c.cfg.VideoModel, prompt, nil, &genai.GenerateVideosConfig{
		NumberOfVideos: 1,
		Resolution:     "720p",
		AspectRatio:    "16:9",
	})
	if err != nil {
		return "", fmt.Errorf("generate videos: %w", err)
	}
	if op == nil || op.Name == "" {
		return "", ErrOperationNameMissing
	}
	return op.Name, nil
}

// PollVideo refreshes the operation once.
func (c *Client) PollVideo(ctx context.Context, name string) (*VideoOperation, error) {
	api, err := c.client(ctx)
	if err != nil {
		return nil, err
	}
	op, err := api.Operations.GetVideosOperation(ctx, &genai.GenerateVideosOperation{Name: name}, nil)
	if err != nil {
		return nil, fmt.Errorf("get videos operation: %w", err)
	}
	out := &VideoOperation{Name: name, Done: op.Done}
	if len(op.Error) > 0 {
		out.Error = fmt.Sprint(op.Error["message"])
		return out, nil
	}
	if op.Done {
		if op.Response == nil || len(op.Response.GeneratedVideos) == 0 ||
			op.Response.GeneratedVideos[0].Video == nil || op.Response.GeneratedVideos[0].Video.URI == "" {
			out.Error = "no video generated"
			return out, nil
		}
		out.URI = op.Response.GeneratedVideos[0].Video.URI
	}
	return out, nil
}
