package encyclopediaserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/adapters/http/mapper"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/adapters/memory"
	galleryapp "github.com/Apurer/pet-encyclopedia/internal/domains/gallery/application"
	"github.com/Apurer/pet-encyclopedia/internal/domains/gallery/domain"
	apierrors "github.com/Apurer/pet-encyclopedia/internal/shared/errors"
)

type fakeMedia struct {
	enabled  bool
	imageErr error
}

func (f fakeMedia) Enabled() bool { return f.enabled }

func (f fakeMedia) GenerateImage(_ context.Context, prompt string) (string, error) {
	if f.imageErr != nil {
		return "", f.imageErr
	}
	return "data:image/png;base64,QUJD", nil
}

func (f fakeMedia) OpenVideo(_ context.Context, uri string) (io.ReadCloser, string, error) {
	return io.NopCloser(strings.NewReader("mp4:" + uri)), "video/mp4", nil
}

type fakeVideos struct {
	jobs map[string]domain.VideoJob
}

func (f *fakeVideos) StartVideo(_ context.Context, prompt string) (*domain.VideoJob, error) {
	job := domain.VideoJob{ID: "job-new", Prompt: prompt, Status: domain.JobPending}
	f.jobs[job.ID] = job
	return &job, nil
}

func (f *fakeVideos) VideoStatus(_ context.Context, id string) (*domain.VideoJob, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return &job, nil
}

func (f *fakeVideos) CancelVideo(_ context.Context, id string) (*domain.VideoJob, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if err := job.Cancel(job.UpdatedAt); err != nil {
		return &job, err
	}
	f.jobs[id] = job
	return &job, nil
}

func newGalleryRouter(media fakeMedia) (*gin.Engine, *fakeVideos) {
	videos := &fakeVideos{jobs: map[string]domain.VideoJob{
		"done":    {ID: "done", Prompt: "corgi surfing", Status: domain.JobSucceeded, VideoURI: "https://files/v.mp4"},
		"running": {ID: "running", Prompt: "cat piano", Status: domain.JobRunning},
	}}
	svc := galleryapp.NewService(memory.NewSeededRepository(), media, videos)
	return NewRouterWithGinEngine(gin.New(), ApiHandleFunctions{GalleryAPI: NewGalleryAPI(svc)}), videos
}

func TestListGalleryReturnsSeeds(t *testing.T) {
	router, _ := newGalleryRouter(fakeMedia{})

	rec := serve(router, http.MethodGet, "/api/v1/gallery", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var items []mapper.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 4)
	assert.Equal(t, "Curious Pup", items[0].Title)
	assert.Equal(t, "image", items[0].Type)
}

func TestGalleryCapabilities(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		router, _ := newGalleryRouter(fakeMedia{enabled: enabled})
		rec := serve(router, http.MethodGet, "/api/v1/gallery/capabilities", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var caps mapper.Capabilities
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &caps))
		assert.Equal(t, enabled, caps.GenerationEnabled)
	}
}

func TestGenerateGalleryImage(t *testing.T) {
	router, _ := newGalleryRouter(fakeMedia{enabled: true})

	rec := serve(router, http.MethodPost, "/api/v1/gallery/images", `{"prompt":" a dog playing a golden piano "}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var item mapper.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "a dog playing a golden piano", item.Title)
	assert.True(t, strings.HasPrefix(item.URL, "data:image/png;base64,"))

	list := serve(router, http.MethodGet, "/api/v1/gallery", "")
	var items []mapper.Item
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &items))
	assert.Equal(t, item.ID, items[0].ID)
}

func TestGenerateGalleryImageErrors(t *testing.T) {
	cases := map[string]struct {
		media  fakeMedia
		body   string
		status int
	}{
		"blank prompt":   {fakeMedia{enabled: true}, `{"prompt":"   "}`, http.StatusBadRequest},
		"bad json":       {fakeMedia{enabled: true}, `{`, http.StatusBadRequest},
		"no credential":  {fakeMedia{}, `{"prompt":"pug"}`, http.StatusServiceUnavailable},
		"upstream error": {fakeMedia{enabled: true, imageErr: errors.New("quota")}, `{"prompt":"pug"}`, http.StatusBadGateway},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			router, _ := newGalleryRouter(tc.media)
			rec := serve(router, http.MethodPost, "/api/v1/gallery/images", tc.body)
			assert.Equal(t, tc.status, rec.Code)
			decodeProblem(t, rec)
		})
	}
}

func TestStartGalleryVideo(t *testing.T) {
	router, _ := newGalleryRouter(fakeMedia{enabled: true})

	rec := serve(router, http.MethodPost, "/api/v1/gallery/videos", `{"prompt":"corgi surfing"}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "/api/v1/gallery/videos/job-new", rec.Header().Get("Location"))
	var job mapper.VideoJob
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "pending", job.Status)
	assert.Empty(t, job.ContentURL)
}

func TestGetGalleryVideoRecordsFinishedClip(t *testing.T) {
	router, _ := newGalleryRouter(fakeMedia{enabled: true})

	rec := serve(router, http.MethodGet, "/api/v1/gallery/videos/done", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var job mapper.VideoJob
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "succeeded", job.Status)
	assert.Equal(t, "/api/v1/gallery/videos/done/content", job.ContentURL)
	require.NotNil(t, job.Item)
	assert.Equal(t, "video", job.Item.Type)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/api/v1/gallery/videos/nope", "").Code)
}

func TestCancelGalleryVideo(t *testing.T) {
	router, videos := newGalleryRouter(fakeMedia{enabled: true})

	rec := serve(router, http.MethodDelete, "/api/v1/gallery/videos/running", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.JobCancelled, videos.jobs["running"].Status)

	rec = serve(router, http.MethodDelete, "/api/v1/gallery/videos/done", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apierrors.TypeConflict, decodeProblem(t, rec).Type)
}

func TestStreamGalleryVideo(t *testing.T) {
	router, _ := newGalleryRouter(fakeMedia{enabled: true})

	rec := serve(router, http.MethodGet, "/api/v1/gallery/videos/done/content", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "video/mp4", rec.Header().Get("Content-Type"))
	assert.Equal(t, "mp4:https://files/v.mp4", rec.Body.String())

	rec = serve(router, http.MethodGet, "/api/v1/gallery/videos/running/content", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}
