package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWidgetMissing = errors.New("widget missing")

func widgetMapper(err error) (ProblemDetail, bool) {
	if errors.Is(err, errWidgetMissing) {
		return NewNotFoundProblem("widget", 7), true
	}
	return ProblemDetail{}, false
}

func respondWith(t *testing.T, path string, fn func(c *gin.Context)) (*httptest.ResponseRecorder, ProblemDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	fn(c)

	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return rec, problem
}

func TestRespondErrorUsesMappers(t *testing.T) {
	r := NewResponder("", widgetMapper)
	rec, problem := respondWith(t, "/widgets/7", func(c *gin.Context) {
		r.RespondError(c, fmt.Errorf("load: %w", errWidgetMissing))
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
	want := ProblemDetail{
		Type:       TypeNotFound,
		Title:      "Resource Not Found",
		Status:     http.StatusNotFound,
		Detail:     "widget '7' not found",
		Instance:   "/widgets/7",
		Extensions: map[string]any{"resourceType": "widget", "identifier": float64(7)},
	}
	if diff := cmp.Diff(want, problem); diff != "" {
		t.Fatalf("problem mismatch (-want +got):\n%s", diff)
	}
}

func TestRespondErrorPassesProblemsThrough(t *testing.T) {
	rec, problem := respondWith(t, "/x", func(c *gin.Context) {
		RespondError(c, fmt.Errorf("wrapped: %w", ErrConflict.WithDetail("already done")))
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "already done", problem.Detail)
}

func TestRespondErrorFallsBackToInternal(t *testing.T) {
	rec, problem := respondWith(t, "/x", func(c *gin.Context) {
		NewResponder("", widgetMapper).RespondError(c, errors.New("boom"))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, TypeInternal, problem.Type)
	assert.Equal(t, "boom", problem.Detail)
}

func TestResponderPrefixesRelativeTypes(t *testing.T) {
	r := NewResponder("https://docs.example").With(widgetMapper)
	_, problem := respondWith(t, "/widgets/7", func(c *gin.Context) {
		r.RespondError(c, errWidgetMissing)
	})

	assert.Equal(t, "https://docs.example"+TypeNotFound, problem.Type)
}

func TestWithExtensionDoesNotMutateReceiver(t *testing.T) {
	base := ErrUpstreamFailure.WithExtension("source", "curated")
	derived := base.WithExtension("upstreamStatus", 503)

	assert.Len(t, base.Extensions, 1)
	assert.Len(t, derived.Extensions, 2)
	assert.Nil(t, ErrUpstreamFailure.Extensions)
}

func TestNewUpstreamProblemOmitsUnknownStatus(t *testing.T) {
	p := NewUpstreamProblem("generative", 0, "timeout")
	assert.Equal(t, http.StatusBadGateway, p.Status)
	assert.Equal(t, map[string]any{"source": "generative"}, p.Extensions)

	p = NewUpstreamProblem("curated", 500, "boom")
	assert.Equal(t, 500, p.Extensions["upstreamStatus"])
}

func TestHTTPStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatusFromError(fmt.Errorf("x: %w", ErrServiceUnavailable)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromError(errors.New("plain")))
}
