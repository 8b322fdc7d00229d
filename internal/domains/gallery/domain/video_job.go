package domain

import (
	"errors"
	"time"
)

// JobStatus is the lifecycle state of a video generation job.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
	JobCancelled JobStatus = "cancelled"
)

// Terminal reports whether no further transition is possible.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobSucceeded, JobFailed, JobCancelled:
		return true
	default:
		return false
	}
}

var (
	ErrJobNotFound = errors.New("video job not found")
	// ErrJobFinished is returned when cancelling a job that already reached a terminal state.
	ErrJobFinished = errors.New("video job already finished")
	// ErrVideoNotReady is returned when content is requested before the job succeeded.
	ErrVideoNotReady = errors.New("video is not ready")
)

// TimedOutMessage is recorded on jobs that exceeded their maximum wait.
const TimedOutMessage = "video generation timed out"

// VideoJob tracks one long-running video generation.
type VideoJob struct {
	ID            string
	Prompt        string
	Status        JobStatus
	OperationName string
	VideoURI      string
	Error         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VideoProgress is one poll of the upstream operation.
type VideoProgress struct {
	Done  bool
	URI   string
	Error string
}

// NewVideoJob creates a pending job.
func NewVideoJob(id, prompt string, now time.Time) VideoJob {
	return VideoJob{ID: id, Prompt: prompt, Status: JobPending, CreatedAt: now, UpdatedAt: now}
}

// Started records the upstream operation handle.
func (j *VideoJob) Started(operation string, now time.Time) {
	if j.Status.Terminal() {
		return
	}
	j.OperationName = operation
	j.Status = JobRunning
	j.UpdatedAt = now
}

// Apply folds a poll result into the job. It reports whether the job is now terminal.
func (j *VideoJob) Apply(p VideoProgress, now time.Time) bool {
	if j.Status.Terminal() {
		return true
	}
	switch {
	case p.Error != "":
		j.Fail(p.Error, now)
	case p.Done:
		j.Status = JobSucceeded
		j.VideoURI = p.URI
		j.UpdatedAt = now
	}
	return j.Status.Terminal()
}

// Fail moves a live job to failed.
func (j *VideoJob) Fail(reason string, now time.Time) {
	if j.Status.Terminal() {
		return
	}
	j.Status = JobFailed
	j.Error = reason
	j.UpdatedAt = now
}

// Cancel moves a live job to cancelled. It returns ErrJobFinished for terminal jobs.
func (j *VideoJob) Cancel(now time.Time) error {
	if j.Status.Terminal() {
		return ErrJobFinished
	}
	j.Status = JobCancelled
	j.UpdatedAt = now
	return nil
}
