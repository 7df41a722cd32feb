package pipeline

import "errors"

// ErrURLRequired is returned before any external call when the URL is empty.
var ErrURLRequired = errors.New("URL is required")

// Stage names the pipeline step an error came from.
type Stage string

const (
	StageDownloading  Stage = "downloading"
	StageTranscribing Stage = "transcribing"
	StageSummarizing  Stage = "summarizing"
)

// StageError tags an error with its stage. Its message is the cause's
// message unchanged, so callers can surface it as is.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return e.Err.Error() }

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}

// StageOf reports the stage an error was raised in, if any.
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
