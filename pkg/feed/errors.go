package feed

import "fmt"

// Stage names the step of a fetch that failed.
type Stage string

const (
	StageDownload Stage = "download"
	StageParse    Stage = "parse"
)

// Error is a failed feed fetch with its upstream cause.
type Error struct {
	Kind  Kind
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("feed %s: %s: %v", e.Kind, e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
