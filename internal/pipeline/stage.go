// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import "fmt"

// Stage is a state of a stamping run. A run moves through the stages in
// order; any error moves it to StageFailed.
type Stage int

const (
	StageStart Stage = iota
	StageLoaded
	StageMapped
	StageRendered
	StageWritten
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageStart:    "start",
	StageLoaded:   "loaded",
	StageMapped:   "mapped",
	StageRendered: "rendered",
	StageWritten:  "written",
	StageDone:     "done",
	StageFailed:   "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// StageError reports the step that failed: load, render, write or verify.
type StageError struct {
	Step string
	Err  error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
