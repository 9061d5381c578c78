package preset

import (
	apperr "github.com/KirkDiggler/mod-preset-manager/internal/errors"
)

// Ambiguity is a non-fatal reconciliation finding: a path fallback matched
// more than one inventory mod and the first was used.
type Ambiguity struct {
	Code       apperr.Code
	EntryModID string
	FullPath   string
	ChosenID   string
	Candidates []string
}

// AppliedMod is an entry that was enabled
type AppliedMod struct {
	ModID     string
	FullPath  string
	Character string
}

// Conflict records an entry overridden by a later entry for the same single-mod character
type Conflict struct {
	Character    string
	OverriddenID string
	WinnerID     string
}

// FailedMod records an enable or disable call that errored
type FailedMod struct {
	ModID     string
	Character string
	Err       error
}

// ApplyReport describes the outcome of applying a preset. Partial application
// is reported here rather than rolled back.
type ApplyReport struct {
	PresetName     string
	Applied        []AppliedMod
	Disabled       []AppliedMod
	SkippedMissing []ModPresetEntry
	Conflicts      []Conflict
	Ambiguities    []Ambiguity
	Failed         []FailedMod
}

// Complete reports whether every resolved entry was enabled without failure
func (r *ApplyReport) Complete() bool {
	return len(r.Failed) == 0 && len(r.SkippedMissing) == 0
}
