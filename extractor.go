package unsublink

import "context"

// Stage identifies the pipeline stage that produced an extraction result.
type Stage string

// Pipeline stages.
const (
	StageNone       Stage = ""
	StageHeuristic  Stage = "heuristic"
	StagePattern    Stage = "pattern"
	StageModel      Stage = "model"
	StageBestEffort Stage = "best_effort"
)

// ExtractionResult holds the outcome of a single extraction call.
type ExtractionResult struct {
	// Link is the selected unsubscribe URL. Empty means no link was found.
	Link string

	// Anchors lists every http(s) anchor href in document order, even
	// when no link was found.
	Anchors []string

	// Stage records which stage produced Link.
	Stage Stage

	// Valid reports whether Link passed ValidURL.
	Valid bool
}

// Extractor determines the unsubscribe link of an email body.
type Extractor interface {
	// Extract never fails: errors from any stage degrade the result
	// instead of being returned. The context is only observed by the
	// model stage.
	Extract(ctx context.Context, body string) *ExtractionResult
}
