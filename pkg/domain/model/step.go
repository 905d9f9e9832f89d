package model

// Step icons shown by the CLI renderer
const (
	IconSuccess = "success"
	IconSkipped = "skipped"
)

// ResponseStep is one entry of the append-only progress log. It describes a
// completed network call and is used purely for display, never for control
// decisions.
type ResponseStep struct {
	Message          string
	SecondaryMessage string
	Link             string
	Icon             string
}

// StepNotifyFn receives each completed step with the progress counters of the
// running sequence. Progress percent is completed * 100 / total.
type StepNotifyFn func(step ResponseStep, completed, total int)
