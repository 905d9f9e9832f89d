package types

import "github.com/google/uuid"

// FlowID identifies one orchestration run. It is used only for log
// correlation, never for control decisions.
type FlowID string

func NewFlowID() FlowID {
	return FlowID(uuid.NewString())
}

func (x FlowID) String() string {
	return string(x)
}
