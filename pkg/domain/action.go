package domain

// ActionKind discriminates what the host should do after a step completes.
type ActionKind string

const (
	// ActionNextStep advances the run to another step.
	ActionNextStep ActionKind = "next-step"

	// ActionExit terminates the run with a reason.
	ActionExit ActionKind = "exit"
)

// NextAction is the state machine's decision for a completed step.
type NextAction struct {
	Kind ActionKind `json:"kind"`

	// StepName is the target step when Kind is ActionNextStep.
	StepName string `json:"step_name,omitempty"`

	// Reason explains the termination when Kind is ActionExit. It
	// distinguishes an explicit exit transition from an outcome with no
	// transition defined (the latter names the unmatched tag).
	Reason string `json:"reason,omitempty"`
}

// NextStep builds an advance action.
func NextStep(stepName string) NextAction {
	return NextAction{Kind: ActionNextStep, StepName: stepName}
}

// Exit builds a terminating action.
func Exit(reason string) NextAction {
	return NextAction{Kind: ActionExit, Reason: reason}
}

// IsExit reports whether the action terminates the run.
func (a NextAction) IsExit() bool {
	return a.Kind == ActionExit
}
