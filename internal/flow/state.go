package flow

// state is a step in the selection/confirmation protocol. Each run walks
// Idle → Listing → AwaitingSelection → PendingGuardrailCheck →
// AwaitingFinalConfirmation → Executing → Done, with Refused reachable
// from the guardrail check and Cancelled from either confirmation step.
type state int

const (
	stateIdle state = iota
	stateListing
	stateAwaitingSelection
	statePendingGuardrailCheck
	stateAwaitingFinalConfirmation
	stateExecuting
	stateDone
	stateRefused
	stateCancelled
)

var stateNames = map[state]string{
	stateIdle:                      "idle",
	stateListing:                   "listing",
	stateAwaitingSelection:         "awaiting_selection",
	statePendingGuardrailCheck:     "pending_guardrail_check",
	stateAwaitingFinalConfirmation: "awaiting_final_confirmation",
	stateExecuting:                 "executing",
	stateDone:                      "done",
	stateRefused:                   "refused",
	stateCancelled:                 "cancelled",
}

func (s state) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
