package domain

// SanitizedArgs is the list of cargo arguments left after removing the flags
// the orchestrator owns (release mode and message format).
type SanitizedArgs struct {
	// Args are the pass-through tokens in their original order.
	Args []string
	// HasTarget is true when the user already passed --target.
	HasTarget bool
}
