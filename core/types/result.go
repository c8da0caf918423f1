package types

// CommandResult is what a handler produces when it recognizes an
// utterance. A nil *CommandResult means "not mine", and the dispatcher
// moves on to the next handler.
type CommandResult struct {
	Response      string
	MemoryChanged bool
}

// Reply wraps a response text in a result that left memory untouched.
func Reply(response string) *CommandResult {
	return &CommandResult{Response: response}
}

// Stored wraps a confirmation for a response that mutated memory.
func Stored(response string) *CommandResult {
	return &CommandResult{Response: response, MemoryChanged: true}
}
