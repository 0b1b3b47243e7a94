package domain

// StreamMode describes how a standard stream of the child process is wired.
type StreamMode int

const (
	// StreamInherit connects the stream to the parent's stream.
	StreamInherit StreamMode = iota
	// StreamCapture connects the stream to a pipe read by the orchestrator.
	StreamCapture
)

// BuildInvocation fully describes a build driver process to spawn.
type BuildInvocation struct {
	// Program is the executable name or path.
	Program string
	// Args are the arguments passed after the program name.
	Args []string
	// Env holds "KEY=VALUE" entries layered on top of the parent environment.
	Env []string

	Stdin  StreamMode
	Stdout StreamMode
	Stderr StreamMode
}
