package runtime

// Request is one inbound photo message, already downloaded by the chat
// client that received it.
type Request struct {
	ID       string
	Platform string
	ChatID   string
	Caption  string
	Image    []byte

	// Respond delivers the final reply to the originating chat.
	Respond func(text string) error
	// Progress updates the status message while the analysis runs. Optional.
	Progress func(text string)
}

type Event struct {
	Request *Request
}
