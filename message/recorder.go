package message

// Recorder is a Subscriber that simply appends every message it receives,
// used by tests to assert on the exact sequence of messages an operation
// emits. Package modifier's store_messages flag keeps its own log instead.
type Recorder struct {
	messages []Message
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// HandleMessage implements Subscriber.
func (r *Recorder) HandleMessage(m Message) {
	r.messages = append(r.messages, m)
}

// Messages returns every message recorded so far, in publication order.
func (r *Recorder) Messages() []Message {
	return r.messages
}

// Reset discards every recorded message.
func (r *Recorder) Reset() {
	r.messages = nil
}

// Len returns the number of recorded messages.
func (r *Recorder) Len() int {
	return len(r.messages)
}
