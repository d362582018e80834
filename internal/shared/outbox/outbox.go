package outbox

// Status of a queued message. Rows move pending -> published; failed rows
// keep their retry count for the relay to pick up again.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusFailed    Status = "failed"
)

// Message is one queued event, written in the same commit as the state
// change it announces. The worker relay drains pending rows in order and
// publishes them to the bus.
type Message struct {
	ID         string
	EventType  string
	Payload    []byte
	Status     Status
	RetryCount int
}
