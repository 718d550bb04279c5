package queue

// QueueError is a custom error type for queue admission errors
type QueueError string

// Error implements the error interface
func (e QueueError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrPanelNotFound    QueueError = "no panel in this channel"
	ErrQueueNotFound    QueueError = "queue not found"
	ErrInvalidCapacity  QueueError = "invalid queue capacity"
	ErrAlreadyJoined    QueueError = "participant already in queue"
	ErrNotInQueue       QueueError = "participant not in queue"
	ErrQueueFull        QueueError = "queue is full"
	ErrPermissionDenied QueueError = "permission denied"
	ErrStoreIO          QueueError = "store read/write failed"
	ErrInvalidInput     QueueError = "invalid input"
	ErrUnknownCategory  QueueError = "unknown activity category"
	ErrNoModes          QueueError = "at least one mode is required"
	ErrInvalidPrice     QueueError = "unit price cannot be negative"
	ErrNilConfig        QueueError = "config cannot be nil"
	ErrNilStore         QueueError = "store repository cannot be nil"
)
