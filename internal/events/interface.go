package events

// Publisher receives notifications from the task store.
// Implementations must not block the caller.
type Publisher interface {
	Publish(n Notification)
}

// Nop discards every notification
type Nop struct{}

// Publish implements Publisher
func (Nop) Publish(Notification) {}
