package events

import (
	"log/slog"
	"sync"
)

// DefaultBufferSize is the channel capacity used by NewChannelPublisher
// when a non-positive size is given.
const DefaultBufferSize = 32

// ChannelPublisher forwards notifications onto a buffered channel that a
// presenter drains. Publish never blocks: when the buffer is full the
// notification is dropped and a warning is logged.
type ChannelPublisher struct {
	mu     sync.Mutex
	ch     chan Notification
	closed bool
	logger *slog.Logger
}

// NewChannelPublisher creates a publisher with the given buffer size
func NewChannelPublisher(size int, logger *slog.Logger) *ChannelPublisher {
	if size <= 0 {
		size = DefaultBufferSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ChannelPublisher{
		ch:     make(chan Notification, size),
		logger: logger,
	}
}

// Publish implements Publisher
func (p *ChannelPublisher) Publish(n Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	select {
	case p.ch <- n:
	default:
		p.logger.Warn("notification dropped, buffer full",
			"kind", n.Kind,
			"task_id", n.TaskID)
	}
}

// C returns the receive side of the notification channel
func (p *ChannelPublisher) C() <-chan Notification {
	return p.ch
}

// Close closes the channel. Later Publish calls are ignored.
func (p *ChannelPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	close(p.ch)
}
