package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher decouples email delivery from request handling. Enqueue never
// blocks and never fails the caller: on a full queue the message is dropped
// with a log line, and send errors are swallowed by the worker. At-most-once,
// no retries.
type Dispatcher struct {
	mailer Mailer
	log    *zap.Logger
	queue  chan Message

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(mailer Mailer, log *zap.Logger, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	d := &Dispatcher{
		mailer: mailer,
		log:    log,
		queue:  make(chan Message, buffer),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) Enqueue(m Message) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.log.Warn("dispatcher closed, dropping message",
			zap.String("to", m.To),
			zap.String("subject", m.Subject),
		)
		return
	}
	select {
	case d.queue <- m:
	default:
		d.log.Warn("notification queue full, dropping message",
			zap.String("to", m.To),
			zap.String("subject", m.Subject),
		)
	}
}

// Close drains queued messages and stops the worker. Enqueue after Close
// drops the message.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for m := range d.queue {
		if err := d.mailer.Send(m.To, m.Subject, m.Body); err != nil {
			d.log.Error("send mail failed",
				zap.String("to", m.To),
				zap.String("subject", m.Subject),
				zap.Error(err),
			)
			continue
		}
		d.log.Info("mail sent", zap.String("to", m.To), zap.String("subject", m.Subject))
	}
}
