package notification

import (
	"context"
	"log"
	"time"
)

// Trigger decouples booking commits from dispatch: the appointment row
// is already committed when a notification is queued, and a full queue
// drops the notification rather than blocking the API.
type Trigger struct {
	uc    *Dispatch
	queue chan string
}

func NewTrigger(uc *Dispatch) *Trigger {
	t := &Trigger{
		uc:    uc,
		queue: make(chan string, 100),
	}

	go t.worker()
	return t
}

func (t *Trigger) worker() {
	for id := range t.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := t.uc.Execute(ctx, id); err != nil {
			log.Printf("notification dispatch for %s failed: %v", id, err)
		}
		cancel()
	}
}

func (t *Trigger) Notify(appointmentID string) {
	select {
	case t.queue <- appointmentID:
	default:
		log.Println("notification queue full, dropping dispatch")
	}
}
