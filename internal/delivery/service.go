package delivery

import (
	"context"
	"log"
	"sync"
	"time"

	"modwall/internal/eventbus"
)

// Service delivers every requested submission and reports the outcome on the bus
type Service struct {
	bus         eventbus.EventBus
	deliverer   Deliverer
	timeout     time.Duration
	workerPool  chan struct{} // Semaphore for limiting concurrent deliveries
	wg          sync.WaitGroup
	unsubscribe func()

	mu     sync.Mutex
	closed bool
}

// NewService subscribes a delivery service to submission requests
func NewService(bus eventbus.EventBus, deliverer Deliverer, timeout time.Duration) *Service {
	s := &Service{
		bus:        bus,
		deliverer:  deliverer,
		timeout:    timeout,
		workerPool: make(chan struct{}, 2),
	}

	s.unsubscribe = bus.Subscribe(eventbus.EventSubmissionRequested, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.SubmissionRequestedEvent)
		if !ok || !s.track() {
			return
		}
		defer s.wg.Done()
		s.handle(event)
	})
	return s
}

// track registers a delivery unless the service is closing
func (s *Service) track() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.wg.Add(1)
	return true
}

func (s *Service) handle(event eventbus.SubmissionRequestedEvent) {
	s.workerPool <- struct{}{}
	defer func() { <-s.workerPool }()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	id := event.Envelope.ID
	err := s.deliverer.Deliver(ctx, event.Envelope)
	if err != nil {
		log.Printf("Failed to deliver submission %s: %v", id, err)
	} else {
		log.Printf("Delivered submission %s", id)
	}
	s.bus.Publish(eventbus.SubmissionCompletedEvent{ID: id, Err: err})
}

// Close stops accepting requests, waits for in-flight deliveries and closes the deliverer
func (s *Service) Close() error {
	s.unsubscribe()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.wg.Wait()
	return s.deliverer.Close()
}
