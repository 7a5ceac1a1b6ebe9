package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sitekit-labs/sitekit-api/internal/models"
)

// Service builds reservation emails and hands them to a bounded async
// queue, mirroring the audit dispatcher: full queue drops, never blocks.
type Service struct {
	sender        Sender
	businessEmail string
	logger        zerolog.Logger
	queue         chan Message
}

func NewService(sender Sender, businessEmail string, logger zerolog.Logger) *Service {
	s := &Service{
		sender:        sender,
		businessEmail: businessEmail,
		logger:        logger,
		queue:         make(chan Message, 100),
	}

	go s.worker()
	return s
}

func (s *Service) worker() {
	for m := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s.sender.Send(ctx, m); err != nil {
			s.logger.Error().Err(err).Str("to", m.To).Msg("email send failed")
		}
		cancel()
	}
}

func (s *Service) dispatch(m Message) {
	select {
	case s.queue <- m:
	default:
		s.logger.Warn().Str("to", m.To).Msg("email queue full, dropping message")
	}
}

func (s *Service) ReservationCreated(r *models.Reservation) {
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your reservation request for %s at %s. "+
			"We will confirm it shortly.\n",
		r.Name, r.DateKey, r.TimeSlot,
	)

	s.dispatch(Message{
		To:      r.Email,
		Subject: "Reservation request received",
		Body:    body,
	})

	if s.businessEmail != "" {
		s.dispatch(Message{
			To:      s.businessEmail,
			Subject: fmt.Sprintf("New reservation request for %s %s", r.DateKey, r.TimeSlot),
			Body: fmt.Sprintf(
				"%s (%s) requested %s on %s at %s.\n",
				r.Name, r.Email, r.Service, r.DateKey, r.TimeSlot,
			),
		})
	}
}

func (s *Service) ReservationStatusChanged(r *models.Reservation) {
	var subject, body string

	switch r.Status {
	case "confirmed":
		subject = "Reservation confirmed"
		body = fmt.Sprintf(
			"Hi %s,\n\nYour reservation for %s at %s is confirmed.\n",
			r.Name, r.DateKey, r.TimeSlot,
		)
	case "cancelled":
		subject = "Reservation cancelled"
		body = fmt.Sprintf(
			"Hi %s,\n\nYour reservation for %s at %s has been cancelled.\n",
			r.Name, r.DateKey, r.TimeSlot,
		)
	default:
		return
	}

	s.dispatch(Message{
		To:      r.Email,
		Subject: subject,
		Body:    body,
	})
}
