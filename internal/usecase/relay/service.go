package relay

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/haiminhdev/meeting-relay/errors"
	"github.com/haiminhdev/meeting-relay/internal/domain/entities"
)

// StatusMeetingDone is the fixed status literal written to the record
// after a successful relay.
const StatusMeetingDone = "Reunião Realizada"

// RecordStore abstracts the knowledge-base API consumed by the relay
type RecordStore interface {
	FindRecordByEmail(ctx context.Context, email string) ([]entities.Record, error)
	UpdateMeetingResult(ctx context.Context, pageID, status, transcript, summary string) error
}

// Messenger abstracts the messaging API consumed by the relay
type Messenger interface {
	SendText(ctx context.Context, phone, message string) error
}

// Service defines the webhook processing sequence
type Service interface {
	ProcessMeetingEnd(ctx context.Context, event *entities.MeetingEvent) (*Result, error)
}

// Result reports the outcome of one processed event
type Result struct {
	EventID    string
	PageID     string
	Deliveries []entities.DeliveryResult
}

type relayService struct {
	records   RecordStore
	messenger Messenger
	phones    []string
	loc       *time.Location
	logger    *zap.Logger
}

// NewService constructs the relay service
func NewService(records RecordStore, messenger Messenger, phones []string, loc *time.Location, logger *zap.Logger) Service {
	return &relayService{
		records:   records,
		messenger: messenger,
		phones:    phones,
		loc:       loc,
		logger:    logger,
	}
}

// ProcessMeetingEnd runs the linear relay sequence: find the record by the
// owner's email, render the transcript and summary, patch the record, then
// fan out the notification. No step is retried. Notification failures are
// collected and logged but never fail the event; the record update is the
// authoritative side effect.
func (s *relayService) ProcessMeetingEnd(ctx context.Context, event *entities.MeetingEvent) (*Result, error) {
	eventID := uuid.NewString()

	s.logger.Info("📥 Processing meeting-end event",
		zap.String("event_id", eventID),
		zap.String("session_id", event.SessionID),
		zap.String("owner_email", event.Owner.Email),
		zap.String("title", event.Title),
	)

	matches, err := s.records.FindRecordByEmail(ctx, event.Owner.Email)
	if err != nil {
		s.logger.Error("❌ Record lookup failed",
			zap.String("event_id", eventID),
			zap.Error(err),
		)
		return nil, errors.ErrExternalAPIFailed("notion", err)
	}
	switch {
	case len(matches) == 0:
		return nil, errors.ErrRecordNotFound(event.Owner.Email)
	case len(matches) > 1:
		return nil, errors.ErrAmbiguousRecord(event.Owner.Email, len(matches))
	}
	record := matches[0]

	transcript := RenderTranscript(event.Transcript)
	summary := RenderMeetingMarkdown(event, s.loc)

	if err := s.records.UpdateMeetingResult(ctx, record.PageID, StatusMeetingDone, transcript, summary); err != nil {
		s.logger.Error("❌ Record update failed",
			zap.String("event_id", eventID),
			zap.String("page_id", record.PageID),
			zap.Error(err),
		)
		return nil, errors.ErrUpdateFailed(err)
	}

	s.logger.Info("✅ Record updated",
		zap.String("event_id", eventID),
		zap.String("page_id", record.PageID),
	)

	deliveries := s.notifyAdmins(ctx, eventID, FormatNotification(event))

	return &Result{
		EventID:    eventID,
		PageID:     record.PageID,
		Deliveries: deliveries,
	}, nil
}

// notifyAdmins sends the message to every configured phone. Sends are
// independent: a failure on one destination does not block the others.
func (s *relayService) notifyAdmins(ctx context.Context, eventID, message string) []entities.DeliveryResult {
	deliveries := make([]entities.DeliveryResult, 0, len(s.phones))
	for _, phone := range s.phones {
		err := s.messenger.SendText(ctx, phone, message)
		if err != nil {
			s.logger.Error("❌ Notification send failed",
				zap.String("event_id", eventID),
				zap.String("phone", phone),
				zap.Error(errors.ErrNotificationFailed(phone, err)),
			)
		}
		deliveries = append(deliveries, entities.DeliveryResult{Phone: phone, Err: err})
	}
	return deliveries
}
