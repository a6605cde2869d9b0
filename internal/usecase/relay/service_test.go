package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/haiminhdev/meeting-relay/errors"
	"github.com/haiminhdev/meeting-relay/internal/domain/entities"
)

type stubRecordStore struct {
	matches   []entities.Record
	findErr   error
	updateErr error

	updateCalls int
	gotPageID   string
	gotStatus   string
	gotTxt      string
	gotSummary  string
}

func (s *stubRecordStore) FindRecordByEmail(_ context.Context, email string) ([]entities.Record, error) {
	return s.matches, s.findErr
}

func (s *stubRecordStore) UpdateMeetingResult(_ context.Context, pageID, status, transcript, summary string) error {
	s.updateCalls++
	s.gotPageID = pageID
	s.gotStatus = status
	s.gotTxt = transcript
	s.gotSummary = summary
	return s.updateErr
}

type stubMessenger struct {
	failFor map[string]error
	sent    []string
}

func (s *stubMessenger) SendText(_ context.Context, phone, message string) error {
	s.sent = append(s.sent, phone)
	if err, ok := s.failFor[phone]; ok {
		return err
	}
	return nil
}

func newTestService(store *stubRecordStore, msg *stubMessenger, phones []string) Service {
	return NewService(store, msg, phones, time.UTC, zap.NewNop())
}

func TestProcessMeetingEnd_HappyPath(t *testing.T) {
	store := &stubRecordStore{matches: []entities.Record{{PageID: "page-1", Email: "ana@x.com"}}}
	msg := &stubMessenger{}
	svc := newTestService(store, msg, []string{"111", "222"})

	event := testEvent()
	res, err := svc.ProcessMeetingEnd(context.Background(), event)
	require.NoError(t, err)

	require.NotEmpty(t, res.EventID)
	require.Equal(t, "page-1", res.PageID)

	require.Equal(t, 1, store.updateCalls)
	require.Equal(t, "page-1", store.gotPageID)
	require.Equal(t, StatusMeetingDone, store.gotStatus)
	require.Equal(t, RenderTranscript(event.Transcript), store.gotTxt)
	require.Equal(t, RenderMeetingMarkdown(event, time.UTC), store.gotSummary)

	require.Equal(t, []string{"111", "222"}, msg.sent)
	require.Len(t, res.Deliveries, 2)
	for _, d := range res.Deliveries {
		require.False(t, d.Failed())
	}
}

func TestProcessMeetingEnd_RecordNotFound(t *testing.T) {
	store := &stubRecordStore{}
	msg := &stubMessenger{}
	svc := newTestService(store, msg, []string{"111"})

	_, err := svc.ProcessMeetingEnd(context.Background(), testEvent())
	require.Error(t, err)

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.ErrorCode_RECORD_NOT_FOUND, appErr.Code)

	require.Zero(t, store.updateCalls)
	require.Empty(t, msg.sent)
}

func TestProcessMeetingEnd_AmbiguousRecord(t *testing.T) {
	store := &stubRecordStore{matches: []entities.Record{
		{PageID: "page-1"}, {PageID: "page-2"},
	}}
	msg := &stubMessenger{}
	svc := newTestService(store, msg, []string{"111"})

	_, err := svc.ProcessMeetingEnd(context.Background(), testEvent())

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.ErrorCode_AMBIGUOUS_RECORD, appErr.Code)
	require.Equal(t, "2", appErr.Details["matches"])

	require.Zero(t, store.updateCalls)
	require.Empty(t, msg.sent)
}

func TestProcessMeetingEnd_LookupTransportError(t *testing.T) {
	store := &stubRecordStore{findErr: errors.New("connection refused")}
	svc := newTestService(store, &stubMessenger{}, nil)

	_, err := svc.ProcessMeetingEnd(context.Background(), testEvent())

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.ErrorCode_EXTERNAL_API_FAILED, appErr.Code)
	require.Zero(t, store.updateCalls)
}

func TestProcessMeetingEnd_UpdateFailed(t *testing.T) {
	store := &stubRecordStore{
		matches:   []entities.Record{{PageID: "page-1"}},
		updateErr: errors.New("boom"),
	}
	msg := &stubMessenger{}
	svc := newTestService(store, msg, []string{"111"})

	_, err := svc.ProcessMeetingEnd(context.Background(), testEvent())

	var appErr apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.ErrorCode_UPDATE_FAILED, appErr.Code)

	// Update is attempted exactly once (no retry) and notification never runs.
	require.Equal(t, 1, store.updateCalls)
	require.Empty(t, msg.sent)
}

func TestProcessMeetingEnd_NotificationFanOutIndependence(t *testing.T) {
	store := &stubRecordStore{matches: []entities.Record{{PageID: "page-1"}}}
	msg := &stubMessenger{failFor: map[string]error{"111": errors.New("unreachable")}}
	svc := newTestService(store, msg, []string{"111", "222", "333"})

	res, err := svc.ProcessMeetingEnd(context.Background(), testEvent())

	// A failed send never fails the event and never skips later phones.
	require.NoError(t, err)
	require.Equal(t, []string{"111", "222", "333"}, msg.sent)
	require.Len(t, res.Deliveries, 3)
	require.True(t, res.Deliveries[0].Failed())
	require.False(t, res.Deliveries[1].Failed())
	require.False(t, res.Deliveries[2].Failed())
}

func TestProcessMeetingEnd_NoConfiguredPhones(t *testing.T) {
	store := &stubRecordStore{matches: []entities.Record{{PageID: "page-1"}}}
	msg := &stubMessenger{}
	svc := newTestService(store, msg, nil)

	res, err := svc.ProcessMeetingEnd(context.Background(), testEvent())
	require.NoError(t, err)
	require.Empty(t, res.Deliveries)
	require.Empty(t, msg.sent)
}
