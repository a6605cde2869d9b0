package webhook

import "github.com/haiminhdev/meeting-relay/internal/domain/entities"

// MeetingEndAck acknowledges a processed meeting-end event. Notification
// failures are reported here but do not change the request outcome.
type MeetingEndAck struct {
	EventID              string            `json:"event_id"`
	PageID               string            `json:"page_id"`
	Notified             int               `json:"notified"`
	NotificationFailures []DeliveryFailure `json:"notification_failures,omitempty"`
}

// DeliveryFailure reports one failed notification send
type DeliveryFailure struct {
	Phone string `json:"phone"`
	Error string `json:"error"`
}

// NewMeetingEndAck builds the ack body from delivery results
func NewMeetingEndAck(eventID, pageID string, deliveries []entities.DeliveryResult) MeetingEndAck {
	ack := MeetingEndAck{
		EventID: eventID,
		PageID:  pageID,
	}
	for _, d := range deliveries {
		if d.Failed() {
			ack.NotificationFailures = append(ack.NotificationFailures, DeliveryFailure{
				Phone: d.Phone,
				Error: d.Err.Error(),
			})
			continue
		}
		ack.Notified++
	}
	return ack
}
