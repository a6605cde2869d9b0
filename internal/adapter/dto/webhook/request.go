package webhook

import (
	"time"

	"github.com/haiminhdev/meeting-relay/internal/domain/entities"
)

// MeetingEndRequest is the wire shape of a meeting-ended webhook event
// from the meeting intelligence source.
type MeetingEndRequest struct {
	SessionID        string           `json:"session_id"`
	Trigger          string           `json:"trigger"`
	Title            string           `json:"title" validate:"required"`
	StartTime        string           `json:"start_time" validate:"required,rfc3339"`
	EndTime          string           `json:"end_time" validate:"required,rfc3339"`
	ReportURL        string           `json:"report_url"`
	Platform         string           `json:"platform"`
	Owner            PersonPayload    `json:"owner" validate:"required"`
	Participants     []PersonPayload  `json:"participants" validate:"dive"`
	Summary          string           `json:"summary"`
	Topics           []TextItem       `json:"topics" validate:"dive"`
	ActionItems      []TextItem       `json:"action_items" validate:"dive"`
	KeyQuestions     []TextItem       `json:"key_questions" validate:"dive"`
	ChapterSummaries []ChapterPayload `json:"chapter_summaries" validate:"dive"`
	Transcript       TranscriptBody   `json:"transcript"`
}

// PersonPayload identifies a participant in the payload
type PersonPayload struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

// TextItem is a single text entry (topic, action item, key question)
type TextItem struct {
	Text string `json:"text" validate:"required"`
}

// ChapterPayload is one summary chapter
type ChapterPayload struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Topics      []TextItem `json:"topics" validate:"dive"`
}

// TranscriptBody carries the ordered speaker turns
type TranscriptBody struct {
	SpeakerBlocks []SpeakerBlock `json:"speaker_blocks" validate:"required,min=1,dive"`
}

// SpeakerBlock is one speaker turn on the wire
type SpeakerBlock struct {
	Speaker   SpeakerPayload `json:"speaker"`
	Words     string         `json:"words"`
	StartTime float64        `json:"start_time"`
	EndTime   float64        `json:"end_time"`
}

// SpeakerPayload names the speaker of a block
type SpeakerPayload struct {
	Name string `json:"name" validate:"required"`
}

// ToEntity converts the validated wire payload into the domain event
func (r *MeetingEndRequest) ToEntity() (*entities.MeetingEvent, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	participants := make([]entities.Person, 0, len(r.Participants))
	for _, p := range r.Participants {
		participants = append(participants, entities.Person{Name: p.Name, Email: p.Email})
	}

	transcript := make([]entities.Utterance, 0, len(r.Transcript.SpeakerBlocks))
	for _, b := range r.Transcript.SpeakerBlocks {
		transcript = append(transcript, entities.Utterance{
			Speaker: b.Speaker.Name,
			Text:    b.Words,
		})
	}

	chapters := make([]entities.Chapter, 0, len(r.ChapterSummaries))
	for _, ch := range r.ChapterSummaries {
		chapters = append(chapters, entities.Chapter{
			Title:       ch.Title,
			Description: ch.Description,
			Topics:      textItems(ch.Topics),
		})
	}

	return &entities.MeetingEvent{
		SessionID:    r.SessionID,
		Title:        r.Title,
		StartTime:    start,
		EndTime:      end,
		ReportURL:    r.ReportURL,
		Platform:     r.Platform,
		Owner:        entities.Person{Name: r.Owner.Name, Email: r.Owner.Email},
		Participants: participants,
		Summary: entities.MeetingSummary{
			Overview:     r.Summary,
			Topics:       textItems(r.Topics),
			Chapters:     chapters,
			ActionItems:  textItems(r.ActionItems),
			KeyQuestions: textItems(r.KeyQuestions),
		},
		Transcript: transcript,
	}, nil
}

func textItems(items []TextItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Text)
	}
	return out
}
