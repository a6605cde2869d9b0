package entities

import "time"

// MeetingEvent is the normalized meeting-end payload handed to the relay
// usecase. It exists only for the duration of one request.
type MeetingEvent struct {
	SessionID    string
	Title        string
	StartTime    time.Time
	EndTime      time.Time
	ReportURL    string
	Platform     string
	Owner        Person
	Participants []Person
	Summary      MeetingSummary
	Transcript   []Utterance
}

// Person identifies a meeting participant
type Person struct {
	Name  string
	Email string
}

// Utterance is a single speaker turn. Order is significant.
type Utterance struct {
	Speaker string
	Text    string
}

// MeetingSummary holds the summary sections produced by the meeting
// intelligence source
type MeetingSummary struct {
	Overview     string
	Topics       []string
	Chapters     []Chapter
	ActionItems  []string
	KeyQuestions []string
}

// Chapter is one summary chapter with its topics
type Chapter struct {
	Title       string
	Description string
	Topics      []string
}

// Duration returns the meeting length
func (e *MeetingEvent) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// Lead returns the first participant whose email differs from the owner's.
func (e *MeetingEvent) Lead() (Person, bool) {
	for _, p := range e.Participants {
		if p.Email != e.Owner.Email {
			return p, true
		}
	}
	return Person{}, false
}
