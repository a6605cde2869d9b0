package relay

import (
	"fmt"
	"strings"
	"time"

	"github.com/haiminhdev/meeting-relay/internal/domain/entities"
)

const defaultPlatform = "Zoom"

// RenderTranscript renders the ordered speaker turns as one text block,
// one "<speaker>: <text>" line per turn. No truncation; splitting the
// result by line recovers the original sequence.
func RenderTranscript(transcript []entities.Utterance) string {
	lines := make([]string, 0, len(transcript))
	for _, u := range transcript {
		lines = append(lines, fmt.Sprintf("%s: %s", u.Speaker, u.Text))
	}
	return strings.Join(lines, "\n")
}

// RenderMeetingMarkdown renders the full meeting summary as a single
// markdown document. Section and item ordering follows the source event.
func RenderMeetingMarkdown(e *entities.MeetingEvent, loc *time.Location) string {
	var b strings.Builder

	start := e.StartTime.In(loc)
	end := e.EndTime.In(loc)

	platform := e.Platform
	if platform == "" {
		platform = defaultPlatform
	}

	reportURL := e.ReportURL
	if reportURL == "" {
		reportURL = "#"
	}

	names := make([]string, 0, len(e.Participants))
	for _, p := range e.Participants {
		names = append(names, p.Name)
	}

	fmt.Fprintf(&b, "# %s %s\n", start.Format("2006-01-02"), e.Title)
	fmt.Fprintf(&b, "**Meeting:** [%s](%s)\n", e.Title, reportURL)
	fmt.Fprintf(&b, "**Event time:** %s - %s\n", start.Format("2006-01-02 15:04"), end.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "**Platform:** %s\n", platform)
	fmt.Fprintf(&b, "**Participants:** %s\n", strings.Join(names, ", "))

	b.WriteString("\n## **✨ Summary**\n")
	b.WriteString(e.Summary.Overview)
	b.WriteString("\n")

	b.WriteString("\n## **💬 Chapters & Topics**\n")
	for _, ch := range e.Summary.Chapters {
		fmt.Fprintf(&b, "**%s**\n%s\n", ch.Title, ch.Description)
		for _, topic := range ch.Topics {
			fmt.Fprintf(&b, "- %s\n", topic)
		}
		b.WriteString("\n")
	}

	b.WriteString("## **✅ Action Items**\n")
	for _, item := range e.Summary.ActionItems {
		fmt.Fprintf(&b, "- [ ] %s\n", item)
	}

	b.WriteString("\n## **🔍 Key Questions**\n")
	for _, q := range e.Summary.KeyQuestions {
		fmt.Fprintf(&b, "- %s\n", q)
	}

	b.WriteString("\n## **🗣️ Transcript**\n")
	for _, u := range e.Transcript {
		fmt.Fprintf(&b, "**%s:** %s\n\n", u.Speaker, u.Text)
	}

	return b.String()
}

// FormatNotification builds the short chat message summarizing the meeting
func FormatNotification(e *entities.MeetingEvent) string {
	leadName := "Lead"
	if lead, ok := e.Lead(); ok && lead.Name != "" {
		leadName = lead.Name
	}

	topics := strings.Join(e.Summary.Topics, ", ")
	if topics == "" {
		topics = e.Title
	}

	nextSteps := strings.Join(e.Summary.ActionItems, ", ")
	if nextSteps == "" {
		nextSteps = "a definir"
	}

	minutes := int(e.Duration().Round(time.Minute).Minutes())

	return fmt.Sprintf(
		"%s realizou a reunião %q com o Lead %s (%d min). O assunto abordado foi %s. As próximas etapas são %s.",
		e.Owner.Name, e.Title, leadName, minutes, topics, nextSteps,
	)
}
