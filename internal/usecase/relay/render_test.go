package relay

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/haiminhdev/meeting-relay/internal/domain/entities"
)

func testEvent() *entities.MeetingEvent {
	return &entities.MeetingEvent{
		SessionID: "sess-1",
		Title:     "Sync",
		StartTime: time.Date(2024, 5, 10, 17, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 5, 10, 17, 45, 0, 0, time.UTC),
		ReportURL: "https://app.read.ai/r/1",
		Owner:     entities.Person{Name: "Ana", Email: "ana@x.com"},
		Participants: []entities.Person{
			{Name: "Ana", Email: "ana@x.com"},
			{Name: "Bruno", Email: "bruno@y.com"},
		},
		Summary: entities.MeetingSummary{
			Overview: "Quick alignment call.",
			Topics:   []string{"pricing", "timeline"},
			Chapters: []entities.Chapter{
				{Title: "Intro", Description: "Opening remarks", Topics: []string{"agenda"}},
				{Title: "Pricing", Description: "Plans discussed"},
			},
			ActionItems:  []string{"send proposal", "book follow-up"},
			KeyQuestions: []string{"when is launch?"},
		},
		Transcript: []entities.Utterance{
			{Speaker: "Ana", Text: "olá, tudo bem?"},
			{Speaker: "Bruno", Text: "tudo sim"},
			{Speaker: "Ana", Text: "vamos começar"},
		},
	}
}

func TestRenderTranscript_RoundTrip(t *testing.T) {
	event := testEvent()
	rendered := RenderTranscript(event.Transcript)

	lines := strings.Split(rendered, "\n")
	require.Len(t, lines, len(event.Transcript))
	for i, line := range lines {
		speaker, text, found := strings.Cut(line, ": ")
		require.True(t, found)
		require.Equal(t, event.Transcript[i].Speaker, speaker)
		require.Equal(t, event.Transcript[i].Text, text)
	}
}

func TestRenderTranscript_Empty(t *testing.T) {
	require.Equal(t, "", RenderTranscript(nil))
}

func TestRenderMeetingMarkdown_Sections(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	md := RenderMeetingMarkdown(testEvent(), loc)

	// 17:00 UTC is 14:00 in São Paulo
	require.True(t, strings.HasPrefix(md, "# 2024-05-10 Sync\n"))
	require.Contains(t, md, "**Meeting:** [Sync](https://app.read.ai/r/1)")
	require.Contains(t, md, "**Event time:** 2024-05-10 14:00 - 2024-05-10 14:45")
	require.Contains(t, md, "**Platform:** Zoom")
	require.Contains(t, md, "**Participants:** Ana, Bruno")
	require.Contains(t, md, "Quick alignment call.")
	require.Contains(t, md, "**Intro**\nOpening remarks\n- agenda")
	require.Contains(t, md, "- [ ] send proposal")
	require.Contains(t, md, "- when is launch?")
	require.Contains(t, md, "**Bruno:** tudo sim")

	// Source ordering is preserved across sections
	require.Less(t, strings.Index(md, "**Intro**"), strings.Index(md, "**Pricing**"))
	require.Less(t, strings.Index(md, "send proposal"), strings.Index(md, "book follow-up"))
}

func TestFormatNotification(t *testing.T) {
	msg := FormatNotification(testEvent())

	require.Contains(t, msg, "Ana realizou a reunião")
	require.Contains(t, msg, `"Sync"`)
	require.Contains(t, msg, "Lead Bruno")
	require.Contains(t, msg, "45 min")
	require.Contains(t, msg, "pricing, timeline")
	require.Contains(t, msg, "send proposal, book follow-up")
}

func TestFormatNotification_NoLead(t *testing.T) {
	event := testEvent()
	event.Participants = event.Participants[:1]

	msg := FormatNotification(event)
	require.Contains(t, msg, "Lead Lead")
}
