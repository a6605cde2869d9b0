package notion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildRichText_PlainText(t *testing.T) {
	blocks := BuildRichText("hello world")
	require.Len(t, blocks, 1)
	require.Equal(t, "hello world", blocks[0].Text.Content)
	require.Nil(t, blocks[0].Text.Link)
}

func TestBuildRichText_Empty(t *testing.T) {
	require.Empty(t, BuildRichText(""))
}

func TestBuildRichText_MarkdownLinks(t *testing.T) {
	blocks := BuildRichText("see [the report](https://example.com/r/1) for details")
	require.Len(t, blocks, 3)

	require.Equal(t, "see ", blocks[0].Text.Content)
	require.Nil(t, blocks[0].Text.Link)

	require.Equal(t, "the report", blocks[1].Text.Content)
	require.NotNil(t, blocks[1].Text.Link)
	require.Equal(t, "https://example.com/r/1", blocks[1].Text.Link.URL)

	require.Equal(t, " for details", blocks[2].Text.Content)
	require.Nil(t, blocks[2].Text.Link)
}

func TestBuildRichText_ChunksLongText(t *testing.T) {
	input := strings.Repeat("a", maxRichTextLen*2+10)
	blocks := BuildRichText(input)
	require.Len(t, blocks, 3)

	var total strings.Builder
	for _, b := range blocks {
		require.LessOrEqual(t, len([]rune(b.Text.Content)), maxRichTextLen)
		total.WriteString(b.Text.Content)
	}
	require.Equal(t, input, total.String())
}

func TestBuildRichText_ChunksLongLink(t *testing.T) {
	linkText := strings.Repeat("x", maxRichTextLen+5)
	blocks := BuildRichText("[" + linkText + "](https://example.com)")
	require.Len(t, blocks, 2)
	for _, b := range blocks {
		require.NotNil(t, b.Text.Link)
		require.Equal(t, "https://example.com", b.Text.Link.URL)
	}
	require.Equal(t, linkText, blocks[0].Text.Content+blocks[1].Text.Content)
}

func TestBuildRichText_MultibyteBoundary(t *testing.T) {
	input := strings.Repeat("é", maxRichTextLen+1)
	blocks := BuildRichText(input)
	require.Len(t, blocks, 2)
	require.Equal(t, input, blocks[0].Text.Content+blocks[1].Text.Content)
}
