package notion

import "regexp"

// maxRichTextLen is the Notion API limit for a single rich_text content block.
const maxRichTextLen = 2000

// markdownLinkRE matches markdown links of the form [text](url)
var markdownLinkRE = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// RichText is one element of a Notion rich_text array
type RichText struct {
	Text TextContent `json:"text"`
}

// TextContent holds the content and optional link of a rich text element
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link is a hyperlink attached to a rich text element
type Link struct {
	URL string `json:"url"`
}

type textPart struct {
	content string
	url     string
}

// BuildRichText converts text with markdown [text](url) links into Notion
// rich_text blocks, splitting content so no block exceeds maxRichTextLen.
// The concatenated block contents always equal the link-rendered input.
func BuildRichText(text string) []RichText {
	if text == "" {
		return []RichText{}
	}

	parts := splitMarkdownLinks(text)

	blocks := make([]RichText, 0, len(parts))
	var buf []rune

	flush := func() {
		if len(buf) > 0 {
			blocks = append(blocks, RichText{Text: TextContent{Content: string(buf)}})
			buf = buf[:0]
		}
	}

	for _, part := range parts {
		if part.url != "" {
			// Links get their own blocks so the link target survives chunking.
			flush()
			for _, chunk := range chunkRunes([]rune(part.content)) {
				blocks = append(blocks, RichText{Text: TextContent{
					Content: string(chunk),
					Link:    &Link{URL: part.url},
				}})
			}
			continue
		}
		for _, r := range part.content {
			if len(buf) == maxRichTextLen {
				flush()
			}
			buf = append(buf, r)
		}
	}
	flush()

	return blocks
}

// splitMarkdownLinks splits text into plain and link parts, preserving order
func splitMarkdownLinks(text string) []textPart {
	var parts []textPart
	lastEnd := 0
	for _, m := range markdownLinkRE.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > lastEnd {
			parts = append(parts, textPart{content: text[lastEnd:m[0]]})
		}
		parts = append(parts, textPart{
			content: text[m[2]:m[3]],
			url:     text[m[4]:m[5]],
		})
		lastEnd = m[1]
	}
	if lastEnd < len(text) {
		parts = append(parts, textPart{content: text[lastEnd:]})
	}
	return parts
}

func chunkRunes(runes []rune) [][]rune {
	var chunks [][]rune
	for len(runes) > maxRichTextLen {
		chunks = append(chunks, runes[:maxRichTextLen])
		runes = runes[maxRichTextLen:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, runes)
	}
	return chunks
}
