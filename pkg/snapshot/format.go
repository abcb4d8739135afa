package snapshot

import "strings"

const (
	fence  = "```"
	spacer = " "
)

// Format renders records into a snapshot document. Records appear in the
// order given and content is inserted byte for byte; a fence inside content
// is not escaped.
func Format(style Style, records []FileRecord) string {
	if style == StyleTagged {
		return formatTagged(records)
	}
	return formatAnchored(records)
}

func formatAnchored(records []FileRecord) string {
	lines := make([]string, 0, len(records)*6+2)
	lines = append(lines, "\n<details>\n")
	for _, r := range records {
		lines = append(lines,
			fileOpenTag(r.Identifier),
			spacer,
			fence,
			r.Content,
			fence,
			"</file>",
		)
	}
	lines = append(lines, "\n</details>\n")
	return strings.Join(lines, "\n")
}

func formatTagged(records []FileRecord) string {
	lines := make([]string, 0, len(records)*6+4)
	lines = append(lines, "<details>", spacer)
	for _, r := range records {
		lines = append(lines,
			fileOpenTag(r.Identifier),
			spacer,
			fence+r.LanguageTag+"\n",
			r.Content,
			fence,
			"</file>",
		)
	}
	lines = append(lines, spacer, "</details>")
	return strings.Join(lines, "\n")
}

func fileOpenTag(identifier string) string {
	return `<file path="` + identifier + `">`
}
