// Package mailer renders summaries as email and hands them to an SMTP relay.
package mailer

import (
	"strings"
)

// Content is the plain-text and HTML rendering of one summary.
type Content struct {
	Text string
	HTML string
}

const (
	htmlHead = `<!DOCTYPE html>
<html>
<body>
<div style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto;">
<h2 style="color: #333333;">Meeting Summary</h2>
<div style="line-height: 1.6; color: #444444;">`

	htmlTail = `</div>
<hr style="margin-top: 30px; border: none; border-top: 1px solid #eeeeee;">
<p style="color: #888888; font-size: 12px;">This summary was generated by Meeting Notes Summarizer.</p>
</div>
</body>
</html>`
)

// Compose renders summary. Text is the summary unchanged; HTML only converts
// newlines to <br> and does not escape anything else.
func Compose(summary string) Content {
	var b strings.Builder
	b.Grow(len(htmlHead) + len(summary) + len(htmlTail) + 64)
	b.WriteString(htmlHead)
	b.WriteString(strings.ReplaceAll(summary, "\n", "<br>"))
	b.WriteString(htmlTail)

	return Content{
		Text: summary,
		HTML: b.String(),
	}
}
