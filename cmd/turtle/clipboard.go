package main

import (
	"os/exec"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
)

// maxPasteRunes caps what a paste writes on the canvas.
const maxPasteRunes = 80

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// pasteLine turns clipboard contents into a single line the turtle can
// write: markup is stripped, control characters dropped and only the first
// non-empty line kept.
func pasteLine(text string) string {
	switch {
	case isRTF(text):
		text = stripRTF(text)
	case isHTML(text):
		text = stripHTML(text)
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			sb.WriteRune(r)
		}
	}
	text = strings.ReplaceAll(sb.String(), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) > maxPasteRunes {
			line = string([]rune(line)[:maxPasteRunes])
		}
		return line
	}
	return ""
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf") || strings.Contains(text, "\\rtf1")
}

func isHTML(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "<") &&
		(strings.Contains(text, "<html") || strings.Contains(text, "<body") || strings.Contains(text, "<div"))
}

// stripRTF drops groups markers and control words, keeping escaped
// literals and plain text.
func stripRTF(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '{' || r == '}':
		case r == '\\' && i+1 < len(runes):
			next := runes[i+1]
			if isASCIILetter(next) {
				i++
				for i < len(runes) && runes[i] != ' ' && runes[i] != '\\' && runes[i] != '{' && runes[i] != '}' {
					i++
				}
				// A single space ends a control word and belongs to it.
				if i < len(runes) && runes[i] != ' ' {
					i--
				}
				continue
			}
			sb.WriteRune(next)
			i++
		case r == '\\':
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

var htmlEntities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", "\"",
	"&#39;", "'",
	"&nbsp;", " ",
)

func stripHTML(html string) string {
	var sb strings.Builder
	sb.Grow(len(html))
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return htmlEntities.Replace(sb.String())
}
