// Package render formats archive contents for the terminal.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KaramelBytes/docarchive-cli/internal/document"
	"github.com/KaramelBytes/docarchive-cli/internal/retrieval"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	badgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

const excerptLen = 160

// SortDocuments orders docs by creation time, then ID. The archive makes no
// ordering promise, so the CLI sorts before printing.
func SortDocuments(docs []document.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].ID < docs[j].ID
		}
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})
}

// Documents prints one block per document.
func Documents(w io.Writer, docs []document.Document) {
	if len(docs) == 0 {
		fmt.Fprintln(w, "(no documents)")
		return
	}
	SortDocuments(docs)
	for _, d := range docs {
		fmt.Fprintf(w, "- %s %s %s\n", titleStyle.Render(d.Title), idStyle.Render(d.ID), badgeStyle.Render("["+d.Metadata.Category+"]"))
		fmt.Fprintf(w, "  %s\n", mutedStyle.Render(byline(d)))
		if len(d.Metadata.Tags) > 0 {
			fmt.Fprintf(w, "  tags: %s\n", strings.Join(d.Metadata.Tags, ", "))
		}
		if text := Excerpt(d); text != "" {
			fmt.Fprintf(w, "  %s\n", text)
		}
	}
}

// Document prints a single document in full.
func Document(w io.Writer, d document.Document) {
	fmt.Fprintln(w, titleStyle.Render(d.Title))
	fmt.Fprintf(w, "id: %s\n", d.ID)
	fmt.Fprintf(w, "category: %s\n", badgeStyle.Render(d.Metadata.Category))
	fmt.Fprintf(w, "%s\n", byline(d))
	if len(d.Metadata.Tags) > 0 {
		fmt.Fprintf(w, "tags: %s\n", strings.Join(d.Metadata.Tags, ", "))
	}
	if len(d.Metadata.Keywords) > 0 {
		fmt.Fprintf(w, "keywords: %s\n", strings.Join(d.Metadata.Keywords, ", "))
	}
	if d.Metadata.Description != "" {
		fmt.Fprintf(w, "description: %s\n", d.Metadata.Description)
	}
	if d.Summary != "" {
		fmt.Fprintf(w, "\n%s\n%s\n", titleStyle.Render("Summary"), d.Summary)
	}
	fmt.Fprintf(w, "\n%s\n", d.Content)
}

// Vocabulary prints a titled list of keys.
func Vocabulary(w io.Writer, title string, items []string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	if len(items) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	for _, it := range items {
		fmt.Fprintf(w, "- %s\n", it)
	}
}

// Dates prints the archive's date range.
func Dates(w io.Writer, r retrieval.DateRange, ok bool) {
	if !ok {
		fmt.Fprintln(w, "(no documents)")
		return
	}
	fmt.Fprintf(w, "earliest: %s\nlatest: %s\n", r.Start, r.End)
}

// Summary prints a generated summary with its compression.
func Summary(w io.Writer, original, summary string) {
	fmt.Fprintln(w, summary)
	if len(original) > 0 {
		pct := 100 * float64(len(summary)) / float64(len(original))
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("(%d of %d characters, %.0f%%)", len(summary), len(original), pct)))
	}
}

// Excerpt returns the summary if present, else the start of the content.
func Excerpt(d document.Document) string {
	text := d.Summary
	if text == "" {
		text = d.Metadata.Description
	}
	if text == "" {
		text = d.Content
	}
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) > excerptLen {
		return string(runes[:excerptLen]) + "…"
	}
	return text
}

func byline(d document.Document) string {
	author := d.Metadata.Author
	if author == "" {
		author = "unknown author"
	}
	s := fmt.Sprintf("%s · %s", author, d.CreatedAt.UTC().Format("2006-01-02"))
	if d.Metadata.ReadingTime > 0 {
		s += fmt.Sprintf(" · %d min read", d.Metadata.ReadingTime)
	}
	return s
}
