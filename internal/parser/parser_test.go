package parser_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/docarchive-cli/internal/parser"
)

func TestParseFileTXT(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "meeting-notes.txt")
	content := "hello world\nthis is txt"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := parser.ParseFile(p)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.Text != content {
		t.Fatalf("unexpected output: %q", out.Text)
	}
	if out.Title != "meeting-notes" {
		t.Fatalf("expected title from file name, got %q", out.Title)
	}
}

func TestParseFileMD(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.md")
	content := "# Title\r\n\r\n\r\n\r\nBody here\n\n- list\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := parser.ParseFile(p)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.Text != "# Title\n\nBody here\n\n- list\n" {
		t.Fatalf("unexpected output: %q", out.Text)
	}
	if out.Title != "Title" {
		t.Fatalf("expected heading title, got %q", out.Title)
	}
}

func TestParseDOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zip create: %v", err)
	}
	if _, err := w.Write([]byte(`<w:document><w:body><w:p><w:r><w:t>Quarterly plan</w:t></w:r></w:p></w:body></w:document>`)); err != nil {
		t.Fatalf("zip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	out, err := parser.ParseBytes("plan.docx", buf.Bytes())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.Text != "Quarterly plan" || out.Title != "plan" {
		t.Fatalf("unexpected parse result: %+v", out)
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := parser.ParseBytes("blank.txt", []byte("  \n "))
	if !errors.Is(err, parser.ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestParseMarkdownStripsMarkup(t *testing.T) {
	md := "# Release **Notes**\n\n```go\n\nSee [the docs](https://example.com) and ![logo](logo.png) for `details`.\n```\n"
	out, err := parser.ParseBytes("notes.md", []byte(md))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := "# Release Notes\n\nSee the docs and logo for details.\n"
	if out.Text != want {
		t.Fatalf("got %q want %q", out.Text, want)
	}
	if out.Title != "Release Notes" {
		t.Fatalf("unexpected title %q", out.Title)
	}
}

func TestParseTXTStripsBOMAndCRLF(t *testing.T) {
	out, err := parser.ParseBytes("memo.txt", []byte("\ufeffLine one\r\nLine two\r"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.Text != "Line one\nLine two\n" {
		t.Fatalf("unexpected text %q", out.Text)
	}
}
