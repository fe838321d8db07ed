// Package report renders root state snapshots for terminals and documents.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/furry-store/app"
	"github.com/odvcencio/furry-store/todo"
)

const timeLayout = "2006-01-02 15:04"

// DefaultMaxTextWidth bounds the task text column when no width is given.
const DefaultMaxTextWidth = 48

// TableOptions configures Table.
type TableOptions struct {
	MaxTextWidth int
}

// Table writes the counter and the filtered task list as aligned text.
func Table(w io.Writer, root *app.RootState, opts TableOptions) error {
	maxText := opts.MaxTextWidth
	if maxText <= 0 {
		maxText = DefaultMaxTextWidth
	}
	var b strings.Builder

	fmt.Fprintf(&b, "Counter: %d (last action: %s)", app.SelectCounterValue(root), app.SelectLastAction(root))
	if app.SelectIsPositive(root) {
		b.WriteString(" positive")
	}
	if app.SelectIsEven(root) {
		b.WriteString(" even")
	} else {
		b.WriteString(" odd")
	}
	b.WriteString("\n")

	stats := app.SelectTodoStats(root)
	fmt.Fprintf(&b, "Todos: %d/%d completed (%d%%), filter %s", stats.Completed, stats.Total, stats.CompletionPercentage, app.SelectFilter(root))
	if term := app.SelectSearchTerm(root); term != "" {
		fmt.Fprintf(&b, ", search %q", term)
	}
	b.WriteString("\n")

	tasks := app.SelectFilteredTodos(root)
	if len(tasks) == 0 {
		b.WriteString("  (no matching tasks)\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	texts := make([]string, len(tasks))
	idWidth, textWidth := 0, 0
	for i, t := range tasks {
		texts[i] = truncate(singleLine(t.Text), maxText)
		idWidth = max(idWidth, runewidth.StringWidth(t.ID))
		textWidth = max(textWidth, runewidth.StringWidth(texts[i]))
	}
	for i, t := range tasks {
		fmt.Fprintf(&b, "  %s %s  %s  %s\n",
			checkbox(t),
			runewidth.FillRight(t.ID, idWidth),
			runewidth.FillRight(texts[i], textWidth),
			t.CreatedAt.Format(timeLayout),
		)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// YAML writes the snapshot as a YAML document.
func YAML(w io.Writer, root *app.RootState) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// Highlight writes src coloured for a 256-colour terminal.
func Highlight(w io.Writer, src, lexer, style string) error {
	if style == "" {
		style = "monokai"
	}
	if err := quick.Highlight(w, src, lexer, "terminal256", style); err != nil {
		return fmt.Errorf("highlight %s: %w", lexer, err)
	}
	return nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
)

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// singleLine folds line breaks and tabs into spaces.
func singleLine(s string) string {
	return lineBreaks.Replace(s)
}

// markdownText escapes s for use as inline text inside a list item. Inline
// markup is escaped everywhere; a leading list or heading marker is escaped
// so the item cannot open a nested block.
func markdownText(s string) string {
	s = markdownEscaper.Replace(strings.TrimLeft(singleLine(s), " "))
	if s == "" {
		return s
	}
	switch s[0] {
	case '-', '+', '=':
		return `\` + s
	}
	digits := 0
	for digits < len(s) && digits < 9 && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(s) && (s[digits] == '.' || s[digits] == ')') {
		return s[:digits] + `\` + s[digits:]
	}
	return s
}

// Markdown writes the filtered task list as a GFM checklist followed by the
// counter.
func Markdown(w io.Writer, root *app.RootState) error {
	var b strings.Builder
	b.WriteString("# Todos")
	if filter := app.SelectFilter(root); filter != todo.FilterAll {
		fmt.Fprintf(&b, " (%s)", strings.ToLower(string(filter)))
	}
	b.WriteString("\n\n")

	tasks := app.SelectFilteredTodos(root)
	for _, t := range tasks {
		fmt.Fprintf(&b, "- %s %s\n", checkbox(t), markdownText(t.Text))
	}
	if len(tasks) == 0 {
		b.WriteString("Nothing to show.\n")
	}

	stats := app.SelectTodoStats(root)
	fmt.Fprintf(&b, "\n%d of %d completed (%d%%)\n", stats.Completed, stats.Total, stats.CompletionPercentage)
	fmt.Fprintf(&b, "\n## Counter\n\nValue **%d**, last action `%s`.\n", app.SelectCounterValue(root), app.SelectLastAction(root))

	_, err := io.WriteString(w, b.String())
	return err
}

// HTML renders Markdown output to HTML.
func HTML(w io.Writer, root *app.RootState) error {
	var src bytes.Buffer
	if err := Markdown(&src, root); err != nil {
		return err
	}
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert(src.Bytes(), w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func checkbox(t *todo.Task) string {
	if t.Completed {
		return "[x]"
	}
	return "[ ]"
}

func truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
