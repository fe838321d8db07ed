package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-store/action"
	"github.com/odvcencio/furry-store/app"
	"github.com/odvcencio/furry-store/counter"
	"github.com/odvcencio/furry-store/todo"
)

var fixedNow = time.Date(2026, 10, 18, 8, 5, 0, 0, time.UTC)

func newRoot(t *testing.T, actions ...action.Action) *app.RootState {
	t.Helper()
	store := app.NewStore(
		app.WithClock(func() time.Time { return fixedNow }),
		app.WithIDSource(todo.NewSequenceSource("task-")),
	)
	for _, a := range actions {
		store.Dispatch(a)
	}
	return store.State()
}

func TestTable_AlignsColumns(t *testing.T) {
	root := newRoot(t,
		todo.AddTodo{Text: "牛乳を買う"},
		counter.IncrementByAmount{Amount: 3},
	)
	var buf bytes.Buffer
	if err := Table(&buf, root, TableOptions{}); err != nil {
		t.Fatalf("table: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Counter: 3 (last action: increment by 3) positive odd\n") {
		t.Fatalf("unexpected counter line:\n%s", out)
	}
	if !strings.Contains(out, "Todos: 1/4 completed (25%), filter ALL\n") {
		t.Fatalf("unexpected stats line:\n%s", out)
	}

	stamp := fixedNow.Format(timeLayout)
	column := -1
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		idx := strings.Index(line, stamp)
		if idx < 0 {
			continue
		}
		rows++
		width := runewidth.StringWidth(line[:idx])
		if column >= 0 && width != column {
			t.Fatalf("expected timestamp column at %d, got %d in %q", column, width, line)
		}
		column = width
	}
	if rows != 4 {
		t.Fatalf("expected 4 task rows, got %d:\n%s", rows, out)
	}
}

func TestTable_TruncatesAndFilters(t *testing.T) {
	root := newRoot(t,
		todo.AddTodo{Text: strings.Repeat("long ", 20)},
		todo.SetSearchTerm{Term: "LONG"},
	)
	var buf bytes.Buffer
	if err := Table(&buf, root, TableOptions{MaxTextWidth: 12}); err != nil {
		t.Fatalf("table: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `search "LONG"`) {
		t.Fatalf("expected search term in header:\n%s", out)
	}
	if !strings.Contains(out, "...") || strings.Contains(out, strings.Repeat("long ", 4)) {
		t.Fatalf("expected truncated text:\n%s", out)
	}
	if strings.Contains(out, "Build a todo list") {
		t.Fatalf("expected search to hide other tasks:\n%s", out)
	}

	empty := newRoot(t, todo.SetSearchTerm{Term: "zebra"})
	buf.Reset()
	if err := Table(&buf, empty, TableOptions{}); err != nil {
		t.Fatalf("table: %v", err)
	}
	if !strings.Contains(buf.String(), "(no matching tasks)") {
		t.Fatalf("expected empty marker:\n%s", buf.String())
	}
}

func TestYAML(t *testing.T) {
	root := newRoot(t, counter.Reset{})
	var buf bytes.Buffer
	if err := YAML(&buf, root); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"lastAction: reset", "id: sample-1", "filter: ALL", "createdAt: 2026-10-18T08:05:00Z"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestMarkdown(t *testing.T) {
	root := newRoot(t,
		todo.AddTodo{Text: "Fix *all* the [bugs]"},
		todo.SetFilter{Filter: todo.FilterActive},
	)
	var buf bytes.Buffer
	if err := Markdown(&buf, root); err != nil {
		t.Fatalf("markdown: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# Todos (active)\n",
		`- [ ] Fix \*all\* the \[bugs\]`,
		"1 of 4 completed (25%)",
		"Value **0**, last action `none`.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "[x]") {
		t.Fatalf("expected active filter to hide completed tasks:\n%s", out)
	}
}

func TestMarkdown_TaskTextCannotOpenBlocks(t *testing.T) {
	root := newRoot(t,
		todo.AddTodo{Text: "- [x] fake"},
		todo.AddTodo{Text: "1. step"},
		todo.AddTodo{Text: "first\nsecond"},
	)
	var buf bytes.Buffer
	if err := Markdown(&buf, root); err != nil {
		t.Fatalf("markdown: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"- [ ] first second\n",
		"- [ ] 1\\. step\n",
		"- [ ] \\- \\[x\\] fake\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := HTML(&buf, root); err != nil {
		t.Fatalf("html: %v", err)
	}
	html := buf.String()
	if got := strings.Count(html, "<li>"); got != 6 {
		t.Fatalf("expected 6 list items, got %d:\n%s", got, html)
	}
	if got := strings.Count(html, "<ul>"); got != 1 {
		t.Fatalf("expected a single flat list, got %d lists:\n%s", got, html)
	}
	if got := strings.Count(html, `type="checkbox"`); got != 6 {
		t.Fatalf("expected 6 checkboxes, got %d:\n%s", got, html)
	}
}

func TestTable_FoldsLineBreaks(t *testing.T) {
	root := newRoot(t, todo.AddTodo{Text: "first\nsecond\tthird"})
	var buf bytes.Buffer
	if err := Table(&buf, root, TableOptions{}); err != nil {
		t.Fatalf("table: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "first second third") {
		t.Fatalf("expected folded text:\n%s", out)
	}
	if got := strings.Count(out, fixedNow.Format(timeLayout)); got != 4 {
		t.Fatalf("expected 4 task rows, got %d:\n%s", got, out)
	}
	if lines := strings.Count(out, "\n"); lines != 6 {
		t.Fatalf("expected 2 header lines and 4 rows, got %d lines:\n%s", lines, out)
	}
}

func TestHTML(t *testing.T) {
	root := newRoot(t)
	var buf bytes.Buffer
	if err := HTML(&buf, root); err != nil {
		t.Fatalf("html: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<h1>Todos</h1>", `type="checkbox"`, "checked", "<strong>0</strong>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestHighlight(t *testing.T) {
	var buf bytes.Buffer
	if err := Highlight(&buf, "value: 1\n", "yaml", ""); err != nil {
		t.Fatalf("highlight: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") || !strings.Contains(out, "value") {
		t.Fatalf("expected ANSI coloured output, got %q", out)
	}
}
