package app

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/furry-store/action"
	"github.com/odvcencio/furry-store/counter"
	"github.com/odvcencio/furry-store/state"
	"github.com/odvcencio/furry-store/todo"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestStore(opts ...Option) *Store {
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDSource(todo.NewSequenceSource("id-")),
	}
	return NewStore(append(base, opts...)...)
}

func TestNewStore_DefaultState(t *testing.T) {
	store := newTestStore()
	root := store.State()
	if diff := cmp.Diff(counter.InitialState(), root.Counter()); diff != "" {
		t.Fatalf("counter mismatch (-want +got):\n%s", diff)
	}
	if got := len(root.Todos().Todos); got != 3 {
		t.Fatalf("expected 3 sample tasks, got %d", got)
	}
	if root.Todos().Filter != todo.FilterAll {
		t.Fatalf("expected ALL filter, got %q", root.Todos().Filter)
	}

	empty := newTestStore(WithoutSamples())
	if got := len(empty.State().Todos().Todos); got != 0 {
		t.Fatalf("expected no tasks, got %d", got)
	}
}

func TestReduce_RoutesToBothSlices(t *testing.T) {
	root := Reduce(nil, action.Init{})

	afterCounter := Reduce(root, counter.Increment{})
	if afterCounter == root {
		t.Fatalf("expected a new root after a counter change")
	}
	if afterCounter.Todos() != root.Todos() {
		t.Fatalf("expected todo slice to pass through by identity")
	}
	if afterCounter.Counter().Value != 1 {
		t.Fatalf("expected counter 1, got %d", afterCounter.Counter().Value)
	}

	afterTodo := Reduce(afterCounter, todo.SetSearchTerm{Term: "milk"})
	if afterTodo.Counter() != afterCounter.Counter() {
		t.Fatalf("expected counter slice to pass through by identity")
	}
}

func TestReduce_UnrecognisedActionIsIdentity(t *testing.T) {
	root := Reduce(nil, action.Init{})
	next := Reduce(root, action.Unknown{Name: "mystery/op"})
	if next != root {
		t.Fatalf("expected the same root for an unrecognised action")
	}
	if next.Counter() != root.Counter() || next.Todos() != root.Todos() {
		t.Fatalf("expected both slices to be reference-identical")
	}
}

func TestStore_Scenario(t *testing.T) {
	store := newTestStore()
	store.Dispatch(todo.AddTodo{Text: "Buy milk"})
	id := store.State().Todos().Todos[0].ID
	store.Dispatch(todo.ToggleTodo{ID: id})
	store.Dispatch(todo.SetFilter{Filter: todo.FilterCompleted})

	got := SelectFilteredTodos(store.State())
	var buyMilk []*todo.Task
	for _, task := range got {
		if task.Text == "Buy milk" {
			buyMilk = append(buyMilk, task)
		}
	}
	if len(buyMilk) != 1 {
		t.Fatalf("expected exactly one Buy milk task, got %d", len(buyMilk))
	}
	want := &todo.Task{ID: "id-1", Text: "Buy milk", Completed: true, CreatedAt: fixedNow}
	if diff := cmp.Diff(want, buyMilk[0]); diff != "" {
		t.Fatalf("task mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_ScenarioWithoutSamples(t *testing.T) {
	store := newTestStore(WithoutSamples())
	store.Dispatch(todo.AddTodo{Text: "Buy milk"})
	store.Dispatch(todo.ToggleTodo{ID: store.State().Todos().Todos[0].ID})
	store.Dispatch(todo.SetFilter{Filter: todo.FilterCompleted})

	got := SelectFilteredTodos(store.State())
	if len(got) != 1 || got[0].Text != "Buy milk" || !got[0].Completed {
		t.Fatalf("expected the single completed Buy milk task, got %+v", got)
	}
}

func TestStore_VersionAndNotifications(t *testing.T) {
	store := newTestStore()
	calls := 0
	store.Subscribe(func() { calls++ })

	store.Dispatch(counter.Increment{})
	store.Dispatch(action.Unknown{Name: "nothing"})
	store.Dispatch(todo.DeleteTodo{ID: "missing"})
	store.Dispatch(counter.IncrementByAmount{Amount: 4})

	if calls != 4 {
		t.Fatalf("expected a notification per dispatch, got %d", calls)
	}
	if v := store.Version(); v != 2 {
		t.Fatalf("expected version 2, got %d", v)
	}
	if got := SelectCounterValue(store.State()); got != 5 {
		t.Fatalf("expected counter 5, got %d", got)
	}
	if got := SelectLastAction(store.State()); got != "increment by 4" {
		t.Fatalf("expected last action label, got %q", got)
	}
}

func TestStore_Selectors(t *testing.T) {
	store := newTestStore()
	stats := state.NewSelector(store, SelectTodoStats)
	stats.SetEqualFunc(state.EqualComparable[todo.Stats])
	calls := 0
	stats.Subscribe(func() { calls++ })

	store.Dispatch(counter.Increment{})
	if calls != 0 {
		t.Fatalf("expected counter change not to notify stats observers, got %d", calls)
	}
	store.Dispatch(todo.MarkAllComplete{})
	if calls != 1 {
		t.Fatalf("expected stats notification, got %d", calls)
	}
	want := todo.Stats{Total: 3, Completed: 3, Active: 0, CompletionPercentage: 100}
	if diff := cmp.Diff(want, stats.Get()); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
	if !SelectAllCompleted(store.State()) {
		t.Fatalf("expected all completed")
	}
	if !SelectIsPositive(store.State()) || SelectIsEven(store.State()) {
		t.Fatalf("expected counter 1 to be positive and odd")
	}
}

func TestRegistry_DecodesEveryOperation(t *testing.T) {
	reg := NewRegistry()
	want := []string{
		counter.TypeDecrement,
		counter.TypeIncrement,
		counter.TypeIncrementByAmount,
		counter.TypeReset,
		todo.TypeAddTodo,
		todo.TypeClearCompleted,
		todo.TypeDeleteTodo,
		todo.TypeEditTodo,
		todo.TypeMarkAllComplete,
		todo.TypeSetFilter,
		todo.TypeSetSearchTerm,
		todo.TypeToggleTodo,
	}
	if diff := cmp.Diff(want, reg.Types()); diff != "" {
		t.Fatalf("registered types mismatch (-want +got):\n%s", diff)
	}

	script := `
- type: counter/incrementByAmount
  payload: 3
- type: todos/addTodo
  payload: Buy milk
- type: todos/setFilter
  payload: ACTIVE
- type: legacy/unknown
`
	actions, err := reg.DecodeAll(strings.NewReader(script))
	if err != nil {
		t.Fatalf("decode script: %v", err)
	}
	store := newTestStore()
	for _, a := range actions {
		store.Dispatch(a)
	}
	root := store.State()
	if root.Counter().Value != 3 {
		t.Fatalf("expected counter 3, got %d", root.Counter().Value)
	}
	active := SelectFilteredTodos(root)
	if len(active) != 3 || active[0].Text != "Buy milk" {
		t.Fatalf("expected Buy milk first among 3 active tasks, got %d", len(active))
	}
}

func TestRootState_MarshalYAML(t *testing.T) {
	store := newTestStore(WithoutSamples())
	store.Dispatch(counter.Decrement{})
	out, err := yaml.Marshal(store.State())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{"counter:", "value: -1", "lastAction: decrement", "filter: ALL", "todos: []"} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestStore_SequenceIDsDoNotCollideWithSamples(t *testing.T) {
	store := NewStore(
		WithClock(func() time.Time { return fixedNow }),
		WithIDSource(todo.NewSequenceSource("")),
	)
	store.Dispatch(todo.AddTodo{Text: "Buy milk"})

	seen := map[string]int{}
	for _, task := range store.State().Todos().Todos {
		seen[task.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("expected id %q once, got %d", id, n)
		}
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 distinct ids, got %v", seen)
	}
}

func TestStore_NoopDispatchStillNotifies(t *testing.T) {
	store := newTestStore()
	before := store.State()
	calls := 0
	store.Subscribe(func() { calls++ })

	store.Dispatch(action.Unknown{Name: "ui/hover"})
	store.Dispatch(todo.DeleteTodo{ID: "missing"})
	if calls != 2 {
		t.Fatalf("expected 2 notifications, got %d", calls)
	}
	if store.State() != before {
		t.Fatalf("expected the root to be returned by identity")
	}
}
