package todo

import (
	"math"
	"strings"
)

// Stats aggregates task counts.
type Stats struct {
	Total                int `yaml:"total"`
	Completed            int `yaml:"completed"`
	Active               int `yaml:"active"`
	CompletionPercentage int `yaml:"completionPercentage"`
}

// SelectTodos returns the raw task list.
func SelectTodos(s *State) []*Task {
	if s == nil {
		return nil
	}
	return s.Todos
}

// SelectFilter returns the display filter.
func SelectFilter(s *State) Filter {
	if s == nil {
		return FilterAll
	}
	return s.Filter
}

// SelectSearchTerm returns the search term.
func SelectSearchTerm(s *State) string {
	if s == nil {
		return ""
	}
	return s.SearchTerm
}

// SelectFilteredTodos returns the tasks whose text contains the search term,
// ignoring case, narrowed by the display filter. Relative order is kept.
// Unrecognised filters behave like FilterAll.
func SelectFilteredTodos(s *State) []*Task {
	if s == nil {
		return nil
	}
	term := strings.ToLower(s.SearchTerm)
	out := make([]*Task, 0, len(s.Todos))
	for _, t := range s.Todos {
		if term != "" && !strings.Contains(strings.ToLower(t.Text), term) {
			continue
		}
		switch s.Filter {
		case FilterActive:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// SelectStats counts tasks over the whole list. The percentage is rounded to
// the nearest integer and is 0 for an empty list.
func SelectStats(s *State) Stats {
	var stats Stats
	for _, t := range SelectTodos(s) {
		stats.Total++
		if t.Completed {
			stats.Completed++
		}
	}
	stats.Active = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.CompletionPercentage = int(math.Round(100 * float64(stats.Completed) / float64(stats.Total)))
	}
	return stats
}

// SelectAllCompleted reports whether there is at least one task and every
// task is completed.
func SelectAllCompleted(s *State) bool {
	todos := SelectTodos(s)
	return len(todos) > 0 && allCompleted(todos)
}
