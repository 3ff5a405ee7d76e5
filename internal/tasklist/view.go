package tasklist

import (
	"fmt"
	"strings"
)

type Filter int

const (
	All Filter = iota
	Active
	Done
)

var filterNames = [...]string{"All", "Active", "Done"}

// Filters lists every mode in tab order.
func Filters() []Filter {
	return []Filter{All, Active, Done}
}

func (f Filter) String() string {
	if f < All || f > Done {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return filterNames[f]
}

// ParseFilter accepts a filter name in any case. Blank means All.
func ParseFilter(v string) (Filter, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return All, nil
	}
	for i, name := range filterNames {
		if strings.EqualFold(v, name) {
			return Filter(i), nil
		}
	}
	return All, fmt.Errorf("unknown filter %q (want all, active or done)", v)
}

func (f Filter) Next() Filter {
	return (f + 1) % Filter(len(filterNames))
}

func (f Filter) Prev() Filter {
	return (f + Filter(len(filterNames)) - 1) % Filter(len(filterNames))
}

func (f Filter) keep(t Task) bool {
	switch f {
	case Active:
		return !t.Done
	case Done:
		return t.Done
	default:
		return true
	}
}

// Apply returns the tasks passing f, preserving order.
func Apply(tasks []Task, f Filter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.keep(t) {
			out = append(out, t)
		}
	}
	return out
}

type Stats struct {
	Total    int
	Done     int
	Active   int
	Progress int
}

// ComputeStats derives counts and the rounded percent complete. Halves round
// up.
func ComputeStats(tasks []Task) Stats {
	st := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			st.Done++
		}
	}
	st.Active = st.Total - st.Done
	if st.Total > 0 {
		st.Progress = (st.Done*200 + st.Total) / (st.Total * 2)
	}
	return st
}
