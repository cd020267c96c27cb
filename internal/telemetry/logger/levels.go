// Package logger provides structured logging for EdgeRelay.
package logger

import (
	"log/slog"
	"sort"
	"sync"
)

// defaultComponent is the component name used when no explicit
// component logger is requested.
const defaultComponent = "main"

// ComponentLevel is one entry of the runtime level snapshot.
type ComponentLevel struct {
	Name  string
	Level string
}

// levels is the registry of per-component LevelVars. Components are
// registered on first use and never removed.
var levels = struct {
	mu   sync.Mutex
	vars map[string]*slog.LevelVar
}{vars: make(map[string]*slog.LevelVar)}

// levelVar returns the LevelVar for a component, creating it at info
// level on first use.
func levelVar(name string) *slog.LevelVar {
	levels.mu.Lock()
	defer levels.mu.Unlock()
	lv, ok := levels.vars[name]
	if !ok {
		lv = new(slog.LevelVar)
		levels.vars[name] = lv
	}
	return lv
}

// SetAllLevels sets every registered component to the given level.
// Components registered later start at info; callers that want a
// uniform level should register components before calling this.
func SetAllLevels(level slog.Level) {
	levels.mu.Lock()
	defer levels.mu.Unlock()
	for _, lv := range levels.vars {
		lv.Set(level)
	}
}

// SetLevel sets the level of a single component. It reports false if
// the component is not registered.
func SetLevel(name string, level slog.Level) bool {
	levels.mu.Lock()
	defer levels.mu.Unlock()
	lv, ok := levels.vars[name]
	if !ok {
		return false
	}
	lv.Set(level)
	return true
}

// Levels returns the current level of every registered component,
// sorted by component name.
func Levels() []ComponentLevel {
	levels.mu.Lock()
	out := make([]ComponentLevel, 0, len(levels.vars))
	for name, lv := range levels.vars {
		out = append(out, ComponentLevel{Name: name, Level: FormatLevel(lv.Level())})
	}
	levels.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
