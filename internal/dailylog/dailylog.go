// Package dailylog implements the per-day tracked variables (boolean,
// 1-10 scale, free text) and the free-form system-log feed.
package dailylog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/daybook-app/daybook/internal/localstore"
	"github.com/daybook-app/daybook/internal/model"
)

// Log owns the daily-log records of the local store.
type Log struct {
	store *localstore.Store
}

func New(s *localstore.Store) *Log { return &Log{store: s} }

// Variables returns the user-global variable definitions.
func (l *Log) Variables() ([]model.LogVariable, error) { return l.store.Variables() }

// DefineVariable adds a variable definition. Name must be non-empty and
// the type one of boolean, scale, string.
func (l *Log) DefineVariable(name string, typ model.VariableType) (model.LogVariable, error) {
	if name == "" {
		return model.LogVariable{}, fmt.Errorf("variable name: %w", model.ErrValidation)
	}
	switch typ {
	case model.VariableBoolean, model.VariableScale, model.VariableString:
	default:
		return model.LogVariable{}, fmt.Errorf("variable type %q: %w", typ, model.ErrValidation)
	}
	v := model.LogVariable{ID: uuid.New().String(), Name: name, Type: typ}
	vars, err := l.store.Variables()
	if err != nil {
		return model.LogVariable{}, err
	}
	if err := l.store.SaveVariables(append(vars, v)); err != nil {
		return model.LogVariable{}, err
	}
	return v, nil
}

// DeleteVariable removes a definition. Per-day values recorded under the
// id are deliberately not pruned; lookups go by id-presence so orphaned
// values are simply never read.
func (l *Log) DeleteVariable(id string) error {
	vars, err := l.store.Variables()
	if err != nil {
		return err
	}
	filtered := vars[:0]
	for _, v := range vars {
		if v.ID != id {
			filtered = append(filtered, v)
		}
	}
	return l.store.SaveVariables(filtered)
}

// Values returns the recorded values for a date (variable id -> raw).
func (l *Log) Values(dateKey string) (map[string]string, error) {
	return l.store.Values(dateKey)
}

// SetValue records (or overwrites) a variable's value for a date after
// checking it against the variable's declared type.
func (l *Log) SetValue(dateKey string, variable model.LogVariable, raw string) error {
	switch variable.Type {
	case model.VariableBoolean:
		if raw != "true" && raw != "false" {
			return fmt.Errorf("%s wants true/false, got %q: %w", variable.Name, raw, model.ErrValidation)
		}
	case model.VariableScale:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 10 {
			return fmt.Errorf("%s wants 1-10, got %q: %w", variable.Name, raw, model.ErrValidation)
		}
	case model.VariableString:
	default:
		return fmt.Errorf("variable type %q: %w", variable.Type, model.ErrValidation)
	}
	vals, err := l.store.Values(dateKey)
	if err != nil {
		return err
	}
	vals[variable.ID] = raw
	return l.store.SaveValues(dateKey, vals)
}

// Stats aggregates the system-log feed by sentiment. Entries with no type
// count as neutral.
type Stats struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Entries returns the system-log feed, newest first.
func (l *Log) Entries() ([]model.LogEntry, error) { return l.store.Logs() }

// AddEntry prepends a system-log entry. Heading is upper-cased; empty
// heading or description is rejected.
func (l *Log) AddEntry(timestamp, heading, description string, sentiment model.Sentiment) (model.LogEntry, error) {
	if strings.TrimSpace(heading) == "" || strings.TrimSpace(description) == "" {
		return model.LogEntry{}, fmt.Errorf("log entry: %w", model.ErrValidation)
	}
	entry := model.LogEntry{
		ID:          uuid.New().String(),
		Time:        timestamp,
		Heading:     strings.ToUpper(heading),
		Description: description,
		Type:        sentiment,
	}
	logs, err := l.store.Logs()
	if err != nil {
		return model.LogEntry{}, err
	}
	logs = append([]model.LogEntry{entry}, logs...)
	if err := l.store.SaveLogs(logs); err != nil {
		return model.LogEntry{}, err
	}
	return entry, nil
}

// ClearEntries empties the feed.
func (l *Log) ClearEntries() error { return l.store.SaveLogs([]model.LogEntry{}) }

// FeedStats tallies the feed by sentiment.
func (l *Log) FeedStats() (Stats, error) {
	logs, err := l.store.Logs()
	if err != nil {
		return Stats{}, err
	}
	var st Stats
	for _, e := range logs {
		switch e.Type {
		case model.SentimentPositive:
			st.Positive++
		case model.SentimentNegative:
			st.Negative++
		default:
			st.Neutral++
		}
	}
	return st, nil
}
