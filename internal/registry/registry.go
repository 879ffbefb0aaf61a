// Package registry tracks escape-game participants and their outcomes.
//
// Players start in the eliminated group when they register and move to the
// escaped group at most once, when an escape is submitted for them. Nothing is
// ever removed and nothing is persisted; a Registry lives as long as the
// process that created it.
package registry

import (
	"errors"
	"fmt"
	"sync"
)

var ErrPlayerNotFound = errors.New("player not found")

type Group string

const (
	GroupEliminated Group = "eliminated"
	GroupEscaped    Group = "escaped"
)

const (
	checkReturningMessage = "Welcome back, You have already played the game. Thank you!"
	checkNewMessageFormat = "Welcome, %s! You are now registered."
)

type PlayerRecord struct {
	Escaped       bool  `json:"escaped"`
	PlayerName    Value `json:"playerName"`
	PlayerNumber  Value `json:"playerNumber"`
	TimeRemaining Value `json:"timeRemaining"`
}

type CheckResult struct {
	Exists  bool   `json:"exists"`
	Message string `json:"message"`
}

type Stats struct {
	Escaped    int `json:"escaped"`
	Eliminated int `json:"eliminated"`
	Total      int `json:"total"`
}

type playerKey struct {
	name   string
	number string
}

func keyOf(name, number Value) playerKey {
	return playerKey{name: name.key, number: number.key}
}

type entry struct {
	record PlayerRecord
	group  Group
}

type Registry struct {
	mu         sync.Mutex
	index      map[playerKey]*entry
	eliminated []*entry
	escaped    []*entry
	observers  []func(Event)
}

func New() *Registry {
	return &Registry{
		index: make(map[playerKey]*entry),
	}
}

// Find looks a player up by name and number. The returned record is a copy.
func (r *Registry) Find(name, number Value) (PlayerRecord, Group, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	found, ok := r.index[keyOf(name, number)]
	if !ok {
		return PlayerRecord{}, "", false
	}
	return found.record, found.group, true
}

// Register adds a pending player, or returns the existing record with
// isNew=false when the pair is already known.
func (r *Registry) Register(name, number Value) (PlayerRecord, bool) {
	r.mu.Lock()
	key := keyOf(name, number)
	if existing, ok := r.index[key]; ok {
		record := existing.record
		r.mu.Unlock()
		return record, false
	}
	created := &entry{
		record: PlayerRecord{
			Escaped:       false,
			PlayerName:    name,
			PlayerNumber:  number,
			TimeRemaining: numberValue(0),
		},
		group: GroupEliminated,
	}
	r.index[key] = created
	r.eliminated = append(r.eliminated, created)
	record := created.record
	observers := r.observers
	r.mu.Unlock()

	notify(observers, Event{Type: EventPlayerRegistered, Record: record})
	return record, true
}

// SubmitResult records a game outcome. A truthy escaped moves a pending
// player to the escaped group with the given time remaining; anything else
// leaves the record untouched. Players already escaped keep their first result.
func (r *Registry) SubmitResult(name, number, timeRemaining, escaped Value) (PlayerRecord, error) {
	r.mu.Lock()
	found, ok := r.index[keyOf(name, number)]
	if !ok {
		r.mu.Unlock()
		return PlayerRecord{}, ErrPlayerNotFound
	}
	if !escaped.Truthy() || found.group == GroupEscaped {
		record := found.record
		r.mu.Unlock()
		return record, nil
	}
	r.eliminated = removeEntry(r.eliminated, found)
	found.record.Escaped = true
	found.record.TimeRemaining = timeRemaining
	found.group = GroupEscaped
	r.escaped = append(r.escaped, found)
	record := found.record
	observers := r.observers
	r.mu.Unlock()

	notify(observers, Event{Type: EventPlayerEscaped, Record: record})
	return record, nil
}

// Check reports whether the player has played before, with the greeting
// shown to them.
func (r *Registry) Check(name, number Value) CheckResult {
	if _, _, ok := r.Find(name, number); ok {
		return CheckResult{Exists: true, Message: checkReturningMessage}
	}
	return CheckResult{Exists: false, Message: fmt.Sprintf(checkNewMessageFormat, name.String())}
}

// ListResults returns both groups in insertion order from one consistent view.
func (r *Registry) ListResults() ([]PlayerRecord, []PlayerRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	escaped := make([]PlayerRecord, 0, len(r.escaped))
	for _, item := range r.escaped {
		if item.record.Escaped {
			escaped = append(escaped, item.record)
		}
	}
	eliminated := make([]PlayerRecord, 0, len(r.eliminated))
	for _, item := range r.eliminated {
		if !item.record.Escaped {
			eliminated = append(eliminated, item.record)
		}
	}
	return escaped, eliminated
}

func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Stats{
		Escaped:    len(r.escaped),
		Eliminated: len(r.eliminated),
		Total:      len(r.index),
	}
}

func removeEntry(list []*entry, target *entry) []*entry {
	for i, item := range list {
		if item == target {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
