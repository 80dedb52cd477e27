// Package navigator is the state machine behind paging through search
// results. A Session holds the result list and the cursor; the available
// actions are derived from (length, cursor) on every call, so they stay
// consistent after edits and deletes reshape the list.
package navigator

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/worklog/internal/models"
)

var ErrActionNotAvailable = errors.New("action not available in current state")

// State is the navigator state derived from (length, cursor).
type State int

const (
	StateEmpty State = iota
	StateSingleton
	StateFirst
	StateLast
	StateMiddle
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateSingleton:
		return "singleton"
	case StateFirst:
		return "first"
	case StateLast:
		return "last"
	case StateMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Action is a user command while navigating.
type Action int

const (
	ActionNext Action = iota
	ActionPrevious
	ActionEdit
	ActionDelete
	ActionReturn
)

// Key is the letter that selects the action.
func (a Action) Key() string {
	return [...]string{"n", "p", "e", "d", "r"}[a]
}

// Label is the menu caption, with the key letter bracketed.
func (a Action) Label() string {
	return [...]string{"[N]ext", "[P]revious", "[E]dit", "[D]elete", "[R]eturn to search menu"}[a]
}

// ParseAction maps typed input onto an action, ignoring case and surrounding
// whitespace. It does not check whether the action is currently available.
func ParseAction(input string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "n":
		return ActionNext, true
	case "p":
		return ActionPrevious, true
	case "e":
		return ActionEdit, true
	case "d":
		return ActionDelete, true
	case "r":
		return ActionReturn, true
	default:
		return 0, false
	}
}

var actionsByState = map[State][]Action{
	StateEmpty:     nil,
	StateSingleton: {ActionEdit, ActionDelete, ActionReturn},
	StateFirst:     {ActionNext, ActionEdit, ActionDelete, ActionReturn},
	StateLast:      {ActionPrevious, ActionEdit, ActionDelete, ActionReturn},
	StateMiddle:    {ActionNext, ActionPrevious, ActionEdit, ActionDelete, ActionReturn},
}

// Session is one navigation over a result list. 0 <= cursor < len holds
// whenever the list is non-empty.
type Session struct {
	entries []models.Entry
	cursor  int
}

// New starts a session at the first entry. The list is copied.
func New(entries []models.Entry) *Session {
	return &Session{entries: append([]models.Entry(nil), entries...)}
}

func (s *Session) Len() int    { return len(s.entries) }
func (s *Session) Cursor() int { return s.cursor }

// Current returns the entry under the cursor; ok is false when the list is empty.
func (s *Session) Current() (models.Entry, bool) {
	if len(s.entries) == 0 {
		return models.Entry{}, false
	}
	return s.entries[s.cursor], true
}

func (s *Session) State() State {
	n := len(s.entries)
	switch {
	case n == 0:
		return StateEmpty
	case n == 1:
		return StateSingleton
	case s.cursor == 0:
		return StateFirst
	case s.cursor == n-1:
		return StateLast
	default:
		return StateMiddle
	}
}

// Actions lists what the user may do in the current state, in menu order.
func (s *Session) Actions() []Action {
	return append([]Action(nil), actionsByState[s.State()]...)
}

func (s *Session) Allows(a Action) bool {
	for _, x := range actionsByState[s.State()] {
		if x == a {
			return true
		}
	}
	return false
}

func (s *Session) Next() error {
	if !s.Allows(ActionNext) {
		return ErrActionNotAvailable
	}
	s.cursor++
	return nil
}

func (s *Session) Previous() error {
	if !s.Allows(ActionPrevious) {
		return ErrActionNotAvailable
	}
	s.cursor--
	return nil
}

// Replace overwrites the entry under the cursor. The cursor does not move.
func (s *Session) Replace(e models.Entry) error {
	if !s.Allows(ActionEdit) {
		return ErrActionNotAvailable
	}
	s.entries[s.cursor] = e
	return nil
}

// Remove drops the entry under the cursor. Removing the last of several
// entries moves the cursor back one; otherwise the cursor keeps its index and
// now addresses the following entry, or the list is empty.
func (s *Session) Remove() error {
	if !s.Allows(ActionDelete) {
		return ErrActionNotAvailable
	}
	n := len(s.entries)
	s.entries = append(s.entries[:s.cursor], s.entries[s.cursor+1:]...)
	if s.cursor == n-1 && n > 1 {
		s.cursor--
	}
	return nil
}
