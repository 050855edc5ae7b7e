package history

import (
	"errors"
	"time"

	"github.com/uprootiny/umbra-sub002/pointset"
)

// Capacity is the maximum number of records retained on the past
// stack; pushing beyond it discards the oldest (spec.md §4.10).
const Capacity = 100

// CoalesceWindow is the time budget within which two consecutive
// same-kind, same-index records pushed to the top of the stack merge
// into one, rather than stacking a separate undo step per intermediate
// frame of e.g. a drag gesture.
const CoalesceWindow = 500 * time.Millisecond

// ErrEmpty indicates Undo or Redo was called with nothing to do.
var ErrEmpty = errors.New("history: stack is empty")

// ErrTransactionActive indicates BeginTransaction was called while a
// transaction was already open.
var ErrTransactionActive = errors.New("history: transaction already open")

// ErrNoTransaction indicates Commit or Rollback was called with no
// open transaction.
var ErrNoTransaction = errors.New("history: no open transaction")

// Clock abstracts wall-clock time for coalescing, per spec.md §9's
// explicit clock design note.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Stack is the undo/redo history for one PointSet.
type Stack struct {
	past, future []Record
	clock        Clock
	lastPushAt   time.Time

	txOpen   bool
	txBuffer []Record
}

// New constructs an empty Stack using the real wall clock.
func New() *Stack {
	return &Stack{clock: realClock{}}
}

// SetClock installs an explicit clock, overriding the default. Used by
// tests to control coalescing windows deterministically.
func (s *Stack) SetClock(c Clock) { s.clock = c }

// Push records r as a completed mutation. If a transaction is open, r
// is buffered into it instead of landing on the past stack directly.
// Outside a transaction, r either coalesces into the top-of-stack
// record (same Kind, same Index, within CoalesceWindow) or is pushed
// as a new entry; either way any pending redo history is cleared and
// the past stack is trimmed to Capacity.
func (s *Stack) Push(r Record) {
	if s.txOpen {
		s.txBuffer = append(s.txBuffer, r)
		return
	}
	s.future = s.future[:0]
	now := s.clock.Now()

	if n := len(s.past); n > 0 {
		top := &s.past[n-1]
		if top.Kind == r.Kind && top.Index == r.Index && now.Sub(s.lastPushAt) <= CoalesceWindow {
			coalesce(top, r)
			s.lastPushAt = now
			return
		}
	}

	s.past = append(s.past, r)
	s.lastPushAt = now
	if len(s.past) > Capacity {
		s.past = s.past[len(s.past)-Capacity:]
	}
}

// coalesce merges incoming record r into the existing top record. For
// MovePoint, Reparent and Rename it keeps top's "old" state and takes
// r's "new" state; for any other kind r replaces top outright.
func coalesce(top *Record, r Record) {
	switch r.Kind {
	case MovePoint:
		top.NewCoords = r.NewCoords
	case Reparent:
		top.NewParent = r.NewParent
		top.NewDepth = r.NewDepth
	case Rename:
		top.NewName = r.NewName
	default:
		*top = r
	}
}

// Undo reverses the most recent past record on ps, moving it to the
// future stack. Returns ErrEmpty if past is empty.
func (s *Stack) Undo(ps *pointset.PointSet) (Record, error) {
	if len(s.past) == 0 {
		return Record{}, ErrEmpty
	}
	n := len(s.past)
	r := s.past[n-1]
	s.past = s.past[:n-1]
	if err := Reverse(ps, r); err != nil {
		s.past = append(s.past, r) // leave state consistent on failure
		return Record{}, err
	}
	s.future = append(s.future, r)
	return r, nil
}

// Redo re-applies the most recently undone record on ps, moving it
// back to the past stack. Returns ErrEmpty if future is empty.
func (s *Stack) Redo(ps *pointset.PointSet) (Record, error) {
	if len(s.future) == 0 {
		return Record{}, ErrEmpty
	}
	n := len(s.future)
	r := s.future[n-1]
	s.future = s.future[:n-1]
	if err := Apply(ps, r); err != nil {
		s.future = append(s.future, r)
		return Record{}, err
	}
	s.past = append(s.past, r)
	return r, nil
}

// BeginTransaction opens a transactional scope: subsequent Push calls
// buffer instead of landing on the past stack. Returns
// ErrTransactionActive if one is already open.
func (s *Stack) BeginTransaction() error {
	if s.txOpen {
		return ErrTransactionActive
	}
	s.txOpen = true
	s.txBuffer = s.txBuffer[:0]
	return nil
}

// Commit closes the open transaction, pushing its buffered records as
// a single Batch record (empty transactions push nothing). Returns
// ErrNoTransaction if none is open.
func (s *Stack) Commit() error {
	if !s.txOpen {
		return ErrNoTransaction
	}
	s.txOpen = false
	if len(s.txBuffer) == 0 {
		return nil
	}
	children := append([]Record(nil), s.txBuffer...)
	s.txBuffer = nil
	s.Push(Record{Kind: Batch, Children: children})
	return nil
}

// Rollback closes the open transaction, reversing its buffered records
// on ps in reverse order and discarding them (no history entry is
// left behind). Returns ErrNoTransaction if none is open.
func (s *Stack) Rollback(ps *pointset.PointSet) error {
	if !s.txOpen {
		return ErrNoTransaction
	}
	s.txOpen = false
	for i := len(s.txBuffer) - 1; i >= 0; i-- {
		if err := Reverse(ps, s.txBuffer[i]); err != nil {
			s.txBuffer = nil
			return err
		}
	}
	s.txBuffer = nil
	return nil
}

// CanUndo reports whether Undo would succeed.
func (s *Stack) CanUndo() bool { return len(s.past) > 0 }

// CanRedo reports whether Redo would succeed.
func (s *Stack) CanRedo() bool { return len(s.future) > 0 }
