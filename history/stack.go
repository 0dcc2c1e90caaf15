package history

// Stack holds undo groups (each a sequence of Records, already oriented so
// applying them undoes the forward edit they were pushed for) and a
// mirrored redo stack rebuilt from whatever Undo actually applied. Pushing
// a new record while the redo stack is non-empty and no group is open
// discards it, matching the usual editor convention that a fresh edit
// forecloses the redo branch.
type Stack struct {
	undo       [][]Record
	redo       [][]Record
	pending    []Record
	groupDepth int
	enabled    bool
	maxDepth   int
}

// NewStack returns an empty, enabled Stack with no depth limit.
func NewStack() *Stack {
	return &Stack{enabled: true}
}

// SetMaxDepth bounds the number of undo groups the Stack retains; pushing
// past the limit drops the oldest group, the same way an editor with
// bounded undo memory behaves. A limit of 0 means unlimited, the default.
// This is config.EditorConfig's history-depth knob reaching the Stack.
func (s *Stack) SetMaxDepth(limit int) {
	s.maxDepth = limit
	s.trimToDepth()
}

func (s *Stack) trimToDepth() {
	if s.maxDepth <= 0 || len(s.undo) <= s.maxDepth {
		return
	}
	excess := len(s.undo) - s.maxDepth
	s.undo = s.undo[excess:]
}

// Enabled reports whether Push currently records anything.
func (s *Stack) Enabled() bool { return s.enabled }

// Enable turns recording on (spec.md §4.9's enable_history).
func (s *Stack) Enable() { s.enabled = true }

// Disable turns recording off (disable_history); Push becomes a no-op.
func (s *Stack) Disable() { s.enabled = false }

// CanUndo reports whether Undo has a group to apply.
func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether Redo has a group to apply.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// BeginGroup opens (or re-enters) a group: records pushed before the
// matching EndGroup accumulate into one undo entry instead of several.
// Groups nest; only the outermost EndGroup flushes the accumulated group.
func (s *Stack) BeginGroup() {
	s.groupDepth++
}

// EndGroup closes a group opened by BeginGroup. It panics if called
// without a matching BeginGroup, a caller bug the same class as the
// editing package's stateViolation panics.
func (s *Stack) EndGroup() {
	if s.groupDepth == 0 {
		stateViolation("EndGroup called without a matching BeginGroup")
	}
	s.groupDepth--
	if s.groupDepth > 0 {
		return
	}
	if len(s.pending) == 0 {
		return
	}
	s.undo = append(s.undo, s.pending)
	s.pending = nil
	s.redo = nil
	s.trimToDepth()
}

// Push records r as part of the action in progress. Outside any open
// group, r becomes its own one-record undo entry immediately. Inside a
// group, a coalescable record targeting the same entity as the group's
// most recent entry is merged into it rather than appended — the "repeated
// move_temporary" case spec.md §4.11 calls out; other record kinds simply
// append.
func (s *Stack) Push(r Record) {
	if !s.enabled {
		return
	}

	if s.groupDepth > 0 {
		if c, ok := r.(coalescer); ok && len(s.pending) > 0 {
			if prior, ok2 := s.pending[len(s.pending)-1].(coalescer); ok2 && prior.sameTarget(c) {
				s.pending[len(s.pending)-1] = prior.combine(c)
				return
			}
		}
		s.pending = append(s.pending, r)
		return
	}

	s.undo = append(s.undo, []Record{r})
	s.redo = nil
	s.trimToDepth()
}

// Undo pops the most recent undo group and calls apply, in order, for
// every record in it — in the reverse of the order they were pushed, so
// the most recently performed edit within the group is undone first. Each
// record's inverse is collected into a matching redo group pushed onto the
// redo stack, so a subsequent Redo replays the original edits in their
// original order. Undo is a no-op if CanUndo is false.
func (s *Stack) Undo(apply func(Record)) {
	if len(s.undo) == 0 {
		return
	}
	group := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]

	redoGroup := make([]Record, 0, len(group))
	for i := len(group) - 1; i >= 0; i-- {
		r := group[i]
		apply(r)
		redoGroup = append(redoGroup, r.Invert())
	}
	s.redo = append(s.redo, redoGroup)
}

// Redo pops the most recent redo group (built by the last Undo) and
// replays it, symmetric to Undo: records are applied in the reverse of
// their storage order, which restores the edits' original chronological
// order, and a fresh undo group is rebuilt from their inverses. Redo is a
// no-op if CanRedo is false.
func (s *Stack) Redo(apply func(Record)) {
	if len(s.redo) == 0 {
		return
	}
	group := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]

	undoGroup := make([]Record, 0, len(group))
	for i := len(group) - 1; i >= 0; i-- {
		r := group[i]
		apply(r)
		undoGroup = append(undoGroup, r.Invert())
	}
	s.undo = append(s.undo, undoGroup)
	s.trimToDepth()
}
