package engine

// Undo reverses psID's most recent history record, or ErrEmpty wrapped
// as NotFound if there is nothing to undo.
func (e *Engine) Undo(psID string) *EngineError {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return e.logErr(eerr)
	}
	if _, err := pe.history.Undo(pe.ps); err != nil {
		return e.logErr(newErr(NotFound, "undo", err))
	}
	if pe.index != nil {
		pe.index.NotifyInsert()
	}
	return nil
}

// Redo re-applies psID's most recently undone history record.
func (e *Engine) Redo(psID string) *EngineError {
	pe, eerr := e.entry(psID)
	if eerr != nil {
		return e.logErr(eerr)
	}
	if _, err := pe.history.Redo(pe.ps); err != nil {
		return e.logErr(newErr(NotFound, "redo", err))
	}
	if pe.index != nil {
		pe.index.NotifyInsert()
	}
	return nil
}

// CanUndo reports whether psID has a history record to undo.
func (e *Engine) CanUndo(psID string) (bool, *EngineError) {
	pe, err := e.entry(psID)
	if err != nil {
		return false, e.logErr(err)
	}
	return pe.history.CanUndo(), nil
}

// CanRedo reports whether psID has an undone record to redo.
func (e *Engine) CanRedo(psID string) (bool, *EngineError) {
	pe, err := e.entry(psID)
	if err != nil {
		return false, e.logErr(err)
	}
	return pe.history.CanRedo(), nil
}
