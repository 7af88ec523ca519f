package sledge

// InputLock is a cooperative, single-owner token granting a caller exclusive
// right to manipulate a viewport's transient state. Ownership is advisory:
// nothing in the viewport enforces it, and consuming tools must check
// IsUnlocked or TryAcquire before mutating shared viewport state.
//
// All operations are instantaneous and non-blocking. Like the rest of the
// package, InputLock assumes single-threaded use on the UI thread.
type InputLock struct {
	owner any
}

// TryAcquire attempts to take the lock for ctx. It succeeds when the lock is
// unowned or already owned by ctx (identity comparison). On failure ownership
// is unchanged.
func (l *InputLock) TryAcquire(ctx any) bool {
	if l.owner == nil || l.owner == ctx {
		l.owner = ctx
		return true
	}
	return false
}

// Release clears ownership when ctx is the current owner or the lock is
// already free. It reports whether the lock is free afterwards.
func (l *InputLock) Release(ctx any) bool {
	if l.owner == nil || l.owner == ctx {
		l.owner = nil
	}
	return l.owner == nil
}

// IsUnlocked reports whether ctx may manipulate the viewport: the lock is
// either unowned or owned by ctx.
func (l *InputLock) IsUnlocked(ctx any) bool {
	return l.owner == nil || l.owner == ctx
}
