package sledge

import "testing"

func TestInputLockExclusivity(t *testing.T) {
	var lock InputLock
	a, b := new(int), new(int)

	if !lock.TryAcquire(a) {
		t.Fatal("acquire on a free lock failed")
	}
	if lock.TryAcquire(b) {
		t.Error("second owner acquired a held lock")
	}
	if !lock.TryAcquire(a) {
		t.Error("re-acquire by the owner failed")
	}
	if lock.IsUnlocked(b) {
		t.Error("IsUnlocked true for a non-owner while held")
	}
	if !lock.IsUnlocked(a) {
		t.Error("IsUnlocked false for the owner")
	}
}

func TestInputLockRelease(t *testing.T) {
	var lock InputLock
	a, b := new(int), new(int)

	lock.TryAcquire(a)
	if lock.Release(b) {
		t.Error("non-owner release freed the lock")
	}
	if lock.IsUnlocked(b) {
		t.Error("lock freed by a non-owner")
	}
	if !lock.Release(a) {
		t.Error("owner release did not free the lock")
	}
	if !lock.TryAcquire(b) {
		t.Error("acquire after release failed")
	}
}

func TestInputLockReleaseWhenFree(t *testing.T) {
	var lock InputLock
	if !lock.Release(new(int)) {
		t.Error("releasing a free lock reported it as held")
	}
	if !lock.IsUnlocked(new(int)) {
		t.Error("fresh lock not unlocked")
	}
}

func TestViewportLockAccessor(t *testing.T) {
	v := NewViewport(NewOrthographicCamera(AxisTop), 800, 600)
	tool := new(int)
	if !v.Lock().TryAcquire(tool) {
		t.Fatal("viewport lock not acquirable")
	}
	// The accessor must hand out the same lock every time.
	if v.Lock().TryAcquire(new(int)) {
		t.Error("Lock() returned a fresh lock instead of the viewport's")
	}
}
