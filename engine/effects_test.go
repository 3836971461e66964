package engine

import "testing"

func TestCountDownInsertAndGet(t *testing.T) {
	var e EffectTracker
	e.CountDownInsert(MuscleMemory, 5)

	v, ok := e.CountDownGet(MuscleMemory)
	if !ok || v != 5 {
		t.Fatalf("CountDownGet = (%d, %v), want (5, true)", v, ok)
	}
	if !e.CountDownActive(MuscleMemory) {
		t.Fatalf("expected MuscleMemory countdown to be active")
	}
}

func TestCountDownInsertOverwrites(t *testing.T) {
	var e EffectTracker
	e.CountDownInsert(Veneration, 4)
	e.CountDownInsert(Veneration, 2)

	v, ok := e.CountDownGet(Veneration)
	if !ok || v != 2 {
		t.Fatalf("CountDownGet after overwrite = (%d, %v), want (2, true)", v, ok)
	}
}

func TestDecrementCountDownsRemovesExpired(t *testing.T) {
	var e EffectTracker
	e.CountDownInsert(Innovation, 1)
	e.CountDownInsert(GreatStrides, 3)

	e.DecrementCountDowns()

	if e.CountDownActive(Innovation) {
		t.Fatalf("expected Innovation countdown to expire after reaching 0")
	}
	v, ok := e.CountDownGet(GreatStrides)
	if !ok || v != 2 {
		t.Fatalf("GreatStrides countdown = (%d, %v), want (2, true)", v, ok)
	}
}

func TestCountDownRemove(t *testing.T) {
	var e EffectTracker
	e.CountDownInsert(WasteNot, 4)
	e.CountDownRemove(WasteNot)

	if e.CountDownActive(WasteNot) {
		t.Fatalf("expected WasteNot countdown to be removed")
	}
}

func TestCountUpGetMutMutatesInPlace(t *testing.T) {
	var e EffectTracker
	e.CountUpInsert(InnerQuiet, 3)

	stacks := e.CountUpGetMut(InnerQuiet)
	if stacks == nil {
		t.Fatalf("expected a non-nil pointer for an installed countup")
	}
	*stacks += 2

	v, ok := e.CountUpGet(InnerQuiet)
	if !ok || v != 5 {
		t.Fatalf("CountUpGet after mutation = (%d, %v), want (5, true)", v, ok)
	}
}

func TestCountUpGetMutNilForAbsentEntry(t *testing.T) {
	var e EffectTracker
	if e.CountUpGetMut(InnerQuiet) != nil {
		t.Fatalf("expected a nil pointer for an absent countup entry")
	}
}

func TestEffectTrackerCapacityDropsSilently(t *testing.T) {
	var e EffectTracker
	actions := []Action{
		MuscleMemory, Veneration, Innovation, GreatStrides,
		WasteNot, WasteNot2, FinalAppraisal, Manipulation, TricksOfTheTrade,
	}
	for _, a := range actions {
		e.CountDownInsert(a, 1)
	}
	// Capacity is 8; the 9th insert must not panic.
	if !e.CountDownActive(actions[0]) {
		t.Fatalf("expected the first inserted countdown to remain active")
	}
}

func TestEffectTrackerCloneIsIndependent(t *testing.T) {
	var e EffectTracker
	e.CountUpInsert(InnerQuiet, 1)

	clone := e.Clone()
	clone.CountUpInsert(InnerQuiet, 9)

	v, _ := e.CountUpGet(InnerQuiet)
	if v != 1 {
		t.Fatalf("mutating the clone affected the original: got %d, want 1", v)
	}
}
