package dfa

import "testing"

func TestAddStateAndTransition(t *testing.T) {
	g := NewGraph()
	s0, err := g.AddState()
	if err != nil {
		t.Fatalf("AddState: %v", err)
	}
	s1, err := g.AddState()
	if err != nil {
		t.Fatalf("AddState: %v", err)
	}
	if err := g.SetStart(s0); err != nil {
		t.Fatalf("SetStart: %v", err)
	}
	if err := g.AddTransition(s0, 'a', s1); err != nil {
		t.Fatalf("AddTransition: %v", err)
	}
	next, ok := g.Step(s0, 'a')
	if !ok || next != s1 {
		t.Fatalf("Step(s0,'a') = (%v,%v), want (%v,true)", next, ok, s1)
	}
	if _, ok := g.Step(s0, 'b'); ok {
		t.Fatal("Step(s0,'b') should have no transition")
	}
}

func TestAddTransitionDeterminismViolation(t *testing.T) {
	g := NewGraph()
	s0, _ := g.AddState()
	s1, _ := g.AddState()
	s2, _ := g.AddState()
	if err := g.AddTransition(s0, 'a', s1); err != nil {
		t.Fatalf("AddTransition: %v", err)
	}
	err := g.AddTransition(s0, 'a', s2)
	if err == nil {
		t.Fatal("expected determinism violation")
	}
	ge, ok := err.(*GraphError)
	if !ok || ge.Kind != DeterminismViolation {
		t.Fatalf("err = %v, want DeterminismViolation", err)
	}
	// Re-adding the same target is a harmless no-op.
	if err := g.AddTransition(s0, 'a', s1); err != nil {
		t.Fatalf("repeat same-target AddTransition should not error: %v", err)
	}
}

func TestMarkAcceptAndInvalidState(t *testing.T) {
	g := NewGraph()
	s0, _ := g.AddState()
	if err := g.MarkAccept(s0, 7, 100); err != nil {
		t.Fatalf("MarkAccept: %v", err)
	}
	st, err := g.State(s0)
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if !st.IsAccept() || st.AcceptKind() != 7 || st.AcceptPriority() != 100 {
		t.Fatalf("unexpected accept state: %+v", st)
	}
	if _, err := g.State(StateID(999)); err == nil {
		t.Fatal("expected InvalidState error")
	}
}

func TestWalkVisitsReachableStatesOnce(t *testing.T) {
	g := NewGraph()
	s0, _ := g.AddState()
	s1, _ := g.AddState()
	s2, _ := g.AddState() // unreachable
	_ = s2
	g.SetStart(s0)
	g.AddTransition(s0, 'a', s1)
	g.AddTransition(s1, 'a', s0) // cycle back to s0

	count := 0
	g.Walk(func(s *State) { count++ })
	if count != 2 {
		t.Fatalf("Walk visited %d states, want 2 (cycle + unreachable excluded)", count)
	}
}

func TestCapacityExhausted(t *testing.T) {
	g := NewGraph()
	var err error
	for i := 0; i < MaxStates; i++ {
		_, err = g.AddState()
		if err != nil {
			t.Fatalf("unexpected error before ceiling: %v", err)
		}
	}
	_, err = g.AddState()
	if err == nil {
		t.Fatal("expected CapacityExhausted once ceiling reached")
	}
	ge, ok := err.(*GraphError)
	if !ok || ge.Kind != CapacityExhausted {
		t.Fatalf("err = %v, want CapacityExhausted", err)
	}
}
