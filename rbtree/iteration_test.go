package rbtree

import "testing"

func TestIteration(t *testing.T) {
	m := NewMap[string, int]("iter", Defaultsettings())
	keys := []string{"delta", "alpha", "echo", "bravo", "charlie"}
	for i, key := range keys {
		if err := m.Set(key, i); err != nil {
			t.Errorf("unexpected %v", err)
		}
	}

	ordered := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	i := 0
	for key, value := range m.All() {
		if key != ordered[i] {
			t.Errorf("expected %v, got %v", ordered[i], key)
		} else if key != keys[value] {
			t.Errorf("unexpected %v for key %v", value, key)
		}
		i++
	}
	if i != len(ordered) {
		t.Errorf("unexpected %v", i)
	}

	i = 0
	for key := range m.Keys() {
		if key != ordered[i] {
			t.Errorf("expected %v, got %v", ordered[i], key)
		}
		i++
	}

	i = 0
	for value := range m.Values() {
		if keys[value] != ordered[i] {
			t.Errorf("unexpected %v", value)
		}
		i++
	}
}

func TestIterationEarlyStop(t *testing.T) {
	m := NewMap[int, int]("earlystop", Defaultsettings())
	for i := 0; i < 100; i++ {
		m.Set(i, i)
	}

	n := 0
	for range m.Keys() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("unexpected %v", n)
	}

	// the sequence is restartable, a fresh range walks from the least
	// key again.
	seq := m.Keys()
	for round := 0; round < 2; round++ {
		n, prev := 0, -1
		for key := range seq {
			if key != prev+1 {
				t.Errorf("expected %v, got %v", prev+1, key)
			}
			prev = key
			n++
		}
		if n != 100 {
			t.Errorf("unexpected %v", n)
		}
	}
}

func TestIterationEmpty(t *testing.T) {
	m := NewCASMap[int, int]("iterempty", Defaultsettings())
	for range m.All() {
		t.Errorf("unexpected entry")
	}
	for range m.Keys() {
		t.Errorf("unexpected key")
	}
	for range m.Values() {
		t.Errorf("unexpected value")
	}
}

func TestTomap(t *testing.T) {
	m := NewMap[string, int]("tomap", Defaultsettings())
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	gomap := Tomap(m.All())
	if len(gomap) != 3 {
		t.Errorf("unexpected %v", gomap)
	}
	for key, value := range map[string]int{"a": 1, "b": 2, "c": 3} {
		if gomap[key] != value {
			t.Errorf("unexpected %v for key %v", gomap[key], key)
		}
	}
}
