package rbtree

import "bytes"
import "cmp"
import "strings"
import "testing"

import "github.com/nahi/avl-tree/api"

func TestMapEmpty(t *testing.T) {
	m := NewMap[string, int]("empty", Defaultsettings())

	if m.ID() != "empty" {
		t.Errorf("unexpected %v", m.ID())
	}
	if m.Count() != 0 {
		t.Errorf("unexpected %v", m.Count())
	}
	if m.Isempty() == false {
		t.Errorf("expected empty map")
	}
	if _, _, ok := m.Min(); ok {
		t.Errorf("unexpected min on empty map")
	}
	if _, _, ok := m.Max(); ok {
		t.Errorf("unexpected max on empty map")
	}

	// validate statistics
	m.Validate()
	stats := m.Stats()
	if x := stats["n_count"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_inserts"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_updates"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_deletes"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_clears"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	}

	m.Log()
}

func TestMapLoad(t *testing.T) {
	setts := Defaultsettings()
	setts["validate.enable"] = true
	m := NewMap[int, string]("load", setts)

	// the insertion order exercises both single and double rotations.
	keys := []int{5, 3, 8, 1, 4, 7, 9}
	for _, key := range keys {
		if err := m.Set(key, "v"); err != nil {
			t.Errorf("unexpected %v", err)
		}
	}
	if x := m.Count(); x != 7 {
		t.Errorf("unexpected %v", x)
	}

	ordered := []int{1, 3, 4, 5, 7, 8, 9}
	i := 0
	for key := range m.Keys() {
		if key != ordered[i] {
			t.Errorf("expected %v, got %v", ordered[i], key)
		}
		i++
	}
	if i != len(ordered) {
		t.Errorf("unexpected %v", i)
	}

	if key, _, ok := m.Min(); !ok || key != 1 {
		t.Errorf("unexpected %v %v", key, ok)
	}
	if key, _, ok := m.Max(); !ok || key != 9 {
		t.Errorf("unexpected %v %v", key, ok)
	}

	for _, key := range keys {
		if value, ok, err := m.Get(key); err != nil {
			t.Errorf("unexpected %v", err)
		} else if !ok || value != "v" {
			t.Errorf("unexpected %v %v for key %v", value, ok, key)
		}
		if ok, err := m.Has(key); err != nil || !ok {
			t.Errorf("expected key %v", key)
		}
	}
}

func TestMapUpdate(t *testing.T) {
	setts := Defaultsettings()
	setts["validate.enable"] = true
	m := NewMap[string, int]("update", setts)

	if err := m.Set("a", 1); err != nil {
		t.Errorf("unexpected %v", err)
	}
	if err := m.Set("a", 2); err != nil {
		t.Errorf("unexpected %v", err)
	}
	if value, ok, _ := m.Get("a"); !ok || value != 2 {
		t.Errorf("unexpected %v %v", value, ok)
	}
	if x := m.Count(); x != 1 {
		t.Errorf("unexpected %v", x)
	}

	stats := m.Stats()
	if x := stats["n_inserts"].(int64); x != 1 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_updates"].(int64); x != 1 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_sets"].(int64); x != 2 {
		t.Errorf("unexpected %v", x)
	}
}

func TestMapDelete(t *testing.T) {
	setts := Defaultsettings()
	setts["validate.enable"] = true
	m := NewMap[int, int]("delete", setts)

	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		if err := m.Set(key, key*10); err != nil {
			t.Errorf("unexpected %v", err)
		}
	}

	// interior entry with two children.
	if value, ok, err := m.Delete(5); err != nil {
		t.Errorf("unexpected %v", err)
	} else if !ok || value != 50 {
		t.Errorf("unexpected %v %v", value, ok)
	}
	// leaf entry.
	if value, ok, _ := m.Delete(1); !ok || value != 10 {
		t.Errorf("unexpected %v %v", value, ok)
	}
	// largest entry.
	if value, ok, _ := m.Delete(9); !ok || value != 90 {
		t.Errorf("unexpected %v %v", value, ok)
	}

	ordered := []int{3, 4, 7, 8}
	i := 0
	for key := range m.Keys() {
		if key != ordered[i] {
			t.Errorf("expected %v, got %v", ordered[i], key)
		}
		i++
	}
	if x := m.Count(); x != 4 {
		t.Errorf("unexpected %v", x)
	}

	// absent key is a no-op.
	if value, ok, err := m.Delete(100); err != nil {
		t.Errorf("unexpected %v", err)
	} else if ok || value != 0 {
		t.Errorf("unexpected %v %v", value, ok)
	}
	if x := m.Stats()["n_deletes"].(int64); x != 3 {
		t.Errorf("unexpected %v", x)
	}
}

func TestMapClear(t *testing.T) {
	m := NewMap[int, int]("clear", Defaultsettings())
	for i := 0; i < 100; i++ {
		if err := m.Set(i, i); err != nil {
			t.Errorf("unexpected %v", err)
		}
	}
	m.Clear()
	if m.Isempty() == false {
		t.Errorf("expected empty map")
	}
	if x := m.Count(); x != 0 {
		t.Errorf("unexpected %v", x)
	}
	if err := m.Set(1, 1); err != nil {
		t.Errorf("unexpected %v", err)
	}
	if x := m.Count(); x != 1 {
		t.Errorf("unexpected %v", x)
	}
	m.Validate()
}

func TestMapDefaultValue(t *testing.T) {
	setts := Defaultsettings()
	setts["default.value"] = 0
	m := NewMap[string, int]("defvalue", setts)

	m.Set("a", 10)
	if value, ok, err := m.Get("z"); err != nil {
		t.Errorf("unexpected %v", err)
	} else if ok || value != 0 {
		t.Errorf("unexpected %v %v", value, ok)
	}
	if value, ok, _ := m.Delete("z"); ok || value != 0 {
		t.Errorf("unexpected %v %v", value, ok)
	}
}

func TestMapDefaultProducer(t *testing.T) {
	setts := Defaultsettings()
	setts["default.producer"] = func() []int { return []int{} }
	m := NewMap[string, []int]("defproducer", setts)

	// every miss gets its own fresh slice.
	first, ok, err := m.Get("absent")
	if err != nil || ok {
		t.Errorf("unexpected %v %v", ok, err)
	}
	first = append(first, 42)
	second, _, _ := m.Get("absent")
	if len(second) != 0 {
		t.Errorf("unexpected %v", second)
	}
	if len(first) != 1 {
		t.Errorf("unexpected %v", first)
	}
}

func TestMapDefaultsMisuse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	setts := Defaultsettings()
	setts["default.value"] = 10
	setts["default.producer"] = func() int { return 20 }
	NewMap[string, int]("misuse", setts)
}

func TestMapUnorderedKeys(t *testing.T) {
	compare := func(a, b int) int {
		if a == 42 || b == 42 {
			return 2 // cannot order 42 against anything
		}
		return cmp.Compare(a, b)
	}
	m := NewMapFunc[int, int]("unordered", compare, Defaultsettings())

	for _, key := range []int{5, 3, 8} {
		if err := m.Set(key, key); err != nil {
			t.Errorf("unexpected %v", err)
		}
	}

	if err := m.Set(42, 42); err != api.ErrorUnorderedKeys {
		t.Errorf("unexpected %v", err)
	}
	if _, _, err := m.Get(42); err != api.ErrorUnorderedKeys {
		t.Errorf("unexpected %v", err)
	}
	if _, err := m.Has(42); err != api.ErrorUnorderedKeys {
		t.Errorf("unexpected %v", err)
	}
	if _, _, err := m.Delete(42); err != api.ErrorUnorderedKeys {
		t.Errorf("unexpected %v", err)
	}

	// the failed operations left the map untouched.
	if x := m.Count(); x != 3 {
		t.Errorf("unexpected %v", x)
	}
	m.Validate()
}

func TestMapDump(t *testing.T) {
	m := NewMap[int, string]("dump", Defaultsettings())
	for _, key := range []int{5, 3, 8} {
		m.Set(key, "v")
	}

	buf := &bytes.Buffer{}
	m.Dump(buf)
	if strings.Contains(buf.String(), "5 v black") == false {
		t.Errorf("unexpected %q", buf.String())
	}

	buf.Reset()
	m.Dotdump(buf)
	out := buf.String()
	if strings.HasPrefix(out, "digraph rbtree {") == false {
		t.Errorf("unexpected %q", out)
	} else if strings.Contains(out, "\"5\" -> \"3\"") == false {
		t.Errorf("unexpected %q", out)
	}
}
