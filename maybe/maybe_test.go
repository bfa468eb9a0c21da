package maybe_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/cow/maybe"
)

func TestGet(t *testing.T) {
	v, ok := maybe.Just("A").Get()
	if !ok || v != "A" {
		t.Errorf("expected Just(A).Get() to be (A, true), is (%q, %v)", v, ok)
	}
	v, ok = maybe.Nothing[string]().Get()
	if ok || v != "" {
		t.Errorf("expected Nothing.Get() to be (\"\", false), is (%q, %v)", v, ok)
	}
}

func TestOf(t *testing.T) {
	pop := func(s []int) (int, bool) {
		if len(s) == 0 {
			return 0, false
		}
		return s[len(s)-1], true
	}
	if v := maybe.Of[int](pop([]int{1, 2})); v.IsNothing() || v.WithDefault(0) != 2 {
		t.Errorf("expected Of(2, true) to be Just(2), is %v", v)
	}
	if v := maybe.Of[int](pop(nil)); !v.IsNothing() {
		t.Errorf("expected Of(0, false) to be Nothing, is %v", v)
	}
}

func TestIsNothing(t *testing.T) {
	if maybe.Just(0).IsNothing() {
		t.Error("expected Just(0) not to be Nothing, even though 0 is the zero value")
	}
	if !maybe.Nothing[int]().IsNothing() {
		t.Error("expected Nothing to be Nothing")
	}
}

func TestWithDefault(t *testing.T) {
	if maybe.Just(7).WithDefault(100) != 7 {
		t.Error("expected Just(7) to ignore the default")
	}
	if maybe.Nothing[int]().WithDefault(100) != 100 {
		t.Error("expected Nothing to use the default")
	}
}

func TestMapMethodKeepsType(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, _ := maybe.Just(7).Map(double).Get(); v != 14 {
		t.Errorf("expected Just(7).Map(double) to be 14, is %d", v)
	}
	if !maybe.Nothing[int]().Map(double).IsNothing() {
		t.Error("expected Nothing.Map(double) to be Nothing")
	}
}

func TestMapChangesType(t *testing.T) {
	s := maybe.Map(strconv.Itoa, maybe.Just(42))
	if v, ok := s.Get(); !ok || v != "42" {
		t.Errorf("expected Map(Itoa, Just 42) to be Just(\"42\"), is %v", s)
	}
	if !maybe.Map(strconv.Itoa, maybe.Nothing[int]()).IsNothing() {
		t.Error("expected Map(Itoa, Nothing) to be Nothing")
	}
}

func TestAndThen(t *testing.T) {
	parse := func(s string) maybe.Maybe[int] {
		n, err := strconv.Atoi(s)
		return maybe.Of(n, err == nil)
	}
	if v := maybe.AndThen(parse, maybe.Just("12")); v.WithDefault(-1) != 12 {
		t.Errorf("expected AndThen(parse, Just 12) to be 12, is %v", v)
	}
	if v := maybe.AndThen(parse, maybe.Just("x")); !v.IsNothing() {
		t.Errorf("expected AndThen(parse, Just x) to be Nothing, is %v", v)
	}
	if v := maybe.AndThen(parse, maybe.Nothing[string]()); !v.IsNothing() {
		t.Errorf("expected AndThen(parse, Nothing) to be Nothing, is %v", v)
	}
}

func TestMatch(t *testing.T) {
	var v int
	switch m := maybe.Just(3).Match(); m {
	case m.Just(&v):
	case m.Nothing():
		t.Error("expected Just(3) to match Just")
	}
	if v != 3 {
		t.Errorf("expected match to bind 3, bound %d", v)
	}
	matched := false
	switch m := maybe.Nothing[int]().Match(); m {
	case m.Just(&v):
		t.Error("expected Nothing not to match Just")
	case m.Nothing():
		matched = true
	}
	if !matched {
		t.Error("expected Nothing to match Nothing")
	}
}

func TestString(t *testing.T) {
	if s := maybe.Just(1).(interface{ String() string }).String(); s != "Just(1)" {
		t.Errorf("expected Just(1) to print as Just(1), is %q", s)
	}
}
