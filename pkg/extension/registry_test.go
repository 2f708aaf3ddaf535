package extension

import (
	"sort"
	"testing"
)

func TestAllSortedAndComplete(t *testing.T) {
	ids := All()
	if len(ids) != Count() {
		t.Fatalf("All() returned %d ids, Count() = %d", len(ids), Count())
	}
	if !sort.StringsAreSorted(ids) {
		t.Fatal("All() is not sorted")
	}
	for _, id := range ids {
		if !Known(id) {
			t.Errorf("All() id %s not Known", id)
		}
	}
}

func TestDefaultBehaviors(t *testing.T) {
	// gpu_shader5 is the one partially supported extension.
	if b, ok := Default(GL_ARB_gpu_shader5); !ok || b != DisablePartial {
		t.Fatalf("Default(GL_ARB_gpu_shader5) = %v, %v; want DisablePartial, true", b, ok)
	}
	if b, ok := Default(GL_OES_standard_derivatives); !ok || b != Disable {
		t.Fatalf("Default(GL_OES_standard_derivatives) = %v, %v; want Disable, true", b, ok)
	}
	if _, ok := Default("GL_NOT_a_real_extension"); ok {
		t.Fatal("Default accepted an unknown identifier")
	}
}

func TestDefaultsReturnsIndependentCopy(t *testing.T) {
	a := Defaults()
	a[GL_OES_texture_3D] = Require

	b := Defaults()
	if b[GL_OES_texture_3D] != Disable {
		t.Fatal("mutating one Defaults() copy leaked into another")
	}
}

func TestParseBehavior(t *testing.T) {
	cases := []struct {
		tok  string
		want Behavior
		ok   bool
	}{
		{"require", Require, true},
		{"enable", Enable, true},
		{"disable", Disable, true},
		{"warn", Warn, true},
		{"Require", 0, false}, // directive tokens are case-sensitive
		{"", 0, false},
		{"maybe", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseBehavior(tc.tok)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseBehavior(%q) = %v, %v; want %v, %v", tc.tok, got, ok, tc.want, tc.ok)
		}
	}
}

func TestBehaviorTurnedOn(t *testing.T) {
	on := []Behavior{Warn, Enable, Require}
	off := []Behavior{Disable, DisablePartial, Missing}
	for _, b := range on {
		if !b.TurnedOn() {
			t.Errorf("%v.TurnedOn() = false, want true", b)
		}
	}
	for _, b := range off {
		if b.TurnedOn() {
			t.Errorf("%v.TurnedOn() = true, want false", b)
		}
	}
}
