package viewer

import (
	"slices"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewer/common"
)

func TestBindingsResolve(t *testing.T) {
	b := NewBindings([]string{"Texting While Standing", "Swimming", "Chapa-Giratoria"})

	tests := []struct {
		key  uint32
		want string
		ok   bool
	}{
		{key: common.Key1, want: "Texting While Standing", ok: true},
		{key: common.Key3, want: "Chapa-Giratoria", ok: true},
		{key: common.KeyKP2, want: "Swimming", ok: true},
		{key: common.Key0},
		{key: common.Key4},
		{key: common.KeyEsc},
	}
	for _, tt := range tests {
		got, ok := b.Resolve(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("Resolve(%d) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBindingsLines(t *testing.T) {
	names := []string{"Taunt", "Silly Dancing"}
	b := NewBindings(names)
	names[0] = "mutated"

	if got, want := b.Lines(), []string{"1: Taunt", "2: Silly Dancing"}; !slices.Equal(got, want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
}
