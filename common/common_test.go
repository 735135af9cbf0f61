package common

import "testing"

func TestDigitValue(t *testing.T) {
	tests := []struct {
		name  string
		key   uint32
		want  int
		digit bool
	}{
		{name: "top row 0", key: Key0, want: 0, digit: true},
		{name: "top row 1", key: Key1, want: 1, digit: true},
		{name: "top row 9", key: Key9, want: 9, digit: true},
		{name: "keypad 2", key: KeyKP2, want: 2, digit: true},
		{name: "keypad 9", key: KeyKP9, want: 9, digit: true},
		{name: "space", key: KeySpace},
		{name: "escape", key: KeyEsc},
		{name: "letter A", key: 65},
		{name: "keypad decimal", key: 330},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DigitValue(tt.key)
			if ok != tt.digit || got != tt.want {
				t.Fatalf("DigitValue(%d) = %d, %v; want %d, %v", tt.key, got, ok, tt.want, tt.digit)
			}
		})
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "title", "other"); got != "title" {
		t.Fatalf("Coalesce = %q", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Fatalf("Coalesce = %d", got)
	}
}
