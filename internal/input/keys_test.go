package input

import "testing"

func TestParseKey(t *testing.T) {
	tests := []struct {
		name     string
		expected Key
	}{
		{"tab", KeyTab},
		{"TAB", KeyTab},
		{"esc", KeyEscape},
		{"escape", KeyEscape},
		{"enter", KeyEnter},
		{"space", KeySpace},
		{"left", KeyLeft},
		{"down", KeyDown},
		{"a", KeyA},
		{"Z", KeyZ},
		{"7", Key('7')},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseKey(tc.name)
			if err != nil {
				t.Fatalf("ParseKey(%q) error: %v", tc.name, err)
			}
			if got != tc.expected {
				t.Errorf("ParseKey(%q) = %v, expected %v", tc.name, got, tc.expected)
			}
		})
	}

	if _, err := ParseKey("hyper"); err == nil {
		t.Error("ParseKey should reject unknown names")
	}
}

func TestKeyStringRoundTrip(t *testing.T) {
	for _, k := range []Key{KeyTab, KeyEscape, KeyEnter, KeyUp, KeyA, Key('5'), KeyBackspace} {
		got, err := ParseKey(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKey(%q) = %v, %v; expected %v", k.String(), got, err, k)
		}
	}
}

func TestKeyForRune(t *testing.T) {
	tests := []struct {
		r        rune
		expected Key
		ok       bool
	}{
		{'a', KeyA, true},
		{'Q', Key('Q'), true},
		{'3', Key('3'), true},
		{' ', KeySpace, true},
		{'!', KeyOther, true},
		{0x01, KeyNone, false},
	}

	for _, tc := range tests {
		got, ok := KeyForRune(tc.r)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("KeyForRune(%q) = %v, %v; expected %v, %v", tc.r, got, ok, tc.expected, tc.ok)
		}
	}
}
