package pets

import "testing"

func TestValidRFID(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"12345", true},
		{"00000", true},
		{"1234", false},
		{"123456", false},
		{"1234a", false},
		{"abcde", false},
		{"12 45", false},
		{"", false},
		{"  123", false},
		{"12.45", false},
	}

	for _, c := range cases {
		if got := ValidRFID(c.code); got != c.want {
			t.Errorf("ValidRFID(%q) = %v, want %v", c.code, got, c.want)
		}
	}
}
