package envutil

import "testing"

func TestStr(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_STR", "  value  ")
	if got := Str("ENVUTIL_TEST_STR", "def"); got != "value" {
		t.Fatalf("Str: got %q", got)
	}
	if got := Str("ENVUTIL_TEST_STR_MISSING", "def"); got != "def" {
		t.Fatalf("Str default: got %q", got)
	}
}

func TestInt(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_INT", "42")
	if got := Int("ENVUTIL_TEST_INT", 7); got != 42 {
		t.Fatalf("Int: got %d", got)
	}
	t.Setenv("ENVUTIL_TEST_INT", "not-a-number")
	if got := Int("ENVUTIL_TEST_INT", 7); got != 7 {
		t.Fatalf("Int garbage: got %d", got)
	}
}

func TestBool(t *testing.T) {
	cases := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"on", false, true},
		{"false", true, false},
		{"0", true, false},
		{"off", true, false},
		{"", true, true},
		{"", false, false},
		{"garbage", true, true},
	}
	for _, tc := range cases {
		t.Setenv("ENVUTIL_TEST_BOOL", tc.raw)
		if got := Bool("ENVUTIL_TEST_BOOL", tc.def); got != tc.want {
			t.Errorf("Bool(%q, %v): got %v, want %v", tc.raw, tc.def, got, tc.want)
		}
	}
}
