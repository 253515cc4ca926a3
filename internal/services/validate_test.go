package services

import "testing"

func TestValidEmailAddress(t *testing.T) {
	valid := []string{
		"a@example.com",
		"first.last@sub.example.co",
		"user+tag@example.com",
	}
	for _, s := range valid {
		if !validEmailAddress(s) {
			t.Errorf("validEmailAddress(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"   ",
		"plainaddress",
		"@example.com",
		"user@",
		"Jordan <jordan@example.com>",
		"two@ad@dresses.com",
	}
	for _, s := range invalid {
		if validEmailAddress(s) {
			t.Errorf("validEmailAddress(%q) = true, want false", s)
		}
	}
}
