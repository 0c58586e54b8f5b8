package controllers

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Music", []string{"Music"}},
		{"Music, Outdoors", []string{"Music", "Outdoors"}},
		{" a ,, b ,", []string{"a", "b"}},
	}

	for _, tc := range cases {
		if got := splitList(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("splitList(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidISODate(t *testing.T) {
	valid := []string{"2026-08-30", "2026-08-30T18:00:00Z", "2026-08-30T18:00:00-07:00"}
	for _, s := range valid {
		if !validISODate(s) {
			t.Fatalf("%q should be a valid date", s)
		}
	}

	invalid := []string{"", "tomorrow", "08/30/2026", "2026-13-01"}
	for _, s := range invalid {
		if validISODate(s) {
			t.Fatalf("%q should be rejected", s)
		}
	}
}
