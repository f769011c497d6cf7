// util/generic_test.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"slices"
	"strings"
	"testing"
)

func TestSelect(t *testing.T) {
	if v := Select(true, 1, 2); v != 1 {
		t.Errorf("Select(true) = %d, wanted 1", v)
	}
	if v := Select(false, 1, 2); v != 2 {
		t.Errorf("Select(false) = %d, wanted 2", v)
	}
}

func TestMapSlice(t *testing.T) {
	got := MapSlice([]int{1, 2, 3}, func(v int) int { return 2 * v })
	if want := []int{2, 4, 6}; !slices.Equal(got, want) {
		t.Errorf("got %v, wanted %v", got, want)
	}
}

func TestFilterSlice(t *testing.T) {
	got := FilterSlice([]int{1, 2, 3, 4, 5}, func(v int) bool { return v%2 == 0 })
	if want := []int{2, 4}; !slices.Equal(got, want) {
		t.Errorf("got %v, wanted %v", got, want)
	}
}

func TestReduceSlice(t *testing.T) {
	sum := ReduceSlice([]int{1, 2, 3, 4}, func(v int, acc int) int { return acc + v }, 10)
	if sum != 20 {
		t.Errorf("got %d, wanted 20", sum)
	}
}

func TestErrorLogger(t *testing.T) {
	var e ErrorLogger
	if e.HaveErrors() {
		t.Errorf("fresh ErrorLogger claims errors")
	}

	e.Push("outer")
	e.Push("inner")
	e.ErrorString("problem %d", 1)
	e.Pop()
	e.Pop()

	if !e.HaveErrors() {
		t.Errorf("expected errors after ErrorString")
	}
	s := e.String()
	for _, want := range []string{"outer", "inner", "problem 1"} {
		if !strings.Contains(s, want) {
			t.Errorf("error string %q missing %q", s, want)
		}
	}
}
