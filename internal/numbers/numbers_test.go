package numbers

import (
	"math"
	"testing"
)

func TestFixedInput(t *testing.T) {
	if got := FindLargestOdd(Numbers); got != 21 {
		t.Fatalf("expected largest odd 21, got %d", got)
	}
	if got := FindLargestEven(Numbers); got != 24 {
		t.Fatalf("expected largest even 24, got %d", got)
	}
	if got := SumLargestOddEven(Numbers); got != 45 {
		t.Fatalf("expected sum 45, got %d", got)
	}
}

func TestFindLargest(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		wantOdd  int
		wantEven int
	}{
		{name: "empty", input: nil, wantOdd: math.MinInt, wantEven: math.MinInt},
		{name: "only even", input: []int{4, 8, 2}, wantOdd: math.MinInt, wantEven: 8},
		{name: "only odd", input: []int{3, 9, 1}, wantOdd: 9, wantEven: math.MinInt},
		{name: "negatives", input: []int{-7, -3, -4, -10}, wantOdd: -3, wantEven: -4},
		{name: "duplicates", input: []int{5, 5, 6, 6}, wantOdd: 5, wantEven: 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FindLargestOdd(tc.input); got != tc.wantOdd {
				t.Fatalf("largest odd: expected %d, got %d", tc.wantOdd, got)
			}
			if got := FindLargestEven(tc.input); got != tc.wantEven {
				t.Fatalf("largest even: expected %d, got %d", tc.wantEven, got)
			}
		})
	}
}
