package numbers

import "math"

// Numbers is the fixed input scanned by the scanner program.
var Numbers = []int{2, 5, 7, 10, 12, 15, 18, 20, 21, 24}

// FindLargestOdd returns the largest odd element of numbers. If there is no
// odd element it returns math.MinInt.
func FindLargestOdd(numbers []int) int {
	largest := math.MinInt
	for _, n := range numbers {
		if n%2 != 0 && n > largest {
			largest = n
		}
	}
	return largest
}

// FindLargestEven returns the largest even element of numbers. If there is no
// even element it returns math.MinInt.
func FindLargestEven(numbers []int) int {
	largest := math.MinInt
	for _, n := range numbers {
		if n%2 == 0 && n > largest {
			largest = n
		}
	}
	return largest
}

// SumLargestOddEven adds the largest odd and largest even elements. The
// math.MinInt sentinel is added as-is when either parity is missing.
func SumLargestOddEven(numbers []int) int {
	return FindLargestOdd(numbers) + FindLargestEven(numbers)
}
