package main

import (
	"fmt"

	"github.com/congo-pay/bankaccounts/internal/numbers"
)

func main() {
	fmt.Println("Sum of largest odd and largest even:", numbers.SumLargestOddEven(numbers.Numbers))
}
