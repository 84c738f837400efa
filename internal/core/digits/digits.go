// Package digits contains the pure numeric logic for digit operations.
// This is part of the Functional Core - no I/O, only pure functions.
package digits

// Reverse returns the integer formed by reading the decimal digits of n
// in reverse order. Leading zeros of the result are dropped (120 -> 21).
// Behavior for negative n is undefined; callers check CanReverse first.
func Reverse(n int) int {
	result := 0
	for n != 0 {
		rem := n % 10
		result = result*10 + rem
		n /= 10
	}
	return result
}

// CubeSum returns the sum of the cubes of the decimal digits of n.
func CubeSum(n int) int {
	sum := 0
	for n != 0 {
		rem := n % 10
		sum += rem * rem * rem
		n /= 10
	}
	return sum
}

// IsArmstrong reports whether n equals the sum of the cubes of its digits.
// 0 is trivially an Armstrong number.
func IsArmstrong(n int) bool {
	return CubeSum(n) == n
}

// CountDigits returns the number of decimal digits in n (1 for 0).
func CountDigits(n int) int {
	if n == 0 {
		return 1
	}
	count := 0
	for n != 0 {
		n /= 10
		count++
	}
	return count
}

// PowerSum returns the sum of each digit of n raised to power.
func PowerSum(n, power int) int {
	sum := 0
	for n != 0 {
		sum += pow(n%10, power)
		n /= 10
	}
	return sum
}

// IsNarcissistic reports whether n equals the sum of its digits each raised
// to the number of digits in n. For three-digit numbers this agrees with
// IsArmstrong; it also accepts wider numbers such as 9474.
func IsNarcissistic(n int) bool {
	return PowerSum(n, CountDigits(n)) == n
}

// Verdict renders a classification the way the armstrong program prints it.
func Verdict(armstrong bool) string {
	if armstrong {
		return "Armstrong"
	}
	return "Not a Armstrong"
}

func pow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
