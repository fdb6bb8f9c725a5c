package series

// Factorial returns n! as a float64. n <= 0 yields the empty product 1.
// Values past 170! overflow to +Inf; callers handle that as a non-finite term.
func Factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

// Pochhammer returns the rising factorial (a)_m = a(a+1)...(a+m-1).
// m <= 0 yields the empty product 1.
func Pochhammer(a float64, m int) float64 {
	result := 1.0
	for k := 0; k < m; k++ {
		result *= a + float64(k)
	}
	return result
}
