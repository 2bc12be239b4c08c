// Package numtheory provides the integer primitives behind pattern
// combination: [GCD], [LCM], [LCMOfList], [IsPrime] and [PrimeFactors].
//
// All functions except [IsPrime] and [Binomial] require positive inputs and
// return an error wrapping [ErrInvalidArgument] otherwise:
//
//	n, err := numtheory.LCMOfList([]int{3, 5, 4})
//	// n == 60
package numtheory
