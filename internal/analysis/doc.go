// Package analysis scores rhythm patterns by geometric balance.
//
// Every onset at step k of an n-step cycle is placed on the unit circle at
// angle 2*pi*k/n. The normalized length of the vector sum is the balance
// magnitude:
//
//   - [CalculateBalance]: magnitude, score bucket and center of gravity
//   - [Classify]: magnitude to [Score] (perfect, excellent, good, fair, poor)
//   - [Spectrum]: all DFT coefficients, of which balance is the first
//
// # Perfect Balance
//
// A pattern is perfectly balanced when its onset vectors cancel:
//
//	b := analysis.BalanceOf(p)
//	if b.IsPerfectlyBalanced {
//	    // no rotational center of mass remains
//	}
package analysis
