// Package pattern generates and transforms cyclic rhythm patterns.
//
// Two generator families are provided:
//
//   - [Polygon]: a regular polygon inscribed in a step circle
//   - [Euclidean]: Bjorklund's maximally even distribution of beats
//
// Both return a [Pattern], an immutable step sequence of at most [MaxSteps]
// steps that records its provenance and a formula such as "P(5,1)" or
// "E(3,8)".
//
//	tresillo, _ := pattern.Euclidean(3, 8, 0)
//	fmt.Println(tresillo.Binary()) // 10010010
package pattern
