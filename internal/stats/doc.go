// Package stats provides the binomial building blocks of the threshold correction.
//
// # Pascal rows
//
// [PascalRow] returns C(n,0)..C(n,n) built with the additive recurrence
// C(n,k) = C(n-1,k-1) + C(n-1,k). No factorials or products are formed, so the
// row never wraps the way an integer implementation does around n = 68.
// Coefficients are float64: exact while they fit in 53 bits (n <= 56) and
// correctly rounded sums beyond that. Rows overflow to +Inf past n = 1029,
// which is reported as [ErrOverflow].
//
// # False-positive model
//
// [Model] evaluates the binomial probability mass
//
//	P(X = k) = C(n,k) * fpr^k * (1-fpr)^(n-k)
//
// for n membership tests against a bin that does not contain the query.
// Evaluation outside 0 <= k <= n is rejected with [ErrNumericDomain].
package stats
