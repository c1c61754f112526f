// Package sorting orders coefficients within one model under the five
// ordering policies: natural (extraction order), normal/alphabetical
// (lexicographic on display name), and magnitude/size (absolute value of
// the estimate). All orderings are stable, with the original extraction
// order as the tie-break, and the decreasing flag reverses whichever
// order was chosen.
package sorting
