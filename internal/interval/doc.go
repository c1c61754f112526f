// Package interval computes the inner and outer confidence tiers around
// each coefficient estimate.
//
// Tier widths are expressed in standard-error multiples. A multiplier of
// exactly zero removes the tier entirely (nil bound) rather than
// producing a zero-width interval, which lets rendering skip the tier
// instead of drawing a degenerate whisker.
package interval
