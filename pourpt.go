// Package pourpt traces survey sites downstream along a Strahler-ordered
// vector stream network to the first confluence where stream order increases.
// The resulting pour points are used to bound "local" watersheds.
package pourpt

const nearzero = 1e-9 // distance tie tolerance
