// See refine.go for the Refiner type, the gap-shape classification rules,
// and the grapheme-splitting it performs on accepted gaps.
package charrefine
