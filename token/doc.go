// See token.go for the arena and level.go for the per-level splitting
// regexes; version.go ties them together into the tokenizer operations
// (split_initial, split_refine, enumerate) used by the matcher and refiner.
package token
