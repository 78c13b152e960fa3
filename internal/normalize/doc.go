// Package normalize provides composable Unicode normalization for text
// before tokenization.
//
// Two revisions of wiki text can be byte-different while semantically
// identical: one side may use a precomposed accented letter while the other
// uses a base letter plus a combining mark, or full-width and half-width
// forms of the same character. Left alone, the tokenizer would treat these
// as distinct tokens and the matcher would never link them, producing noisy
// diffs full of spurious deletions and insertions.
//
// A [Normalizer] solves this by chaining Unicode transformations into a
// pipeline built once at construction time. Transformations run in a fixed
// order: width folding, diacritics removal, case folding, then any custom
// transformers, so results are deterministic regardless of option order.
//
// Unlike a search-oriented normalizer, the diff engine's default pipeline
// only applies canonical composition (NFC) — it must never fold away
// information a reviewer would want to see as a change. Case and diacritic
// folding exist as opt-in [Option]s for callers with content-language needs
// outside this engine's scope (spec.md's "content-language segmentation" is
// an external collaborator concern), not as defaults:
//
//	n := normalize.New()
//	n.Normalize(text) // NFC-normalized, otherwise untouched
//
// [Option] values toggle individual pipeline stages or append custom
// [transform.Transformer] implementations via [WithTransformer].
package normalize
