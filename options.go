package wikeddiff

import (
	"fmt"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/clip"
)

// Options is the engine's full configuration record (spec §6). Build one
// with [Option] values passed to [Diff]; there is no global or
// environment-derived configuration — that translation belongs to a host
// integration layer outside this module's scope.
type Options struct {
	// FullDiff disables clipping (§4.7) entirely; the fragment stream
	// carries every unchanged character.
	FullDiff bool

	// ShowBlockMoves, when false, renders a moved group as a plain
	// deletion at its old position and a plain insertion at its new one
	// instead of a move-marked block.
	ShowBlockMoves bool

	// CharDiff enables the character-refinement stage (§4.4).
	CharDiff bool

	// RecursiveDiff and RecursionMax gate and bound the matcher's
	// recursion into unresolved sub-gaps (§4.2).
	RecursiveDiff bool
	RecursionMax  int

	// RepeatedDiff enables the empty-table re-run that catches
	// cross-over duplicates (§4.2).
	RepeatedDiff bool

	// UnlinkBlocks, UnlinkMax, and BlockMinLength gate the block
	// extractor's weak-group unlinking cycles (§4.5) and also size the
	// matcher's uniqueness threshold (§4.2 pass 3).
	UnlinkBlocks   bool
	UnlinkMax      int
	BlockMinLength int

	// ColoredBlocks and NoUnicodeSymbols are renderer hints carried
	// through unused by the core pipeline.
	ColoredBlocks    bool
	NoUnicodeSymbols bool

	// StripTrailingNewline trims a single trailing newline from both
	// inputs before tokenization.
	StripTrailingNewline bool

	// Clip carries every §4.7 clipping threshold.
	Clip clip.Options

	// Debug, Timer, and UnitTesting control observational logging, the
	// per-stage wall-clock timers (§5), and the NEW/OLD-view self-check
	// (§7/§8) respectively.
	Debug       bool
	Timer       bool
	UnitTesting bool
}

func defaultOptions() Options {
	return Options{
		ShowBlockMoves: true,
		CharDiff:       true,
		RecursiveDiff:  true,
		RecursionMax:   10,
		RepeatedDiff:   true,
		UnlinkBlocks:   true,
		UnlinkMax:      5,
		BlockMinLength: 3,
		Clip:           clip.Default(),
	}
}

// validate rejects configuration values outside their declared domain
// (spec §7's InvalidConfig kind).
func (o Options) validate() error {
	if o.RecursionMax < 0 {
		return fmt.Errorf("%w: recursion max must be >= 0: %d", ErrInvalidConfig, o.RecursionMax)
	}

	if o.UnlinkMax < 0 {
		return fmt.Errorf("%w: unlink max must be >= 0: %d", ErrInvalidConfig, o.UnlinkMax)
	}

	if o.BlockMinLength < 1 {
		return fmt.Errorf("%w: block min length must be >= 1: %d", ErrInvalidConfig, o.BlockMinLength)
	}

	return nil
}

// Option configures a [Diff] call.
type Option func(*Options)

// WithFullDiff sets [Options.FullDiff] and disables clipping to match.
func WithFullDiff(v bool) Option {
	return func(o *Options) {
		o.FullDiff = v
		o.Clip.Full = v
	}
}

// WithBlockMoves sets [Options.ShowBlockMoves].
func WithBlockMoves(v bool) Option { return func(o *Options) { o.ShowBlockMoves = v } }

// WithCharDiff sets [Options.CharDiff].
func WithCharDiff(v bool) Option { return func(o *Options) { o.CharDiff = v } }

// WithRecursiveDiff sets [Options.RecursiveDiff].
func WithRecursiveDiff(v bool) Option { return func(o *Options) { o.RecursiveDiff = v } }

// WithRecursionMax sets [Options.RecursionMax].
func WithRecursionMax(n int) Option { return func(o *Options) { o.RecursionMax = n } }

// WithRepeatedDiff sets [Options.RepeatedDiff].
func WithRepeatedDiff(v bool) Option { return func(o *Options) { o.RepeatedDiff = v } }

// WithUnlinkBlocks sets [Options.UnlinkBlocks].
func WithUnlinkBlocks(v bool) Option { return func(o *Options) { o.UnlinkBlocks = v } }

// WithUnlinkMax sets [Options.UnlinkMax].
func WithUnlinkMax(n int) Option { return func(o *Options) { o.UnlinkMax = n } }

// WithBlockMinLength sets [Options.BlockMinLength].
func WithBlockMinLength(n int) Option { return func(o *Options) { o.BlockMinLength = n } }

// WithColoredBlocks sets [Options.ColoredBlocks].
func WithColoredBlocks(v bool) Option { return func(o *Options) { o.ColoredBlocks = v } }

// WithNoUnicodeSymbols sets [Options.NoUnicodeSymbols].
func WithNoUnicodeSymbols(v bool) Option { return func(o *Options) { o.NoUnicodeSymbols = v } }

// WithStripTrailingNewline sets [Options.StripTrailingNewline].
func WithStripTrailingNewline(v bool) Option {
	return func(o *Options) { o.StripTrailingNewline = v }
}

// WithDebug sets [Options.Debug].
func WithDebug(v bool) Option { return func(o *Options) { o.Debug = v } }

// WithTimer sets [Options.Timer].
func WithTimer(v bool) Option { return func(o *Options) { o.Timer = v } }

// WithUnitTesting sets [Options.UnitTesting].
func WithUnitTesting(v bool) Option { return func(o *Options) { o.UnitTesting = v } }

// WithClipOptions replaces [Options.Clip] wholesale.
func WithClipOptions(c clip.Options) Option { return func(o *Options) { o.Clip = c } }

// WithClip mutates [Options.Clip] in place, for setting one or two
// thresholds without restating the whole [clip.Options] value.
func WithClip(mutate func(*clip.Options)) Option {
	return func(o *Options) { mutate(&o.Clip) }
}
