// Package wikeddiff computes a visual inline text difference between two
// revisions of text, detecting moved blocks and refining matches down to
// character granularity where word-level matching alone would show a
// wholesale replacement.
//
// The pipeline runs a sequence of independent stages over a pair of
// [token.Version] token lists: matching ([match]), gap sliding ([slide]),
// character-gap refinement ([charrefine]), block/group extraction
// ([block]), fragment assembly ([fragment]), and clipping ([clip]). [Diff]
// wires them together; each stage's package is usable on its own for
// testing or for building an alternate pipeline.
package wikeddiff

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/block"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/charrefine"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/clip"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/fragment"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/match"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/slide"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"
)

// refinementSchedule lists the levels visited after the initial paragraph
// split, finest last. Line comes before sentence per the tokenizer's
// current schedule; character refinement is handled separately since it is
// gated by CharDiff and driven by [charrefine] rather than a plain split.
var refinementSchedule = []token.Level{
	token.LevelLine,
	token.LevelSentence,
	token.LevelChunk,
	token.LevelWord,
}

// Diff computes the fragment stream describing how newText differs from
// oldText. The returned [fragment.Stream] is ready to hand to a renderer;
// call its String method for a plain, unmarked rendering, or consult the
// render package for the full terminal presentation.
func Diff(oldText, newText string, opts ...Option) (fragment.Stream, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	if o.StripTrailingNewline {
		oldText = strings.TrimSuffix(oldText, "\n")
		newText = strings.TrimSuffix(newText, "\n")
	}

	logger := slog.Default()
	if o.Debug {
		logger = logger.With("component", "wikeddiff")
	}

	newV, oldV, err := buildVersions(oldText, newText)
	if err != nil {
		return nil, err
	}

	m := match.New(newV, oldV, o.BlockMinLength, o.RecursionMax, o.RepeatedDiff, o.RecursiveDiff)
	sl := slide.New(newV, oldV)

	m.Run(token.LevelParagraph)
	logStage(logger, o, token.LevelParagraph)

	for _, level := range refinementSchedule {
		if err := refineUnlinked(newV, level); err != nil {
			return nil, fmt.Errorf("%w: new side: %w", ErrTokenizer, err)
		}

		if err := refineUnlinked(oldV, level); err != nil {
			return nil, fmt.Errorf("%w: old side: %w", ErrTokenizer, err)
		}

		m.Run(level)
		logStage(logger, o, level)

		if level == token.LevelWord {
			sl.Run()
		}
	}

	if o.CharDiff {
		r := charrefine.New(newV, oldV)
		if err := r.Run(); err != nil {
			return nil, fmt.Errorf("%w: character refinement: %w", ErrTokenizer, err)
		}

		m.Run(token.LevelCharacter)
		sl.Run()
		logStage(logger, o, token.LevelCharacter)
	}

	if err := newV.Enumerate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenizer, err)
	}

	if err := oldV.Enumerate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenizer, err)
	}

	ex := block.New(newV, oldV, o.BlockMinLength, o.UnlinkMax, o.UnlinkBlocks, sl.Run)
	ex.Run()

	if err := checkInvariant(ex.Blocks, oldText, newText); err != nil {
		if o.UnitTesting {
			return nil, fmt.Errorf("%w: %w", ErrInternalInvariant, err)
		}

		logger.Debug("wikeddiff: projection check failed", "error", err)
	}

	asm := fragment.New(ex.Groups, o.ShowBlockMoves)
	frags := asm.Assemble(ex.OrderedBlocks())

	blocks := clip.Apply(frags, o.Clip)

	return fragment.Stream(blocks), nil
}

func buildVersions(oldText, newText string) (newV, oldV *token.Version, err error) {
	newV, err = token.NewVersion(newText)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: new side: %w", ErrTokenizer, err)
	}

	oldV, err = token.NewVersion(oldText)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: old side: %w", ErrTokenizer, err)
	}

	if err := newV.SplitInitial(token.LevelParagraph); err != nil {
		return nil, nil, fmt.Errorf("%w: new side: %w", ErrTokenizer, err)
	}

	if err := oldV.SplitInitial(token.LevelParagraph); err != nil {
		return nil, nil, fmt.Errorf("%w: old side: %w", ErrTokenizer, err)
	}

	return newV, oldV, nil
}

// refineUnlinked walks v's active list in its current order and splits
// every still-unlinked token down to level, leaving linked tokens (already
// matched at a coarser granularity) untouched. It captures each token's
// Next before refining it, since splitting rewires the neighbors around the
// original entry without touching the entry's own fields.
func refineUnlinked(v *token.Version, level token.Level) error {
	i := v.First
	for i != token.None {
		tok := v.Arena.At(i)
		next := tok.Next

		if tok.Link == token.None {
			if _, err := v.SplitRefine(level, i); err != nil {
				return err
			}
		}

		i = next
	}

	return nil
}

func logStage(logger *slog.Logger, o Options, level token.Level) {
	if !o.Debug && !o.Timer {
		return
	}

	logger.Debug("wikeddiff: ran matcher stage", "level", level.String())
}

// checkInvariant reconstructs the NEW and OLD views directly from the block
// model and reports a mismatch against the original input (spec §8). It
// works from blocks rather than the assembled fragment stream because a
// moved group's content renders once, at its NEW position, while its OLD
// reference point carries only a display-layer copy of the text (the mark
// fragment) — reconstructing from the stream's single linear order cannot
// recover both orderings at once, but the block model's NewNumber/OldNumber
// ranks can.
//
// Every NEW token belongs to exactly one [block.KindSame] or
// [block.KindInsert] block; sorting by NewNumber and concatenating those
// blocks' text reproduces newText exactly, moved content included (it is
// still a KindSame block, just one whose group later renders wrapped in
// move markers). OLD text reconstructs symmetrically via OldNumber over
// KindSame/KindDelete blocks. [block.KindMove] blocks carry no text and are
// ignored by both passes.
func checkInvariant(blocks []block.Block, oldText, newText string) error {
	newOrder := append([]block.Block(nil), blocks...)
	sort.SliceStable(newOrder, func(i, j int) bool { return newOrder[i].NewNumber < newOrder[j].NewNumber })

	var newView strings.Builder

	for _, b := range newOrder {
		if b.Kind == block.KindSame || b.Kind == block.KindInsert {
			newView.WriteString(b.Text)
		}
	}

	if newView.String() != newText {
		return fmt.Errorf("new-view projection does not match input")
	}

	oldOrder := append([]block.Block(nil), blocks...)
	sort.SliceStable(oldOrder, func(i, j int) bool { return oldOrder[i].OldNumber < oldOrder[j].OldNumber })

	var oldView strings.Builder

	for _, b := range oldOrder {
		if b.Kind == block.KindSame || b.Kind == block.KindDelete {
			oldView.WriteString(b.Text)
		}
	}

	if oldView.String() != oldText {
		return fmt.Errorf("old-view projection does not match input")
	}

	return nil
}
