// Package main provides the wikdiff CLI for visually diffing two text files.
package main

import (
	"context"
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	tea "charm.land/bubbletea/v2"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/fangs"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/style/theme"
)

func main() {
	var (
		themeName  string
		search     string
		fullDiff   bool
		noMoves    bool
		noUnicode  bool
		noCharDiff bool
		exclude    []string
	)

	cmd := &cobra.Command{
		Use:   "wikdiff <old> <new>",
		Short: "A terminal visual diff viewer with block-move detection",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			oldEntries, err := expandGlobs(args[:1], exclude)
			if err != nil {
				return err
			}

			newEntries, err := expandGlobs(args[1:], exclude)
			if err != nil {
				return err
			}

			entries := append(oldEntries, newEntries...)
			if len(entries) != 2 {
				return fmt.Errorf("expected exactly 2 files, got %d", len(entries))
			}

			styles, ok := theme.Styles(themeName)
			if !ok {
				return fmt.Errorf("unknown theme %q", themeName)
			}

			moveColors, _ := theme.MoveColors(themeName)

			opts := modelOptions{
				oldPath:    entries[0].path,
				newPath:    entries[1].path,
				oldText:    string(entries[0].content),
				newText:    string(entries[1].content),
				search:     search,
				theme:      themeName,
				fullDiff:   fullDiff,
				blockMoves: !noMoves,
				noUnicode:  noUnicode,
				charDiff:   !noCharDiff,
			}

			m := newModel(&opts, styles, moveColors)

			p := tea.NewProgram(m)

			_, err = p.Run()
			if err != nil {
				return fmt.Errorf("run program: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&themeName, "theme", "t", "charm", "color theme")
	cmd.Flags().StringVarP(&search, "search", "s", "", "initial search term")
	cmd.Flags().BoolVar(&fullDiff, "full", false, "disable clipping of unchanged context")
	cmd.Flags().BoolVar(&noMoves, "no-moves", false, "render moved blocks as plain deletions/insertions")
	cmd.Flags().BoolVar(&noUnicode, "no-unicode", false, "use ASCII markers instead of Unicode symbols")
	cmd.Flags().BoolVar(&noCharDiff, "no-char-diff", false, "disable character-level refinement within changed words")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "glob pattern to exclude from expanded arguments (repeatable)")

	err := fang.Execute(
		context.Background(), cmd,
		fang.WithErrorHandler(fangs.ErrorHandler),
		fang.WithColorSchemeFunc(colorSchemeFunc(&themeName)),
	)
	if err != nil {
		os.Exit(1)
	}
}

// colorSchemeFunc resolves the fang color scheme lazily, since the theme
// flag isn't parsed until fang.Execute runs the command.
func colorSchemeFunc(themeName *string) fang.ColorSchemeFunc {
	return func(lightDark lipgloss.LightDarkFunc) fang.ColorScheme {
		styles, ok := theme.Styles(*themeName)
		if !ok {
			styles, _ = theme.Styles("charm")
		}

		return fangs.ColorSchemeFunc(styles)(lightDark)
	}
}
