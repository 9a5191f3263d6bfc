package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Harish8848/MyPortfolio/internal/content"
	"github.com/Harish8848/MyPortfolio/internal/theme"
	"github.com/Harish8848/MyPortfolio/internal/typewriter"
)

var typewriteCmd = &cobra.Command{
	Use:   "typewrite [text...]",
	Short: "Preview the hero typewriter in the terminal",
	Long: `Plays the hero typewriter sequence in the terminal, one line after another.
Without arguments the hero lines from the content are used. Press Ctrl+C to stop.`,
	RunE: runTypewrite,
}

func init() {
	typewriteCmd.Flags().Duration("speed", 0, "interval between characters (overrides the content)")
	typewriteCmd.Flags().Duration("delay", 0, "pause before each line starts (overrides the content)")
	typewriteCmd.Flags().String("content", "", "content YAML file (overrides content_file)")
	typewriteCmd.Flags().Bool("dark", false, "use the dark terminal palette")
	rootCmd.AddCommand(typewriteCmd)
}

func runTypewrite(cmd *cobra.Command, args []string) error {
	lines, err := typewriteLines(cmd, args)
	if err != nil {
		return err
	}

	isDark, _ := cmd.Flags().GetBool("dark")
	styles := theme.New(isDark).Terminal()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	err = typewriter.Sequence{Lines: lines}.Run(ctx, lineWriter(out, styles))
	fmt.Fprintln(out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// typewriteLines builds the sequence from args, or from the hero lines of
// the configured content when no text is given.
func typewriteLines(cmd *cobra.Command, args []string) ([]typewriter.Line, error) {
	speed, _ := cmd.Flags().GetDuration("speed")
	delay, _ := cmd.Flags().GetDuration("delay")

	var hero []content.TypedLine
	if len(args) > 0 {
		for _, a := range args {
			hero = append(hero, content.TypedLine{Text: a, Speed: 100 * time.Millisecond})
		}
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		contentFile, _ := cmd.Flags().GetString("content")
		c, err := loadContent(cfg, contentFile)
		if err != nil {
			return nil, err
		}
		hero = c.Hero.Lines()
	}

	lines := make([]typewriter.Line, 0, len(hero))
	for _, h := range hero {
		opts := typewriter.Options{Interval: h.Speed, Delay: h.Delay}
		if cmd.Flags().Changed("speed") {
			opts.Interval = speed
		}
		if cmd.Flags().Changed("delay") {
			opts.Delay = delay
		}
		lines = append(lines, typewriter.Line{Text: h.Text, Options: opts})
	}
	return lines, nil
}

// lineWriter redraws the current line on every prefix and starts a new one
// when the sequence moves on.
func lineWriter(w io.Writer, styles theme.Terminal) func(int, string) {
	current := 0
	return func(line int, text string) {
		if line != current {
			fmt.Fprintln(w)
			current = line
		}
		fmt.Fprintf(w, "\r%s%s", lineStyle(styles, line).Render(text), styles.Cursor.Render("|"))
	}
}

func lineStyle(styles theme.Terminal, line int) lipgloss.Style {
	switch line {
	case 0:
		return styles.Title
	case 1:
		return styles.Accent
	default:
		return styles.Secondary
	}
}
