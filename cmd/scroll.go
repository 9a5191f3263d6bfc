package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Harish8848/MyPortfolio/internal/motion"
)

var scrollCmd = &cobra.Command{
	Use:   "scroll",
	Short: "Print the parallax styles at a scroll position",
	Long: `Evaluates the scroll-linked ramps: the hero offset and opacity and the page
background. Use --progress for a single position or --steps for a table.`,
	RunE: runScroll,
}

func init() {
	scrollCmd.Flags().Float64("progress", 0, "scroll progress between 0 and 1 (values outside are clamped)")
	scrollCmd.Flags().Int("steps", 0, "print a table of this many intervals instead")
	scrollCmd.Flags().Bool("dark", false, "use the dark background ramp")
	rootCmd.AddCommand(scrollCmd)
}

func runScroll(cmd *cobra.Command, args []string) error {
	progress, _ := cmd.Flags().GetFloat64("progress")
	steps, _ := cmd.Flags().GetInt("steps")
	isDark, _ := cmd.Flags().GetBool("dark")

	p := motion.DefaultParallax()
	out := cmd.OutOrStdout()

	if steps <= 0 {
		printFrame(out, progress, p.Frame(progress, isDark))
		return nil
	}

	for i := 0; i <= steps; i++ {
		at := float64(i) / float64(steps)
		printFrame(out, at, p.Frame(at, isDark))
	}
	return nil
}

func printFrame(w io.Writer, progress float64, s motion.Style) {
	fmt.Fprintf(w, "progress=%.2f  y=%.1fpx  opacity=%.2f  background=%s\n",
		progress, s.Y, s.Opacity, s.Background)
}
