package questlinks

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dohaquest/questlinks/content"
	"github.com/spf13/cobra"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// linksCmd represents the links command.
var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "List the registry and check it",
	Long:  `Print every link and social entry in render order, then validate the registry.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		printRegistry(cmd.OutOrStdout())

		if err := content.Validate(); err != nil {
			return fmt.Errorf("invalid content registry: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(linksCmd)
}

func printRegistry(w io.Writer) {
	fmt.Fprintln(w, headingStyle.Render("Links"))

	for _, l := range content.Links() {
		fmt.Fprintf(w, "  %-6s %s %s\n", l.RevealDelay, l.Title, faintStyle.Render(l.Destination))
	}

	fmt.Fprintln(w, headingStyle.Render("Socials"))

	for _, s := range content.Socials() {
		fmt.Fprintf(w, "  %-6s %s %s\n", s.RevealDelay, s.Label, faintStyle.Render(s.Destination))
	}
}
