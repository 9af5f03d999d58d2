package questlinks

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dohaquest/questlinks/content"
	"github.com/dohaquest/questlinks/tui"
	"github.com/spf13/cobra"
)

var glamourStyle string

// previewCmd represents the preview command.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the links page in the terminal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := content.Validate(); err != nil {
			return fmt.Errorf("invalid content registry: %w", err)
		}

		p := tea.NewProgram(
			tui.New(tui.Options{GlamourStyle: glamourStyle}),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
		)

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("could not run preview: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&glamourStyle, "style", "dark", "Glamour style for dialog bodies")
}
