package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var providersJSON bool

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List registered preview providers",
	Long: `Lists the provider pattern table, most specific pattern first.
The table is empty when previews are disabled.`,
	RunE: runProviders,
}

func init() {
	providersCmd.Flags().BoolVar(&providersJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(providersCmd)
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	patternStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func runProviders(cmd *cobra.Command, _ []string) error {
	if previewService == nil {
		return errors.New("preview service not configured")
	}

	table, err := previewService.Providers()
	if err != nil {
		return fmt.Errorf("resolve providers: %w", err)
	}

	if providersJSON {
		type entry struct {
			Pattern   string `json:"pattern"`
			Providers int    `json:"providers"`
		}
		out := make([]entry, 0, len(table))
		for _, pp := range table {
			out = append(out, entry{Pattern: pp.Pattern, Providers: len(pp.Factories)})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal providers: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(table) == 0 {
		cmd.Println("No preview providers registered.")
		return nil
	}

	cmd.Println(headerStyle.Render(fmt.Sprintf("%-48s %s", "PATTERN", "PROVIDERS")))
	for _, pp := range table {
		cmd.Printf("%s %d\n", patternStyle.Render(fmt.Sprintf("%-48s", pp.Pattern)), len(pp.Factories))
	}
	return nil
}
