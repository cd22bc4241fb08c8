package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/previewlab/previewd/internal/core/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check [mime-type]",
	Short: "Check whether a mime type is supported",
	Long: `Reports whether any registered provider pattern matches the mime
type. Without an argument it checks whether anything is supported at all.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if previewService == nil {
		return errors.New("preview service not configured")
	}

	mimeType := domain.WildcardMimeType
	if len(args) == 1 {
		mimeType = args[0]
	}

	if previewService.IsMimeSupported(mimeType) {
		cmd.Printf("%s: supported\n", mimeType)
	} else {
		cmd.Printf("%s: not supported\n", mimeType)
	}
	return nil
}
