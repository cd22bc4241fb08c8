package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/previewlab/previewd/internal/core/domain"
)

var (
	generateWidth  int
	generateHeight int
	generateCrop   bool
	generateMode   string
	generateMime   string
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate a preview for a file",
	Long: `Resolves a capable provider for the file and generates a preview
at the requested dimensions. The rendered file lands in the preview cache.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateWidth, "width", 256, "preview width")
	generateCmd.Flags().IntVar(&generateHeight, "height", 256, "preview height")
	generateCmd.Flags().BoolVar(&generateCrop, "crop", false, "crop to fill the requested box")
	generateCmd.Flags().StringVar(&generateMode, "mode", string(domain.ModeFill), "fit mode (fill or cover)")
	generateCmd.Flags().StringVar(&generateMime, "mime", "", "override the detected mime type")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if previewService == nil {
		return errors.New("preview service not configured")
	}

	file, err := fileInfoFor(args[0])
	if err != nil {
		return err
	}

	if !previewService.IsAvailable(file) {
		return fmt.Errorf("no provider available for %s (%s)", file.Name, file.MimeType)
	}

	spec := domain.PreviewSpec{
		Width:  generateWidth,
		Height: generateHeight,
		Crop:   generateCrop,
		Mode:   domain.PreviewMode(generateMode),
	}

	preview, err := previewService.GetPreview(context.Background(), file, spec, generateMime)
	if err != nil {
		return fmt.Errorf("generate preview: %w", err)
	}

	cmd.Printf("%s (%dx%d)\n", preview.Path, preview.Width, preview.Height)
	return nil
}

// fileInfoFor builds a FileInfo from a path, detecting the mime type by
// extension.
func fileInfoFor(path string) (domain.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.FileInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}

	mimeType := generateMime
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(path))
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return domain.FileInfo{
		ID:       path,
		Path:     path,
		Name:     info.Name(),
		MimeType: mimeType,
		Size:     info.Size(),
	}, nil
}
