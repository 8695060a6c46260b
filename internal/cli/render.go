package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"docxgen/internal/domain"
	models "docxgen/internal/domain/models/document"
	"docxgen/internal/service/document"
	"docxgen/internal/style"
)

func newRenderCmd(verbose *bool) *cobra.Command {
	var (
		out       string
		structure string
	)

	cmd := &cobra.Command{
		Use:   "render <file|->",
		Short: "Render structured text to .docx without calling a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, *verbose)

			input, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			blocks, err := document.Parse(models.Structure(structure), string(input))
			if err != nil {
				var malformed *domain.MalformedStructureError
				if errors.As(err, &malformed) {
					malformed.ClientSupplied = true
				}
				return err
			}
			logger.Debug("parsed input", "structure", structure, "blocks", len(blocks))

			spec, err := style.Default()
			if err != nil {
				return err
			}
			data, err := document.NewRenderer(spec).RenderBytes(blocks)
			if err != nil {
				return err
			}

			path, err := writeOutput(out, document.SanitizeFilename(models.TitleText(blocks)), data)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d blocks, %d bytes)\n", path, len(blocks), len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (default: sanitized title in the current directory)")
	cmd.Flags().StringVarP(&structure, "structure", "s", string(models.StructureMarkdown), "input structure: markdown, json or plain")
	return cmd
}
