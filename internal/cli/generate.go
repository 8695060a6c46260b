package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"docxgen/internal/config"
	docSvc "docxgen/internal/domain/services/document"
	"docxgen/internal/repository/memory"
	"docxgen/internal/service/converter"
	"docxgen/internal/service/document"
	serviceLLM "docxgen/internal/service/llm"
	"docxgen/internal/style"
)

func newGenerateCmd(verbose *bool) *cobra.Command {
	var (
		out       string
		structure string
		format    string
		model     string
		provider  string
	)

	cmd := &cobra.Command{
		Use:   "generate <file|->",
		Short: "Format raw text with the configured model and render it to .docx",
		Long: "Runs the same pipeline as POST /generate-docx. Provider, model and API keys\n" +
			"come from the environment (LLM_PROVIDER, LLM_MODEL, OPENAI_API_KEY, ...).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, *verbose)

			input, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			cfg := config.Load()
			if provider != "" && provider != cfg.LLMProvider {
				cfg.LLMProvider = provider
				if model == "" {
					cfg.LLMModel = ""
				}
			}
			if model != "" {
				cfg.LLMModel = model
			}
			if cfg.LLMModel == "" {
				cfg.LLMModel = config.DefaultModel(cfg.LLMProvider)
			}

			formatter, err := serviceLLM.SetupFormatter(cfg, logger)
			if err != nil {
				return err
			}
			spec, err := style.Default()
			if err != nil {
				return err
			}

			svc := document.NewGenerationService(
				formatter,
				converter.NewRegistry(),
				document.NewRenderer(spec),
				memory.NewGenerationRepository(1),
				cfg,
				logger,
			)

			doc, err := svc.Generate(cmd.Context(), &docSvc.GenerateRequest{
				Text:      string(input),
				Structure: structure,
				Format:    format,
			})
			if err != nil {
				return err
			}

			path, err := writeOutput(out, doc.Filename, doc.Data)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%q, %d blocks, %d bytes)\n", path, doc.Title, doc.BlockCount, len(doc.Data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output path (default: sanitized title in the current directory)")
	cmd.Flags().StringVarP(&structure, "structure", "s", "", "model output structure: markdown, json or plain (default DEFAULT_STRUCTURE)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: text, markdown or html (default text)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "model name (default LLM_MODEL)")
	cmd.Flags().StringVarP(&provider, "provider", "p", "", "provider: openai, anthropic or lorem (default LLM_PROVIDER)")
	return cmd
}
