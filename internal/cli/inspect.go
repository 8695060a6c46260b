package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"docxgen/internal/docx"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.docx>",
		Short: "Print the paragraphs, styles and footer of a .docx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return err
			}

			doc, err := docx.Read(f, info.Size())
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			w := cmd.OutOrStdout()
			if doc.Properties.Title != "" {
				fmt.Fprintf(w, "title:   %s\n", doc.Properties.Title)
			}
			fmt.Fprintf(w, "font:    %s\n", doc.Font)
			fmt.Fprintf(w, "page:    %dx%d twips, margins %d/%d/%d/%d\n",
				doc.Page.Width, doc.Page.Height,
				doc.Page.MarginTop, doc.Page.MarginRight, doc.Page.MarginBottom, doc.Page.MarginLeft)
			fmt.Fprintln(w)

			for _, p := range doc.Paragraphs() {
				fmt.Fprintln(w, describeParagraph(p))
			}

			if footer := doc.Footer(); len(footer) > 0 {
				fmt.Fprintln(w)
				for _, p := range footer {
					fmt.Fprintf(w, "footer: %s\n", describeParagraph(p))
				}
			}
			return nil
		},
	}
}

func describeParagraph(p docx.Paragraph) string {
	label := p.Style
	if label == "" {
		label = "-"
	}
	if p.Bullet {
		label += " •"
	}

	var sb strings.Builder
	for _, r := range p.Runs {
		if r.Field != "" {
			fmt.Fprintf(&sb, "{%s}", r.Field)
			continue
		}
		sb.WriteString(r.Text)
	}
	return fmt.Sprintf("[%s] %s", label, sb.String())
}
