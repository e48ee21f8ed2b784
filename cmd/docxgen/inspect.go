package main

import (
	"fmt"

	"github.com/alnah/go-docxgen"
)

// runInspect prints the block outline of a .docx file, one block per line.
func runInspect(args []string, env *Environment) error {
	flags, positional, err := parseInspectFlags(args, env)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		printInspectUsage(env.Stderr)
		return fmt.Errorf("%w: inspect takes exactly one file", ErrUsage)
	}

	doc, err := docxgen.ReadFS(env.FS, positional[0])
	if err != nil {
		return err
	}

	fmt.Fprint(env.Stdout, doc)
	if flags.verbose {
		meta := doc.Metadata()
		fmt.Fprintf(env.Stdout, "\n%d blocks, title %q, author %q, font %s %vpt\n",
			doc.Len(), meta.Title, meta.Author, doc.Font(), doc.FontSize())
		if f := doc.Footer(); f != nil {
			fmt.Fprintf(env.Stdout, "footer %q, align %s, page numbers %t\n", f.Text, f.Align, f.ShowPageNumber)
		}
	}
	return nil
}
