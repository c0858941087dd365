package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"study-backend/internal/content"
	"study-backend/internal/export"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one section and print it",
	Long: `Generate assembles a single section from the study fields and prints the
markup. With --plain the markup is flattened into text blocks.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("section", "", "section key, see 'studygen sections'")
	generateCmd.Flags().Bool("plain", false, "print flattened text instead of markup")
	addInputFlags(generateCmd)
	_ = generateCmd.MarkFlagRequired("section")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetString("section")
	plain, _ := cmd.Flags().GetBool("plain")

	section, err := content.ParseSection(raw)
	if err != nil {
		return err
	}
	markup, err := content.NewGenerator().Generate(section, inputFromFlags(cmd), randSource()())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !plain {
		fmt.Fprintln(out, markup)
		return nil
	}
	for _, b := range export.Flatten(markup) {
		switch b.Kind {
		case export.BlockHeading:
			fmt.Fprintf(out, "## %s\n\n", b.Text)
		case export.BlockListItem:
			fmt.Fprintf(out, "- %s\n", b.Text)
		default:
			fmt.Fprintf(out, "%s\n\n", strings.TrimSpace(b.Text))
		}
	}
	return nil
}
