package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"study-backend/internal/content"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List section keys in generation order",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range content.AllSections() {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
	},
}

var guidelinesCmd = &cobra.Command{
	Use:   "guidelines [section]",
	Short: "Print the writing guidelines as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var v any = content.Guidelines()
		if len(args) == 1 {
			section, err := content.ParseSection(args[0])
			if err != nil {
				return err
			}
			rules, ok := content.RulesFor(section)
			if !ok {
				return fmt.Errorf("no guidelines for section %s", section)
			}
			v = rules
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(guidelinesCmd)
}
