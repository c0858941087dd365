package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"study-backend/internal/content"
	"study-backend/internal/export"
	"study-backend/internal/studies"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate every section and render the study to PDF",
	Long: `Export runs setup and then each content section against an in-memory
study, and writes the rendered PDF to the output directory.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("output-dir", ".", "directory for the PDF")
	addInputFlags(exportCmd)

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	outDir, _ := cmd.Flags().GetString("output-dir")
	in := inputFromFlags(cmd)

	svc := studies.NewService(studies.NewMemoryRepo(), randSource())
	svc.ExportOptions = export.Options{FontPath: viper.GetString("font")}

	data := map[string]any{
		"studyType":          in.StudyType,
		"fieldOfStudy":       in.FieldOfStudy,
		"mainTopic":          in.MainTopic,
		"problemDescription": in.ProblemDescription,
		"keywords":           in.Keywords,
	}
	setup, err := svc.Generate(ctx, studies.GenerateRequest{Section: string(content.SectionSetup), Data: data})
	if err != nil {
		return err
	}
	if setup.StudyID == "" {
		return fmt.Errorf("setup incomplete: %s", setup.Content)
	}
	data["study_id"] = setup.StudyID

	var sections []string
	for _, s := range content.ContentSections() {
		if _, err := svc.Generate(ctx, studies.GenerateRequest{Section: string(s), Data: data}); err != nil {
			return fmt.Errorf("generate %s: %w", s, err)
		}
		sections = append(sections, string(s))
	}

	result, err := svc.Export(ctx, setup.StudyID, sections)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	dest := filepath.Join(outDir, result.FileName)
	if err := os.WriteFile(dest, result.Data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d pages)\n", dest, result.Pages)
	return nil
}
