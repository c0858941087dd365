package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"study-backend/internal/content"
)

// addInputFlags registers the study fields shared by generate and export.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", "", "study type: master, phd or research")
	cmd.Flags().String("field", "", "field of study, e.g. education or business")
	cmd.Flags().String("topic", "", "main topic of the study")
	cmd.Flags().String("problem", "", "problem description")
	cmd.Flags().String("keywords", "", "comma separated keywords")
}

func inputFromFlags(cmd *cobra.Command) content.StudyInput {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		if v == "" {
			v = viper.GetString(name)
		}
		return v
	}
	return content.StudyInput{
		StudyType:          get("type"),
		FieldOfStudy:       get("field"),
		MainTopic:          get("topic"),
		ProblemDescription: get("problem"),
		Keywords:           get("keywords"),
	}
}

func randSource() content.RandSource {
	return content.NewRandSource(viper.GetInt64("seed"))
}
