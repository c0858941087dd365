package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestSectionsListsSetupFirst(t *testing.T) {
	lines := strings.Fields(execute(t, "sections"))
	require.Len(t, lines, 10)
	assert.Equal(t, "setup", lines[0])
	assert.Equal(t, "references", lines[9])
}

func TestGenerateSeededIsStable(t *testing.T) {
	args := []string{"generate", "--section", "title", "--topic", "التعلم عن بعد", "--field", "education", "--seed", "11"}
	first := execute(t, args...)
	second := execute(t, args...)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "التعلم عن بعد")
}

func TestGuidelinesForSection(t *testing.T) {
	out := execute(t, "guidelines", "abstract")
	assert.Contains(t, out, `"minLength": 150`)
}

func TestExportWritesPDF(t *testing.T) {
	dir := t.TempDir()
	out := execute(t, "export",
		"--type", "master",
		"--field", "business",
		"--topic", "Remote work",
		"--problem", "Low engagement",
		"--seed", "5",
		"--output-dir", dir,
	)
	assert.Contains(t, out, "wrote ")

	matches, err := filepath.Glob(filepath.Join(dir, "academic_study_*.pdf"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
