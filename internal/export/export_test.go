package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-backend/internal/content"
)

func TestFlattenBlocks(t *testing.T) {
	markup := "<h3>المراجع:</h3>\n<div style='line-height: 1.8;'>\n<p><em>ملاحظة</em> مهمة</p>\n" +
		"<ol>\n<li>Johnson, M. B., & Williams, K. L. (2022).</li>\n<li>Brown</li>\n</ol>\n</div>"

	blocks := Flatten(markup)
	require.Len(t, blocks, 4)
	assert.Equal(t, Block{Kind: BlockHeading, Text: "المراجع:"}, blocks[0])
	assert.Equal(t, Block{Kind: BlockParagraph, Text: "ملاحظة مهمة"}, blocks[1])
	assert.Equal(t, Block{Kind: BlockListItem, Text: "Johnson, M. B., & Williams, K. L. (2022)."}, blocks[2])
	assert.Equal(t, BlockListItem, blocks[3].Kind)
}

func TestFlattenToleratesUnbalancedMarkup(t *testing.T) {
	blocks := Flatten("<h3>مقدمة:</h3><div>first</p><p>second</div><p><em>note</em></p>")
	var texts []string
	for _, b := range blocks {
		texts = append(texts, b.Text)
	}
	assert.Equal(t, []string{"مقدمة:", "first", "second", "note"}, texts)
}

func TestBuildDocumentOrdering(t *testing.T) {
	contents := map[content.Section]string{
		content.SectionTitle:        "<p>t</p>",
		content.SectionResults:      "<p>r</p>",
		content.SectionIntroduction: "<p>i</p>",
	}
	doc := BuildDocument("s1", contents, []string{"results", "abstract", "bogus", "introduction", "results", "discussion"})

	var headings []string
	for _, p := range doc.Parts {
		headings = append(headings, p.Heading)
	}
	assert.Equal(t, []string{"عنوان الدراسة", "النتائج", "المقدمة"}, headings)
	assert.Equal(t, "s1", doc.StudyID)
}

func TestHeadingCoversExportableSections(t *testing.T) {
	for _, s := range content.ContentSections() {
		_, ok := Heading(s)
		if s == content.SectionTitle || s == content.SectionAbstract {
			assert.False(t, ok)
			continue
		}
		assert.Truef(t, ok, "section %s", s)
	}
}

func TestRenderPDFReadsBack(t *testing.T) {
	doc := Document{
		StudyID: "abc",
		Parts: []Part{
			{Heading: "References", Markup: "<ol><li>Smith, J. A. (2023). Modern approaches in academic research.</li></ol>"},
			{Heading: "المراجع", Markup: "<p>نص عربي</p>"},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, doc, Options{}))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	info, err := Inspect(buf.Bytes())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, info.Pages, 1)
	assert.Contains(t, info.Text, "Modern")
}

func TestRenderPDFMissingFont(t *testing.T) {
	err := RenderPDF(&bytes.Buffer{}, Document{StudyID: "x"}, Options{FontPath: "/nonexistent/font.ttf"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "font"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "academic_study_42.pdf", FileName("42"))
}
