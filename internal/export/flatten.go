package export

import (
	"strings"

	"golang.org/x/net/html"
)

// BlockKind classifies a flattened block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockListItem
)

// Block is a run of plain text with its layout role.
type Block struct {
	Kind BlockKind
	Text string
}

// Flatten converts generated section markup into plain text blocks. Inline
// emphasis is dropped; headings, paragraphs and list items become blocks.
// Unbalanced markup is tolerated.
func Flatten(markup string) []Block {
	var (
		blocks []Block
		buf    strings.Builder
		kind   = BlockParagraph
	)
	flush := func() {
		text := strings.Join(strings.Fields(buf.String()), " ")
		buf.Reset()
		if text != "" {
			blocks = append(blocks, Block{Kind: kind, Text: text})
		}
		kind = BlockParagraph
	}

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way emit what we have.
			flush()
			return blocks
		case html.TextToken:
			buf.Write(z.Text())
			buf.WriteByte(' ')
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				flush()
				kind = BlockHeading
			case "li":
				flush()
				kind = BlockListItem
			case "p", "div", "ul", "ol", "br":
				flush()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "h1", "h2", "h3", "h4", "h5", "h6", "li", "p", "div", "ul", "ol":
				flush()
			}
		}
	}
}
