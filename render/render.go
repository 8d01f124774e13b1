// Package render writes a filtered selection to a Word document.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"skype-to-docx/model"
)

// Run property sizes are half-points.
const (
	titleSize   = "32"
	headingSize = "28"
)

const separator = 40

// Document builds the in-memory document for the given selection: a title
// line, then per record a dated heading, the content, and a separator.
func Document(records []model.FilteredRecord, sender string) *docx.Docx {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText(fmt.Sprintf("Messages by %s", sender)).Size(titleSize).Bold()

	for i, rec := range records {
		doc.AddParagraph().AddText(fmt.Sprintf("Message %d - %s", i+1, rec.DisplayDate)).Size(headingSize).Bold()
		doc.AddParagraph().AddText("Message content:")
		doc.AddParagraph().AddText(rec.Content)
		doc.AddParagraph().AddText(strings.Repeat("-", separator))
	}

	return doc
}

// Save renders the selection and writes the document to path.
func Save(records []model.FilteredRecord, sender, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	defer file.Close()

	if _, err := Document(records, sender).WriteTo(file); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
