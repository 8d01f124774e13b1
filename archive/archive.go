// Package archive loads exported chat-history JSON documents.
package archive

import (
	"encoding/json"
	"fmt"
	"os"

	"skype-to-docx/model"
)

// Load reads and decodes the archive at path. This is the only fatal
// failure point of a run: a missing file or invalid JSON aborts it.
func Load(path string) (model.Archive, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.Archive{}, fmt.Errorf("open archive: %w", err)
	}
	defer file.Close()

	var a model.Archive
	if err := json.NewDecoder(file).Decode(&a); err != nil {
		return model.Archive{}, fmt.Errorf("decode archive: %w", err)
	}
	return a, nil
}

// CountMessages returns the total number of messages across all
// conversations in the archive.
func CountMessages(a model.Archive) int {
	count := 0
	for _, convo := range a.Conversations {
		count += len(convo.MessageList)
	}
	return count
}

// Walk calls the callback for every message in the archive, in document
// order, stopping at the first error.
func Walk(a model.Archive, fn func(convo model.Conversation, msg model.Message) error) error {
	for _, convo := range a.Conversations {
		for _, msg := range convo.MessageList {
			if err := fn(convo, msg); err != nil {
				return err
			}
		}
	}
	return nil
}
