package archive

import (
	"os"
	"path/filepath"
	"testing"

	"skype-to-docx/model"
)

func writeArchive(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write archive fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeArchive(t, `{
		"userId": "8:alice",
		"exportDate": "2025-03-20",
		"conversations": [
			{
				"id": "games",
				"MessageList": [
					{"from": "8:alice", "content": "Hello", "originalarrivaltime": "2025-03-19T21:15:44.097Z"}
				]
			}
		]
	}`)

	a, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if a.UserID != "8:alice" {
		t.Errorf("UserID = %q, want %q", a.UserID, "8:alice")
	}
	if len(a.Conversations) != 1 {
		t.Fatalf("Conversations = %d, want 1", len(a.Conversations))
	}
	convo := a.Conversations[0]
	if convo.ID != "games" {
		t.Errorf("Conversation.ID = %q, want %q", convo.ID, "games")
	}
	if len(convo.MessageList) != 1 {
		t.Fatalf("MessageList = %d, want 1", len(convo.MessageList))
	}
	msg := convo.MessageList[0]
	if msg.From != "8:alice" || msg.Content != "Hello" {
		t.Errorf("Message = %+v, want from/content populated", msg)
	}
}

func TestLoad_MissingKeysDefault(t *testing.T) {
	path := writeArchive(t, `{"conversations": [{"id": "c"}]}`)

	a, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if a.UserID != "" {
		t.Errorf("UserID = %q, want empty default", a.UserID)
	}
	if len(a.Conversations) != 1 || a.Conversations[0].MessageList != nil {
		t.Errorf("Conversations = %+v, want one conversation with empty message list", a.Conversations)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("Load() expected error for missing file")
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := writeArchive(t, `{"conversations": [`)
		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for invalid JSON")
		}
	})
}

func TestCountMessages(t *testing.T) {
	a := model.Archive{
		Conversations: []model.Conversation{
			{ID: "a", MessageList: make([]model.Message, 3)},
			{ID: "b", MessageList: make([]model.Message, 2)},
			{ID: "c"},
		},
	}
	if got := CountMessages(a); got != 5 {
		t.Errorf("CountMessages() = %d, want 5", got)
	}
}

func TestWalk(t *testing.T) {
	a := model.Archive{
		Conversations: []model.Conversation{
			{ID: "a", MessageList: []model.Message{{Content: "1"}, {Content: "2"}}},
			{ID: "b", MessageList: []model.Message{{Content: "3"}}},
		},
	}

	var visited []string
	err := Walk(a, func(convo model.Conversation, msg model.Message) error {
		visited = append(visited, convo.ID+":"+msg.Content)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []string{"a:1", "a:2", "b:3"}
	if len(visited) != len(want) {
		t.Fatalf("Walk() visited %d messages, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}
