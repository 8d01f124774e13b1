package filter

import (
	"fmt"
	"testing"

	"skype-to-docx/model"
)

func benchmarkArchive(messages int) model.Archive {
	list := make([]model.Message, 0, messages)
	for i := 0; i < messages; i++ {
		from := "8:alice"
		if i%3 == 0 {
			from = "8:bob"
		}
		content := fmt.Sprintf("Message %d with some text", i)
		if i%5 == 0 {
			content = fmt.Sprintf("Great session %d/10 &amp; counting <e_m id=\"%d\">edited</e_m>", i%10, i)
		}
		list = append(list, model.Message{
			From:                from,
			Content:             content,
			OriginalArrivalTime: fmt.Sprintf("2025-03-19T%02d:%02d:44.097Z", i%24, i%60),
		})
	}
	return model.Archive{
		Conversations: []model.Conversation{
			{ID: "bench", MessageList: list},
		},
	}
}

func BenchmarkApply_ReviewMode(b *testing.B) {
	a := benchmarkArchive(1000)
	f, err := New(Options{Sender: "alice", Mode: ModeReview})
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Apply(a)
	}
}

func BenchmarkApply_FirstWordMode(b *testing.B) {
	a := benchmarkArchive(1000)
	f, err := New(Options{Sender: "alice", Mode: ModeFirstWord, Word: "Message"})
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Apply(a)
	}
}
