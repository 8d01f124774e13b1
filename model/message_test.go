package model

import "testing"

func TestMessage_Sender(t *testing.T) {
	tests := []struct {
		name string
		from string
		want string
	}{
		{"protocol prefix stripped", "8:alice", "alice"},
		{"bare identifier unchanged", "alice", "alice"},
		{"only first separator splits", "8:live:alice", "live:alice"},
		{"empty after prefix", "8:", ""},
		{"empty sender", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Message{From: tt.from}
			if got := m.Sender(); got != tt.want {
				t.Errorf("Sender() = %q, want %q", got, tt.want)
			}
		})
	}
}
