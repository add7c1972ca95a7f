package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CopiesNewShape(t *testing.T) {
	m := Message{From: "alice", To: "bob", Content: "hi"}
	m.Normalize()

	assert.Equal(t, "alice", m.SenderID)
	assert.Equal(t, "bob", m.ReceiverID)
	assert.Equal(t, "hi", m.Message)
}

func TestNormalize_DoesNotOverwriteLegacyFields(t *testing.T) {
	m := Message{
		SenderID:   "legacy-sender",
		ReceiverID: "legacy-receiver",
		Message:    "legacy text",
		From:       "alice",
		To:         "bob",
		Content:    "new text",
	}
	m.Normalize()

	assert.Equal(t, "legacy-sender", m.SenderID)
	assert.Equal(t, "legacy-receiver", m.ReceiverID)
	assert.Equal(t, "legacy text", m.Message)
}

func TestNormalize_BroadcastSentinel(t *testing.T) {
	m := Message{From: "admin", To: "all", Content: "announcement"}
	m.Normalize()

	assert.Equal(t, BroadcastReceiver, m.ReceiverID)
}

func TestNormalize_RequiresBothFromAndTo(t *testing.T) {
	m := Message{From: "alice", Content: "hi"}
	m.Normalize()

	assert.Empty(t, m.SenderID)
	assert.Empty(t, m.Message)
}
