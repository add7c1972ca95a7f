package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// BroadcastReceiver is the sentinel receiver id denoting a message
// addressed to everyone. No fan-out records are created; readers
// interpret the single stored record.
const BroadcastReceiver = "all"

// Message represents an internal message. Two client shapes exist: the
// legacy senderId/receiverId/message fields and the newer
// from/to/subject/content fields. Normalize reconciles them before a
// record is stored.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID   string             `bson:"senderId" json:"senderId"`
	ReceiverID string             `bson:"receiverId" json:"receiverId"`
	Message    string             `bson:"message" json:"message"`
	Timestamp  string             `bson:"timestamp" json:"timestamp"`
	Read       bool               `bson:"read" json:"read"`

	// Newer client shape
	From     string `bson:"from,omitempty" json:"from,omitempty"`
	FromRole string `bson:"fromRole,omitempty" json:"fromRole,omitempty"`
	To       string `bson:"to,omitempty" json:"to,omitempty"`
	ToRole   string `bson:"toRole,omitempty" json:"toRole,omitempty"`
	Subject  string `bson:"subject,omitempty" json:"subject,omitempty"`
	Content  string `bson:"content,omitempty" json:"content,omitempty"`
}

// Normalize copies the newer from/to/content fields onto the legacy
// senderId/receiverId/message fields when those are unset. The "all"
// receiver is stored literally.
func (m *Message) Normalize() {
	if m.From != "" && m.To != "" {
		if m.SenderID == "" {
			m.SenderID = m.From
		}
		if m.ReceiverID == "" {
			m.ReceiverID = m.To
		}
		if m.Message == "" && m.Content != "" {
			m.Message = m.Content
		}
	}
}
