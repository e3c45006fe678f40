package domain

import (
	"time"

	postdomain "snapnet-backend/internal/post/domain"
	userdomain "snapnet-backend/internal/user/domain"
)

// MessageType distinguishes text messages from shared media
type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeImage MessageType = "image"
	MessageTypeVideo MessageType = "video"
	MessageTypeAudio MessageType = "audio"
)

type Conversation struct {
	ID         string           `json:"id" gorm:"primaryKey"`
	SenderID   string           `json:"sender_id" gorm:"index;not null"`
	Sender     *userdomain.User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	ReceiverID string           `json:"receiver_id" gorm:"index;not null"`
	Receiver   *userdomain.User `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID"`
	Messages   []Message        `json:"messages,omitempty" gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time        `json:"created_at"`
}

type Message struct {
	ID             string      `json:"id" gorm:"primaryKey"`
	ConversationID string      `json:"conversation_id" gorm:"index;not null"`
	SenderID       string      `json:"sender_id" gorm:"index;not null"`
	Body           string      `json:"message"`
	MessageType    MessageType `json:"message_type" gorm:"default:text"`
	MediaURL       string      `json:"media_url,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// SharedPost links an existing post into a conversation
type SharedPost struct {
	ID             string           `json:"id" gorm:"primaryKey"`
	ConversationID string           `json:"conversation_id" gorm:"index;not null"`
	PostID         string           `json:"post_id" gorm:"index;not null"`
	Post           *postdomain.Post `json:"post,omitempty" gorm:"foreignKey:PostID"`
	CreatedAt      time.Time        `json:"created_at"`
}
