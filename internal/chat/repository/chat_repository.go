package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	chatdomain "snapnet-backend/internal/chat/domain"
)

// ChatRepository defines the interface for conversation and message persistence
type ChatRepository interface {
	CreateConversation(conversation *chatdomain.Conversation) error
	FindConversationByID(id string) (*chatdomain.Conversation, error)
	FindDirectConversation(senderID, receiverID string) (*chatdomain.Conversation, error)
	FindConversationBetween(userA, userB string) (*chatdomain.Conversation, error)
	ListConversationsByUser(userID string) ([]chatdomain.Conversation, error)
	DeleteConversation(id string) error

	CreateMessage(message *chatdomain.Message) error
	ListMessages(conversationID string) ([]chatdomain.Message, error)
	ListMessagesByType(conversationID string, messageType chatdomain.MessageType) ([]chatdomain.Message, error)

	CreateSharedPost(sharedPost *chatdomain.SharedPost) error
	ListSharedPosts(conversationID string) ([]chatdomain.SharedPost, error)
}

// chatRepository implements ChatRepository using GORM
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new instance of chatRepository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{
		db: db,
	}
}

func (r *chatRepository) CreateConversation(conversation *chatdomain.Conversation) error {
	conversation.ID = uuid.New().String()
	conversation.CreatedAt = time.Now()
	return r.db.Create(conversation).Error
}

func (r *chatRepository) FindConversationByID(id string) (*chatdomain.Conversation, error) {
	var conversation chatdomain.Conversation
	err := r.db.Where("id = ?", id).First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

// FindDirectConversation matches the exact sender/receiver direction only
func (r *chatRepository) FindDirectConversation(senderID, receiverID string) (*chatdomain.Conversation, error) {
	var conversation chatdomain.Conversation
	err := r.db.Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).
		First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

// FindConversationBetween matches either direction and preloads messages and
// both participants
func (r *chatRepository) FindConversationBetween(userA, userB string) (*chatdomain.Conversation, error) {
	var conversation chatdomain.Conversation
	err := r.db.
		Preload("Messages").
		Preload("Sender").
		Preload("Receiver").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *chatRepository) ListConversationsByUser(userID string) ([]chatdomain.Conversation, error) {
	var conversations []chatdomain.Conversation
	err := r.db.
		Preload("Sender").
		Preload("Receiver").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Find(&conversations).Error
	return conversations, err
}

func (r *chatRepository) DeleteConversation(id string) error {
	return r.db.Delete(&chatdomain.Conversation{}, "id = ?", id).Error
}

func (r *chatRepository) CreateMessage(message *chatdomain.Message) error {
	message.ID = uuid.New().String()
	if message.MessageType == "" {
		message.MessageType = chatdomain.MessageTypeText
	}
	message.CreatedAt = time.Now()
	return r.db.Create(message).Error
}

func (r *chatRepository) ListMessages(conversationID string) ([]chatdomain.Message, error) {
	var messages []chatdomain.Message
	err := r.db.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *chatRepository) ListMessagesByType(conversationID string, messageType chatdomain.MessageType) ([]chatdomain.Message, error) {
	var messages []chatdomain.Message
	err := r.db.Where("conversation_id = ? AND message_type = ?", conversationID, messageType).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *chatRepository) CreateSharedPost(sharedPost *chatdomain.SharedPost) error {
	sharedPost.ID = uuid.New().String()
	sharedPost.CreatedAt = time.Now()
	return r.db.Create(sharedPost).Error
}

func (r *chatRepository) ListSharedPosts(conversationID string) ([]chatdomain.SharedPost, error) {
	var sharedPosts []chatdomain.SharedPost
	err := r.db.Preload("Post").
		Where("conversation_id = ?", conversationID).
		Find(&sharedPosts).Error
	return sharedPosts, err
}
