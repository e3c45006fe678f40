package usecase

import (
	"errors"

	chatdomain "snapnet-backend/internal/chat/domain"
	"snapnet-backend/internal/chat/repository"
	postrepo "snapnet-backend/internal/post/repository"
	userdomain "snapnet-backend/internal/user/domain"
	userrepo "snapnet-backend/internal/user/repository"
)

// NewConversationID marks a message request that should open a fresh
// conversation with the given receiver
const NewConversationID = "new"

// ConversationPreview is one row of a user's conversation list, shaped as the
// other participant plus the conversation id
type ConversationPreview struct {
	User           ParticipantInfo `json:"user"`
	ConversationID string          `json:"conversationId"`
}

type ParticipantInfo struct {
	Email    string `json:"email"`
	Username string `json:"userName"`
	Avatar   string `json:"avatar,omitempty"`
	About    string `json:"about,omitempty"`
}

// MessageWithSender pairs a message with its sender's public profile
type MessageWithSender struct {
	User    *userdomain.User `json:"user"`
	Message string           `json:"message"`
}

// ChatUsecase defines conversation and direct-message operations
type ChatUsecase interface {
	CreateConversation(senderID, receiverID string) (conversation *chatdomain.Conversation, existing bool, err error)
	GetConversations(userID string) ([]ConversationPreview, error)
	FindConversation(senderID, receiverID string) (*chatdomain.Conversation, error)
	DeleteConversation(conversationID string) error

	SendMessage(senderID, conversationID, receiverID, body string) (*chatdomain.Message, error)
	ShareMedia(senderID, conversationID, receiverID, mediaURL string, mediaType chatdomain.MessageType) (*chatdomain.Message, error)
	GetMessages(conversationID string) ([]MessageWithSender, error)
	GetSharedMedia(conversationID string, mediaType chatdomain.MessageType) ([]chatdomain.Message, error)

	SharePost(conversationID, postID string) (*chatdomain.SharedPost, error)
	GetSharedPosts(conversationID string) ([]chatdomain.SharedPost, error)
}

// chatUsecase implements ChatUsecase interface
type chatUsecase struct {
	chatRepo repository.ChatRepository
	userRepo userrepo.UserRepository
	postRepo postrepo.PostRepository
}

// NewChatUsecase creates a new instance of chatUsecase
func NewChatUsecase(chatRepo repository.ChatRepository, userRepo userrepo.UserRepository, postRepo postrepo.PostRepository) ChatUsecase {
	return &chatUsecase{
		chatRepo: chatRepo,
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

// CreateConversation returns the existing conversation when the sender already
// opened one with the receiver, otherwise creates a new one
func (u *chatUsecase) CreateConversation(senderID, receiverID string) (*chatdomain.Conversation, bool, error) {
	if senderID == receiverID {
		return nil, false, errors.New("cannot start a conversation with yourself")
	}

	existing, err := u.chatRepo.FindDirectConversation(senderID, receiverID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	conversation := &chatdomain.Conversation{
		SenderID:   senderID,
		ReceiverID: receiverID,
	}
	if err := u.chatRepo.CreateConversation(conversation); err != nil {
		return nil, false, err
	}
	return conversation, false, nil
}

func (u *chatUsecase) GetConversations(userID string) ([]ConversationPreview, error) {
	conversations, err := u.chatRepo.ListConversationsByUser(userID)
	if err != nil {
		return nil, err
	}

	previews := make([]ConversationPreview, 0, len(conversations))
	for _, conversation := range conversations {
		other := conversation.Receiver
		if conversation.SenderID != userID {
			other = conversation.Sender
		}
		if other == nil {
			continue
		}

		previews = append(previews, ConversationPreview{
			User: ParticipantInfo{
				Email:    other.Email,
				Username: other.Username,
				Avatar:   other.Avatar,
				About:    other.About,
			},
			ConversationID: conversation.ID,
		})
	}
	return previews, nil
}

func (u *chatUsecase) FindConversation(senderID, receiverID string) (*chatdomain.Conversation, error) {
	conversation, err := u.chatRepo.FindConversationBetween(senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, errors.New("conversation not found")
	}
	return conversation, nil
}

func (u *chatUsecase) DeleteConversation(conversationID string) error {
	conversation, err := u.chatRepo.FindConversationByID(conversationID)
	if err != nil {
		return err
	}
	if conversation == nil {
		return errors.New("conversation not found")
	}
	return u.chatRepo.DeleteConversation(conversationID)
}

// SendMessage appends a text message. A conversationID of "new" opens a fresh
// conversation with receiverID first.
func (u *chatUsecase) SendMessage(senderID, conversationID, receiverID, body string) (*chatdomain.Message, error) {
	targetID, err := u.resolveConversation(senderID, conversationID, receiverID)
	if err != nil {
		return nil, err
	}

	message := &chatdomain.Message{
		ConversationID: targetID,
		SenderID:       senderID,
		Body:           body,
		MessageType:    chatdomain.MessageTypeText,
	}
	if err := u.chatRepo.CreateMessage(message); err != nil {
		return nil, err
	}
	return message, nil
}

// ShareMedia appends an image, video or audio message carrying a media URL
func (u *chatUsecase) ShareMedia(senderID, conversationID, receiverID, mediaURL string, mediaType chatdomain.MessageType) (*chatdomain.Message, error) {
	targetID, err := u.resolveConversation(senderID, conversationID, receiverID)
	if err != nil {
		return nil, err
	}

	message := &chatdomain.Message{
		ConversationID: targetID,
		SenderID:       senderID,
		MessageType:    mediaType,
		MediaURL:       mediaURL,
	}
	if err := u.chatRepo.CreateMessage(message); err != nil {
		return nil, err
	}
	return message, nil
}

func (u *chatUsecase) resolveConversation(senderID, conversationID, receiverID string) (string, error) {
	if conversationID != NewConversationID {
		return conversationID, nil
	}
	if receiverID == "" {
		return "", errors.New("receiver required for a new conversation")
	}

	conversation := &chatdomain.Conversation{
		SenderID:   senderID,
		ReceiverID: receiverID,
	}
	if err := u.chatRepo.CreateConversation(conversation); err != nil {
		return "", err
	}
	return conversation.ID, nil
}

func (u *chatUsecase) GetMessages(conversationID string) ([]MessageWithSender, error) {
	messages, err := u.chatRepo.ListMessages(conversationID)
	if err != nil {
		return nil, err
	}

	shaped := make([]MessageWithSender, 0, len(messages))
	for _, message := range messages {
		sender, err := u.userRepo.FindByID(message.SenderID)
		if err != nil {
			return nil, err
		}
		shaped = append(shaped, MessageWithSender{
			User:    sender,
			Message: message.Body,
		})
	}
	return shaped, nil
}

func (u *chatUsecase) GetSharedMedia(conversationID string, mediaType chatdomain.MessageType) ([]chatdomain.Message, error) {
	return u.chatRepo.ListMessagesByType(conversationID, mediaType)
}

func (u *chatUsecase) SharePost(conversationID, postID string) (*chatdomain.SharedPost, error) {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.New("post not found")
	}

	sharedPost := &chatdomain.SharedPost{
		ConversationID: conversationID,
		PostID:         postID,
	}
	if err := u.chatRepo.CreateSharedPost(sharedPost); err != nil {
		return nil, err
	}
	return sharedPost, nil
}

func (u *chatUsecase) GetSharedPosts(conversationID string) ([]chatdomain.SharedPost, error) {
	return u.chatRepo.ListSharedPosts(conversationID)
}
