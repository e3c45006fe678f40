package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	chatdomain "snapnet-backend/internal/chat/domain"
	postrepo "snapnet-backend/internal/post/repository"
	userdomain "snapnet-backend/internal/user/domain"
)

type fakeChatRepo struct {
	conversations map[string]*chatdomain.Conversation
	messages      map[string][]chatdomain.Message
	sharedPosts   map[string][]chatdomain.SharedPost
	participants  map[string]*userdomain.User
	nextID        int
}

func newFakeChatRepo(participants map[string]*userdomain.User) *fakeChatRepo {
	return &fakeChatRepo{
		conversations: map[string]*chatdomain.Conversation{},
		messages:      map[string][]chatdomain.Message{},
		sharedPosts:   map[string][]chatdomain.SharedPost{},
		participants:  participants,
	}
}

func (f *fakeChatRepo) CreateConversation(conversation *chatdomain.Conversation) error {
	f.nextID++
	conversation.ID = fmt.Sprintf("conv-%d", f.nextID)
	f.conversations[conversation.ID] = conversation
	return nil
}

func (f *fakeChatRepo) FindConversationByID(id string) (*chatdomain.Conversation, error) {
	return f.conversations[id], nil
}

func (f *fakeChatRepo) FindDirectConversation(senderID, receiverID string) (*chatdomain.Conversation, error) {
	for _, conversation := range f.conversations {
		if conversation.SenderID == senderID && conversation.ReceiverID == receiverID {
			return conversation, nil
		}
	}
	return nil, nil
}

func (f *fakeChatRepo) FindConversationBetween(userA, userB string) (*chatdomain.Conversation, error) {
	for _, conversation := range f.conversations {
		if (conversation.SenderID == userA && conversation.ReceiverID == userB) ||
			(conversation.SenderID == userB && conversation.ReceiverID == userA) {
			return conversation, nil
		}
	}
	return nil, nil
}

func (f *fakeChatRepo) ListConversationsByUser(userID string) ([]chatdomain.Conversation, error) {
	var out []chatdomain.Conversation
	for _, conversation := range f.conversations {
		if conversation.SenderID == userID || conversation.ReceiverID == userID {
			// mirror the preloads the real repository does
			withParticipants := *conversation
			withParticipants.Sender = f.participants[conversation.SenderID]
			withParticipants.Receiver = f.participants[conversation.ReceiverID]
			out = append(out, withParticipants)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) DeleteConversation(id string) error {
	delete(f.conversations, id)
	delete(f.messages, id)
	return nil
}

func (f *fakeChatRepo) CreateMessage(message *chatdomain.Message) error {
	f.nextID++
	message.ID = fmt.Sprintf("msg-%d", f.nextID)
	if message.MessageType == "" {
		message.MessageType = chatdomain.MessageTypeText
	}
	f.messages[message.ConversationID] = append(f.messages[message.ConversationID], *message)
	return nil
}

func (f *fakeChatRepo) ListMessages(conversationID string) ([]chatdomain.Message, error) {
	return f.messages[conversationID], nil
}

func (f *fakeChatRepo) ListMessagesByType(conversationID string, messageType chatdomain.MessageType) ([]chatdomain.Message, error) {
	var out []chatdomain.Message
	for _, message := range f.messages[conversationID] {
		if message.MessageType == messageType {
			out = append(out, message)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) CreateSharedPost(sharedPost *chatdomain.SharedPost) error {
	f.nextID++
	sharedPost.ID = fmt.Sprintf("shared-%d", f.nextID)
	f.sharedPosts[sharedPost.ConversationID] = append(f.sharedPosts[sharedPost.ConversationID], *sharedPost)
	return nil
}

func (f *fakeChatRepo) ListSharedPosts(conversationID string) ([]chatdomain.SharedPost, error) {
	return f.sharedPosts[conversationID], nil
}

type fakeChatUserRepo struct {
	users map[string]*userdomain.User
}

func (f *fakeChatUserRepo) Create(user *userdomain.User) error { return nil }

func (f *fakeChatUserRepo) FindByID(id string) (*userdomain.User, error) {
	return f.users[id], nil
}

func (f *fakeChatUserRepo) FindByEmail(email string) (*userdomain.User, error) { return nil, nil }

func (f *fakeChatUserRepo) Update(user *userdomain.User) error { return nil }

func (f *fakeChatUserRepo) Search(string, int, int) ([]userdomain.User, int64, error) {
	return nil, 0, nil
}

// chat flows never reach the post repository beyond FindByID in SharePost,
// which these tests do not exercise
type fakeChatPostRepo struct {
	postrepo.PostRepository
}

func newTestChatUsecase() (ChatUsecase, *fakeChatRepo) {
	users := map[string]*userdomain.User{
		"user-a": {ID: "user-a", Username: "alice", Email: "alice@example.com"},
		"user-b": {ID: "user-b", Username: "bob", Email: "bob@example.com"},
	}
	chatRepo := newFakeChatRepo(users)
	userRepo := &fakeChatUserRepo{users: users}
	return NewChatUsecase(chatRepo, userRepo, &fakeChatPostRepo{}), chatRepo
}

func TestCreateConversation(t *testing.T) {
	uc, _ := newTestChatUsecase()

	conversation, existing, err := uc.CreateConversation("user-a", "user-b")

	assert.NoError(t, err)
	assert.False(t, existing)
	assert.Equal(t, "user-a", conversation.SenderID)
	assert.Equal(t, "user-b", conversation.ReceiverID)
}

func TestCreateConversation_ReturnsExisting(t *testing.T) {
	uc, _ := newTestChatUsecase()

	first, _, err := uc.CreateConversation("user-a", "user-b")
	assert.NoError(t, err)

	second, existing, err := uc.CreateConversation("user-a", "user-b")
	assert.NoError(t, err)
	assert.True(t, existing)
	assert.Equal(t, first.ID, second.ID)
}

func TestCreateConversation_WithSelfRejected(t *testing.T) {
	uc, _ := newTestChatUsecase()

	_, _, err := uc.CreateConversation("user-a", "user-a")

	assert.EqualError(t, err, "cannot start a conversation with yourself")
}

func TestSendMessage_ExistingConversation(t *testing.T) {
	uc, chatRepo := newTestChatUsecase()
	conversation, _, err := uc.CreateConversation("user-a", "user-b")
	assert.NoError(t, err)

	message, err := uc.SendMessage("user-a", conversation.ID, "", "hello")

	assert.NoError(t, err)
	assert.Equal(t, conversation.ID, message.ConversationID)
	assert.Equal(t, chatdomain.MessageTypeText, message.MessageType)

	stored, _ := chatRepo.ListMessages(conversation.ID)
	assert.Len(t, stored, 1)
	assert.Equal(t, "hello", stored[0].Body)
}

func TestSendMessage_NewOpensConversation(t *testing.T) {
	uc, chatRepo := newTestChatUsecase()

	message, err := uc.SendMessage("user-a", NewConversationID, "user-b", "hello")

	assert.NoError(t, err)
	conversation, _ := chatRepo.FindDirectConversation("user-a", "user-b")
	assert.NotNil(t, conversation)
	assert.Equal(t, conversation.ID, message.ConversationID)
}

func TestSendMessage_NewWithoutReceiver(t *testing.T) {
	uc, _ := newTestChatUsecase()

	_, err := uc.SendMessage("user-a", NewConversationID, "", "hello")

	assert.EqualError(t, err, "receiver required for a new conversation")
}

func TestShareMedia_TypedMessage(t *testing.T) {
	uc, chatRepo := newTestChatUsecase()
	conversation, _, err := uc.CreateConversation("user-a", "user-b")
	assert.NoError(t, err)

	_, err = uc.ShareMedia("user-a", conversation.ID, "", "https://cdn/a.jpg", chatdomain.MessageTypeImage)
	assert.NoError(t, err)
	_, err = uc.ShareMedia("user-a", conversation.ID, "", "https://cdn/b.mp4", chatdomain.MessageTypeVideo)
	assert.NoError(t, err)

	images, err := chatRepo.ListMessagesByType(conversation.ID, chatdomain.MessageTypeImage)
	assert.NoError(t, err)
	assert.Len(t, images, 1)
	assert.Equal(t, "https://cdn/a.jpg", images[0].MediaURL)
}

func TestGetMessages_IncludesSenders(t *testing.T) {
	uc, _ := newTestChatUsecase()
	conversation, _, err := uc.CreateConversation("user-a", "user-b")
	assert.NoError(t, err)

	_, err = uc.SendMessage("user-a", conversation.ID, "", "hi bob")
	assert.NoError(t, err)
	_, err = uc.SendMessage("user-b", conversation.ID, "", "hi alice")
	assert.NoError(t, err)

	messages, err := uc.GetMessages(conversation.ID)

	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "alice", messages[0].User.Username)
	assert.Equal(t, "hi bob", messages[0].Message)
	assert.Equal(t, "bob", messages[1].User.Username)
}

func TestGetConversations_ShapesOtherParticipant(t *testing.T) {
	uc, _ := newTestChatUsecase()
	conversation, _, err := uc.CreateConversation("user-a", "user-b")
	assert.NoError(t, err)

	previews, err := uc.GetConversations("user-b")

	assert.NoError(t, err)
	assert.Len(t, previews, 1)
	assert.Equal(t, conversation.ID, previews[0].ConversationID)
	assert.Equal(t, "alice", previews[0].User.Username)
	assert.Equal(t, "alice@example.com", previews[0].User.Email)
}

func TestDeleteConversation(t *testing.T) {
	uc, chatRepo := newTestChatUsecase()
	conversation, _, err := uc.CreateConversation("user-a", "user-b")
	assert.NoError(t, err)

	assert.NoError(t, uc.DeleteConversation(conversation.ID))
	assert.Nil(t, chatRepo.conversations[conversation.ID])

	assert.EqualError(t, uc.DeleteConversation(conversation.ID), "conversation not found")
}

func TestFindConversation_EitherDirection(t *testing.T) {
	uc, _ := newTestChatUsecase()
	conversation, _, err := uc.CreateConversation("user-a", "user-b")
	assert.NoError(t, err)

	found, err := uc.FindConversation("user-b", "user-a")

	assert.NoError(t, err)
	assert.Equal(t, conversation.ID, found.ID)
}
