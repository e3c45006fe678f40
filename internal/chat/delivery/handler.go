package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	chatdomain "snapnet-backend/internal/chat/domain"
	"snapnet-backend/internal/chat/usecase"
)

// ChatHandler handles conversation and direct-message HTTP requests
type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatUsecase usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
	}
}

type createConversationRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
}

type createMessageRequest struct {
	ConversationID string `json:"conversationId" binding:"required"`
	ReceiverID     string `json:"receiverId"`
	Message        string `json:"message" binding:"required"`
}

type shareMediaRequest struct {
	ConversationID string `json:"conversationId" binding:"required"`
	ReceiverID     string `json:"receiverId"`
	MediaURL       string `json:"mediaUrl" binding:"required"`
}

type sharePostRequest struct {
	ConversationID string `json:"conversationId" binding:"required"`
	PostID         string `json:"postId" binding:"required"`
}

// CreateConversation opens a conversation with the receiver, returning the
// existing one when the pair already talked
// POST /api/conversation/createConversation
func (h *ChatHandler) CreateConversation(c *gin.Context) {
	var req createConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conversation, existing, err := h.chatUsecase.CreateConversation(c.GetString("userID"), req.ReceiverID)
	if err != nil {
		if err.Error() == "cannot start a conversation with yourself" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusCreated
	if existing {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{"conversation": conversation})
}

// GetConversations lists the caller's conversations as participant previews
// GET /api/conversation/getConversation/:userId
func (h *ChatHandler) GetConversations(c *gin.Context) {
	previews, err := h.chatUsecase.GetConversations(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": previews})
}

// FindConversation looks up the conversation between the caller and a receiver
// GET /api/conversation/findConversation/:receiverId
func (h *ChatHandler) FindConversation(c *gin.Context) {
	conversation, err := h.chatUsecase.FindConversation(c.GetString("userID"), c.Param("receiverId"))
	if err != nil {
		if err.Error() == "conversation not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversation": conversation})
}

// DeleteConversation removes a conversation and its messages
// DELETE /api/conversation/deleteConversation/:conversationId
func (h *ChatHandler) DeleteConversation(c *gin.Context) {
	if err := h.chatUsecase.DeleteConversation(c.Param("conversationId")); err != nil {
		if err.Error() == "conversation not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateMessage appends a text message, opening a new conversation when the
// conversationId is "new"
// POST /api/message/createMessage
func (h *ChatHandler) CreateMessage(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.chatUsecase.SendMessage(c.GetString("userID"), req.ConversationID, req.ReceiverID, req.Message)
	if err != nil {
		if err.Error() == "receiver required for a new conversation" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": message})
}

// GetMessages lists a conversation's messages with their senders
// GET /api/message/getMessage/:conversationId
func (h *ChatHandler) GetMessages(c *gin.Context) {
	messages, err := h.chatUsecase.GetMessages(c.Param("conversationId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// SharePost attaches a post to a conversation
// POST /api/message/sharePost
func (h *ChatHandler) SharePost(c *gin.Context) {
	var req sharePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sharedPost, err := h.chatUsecase.SharePost(req.ConversationID, req.PostID)
	if err != nil {
		if err.Error() == "post not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sharedPost": sharedPost})
}

// GetSharedPosts lists the posts shared into a conversation
// GET /api/message/getSharedPost/:conversationId
func (h *ChatHandler) GetSharedPosts(c *gin.Context) {
	sharedPosts, err := h.chatUsecase.GetSharedPosts(c.Param("conversationId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sharedPosts": sharedPosts})
}

// ShareImage sends an image message into a conversation
// POST /api/message/shareImage
func (h *ChatHandler) ShareImage(c *gin.Context) {
	h.shareMedia(c, chatdomain.MessageTypeImage)
}

// ShareVideo sends a video message into a conversation
// POST /api/message/shareVideo
func (h *ChatHandler) ShareVideo(c *gin.Context) {
	h.shareMedia(c, chatdomain.MessageTypeVideo)
}

// ShareAudio sends an audio message into a conversation
// POST /api/message/shareAudio
func (h *ChatHandler) ShareAudio(c *gin.Context) {
	h.shareMedia(c, chatdomain.MessageTypeAudio)
}

// GetSharedImages lists a conversation's image messages
// GET /api/message/getSharedImage/:conversationId
func (h *ChatHandler) GetSharedImages(c *gin.Context) {
	h.getSharedMedia(c, chatdomain.MessageTypeImage)
}

// GetSharedVideos lists a conversation's video messages
// GET /api/message/getSharedVideo/:conversationId
func (h *ChatHandler) GetSharedVideos(c *gin.Context) {
	h.getSharedMedia(c, chatdomain.MessageTypeVideo)
}

// GetSharedAudio lists a conversation's audio messages
// GET /api/message/getSharedAudio/:conversationId
func (h *ChatHandler) GetSharedAudio(c *gin.Context) {
	h.getSharedMedia(c, chatdomain.MessageTypeAudio)
}

func (h *ChatHandler) shareMedia(c *gin.Context, mediaType chatdomain.MessageType) {
	var req shareMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.chatUsecase.ShareMedia(c.GetString("userID"), req.ConversationID, req.ReceiverID, req.MediaURL, mediaType)
	if err != nil {
		if err.Error() == "receiver required for a new conversation" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": message})
}

func (h *ChatHandler) getSharedMedia(c *gin.Context, mediaType chatdomain.MessageType) {
	messages, err := h.chatUsecase.GetSharedMedia(c.Param("conversationId"), mediaType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
