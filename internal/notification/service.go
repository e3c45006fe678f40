package notification

import (
	"context"
	"fmt"
	"log"

	postdomain "snapnet-backend/internal/post/domain"
	shopdomain "snapnet-backend/internal/shop/domain"
	userdomain "snapnet-backend/internal/user/domain"
	"snapnet-backend/pkg/fcm"
)

// UserDirectory resolves users for message composition
type UserDirectory interface {
	FindByID(id string) (*userdomain.User, error)
}

// PostDirectory resolves posts for message composition
type PostDirectory interface {
	FindByID(id string) (*postdomain.Post, error)
}

// ProductDirectory resolves products for message composition
type ProductDirectory interface {
	FindProductByID(id string) (*shopdomain.Product, error)
}

// TokenDirectory resolves a user to its registered device tokens
type TokenDirectory interface {
	GetTokensByUserID(userID string) ([]userdomain.DeviceToken, error)
}

// Pusher delivers one push message to one device token
type Pusher interface {
	SendToDevice(ctx context.Context, token string, notification fcm.NotificationData) error
}

// Service composes and fans out push notifications for domain events. Every
// method is best-effort: failures are logged and never reach the write that
// triggered the event. Callers launch the methods on their own goroutine so
// the HTTP response does not wait on lookups or gateway round trips.
type Service struct {
	users    UserDirectory
	posts    PostDirectory
	products ProductDirectory
	tokens   TokenDirectory
	pusher   Pusher
}

// NewService creates a notification service. pusher may be nil when push
// delivery is not configured; events are then composed and dropped.
func NewService(users UserDirectory, posts PostDirectory, products ProductDirectory, tokens TokenDirectory, pusher Pusher) *Service {
	return &Service{
		users:    users,
		posts:    posts,
		products: products,
		tokens:   tokens,
		pusher:   pusher,
	}
}

// PostLiked notifies the post's author that userID liked their post
func (s *Service) PostLiked(postID, userID string) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		log.Printf("[Notification] Error fetching post %s: %v", postID, err)
		return
	}
	user, err := s.users.FindByID(userID)
	if err != nil {
		log.Printf("[Notification] Error fetching user %s: %v", userID, err)
		return
	}
	if post == nil || user == nil {
		log.Printf("[Notification] Dropping like event: post or actor not found (post=%s, user=%s)", postID, userID)
		return
	}

	title := "Post Liked"
	body := fmt.Sprintf("%s liked your post %s", user.Username, post.Caption)

	s.dispatch(title, body, post.AuthorID, map[string]interface{}{
		"postId": postID,
		"userId": userID,
	})
}

// CommentAdded notifies the post's author that userID commented on their post
func (s *Service) CommentAdded(content, postID, userID string) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		log.Printf("[Notification] Error fetching post %s: %v", postID, err)
		return
	}
	user, err := s.users.FindByID(userID)
	if err != nil {
		log.Printf("[Notification] Error fetching user %s: %v", userID, err)
		return
	}
	if post == nil || user == nil {
		log.Printf("[Notification] Dropping comment event: post or actor not found (post=%s, user=%s)", postID, userID)
		return
	}

	title := "Comment Added"
	body := fmt.Sprintf("%s added comment %s on your post %s", user.Username, content, post.Caption)

	s.dispatch(title, body, post.AuthorID, map[string]interface{}{
		"postId": postID,
		"userId": userID,
	})
}

// UserFollowed notifies followingID that followerID started following them
func (s *Service) UserFollowed(followerID, followingID string) {
	follower, err := s.users.FindByID(followerID)
	if err != nil {
		log.Printf("[Notification] Error fetching user %s: %v", followerID, err)
		return
	}
	following, err := s.users.FindByID(followingID)
	if err != nil {
		log.Printf("[Notification] Error fetching user %s: %v", followingID, err)
		return
	}
	if follower == nil || following == nil {
		log.Printf("[Notification] Dropping follow event: user not found (follower=%s, following=%s)", followerID, followingID)
		return
	}

	title := "Started Following"
	body := fmt.Sprintf("%s started Following you", follower.Username)

	s.dispatch(title, body, following.ID, map[string]interface{}{
		"followerId":  followerID,
		"followingId": followingID,
	})
}

// OrderPlaced notifies the seller of the order's first line item that userID
// placed an order. With more than one product id the body carries the total
// count instead of a name; the seller is still resolved from the first item
// only, so additional sellers in a mixed order are not notified.
func (s *Service) OrderPlaced(userID string, productIDs []string) {
	if len(productIDs) == 0 {
		return
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		log.Printf("[Notification] Error fetching user %s: %v", userID, err)
		return
	}
	product, err := s.products.FindProductByID(productIDs[0])
	if err != nil {
		log.Printf("[Notification] Error fetching product %s: %v", productIDs[0], err)
		return
	}
	if user == nil || product == nil {
		log.Printf("[Notification] Dropping order event: buyer or product not found (user=%s, product=%s)", userID, productIDs[0])
		return
	}

	subject := product.Name
	if len(productIDs) != 1 {
		subject = fmt.Sprintf("%d products", len(productIDs))
	}

	title := "Order Placed"
	body := fmt.Sprintf("%s placed order of %s", user.Username, subject)

	s.dispatch(title, body, product.UserID, map[string]interface{}{
		"userId":     userID,
		"productIds": productIDs,
	})
}

// dispatch fans the composed notification out to every device token of the
// target user. One send per token; a failed token never blocks the others.
func (s *Service) dispatch(title, body, targetUserID string, data map[string]interface{}) {
	if targetUserID == "" {
		return
	}

	tokens, err := s.tokens.GetTokensByUserID(targetUserID)
	if err != nil {
		log.Printf("[Notification] Error fetching device tokens for user %s: %v", targetUserID, err)
		return
	}
	if len(tokens) == 0 {
		log.Printf("[Notification] No device tokens for user %s, skipping push", targetUserID)
		return
	}
	if s.pusher == nil {
		log.Printf("[Notification] Push delivery not configured, dropping %q for user %s", title, targetUserID)
		return
	}

	notification := fcm.NotificationData{
		Title: title,
		Body:  body,
		Data:  StringifyValues(data),
	}

	for _, token := range tokens {
		if err := s.pusher.SendToDevice(context.Background(), token.Token, notification); err != nil {
			log.Printf("[Notification] Error sending push to token of user %s: %v", targetUserID, err)
		}
	}
}
