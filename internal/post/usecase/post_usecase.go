package usecase

import (
	"errors"

	"snapnet-backend/internal/notification"
	postdomain "snapnet-backend/internal/post/domain"
	"snapnet-backend/internal/post/repository"
)

// PostUsecase defines post, like and comment operations
type PostUsecase interface {
	CreatePost(userID, image, caption, description string) (*postdomain.Post, error)
	GetPostByID(id string) (*postdomain.Post, error)
	GetFeed(userID string, page, size int) ([]postdomain.Post, int, error)
	Explore(page, size int) ([]postdomain.Post, int, error)
	UpdatePost(userID, postID, image, caption, description string) (*postdomain.Post, error)
	DeletePost(userID, postID string) error

	LikePost(userID, postID string) (*postdomain.Post, error)
	UnlikePost(userID, postID string) error
	AddComment(userID, postID, content string) (*postdomain.Comment, error)
	DeleteComment(userID, commentID string) error
}

// postUsecase implements PostUsecase interface
type postUsecase struct {
	postRepo repository.PostRepository
	notifier *notification.Service
}

// NewPostUsecase creates a new instance of postUsecase
func NewPostUsecase(postRepo repository.PostRepository, notifier *notification.Service) PostUsecase {
	return &postUsecase{
		postRepo: postRepo,
		notifier: notifier,
	}
}

func (u *postUsecase) CreatePost(userID, image, caption, description string) (*postdomain.Post, error) {
	post := &postdomain.Post{
		AuthorID:    userID,
		Image:       image,
		Caption:     caption,
		Description: description,
	}
	if err := u.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *postUsecase) GetPostByID(id string) (*postdomain.Post, error) {
	post, err := u.postRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.New("post not found")
	}
	return post, nil
}

// GetFeed returns posts from followed authors first, then the rest, both
// newest first. Returns the posts of the requested page plus the total page
// count over all posts.
func (u *postUsecase) GetFeed(userID string, page, size int) ([]postdomain.Post, int, error) {
	offset := (page - 1) * size

	followed, err := u.postRepo.ListByFollowedAuthors(userID, size, offset)
	if err != nil {
		return nil, 0, err
	}
	rest, err := u.postRepo.ListByUnfollowedAuthors(userID, size, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := u.postRepo.CountAll()
	if err != nil {
		return nil, 0, err
	}

	return append(followed, rest...), totalPages(total, size), nil
}

func (u *postUsecase) Explore(page, size int) ([]postdomain.Post, int, error) {
	posts, err := u.postRepo.ListNewest(size, (page-1)*size)
	if err != nil {
		return nil, 0, err
	}

	total, err := u.postRepo.CountAll()
	if err != nil {
		return nil, 0, err
	}

	return posts, totalPages(total, size), nil
}

func (u *postUsecase) UpdatePost(userID, postID, image, caption, description string) (*postdomain.Post, error) {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.New("post not found")
	}
	if post.AuthorID != userID {
		return nil, errors.New("forbidden")
	}

	post.Image = image
	post.Caption = caption
	post.Description = description
	if err := u.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *postUsecase) DeletePost(userID, postID string) error {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.New("post not found")
	}
	if post.AuthorID != userID {
		return errors.New("forbidden")
	}

	return u.postRepo.Delete(postID)
}

// LikePost records the like and raises the Like event once the write commits.
// The event runs detached; the caller never waits on push delivery.
func (u *postUsecase) LikePost(userID, postID string) (*postdomain.Post, error) {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.New("post not found")
	}

	existing, err := u.postRepo.FindLike(postID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("post already liked")
	}

	like := &postdomain.Like{PostID: postID, UserID: userID}
	if err := u.postRepo.CreateLike(like); err != nil {
		return nil, err
	}

	go u.notifier.PostLiked(postID, userID)

	return post, nil
}

func (u *postUsecase) UnlikePost(userID, postID string) error {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.New("post not found")
	}

	like, err := u.postRepo.FindLike(postID, userID)
	if err != nil {
		return err
	}
	if like == nil {
		return errors.New("post not liked")
	}

	return u.postRepo.DeleteLike(like.ID)
}

// AddComment records the comment and raises the Comment event once the write
// commits
func (u *postUsecase) AddComment(userID, postID, content string) (*postdomain.Comment, error) {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.New("post not found")
	}

	comment := &postdomain.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := u.postRepo.CreateComment(comment); err != nil {
		return nil, err
	}

	go u.notifier.CommentAdded(content, postID, userID)

	return comment, nil
}

// DeleteComment allows the comment's author or the post's author to remove it
func (u *postUsecase) DeleteComment(userID, commentID string) error {
	comment, err := u.postRepo.FindCommentByID(commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return errors.New("comment not found")
	}
	if comment.UserID != userID && (comment.Post == nil || comment.Post.AuthorID != userID) {
		return errors.New("forbidden")
	}

	return u.postRepo.DeleteComment(commentID)
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
