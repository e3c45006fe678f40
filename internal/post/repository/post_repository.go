package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	postdomain "snapnet-backend/internal/post/domain"
)

// PostRepository defines the interface for post, like and comment persistence
type PostRepository interface {
	Create(post *postdomain.Post) error
	FindByID(id string) (*postdomain.Post, error)
	Update(post *postdomain.Post) error
	Delete(id string) error
	CountAll() (int64, error)
	ListNewest(limit, offset int) ([]postdomain.Post, error)
	ListByFollowedAuthors(userID string, limit, offset int) ([]postdomain.Post, error)
	ListByUnfollowedAuthors(userID string, limit, offset int) ([]postdomain.Post, error)
	ListByAuthor(authorID string) ([]postdomain.Post, error)
	Search(query string, limit, offset int) ([]postdomain.Post, int64, error)

	FindLike(postID, userID string) (*postdomain.Like, error)
	CreateLike(like *postdomain.Like) error
	DeleteLike(id string) error
	ListLikesByUser(userID string) ([]postdomain.Like, error)

	CreateComment(comment *postdomain.Comment) error
	FindCommentByID(id string) (*postdomain.Comment, error)
	DeleteComment(id string) error
	ListCommentsByUser(userID string) ([]postdomain.Comment, error)
}

// postRepository implements PostRepository using GORM
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new instance of postRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{
		db: db,
	}
}

// withIncludes preloads the author, likes and comments of a post
func (r *postRepository) withIncludes() *gorm.DB {
	return r.db.
		Preload("Author").
		Preload("Likes.User").
		Preload("Comments.User")
}

func (r *postRepository) Create(post *postdomain.Post) error {
	post.ID = uuid.New().String()
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	return r.db.Create(post).Error
}

func (r *postRepository) FindByID(id string) (*postdomain.Post, error) {
	var post postdomain.Post
	err := r.withIncludes().Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(post *postdomain.Post) error {
	post.UpdatedAt = time.Now()
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(id string) error {
	return r.db.Delete(&postdomain.Post{}, "id = ?", id).Error
}

func (r *postRepository) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&postdomain.Post{}).Count(&total).Error
	return total, err
}

func (r *postRepository) ListNewest(limit, offset int) ([]postdomain.Post, error) {
	var posts []postdomain.Post
	err := r.withIncludes().
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

// ListByFollowedAuthors returns posts whose author is followed by userID
func (r *postRepository) ListByFollowedAuthors(userID string, limit, offset int) ([]postdomain.Post, error) {
	var posts []postdomain.Post
	err := r.withIncludes().
		Joins("JOIN follows ON follows.following_id = posts.author_id AND follows.follower_id = ?", userID).
		Order("posts.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

// ListByUnfollowedAuthors returns posts from authors userID does not follow
func (r *postRepository) ListByUnfollowedAuthors(userID string, limit, offset int) ([]postdomain.Post, error) {
	var posts []postdomain.Post
	err := r.withIncludes().
		Where("author_id NOT IN (?)",
			r.db.Table("follows").Select("following_id").Where("follower_id = ?", userID)).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByAuthor(authorID string) ([]postdomain.Post, error) {
	var posts []postdomain.Post
	err := r.withIncludes().
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// Search matches the query as a substring of caption or description
func (r *postRepository) Search(query string, limit, offset int) ([]postdomain.Post, int64, error) {
	var posts []postdomain.Post
	var total int64

	pattern := "%" + query + "%"
	q := r.db.Model(&postdomain.Post{}).
		Where("caption ILIKE ? OR description ILIKE ?", pattern, pattern)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.withIncludes().
		Where("caption ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

func (r *postRepository) FindLike(postID, userID string) (*postdomain.Like, error) {
	var like postdomain.Like
	err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *postRepository) CreateLike(like *postdomain.Like) error {
	like.ID = uuid.New().String()
	like.CreatedAt = time.Now()
	return r.db.Create(like).Error
}

func (r *postRepository) DeleteLike(id string) error {
	return r.db.Delete(&postdomain.Like{}, "id = ?", id).Error
}

func (r *postRepository) ListLikesByUser(userID string) ([]postdomain.Like, error) {
	var likes []postdomain.Like
	err := r.db.Preload("Post").Where("user_id = ?", userID).Find(&likes).Error
	return likes, err
}

func (r *postRepository) CreateComment(comment *postdomain.Comment) error {
	comment.ID = uuid.New().String()
	comment.CreatedAt = time.Now()
	return r.db.Create(comment).Error
}

func (r *postRepository) FindCommentByID(id string) (*postdomain.Comment, error) {
	var comment postdomain.Comment
	err := r.db.Preload("Post").Where("id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *postRepository) DeleteComment(id string) error {
	return r.db.Delete(&postdomain.Comment{}, "id = ?", id).Error
}

func (r *postRepository) ListCommentsByUser(userID string) ([]postdomain.Comment, error) {
	var comments []postdomain.Comment
	err := r.db.Preload("Post").Where("user_id = ?", userID).Find(&comments).Error
	return comments, err
}
