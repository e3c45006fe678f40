package usecase

import (
	postdomain "snapnet-backend/internal/post/domain"
	postrepo "snapnet-backend/internal/post/repository"
	shopdomain "snapnet-backend/internal/shop/domain"
	shoprepo "snapnet-backend/internal/shop/repository"
	userdomain "snapnet-backend/internal/user/domain"
	userrepo "snapnet-backend/internal/user/repository"
)

// SearchUsecase defines substring search over users, posts and products
type SearchUsecase interface {
	SearchUsers(query string, page, size int) ([]userdomain.User, int, error)
	SearchPosts(query string, page, size int) ([]postdomain.Post, int, error)
	SearchProducts(query string, page, size int) ([]shopdomain.Product, int, error)
}

// searchUsecase implements SearchUsecase interface
type searchUsecase struct {
	userRepo userrepo.UserRepository
	postRepo postrepo.PostRepository
	shopRepo shoprepo.ShopRepository
}

// NewSearchUsecase creates a new instance of searchUsecase
func NewSearchUsecase(userRepo userrepo.UserRepository, postRepo postrepo.PostRepository, shopRepo shoprepo.ShopRepository) SearchUsecase {
	return &searchUsecase{
		userRepo: userRepo,
		postRepo: postRepo,
		shopRepo: shopRepo,
	}
}

func (u *searchUsecase) SearchUsers(query string, page, size int) ([]userdomain.User, int, error) {
	users, total, err := u.userRepo.Search(query, size, (page-1)*size)
	if err != nil {
		return nil, 0, err
	}
	return users, totalPages(total, size), nil
}

func (u *searchUsecase) SearchPosts(query string, page, size int) ([]postdomain.Post, int, error) {
	posts, total, err := u.postRepo.Search(query, size, (page-1)*size)
	if err != nil {
		return nil, 0, err
	}
	return posts, totalPages(total, size), nil
}

func (u *searchUsecase) SearchProducts(query string, page, size int) ([]shopdomain.Product, int, error) {
	products, total, err := u.shopRepo.SearchProducts(query, size, (page-1)*size)
	if err != nil {
		return nil, 0, err
	}
	return products, totalPages(total, size), nil
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
