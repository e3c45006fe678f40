package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	shopdomain "snapnet-backend/internal/shop/domain"
)

// ShopRepository defines the interface for product, cart and order persistence
type ShopRepository interface {
	CreateProduct(product *shopdomain.Product) error
	FindProductByID(id string) (*shopdomain.Product, error)
	ListProducts(limit, offset int) ([]shopdomain.Product, int64, error)
	SearchProducts(query string, limit, offset int) ([]shopdomain.Product, int64, error)

	FindCartItem(userID, productID string) (*shopdomain.CartItem, error)
	CreateCartItem(item *shopdomain.CartItem) error
	DeleteCartItem(userID, productID string) error
	ClearCart(userID string) error
	GetCart(userID string) ([]shopdomain.CartItem, error)

	CreateOrder(order *shopdomain.Order) error
}

// shopRepository implements ShopRepository using GORM
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new instance of shopRepository
func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{
		db: db,
	}
}

func (r *shopRepository) CreateProduct(product *shopdomain.Product) error {
	product.ID = uuid.New().String()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	return r.db.Create(product).Error
}

func (r *shopRepository) FindProductByID(id string) (*shopdomain.Product, error) {
	var product shopdomain.Product
	err := r.db.Preload("User").Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *shopRepository) ListProducts(limit, offset int) ([]shopdomain.Product, int64, error) {
	var products []shopdomain.Product
	var total int64

	if err := r.db.Model(&shopdomain.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&products).Error
	return products, total, err
}

// SearchProducts matches the query as a substring of name or description
func (r *shopRepository) SearchProducts(query string, limit, offset int) ([]shopdomain.Product, int64, error) {
	var products []shopdomain.Product
	var total int64

	pattern := "%" + query + "%"
	q := r.db.Model(&shopdomain.Product{}).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *shopRepository) FindCartItem(userID, productID string) (*shopdomain.CartItem, error) {
	var item shopdomain.CartItem
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *shopRepository) CreateCartItem(item *shopdomain.CartItem) error {
	item.CreatedAt = time.Now()
	return r.db.Create(item).Error
}

func (r *shopRepository) DeleteCartItem(userID, productID string) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&shopdomain.CartItem{}).Error
}

func (r *shopRepository) ClearCart(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&shopdomain.CartItem{}).Error
}

func (r *shopRepository) GetCart(userID string) ([]shopdomain.CartItem, error) {
	var items []shopdomain.CartItem
	err := r.db.Preload("Product.User").
		Where("user_id = ?", userID).
		Find(&items).Error
	return items, err
}

// CreateOrder persists the order together with its line items
func (r *shopRepository) CreateOrder(order *shopdomain.Order) error {
	order.ID = uuid.New().String()
	order.CreatedAt = time.Now()
	for i := range order.Items {
		order.Items[i].ID = uuid.New().String()
		order.Items[i].OrderID = order.ID
		order.Items[i].CreatedAt = order.CreatedAt
	}
	return r.db.Create(order).Error
}
