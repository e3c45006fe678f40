package usecase

import (
	"errors"

	"snapnet-backend/internal/notification"
	shopdomain "snapnet-backend/internal/shop/domain"
	"snapnet-backend/internal/shop/repository"
	userrepo "snapnet-backend/internal/user/repository"
)

// PaymentClient charges the buyer through the payment provider
type PaymentClient interface {
	CreateCustomer(email, name string) (string, error)
	Charge(paymentMethodID string, amountCents int64) (string, error)
}

// ShopUsecase defines marketplace operations
type ShopUsecase interface {
	CreateProduct(userID, name string, price float64, image, description string) (*shopdomain.Product, error)
	GetProducts(page, size int) ([]shopdomain.Product, int, error)
	GetProductByID(id string) (*shopdomain.Product, error)

	AddToCart(userID, productID string, quantity int) error
	RemoveFromCart(userID, productID string) error
	EmptyCart(userID string) error
	GetCart(userID string) ([]shopdomain.CartItem, error)

	Checkout(userID, paymentMethodID string) (*shopdomain.Order, error)
}

// shopUsecase implements ShopUsecase interface
type shopUsecase struct {
	shopRepo repository.ShopRepository
	userRepo userrepo.UserRepository
	payments PaymentClient
	notifier *notification.Service
}

// NewShopUsecase creates a new instance of shopUsecase
func NewShopUsecase(shopRepo repository.ShopRepository, userRepo userrepo.UserRepository, payments PaymentClient, notifier *notification.Service) ShopUsecase {
	return &shopUsecase{
		shopRepo: shopRepo,
		userRepo: userRepo,
		payments: payments,
		notifier: notifier,
	}
}

func (u *shopUsecase) CreateProduct(userID, name string, price float64, image, description string) (*shopdomain.Product, error) {
	product := &shopdomain.Product{
		UserID:      userID,
		Name:        name,
		Price:       price,
		Image:       image,
		Description: description,
	}
	if err := u.shopRepo.CreateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (u *shopUsecase) GetProducts(page, size int) ([]shopdomain.Product, int, error) {
	products, total, err := u.shopRepo.ListProducts(size, (page-1)*size)
	if err != nil {
		return nil, 0, err
	}
	return products, totalPages(total, size), nil
}

func (u *shopUsecase) GetProductByID(id string) (*shopdomain.Product, error) {
	product, err := u.shopRepo.FindProductByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product not found")
	}
	return product, nil
}

func (u *shopUsecase) AddToCart(userID, productID string, quantity int) error {
	product, err := u.shopRepo.FindProductByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return errors.New("product not found")
	}

	existing, err := u.shopRepo.FindCartItem(userID, productID)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("product already in cart")
	}

	return u.shopRepo.CreateCartItem(&shopdomain.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

func (u *shopUsecase) RemoveFromCart(userID, productID string) error {
	existing, err := u.shopRepo.FindCartItem(userID, productID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("product not found in cart")
	}
	return u.shopRepo.DeleteCartItem(userID, productID)
}

func (u *shopUsecase) EmptyCart(userID string) error {
	return u.shopRepo.ClearCart(userID)
}

func (u *shopUsecase) GetCart(userID string) ([]shopdomain.CartItem, error) {
	return u.shopRepo.GetCart(userID)
}

// Checkout charges the cart total, records the order with its line items,
// clears the cart and raises the Order event. The event runs detached and the
// payment flow never waits on push delivery.
func (u *shopUsecase) Checkout(userID, paymentMethodID string) (*shopdomain.Order, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	cart, err := u.shopRepo.GetCart(userID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, errors.New("cart is empty")
	}

	var amount float64
	for _, item := range cart {
		if item.Product == nil {
			return nil, errors.New("product not found")
		}
		amount += item.Product.Price * float64(item.Quantity)
	}

	if user.StripeCustomerID == "" {
		customerID, err := u.payments.CreateCustomer(user.Email, user.Username)
		if err != nil {
			return nil, err
		}
		user.StripeCustomerID = customerID
		if err := u.userRepo.Update(user); err != nil {
			return nil, err
		}
	}

	if _, err := u.payments.Charge(paymentMethodID, int64(amount*100)); err != nil {
		return nil, err
	}

	order := &shopdomain.Order{UserID: userID}
	productIDs := make([]string, 0, len(cart))
	for _, item := range cart {
		order.Items = append(order.Items, shopdomain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
		productIDs = append(productIDs, item.ProductID)
	}

	if err := u.shopRepo.CreateOrder(order); err != nil {
		return nil, err
	}
	if err := u.shopRepo.ClearCart(userID); err != nil {
		return nil, err
	}

	go u.notifier.OrderPlaced(userID, productIDs)

	return order, nil
}

func totalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
