package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"snapnet-backend/internal/notification"
	postdomain "snapnet-backend/internal/post/domain"
	shopdomain "snapnet-backend/internal/shop/domain"
	userdomain "snapnet-backend/internal/user/domain"
)

type fakeShopRepo struct {
	products map[string]*shopdomain.Product
	cart     map[string][]shopdomain.CartItem
	orders   []*shopdomain.Order
	nextID   int
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{
		products: map[string]*shopdomain.Product{},
		cart:     map[string][]shopdomain.CartItem{},
	}
}

func (f *fakeShopRepo) CreateProduct(product *shopdomain.Product) error {
	f.nextID++
	product.ID = fmt.Sprintf("prod-%d", f.nextID)
	f.products[product.ID] = product
	return nil
}

func (f *fakeShopRepo) FindProductByID(id string) (*shopdomain.Product, error) {
	return f.products[id], nil
}

func (f *fakeShopRepo) ListProducts(limit, offset int) ([]shopdomain.Product, int64, error) {
	out := make([]shopdomain.Product, 0, len(f.products))
	for _, product := range f.products {
		out = append(out, *product)
	}
	return out, int64(len(f.products)), nil
}

func (f *fakeShopRepo) SearchProducts(query string, limit, offset int) ([]shopdomain.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeShopRepo) FindCartItem(userID, productID string) (*shopdomain.CartItem, error) {
	for i := range f.cart[userID] {
		if f.cart[userID][i].ProductID == productID {
			return &f.cart[userID][i], nil
		}
	}
	return nil, nil
}

func (f *fakeShopRepo) CreateCartItem(item *shopdomain.CartItem) error {
	item.Product = f.products[item.ProductID]
	f.cart[item.UserID] = append(f.cart[item.UserID], *item)
	return nil
}

func (f *fakeShopRepo) DeleteCartItem(userID, productID string) error {
	kept := f.cart[userID][:0]
	for _, item := range f.cart[userID] {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	f.cart[userID] = kept
	return nil
}

func (f *fakeShopRepo) ClearCart(userID string) error {
	delete(f.cart, userID)
	return nil
}

func (f *fakeShopRepo) GetCart(userID string) ([]shopdomain.CartItem, error) {
	return f.cart[userID], nil
}

func (f *fakeShopRepo) CreateOrder(order *shopdomain.Order) error {
	f.nextID++
	order.ID = fmt.Sprintf("order-%d", f.nextID)
	f.orders = append(f.orders, order)
	return nil
}

type fakeShopUserRepo struct {
	users map[string]*userdomain.User
}

func (f *fakeShopUserRepo) Create(user *userdomain.User) error { return nil }

func (f *fakeShopUserRepo) FindByID(id string) (*userdomain.User, error) {
	return f.users[id], nil
}

func (f *fakeShopUserRepo) FindByEmail(email string) (*userdomain.User, error) { return nil, nil }

func (f *fakeShopUserRepo) Update(user *userdomain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeShopUserRepo) Search(string, int, int) ([]userdomain.User, int64, error) {
	return nil, 0, nil
}

type fakePayment struct {
	customers    int
	charges      []int64
	chargeErr    error
	customerErr  error
	lastMethodID string
}

func (f *fakePayment) CreateCustomer(email, name string) (string, error) {
	if f.customerErr != nil {
		return "", f.customerErr
	}
	f.customers++
	return fmt.Sprintf("cus_%d", f.customers), nil
}

func (f *fakePayment) Charge(paymentMethodID string, amountCents int64) (string, error) {
	if f.chargeErr != nil {
		return "", f.chargeErr
	}
	f.lastMethodID = paymentMethodID
	f.charges = append(f.charges, amountCents)
	return "pi_test", nil
}

type nullPosts struct{}

func (nullPosts) FindByID(string) (*postdomain.Post, error) { return nil, nil }

type nullTokens struct{}

func (nullTokens) GetTokensByUserID(string) ([]userdomain.DeviceToken, error) { return nil, nil }

func newTestShopUsecase() (ShopUsecase, *fakeShopRepo, *fakeShopUserRepo, *fakePayment) {
	shopRepo := newFakeShopRepo()
	userRepo := &fakeShopUserRepo{users: map[string]*userdomain.User{
		"buyer": {ID: "buyer", Username: "alice", Email: "alice@example.com"},
	}}
	payments := &fakePayment{}
	notifier := notification.NewService(userRepo, nullPosts{}, shopRepo, nullTokens{}, nil)
	return NewShopUsecase(shopRepo, userRepo, payments, notifier), shopRepo, userRepo, payments
}

func seedProduct(t *testing.T, uc ShopUsecase, sellerID, name string, price float64) *shopdomain.Product {
	t.Helper()
	product, err := uc.CreateProduct(sellerID, name, price, "https://cdn/p.jpg", "a thing")
	assert.NoError(t, err)
	return product
}

func TestAddToCart(t *testing.T) {
	uc, shopRepo, _, _ := newTestShopUsecase()
	product := seedProduct(t, uc, "seller", "Widget", 9.99)

	assert.NoError(t, uc.AddToCart("buyer", product.ID, 2))

	cart, _ := shopRepo.GetCart("buyer")
	assert.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestAddToCart_DuplicateRejected(t *testing.T) {
	uc, _, _, _ := newTestShopUsecase()
	product := seedProduct(t, uc, "seller", "Widget", 9.99)

	assert.NoError(t, uc.AddToCart("buyer", product.ID, 1))
	assert.EqualError(t, uc.AddToCart("buyer", product.ID, 1), "product already in cart")
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	uc, _, _, _ := newTestShopUsecase()

	assert.EqualError(t, uc.AddToCart("buyer", "ghost", 1), "product not found")
}

func TestRemoveFromCart(t *testing.T) {
	uc, shopRepo, _, _ := newTestShopUsecase()
	product := seedProduct(t, uc, "seller", "Widget", 9.99)
	assert.NoError(t, uc.AddToCart("buyer", product.ID, 1))

	assert.NoError(t, uc.RemoveFromCart("buyer", product.ID))

	cart, _ := shopRepo.GetCart("buyer")
	assert.Empty(t, cart)
}

func TestRemoveFromCart_NotInCart(t *testing.T) {
	uc, _, _, _ := newTestShopUsecase()
	product := seedProduct(t, uc, "seller", "Widget", 9.99)

	assert.EqualError(t, uc.RemoveFromCart("buyer", product.ID), "product not found in cart")
}

func TestCheckout_EmptyCart(t *testing.T) {
	uc, _, _, _ := newTestShopUsecase()

	_, err := uc.Checkout("buyer", "pm_card")

	assert.EqualError(t, err, "cart is empty")
}

func TestCheckout_ChargesTotalAndRecordsOrder(t *testing.T) {
	uc, shopRepo, _, payments := newTestShopUsecase()
	widget := seedProduct(t, uc, "seller", "Widget", 10.00)
	gadget := seedProduct(t, uc, "seller", "Gadget", 2.50)
	assert.NoError(t, uc.AddToCart("buyer", widget.ID, 2))
	assert.NoError(t, uc.AddToCart("buyer", gadget.ID, 1))

	order, err := uc.Checkout("buyer", "pm_card")

	assert.NoError(t, err)
	assert.Len(t, order.Items, 2)
	// 2 * 10.00 + 1 * 2.50 = 22.50
	assert.Equal(t, []int64{2250}, payments.charges)
	assert.Equal(t, "pm_card", payments.lastMethodID)

	cart, _ := shopRepo.GetCart("buyer")
	assert.Empty(t, cart)
	assert.Len(t, shopRepo.orders, 1)
}

func TestCheckout_CreatesPaymentCustomerOnce(t *testing.T) {
	uc, _, userRepo, payments := newTestShopUsecase()
	widget := seedProduct(t, uc, "seller", "Widget", 10.00)

	assert.NoError(t, uc.AddToCart("buyer", widget.ID, 1))
	_, err := uc.Checkout("buyer", "pm_card")
	assert.NoError(t, err)
	assert.Equal(t, "cus_1", userRepo.users["buyer"].StripeCustomerID)

	assert.NoError(t, uc.AddToCart("buyer", widget.ID, 1))
	_, err = uc.Checkout("buyer", "pm_card")
	assert.NoError(t, err)
	assert.Equal(t, 1, payments.customers)
}

func TestCheckout_ChargeFailureKeepsCart(t *testing.T) {
	uc, shopRepo, _, payments := newTestShopUsecase()
	widget := seedProduct(t, uc, "seller", "Widget", 10.00)
	assert.NoError(t, uc.AddToCart("buyer", widget.ID, 1))
	payments.chargeErr = errors.New("card declined")

	_, err := uc.Checkout("buyer", "pm_card")

	assert.EqualError(t, err, "card declined")
	cart, _ := shopRepo.GetCart("buyer")
	assert.Len(t, cart, 1)
	assert.Empty(t, shopRepo.orders)
}

func TestGetProductByID_Missing(t *testing.T) {
	uc, _, _, _ := newTestShopUsecase()

	_, err := uc.GetProductByID("ghost")

	assert.EqualError(t, err, "product not found")
}
