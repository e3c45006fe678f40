package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"snapnet-backend/internal/shop/usecase"
)

// ShopHandler handles marketplace HTTP requests
type ShopHandler struct {
	shopUsecase usecase.ShopUsecase
	pageSize    int
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(shopUsecase usecase.ShopUsecase, pageSize int) *ShopHandler {
	return &ShopHandler{
		shopUsecase: shopUsecase,
		pageSize:    pageSize,
	}
}

type createProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type checkoutRequest struct {
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
}

// CreateProduct lists a new product for sale
// POST /api/shop/product
func (h *ShopHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.shopUsecase.CreateProduct(c.GetString("userID"), req.Name, req.Price, req.Image, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// GetProducts lists products newest first
// GET /api/shop/products
func (h *ShopHandler) GetProducts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	products, totalPages, err := h.shopUsecase.GetProducts(page, h.pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "totalPages": totalPages})
}

// GetProduct returns a product with its seller
// GET /api/shop/products/:id
func (h *ShopHandler) GetProduct(c *gin.Context) {
	product, err := h.shopUsecase.GetProductByID(c.Param("id"))
	if err != nil {
		if err.Error() == "product not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// AddToCart puts a product in the caller's cart
// POST /api/shop/cart
func (h *ShopHandler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	if err := h.shopUsecase.AddToCart(c.GetString("userID"), req.ProductID, quantity); err != nil {
		switch err.Error() {
		case "product not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "product already in cart":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusCreated)
}

// RemoveFromCart removes a product from the caller's cart
// DELETE /api/shop/cart/:id
func (h *ShopHandler) RemoveFromCart(c *gin.Context) {
	if err := h.shopUsecase.RemoveFromCart(c.GetString("userID"), c.Param("id")); err != nil {
		if err.Error() == "product not found in cart" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// EmptyCart removes everything from the caller's cart
// DELETE /api/shop/empty-cart
func (h *ShopHandler) EmptyCart(c *gin.Context) {
	if err := h.shopUsecase.EmptyCart(c.GetString("userID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCart lists the caller's cart items with their products
// GET /api/shop/get-cart
func (h *ShopHandler) GetCart(c *gin.Context) {
	cart, err := h.shopUsecase.GetCart(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// Checkout charges the cart and records the order
// POST /api/shop/checkout
func (h *ShopHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.shopUsecase.Checkout(c.GetString("userID"), req.PaymentMethodID)
	if err != nil {
		switch err.Error() {
		case "user not found", "product not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "cart is empty":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}
