package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"

	"ecommerce-api/internal/domain"
	authsvc "ecommerce-api/internal/service/auth"
	cartsvc "ecommerce-api/internal/service/cart"
	paymentsvc "ecommerce-api/internal/service/payment"
	productsvc "ecommerce-api/internal/service/product"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthService issues and verifies bearer tokens and owns the credential flow.
type AuthService interface {
	Register(ctx context.Context, in authsvc.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	VerifyToken(token string) (*authsvc.Claims, error)
	TokenTTLSeconds() int
}

// CartService resolves cart ownership and maintains line items.
type CartService interface {
	Resolve(ctx context.Context, owner cartsvc.Owner) (*domain.Cart, error)
	Items(ctx context.Context, cartID int64) ([]domain.CartItemDetail, error)
	AddItem(ctx context.Context, cartID, productID int64, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, cartID, itemID int64) (*domain.CartItem, error)
	Clear(ctx context.Context, cartID int64) error
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
}

type ProductService interface {
	Create(ctx context.Context, in productsvc.CreateInput) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
}

type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
}

type PaymentService interface {
	Create(ctx context.Context, in paymentsvc.CreateInput) (*domain.PaymentMethod, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.PaymentMethod, error)
}

// Deps bundles the services the router dispatches to.
type Deps struct {
	AuthSvc    AuthService
	CartSvc    CartService
	UserSvc    UserService
	ProductSvc ProductService
	OrderSvc   OrderService
	PaymentSvc PaymentService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.AuthSvc == nil || deps.CartSvc == nil || deps.UserSvc == nil ||
		deps.ProductSvc == nil || deps.OrderSvc == nil || deps.PaymentSvc == nil {
		return nil, errors.New("httpserver: all services are required")
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Session-Id")
	router.Use(cors.New(corsCfg))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"info": "E-Commerce REST API"})
	})
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/users", registerUserHandler(deps.AuthSvc))
	router.GET("/users", listUsersHandler(deps.UserSvc))
	router.GET("/users/:id", getUserHandler(deps.UserSvc))
	router.POST("/login", loginHandler(deps.AuthSvc))
	router.GET("/profile", requireAuth(deps.AuthSvc), profileHandler())

	router.GET("/products", listProductsHandler(deps.ProductSvc))
	router.GET("/products/:id", getProductHandler(deps.ProductSvc))
	router.POST("/products", createProductHandler(deps.ProductSvc))

	router.GET("/orders", listOrdersHandler(deps.OrderSvc))
	router.GET("/orders/:userId", listUserOrdersHandler(deps.OrderSvc))

	router.POST("/payment_methods", createPaymentMethodHandler(deps.PaymentSvc))
	router.GET("/payment_methods/:userId", listPaymentMethodsHandler(deps.PaymentSvc))

	withCart := cartIdentity(deps.AuthSvc, deps.CartSvc)
	router.GET("/cart", withCart, getCartHandler(deps.CartSvc))
	router.POST("/cart/items", withCart, addCartItemHandler(deps.CartSvc))
	router.DELETE("/cart/items/:itemId", withCart, removeCartItemHandler(deps.CartSvc))
	router.DELETE("/cart", withCart, clearCartHandler(deps.CartSvc))

	return router, nil
}
