package httpserver

import (
	"context"
	"io"
	"log"

	"ecommerce-api/internal/domain"
	authsvc "ecommerce-api/internal/service/auth"
	cartsvc "ecommerce-api/internal/service/cart"
	paymentsvc "ecommerce-api/internal/service/payment"
	productsvc "ecommerce-api/internal/service/product"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubAuthService struct {
	user        *domain.User
	registerErr error
	token       string
	loginErr    error
	claims      *authsvc.Claims
	verifyErr   error
}

func (s *stubAuthService) Register(_ context.Context, _ authsvc.RegisterInput) (*domain.User, error) {
	return s.user, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*domain.User, string, error) {
	return s.user, s.token, s.loginErr
}

func (s *stubAuthService) VerifyToken(_ string) (*authsvc.Claims, error) {
	return s.claims, s.verifyErr
}

func (s *stubAuthService) TokenTTLSeconds() int {
	return 3600
}

type stubCartService struct {
	cart          *domain.Cart
	resolveErr    error
	items         []domain.CartItemDetail
	itemsErr      error
	addedItem     *domain.CartItem
	addErr        error
	removedItem   *domain.CartItem
	removeErr     error
	clearErr      error
	lastOwner     cartsvc.Owner
	lastAddCart   int64
	lastAddProd   int64
	lastAddQty    int
	lastRemoveID  int64
	clearedCartID int64
}

func (s *stubCartService) Resolve(_ context.Context, owner cartsvc.Owner) (*domain.Cart, error) {
	s.lastOwner = owner
	if s.resolveErr != nil {
		return nil, s.resolveErr
	}
	if s.cart != nil {
		return s.cart, nil
	}
	if owner.UserID == nil && owner.SessionID == "" {
		return nil, domain.ErrIdentityMissing
	}
	return &domain.Cart{ID: 1}, nil
}

func (s *stubCartService) Items(_ context.Context, _ int64) ([]domain.CartItemDetail, error) {
	return s.items, s.itemsErr
}

func (s *stubCartService) AddItem(_ context.Context, cartID, productID int64, quantity int) (*domain.CartItem, error) {
	s.lastAddCart = cartID
	s.lastAddProd = productID
	s.lastAddQty = quantity
	return s.addedItem, s.addErr
}

func (s *stubCartService) RemoveItem(_ context.Context, _, itemID int64) (*domain.CartItem, error) {
	s.lastRemoveID = itemID
	return s.removedItem, s.removeErr
}

func (s *stubCartService) Clear(_ context.Context, cartID int64) error {
	s.clearedCartID = cartID
	return s.clearErr
}

type stubUserService struct {
	users  []domain.User
	user   *domain.User
	getErr error
}

func (s *stubUserService) List(_ context.Context) ([]domain.User, error) {
	return s.users, nil
}

func (s *stubUserService) Get(_ context.Context, _ int64) (*domain.User, error) {
	return s.user, s.getErr
}

type stubProductService struct {
	products  []domain.Product
	product   *domain.Product
	getErr    error
	createErr error
}

func (s *stubProductService) Create(_ context.Context, _ productsvc.CreateInput) (*domain.Product, error) {
	return s.product, s.createErr
}

func (s *stubProductService) List(_ context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubProductService) Get(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.getErr
}

type stubOrderService struct {
	orders []domain.Order
}

func (s *stubOrderService) List(_ context.Context) ([]domain.Order, error) {
	return s.orders, nil
}

func (s *stubOrderService) ListByUser(_ context.Context, _ int64) ([]domain.Order, error) {
	return s.orders, nil
}

type stubPaymentService struct {
	method    *domain.PaymentMethod
	methods   []domain.PaymentMethod
	createErr error
}

func (s *stubPaymentService) Create(_ context.Context, _ paymentsvc.CreateInput) (*domain.PaymentMethod, error) {
	return s.method, s.createErr
}

func (s *stubPaymentService) ListByUser(_ context.Context, _ int64) ([]domain.PaymentMethod, error) {
	return s.methods, nil
}

func testDeps(overrides Deps) Deps {
	deps := Deps{
		AuthSvc:    &stubAuthService{},
		CartSvc:    &stubCartService{},
		UserSvc:    &stubUserService{},
		ProductSvc: &stubProductService{},
		OrderSvc:   &stubOrderService{},
		PaymentSvc: &stubPaymentService{},
	}
	if overrides.AuthSvc != nil {
		deps.AuthSvc = overrides.AuthSvc
	}
	if overrides.CartSvc != nil {
		deps.CartSvc = overrides.CartSvc
	}
	if overrides.UserSvc != nil {
		deps.UserSvc = overrides.UserSvc
	}
	if overrides.ProductSvc != nil {
		deps.ProductSvc = overrides.ProductSvc
	}
	if overrides.OrderSvc != nil {
		deps.OrderSvc = overrides.OrderSvc
	}
	if overrides.PaymentSvc != nil {
		deps.PaymentSvc = overrides.PaymentSvc
	}
	return deps
}
