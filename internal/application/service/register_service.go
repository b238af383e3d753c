package service

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Amankewlld/swift-register/internal/domain/entity"
	"github.com/Amankewlld/swift-register/internal/domain/enum"
	"github.com/Amankewlld/swift-register/internal/domain/repository"
	"github.com/Amankewlld/swift-register/pkg/apperror"
	"github.com/Amankewlld/swift-register/pkg/utils"
)

// RegisterService owns the whole register session: cashier identity, the
// current screen, the cart, per-sale discount and tender inputs, and the
// daily sales ledger. Every operator action is one critical section under a
// single mutex, so record-sale and clear-cart are one atomic sequence and no
// partial ledger update is ever observable.
//
// Derived money values are never stored; they are recomputed from the cart,
// discount and tender on every read.
type RegisterService struct {
	mu sync.Mutex

	cashierID   uuid.UUID
	cashierName string

	screen     enum.Screen
	transition *entity.ScreenTransition
	graceTimer *time.Timer
	grace      time.Duration

	cart            *entity.Cart
	discountPercent int
	tenderedCents   int64
	paymentMethod   enum.PaymentMethod

	ledger entity.DailySales

	catalogRepo repository.CatalogRepository
}

// NewRegisterService creates a register at the sign-in screen with an empty
// cart and a zeroed ledger.
func NewRegisterService(catalogRepo repository.CatalogRepository, transitionGrace time.Duration) *RegisterService {
	return &RegisterService{
		screen:      enum.ScreenSignIn,
		cart:        entity.NewCart(),
		grace:       transitionGrace,
		catalogRepo: catalogRepo,
	}
}

// SignIn starts a cashier shift. The username must be non-empty after
// trimming. Valid only from the sign-in screen; transitions to products.
func (s *RegisterService) SignIn(username string) (uuid.UUID, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return uuid.Nil, apperror.NewAppError(422, "Cashier name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != enum.ScreenSignIn {
		return uuid.Nil, apperror.NewConflictError("A shift is already in progress")
	}

	s.cashierID = utils.NewUUID()
	s.cashierName = username
	s.transitionLocked(enum.ScreenProducts)
	return s.cashierID, nil
}

// CashierName returns the signed-in cashier's name, or "".
func (s *RegisterService) CashierName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cashierName
}

// ScreenState returns the navigator view: the current screen and, while a
// handoff grace period runs, the superseding-aware transition record.
func (s *RegisterService) ScreenState() entity.ScreenState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := entity.ScreenState{Current: s.screen}
	if s.transition != nil && s.transition.Pending {
		tr := *s.transition
		state.Transition = &tr
	}
	return state
}

// AddCatalogItem adds one unit of a catalog product to the cart.
func (s *RegisterService) AddCatalogItem(productID string) (*entity.LineItem, error) {
	product := s.catalogRepo.GetByID(productID)
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.cart.AddProduct(product)
	cp := *item
	return &cp, nil
}

// AddCustomItem adds an ad-hoc item. The name must be non-blank and the
// price a positive finite number; rejected input leaves the cart untouched.
func (s *RegisterService) AddCustomItem(name string, price float64) (*entity.LineItem, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return nil, apperror.NewAppError(422, "A positive price is required")
	}
	priceCents := int64(math.Round(price * 100))

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.cart.AddCustomItem(name, priceCents)
	if item == nil {
		return nil, apperror.NewAppError(422, "An item name and a positive price are required")
	}
	cp := *item
	return &cp, nil
}

// UpdateQuantity adjusts a line item's quantity by delta. Quantities clamp
// at zero and a zeroed item is removed. Unknown IDs are a no-op.
func (s *RegisterService) UpdateQuantity(itemID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(itemID, delta)
}

// RemoveItem removes a line item. Unknown IDs are a no-op.
func (s *RegisterService) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(itemID)
}

// ClearCart abandons the sale in progress: the cart empties and the per-sale
// discount and payment inputs reset, same as after a completed sale.
func (s *RegisterService) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	s.resetSaleInputsLocked()
}

// CartView returns the line items and the totals derived from them.
func (s *RegisterService) CartView() ([]entity.LineItem, entity.Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items(), s.totalsLocked()
}

// SetDiscountPercent applies a discount, clamping to [0,100] here at the
// edit site. Returns the resulting totals.
func (s *RegisterService) SetDiscountPercent(percent int) entity.Totals {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.discountPercent = percent
	return s.totalsLocked()
}

// SetPaymentMethod selects how the sale will be settled.
func (s *RegisterService) SetPaymentMethod(method enum.PaymentMethod) error {
	if !method.Valid() {
		return apperror.NewBadRequestError("Unknown payment method")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentMethod = method
	return nil
}

// SetTendered records the cash amount offered by the customer.
func (s *RegisterService) SetTendered(amount float64) (entity.Totals, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return entity.Totals{}, apperror.NewAppError(422, "Amount tendered must be a non-negative number")
	}
	cents := int64(math.Round(amount * 100))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenderedCents = cents
	return s.totalsLocked(), nil
}

// SetExactTender sets the tender to the current total (the "exact" preset).
func (s *RegisterService) SetExactTender() entity.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenderedCents = s.totalsLocked().Total
	return s.totalsLocked()
}

// PaymentMethod returns the currently selected payment method.
func (s *RegisterService) PaymentMethod() enum.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentMethod
}

// Totals recomputes the derived money values for the sale in progress.
func (s *RegisterService) Totals() entity.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked()
}

// CanComplete reports completion eligibility for the current state.
func (s *RegisterService) CanComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked().CanComplete(s.paymentMethod, s.cart.Len())
}

// ProceedToCheckout moves products -> checkout. The non-empty-cart gate
// belongs to the caller; the navigator only checks the source screen.
func (s *RegisterService) ProceedToCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != enum.ScreenProducts {
		return apperror.NewConflictError("Checkout is only reachable from the product screen")
	}
	s.transitionLocked(enum.ScreenCheckout)
	return nil
}

// BackToProducts moves checkout -> products, leaving the sale inputs intact.
func (s *RegisterService) BackToProducts() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != enum.ScreenCheckout {
		return apperror.NewConflictError("Not at the checkout screen")
	}
	s.transitionLocked(enum.ScreenProducts)
	return nil
}

// Snapshot captures the sale in progress for receipt rendering, without
// completing it. Non-cash sales report the total as the amount paid and no
// change, matching what the customer is charged.
func (s *RegisterService) Snapshot() entity.SaleSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// CompleteSale finalizes the sale: it validates eligibility, records the
// ledger entry, snapshots the sale, clears the cart, resets the per-sale
// inputs and returns to the product screen - all in one critical section.
func (s *RegisterService) CompleteSale() (entity.SaleSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != enum.ScreenCheckout {
		return entity.SaleSnapshot{}, apperror.NewConflictError("No checkout in progress")
	}
	totals := s.totalsLocked()
	if !totals.CanComplete(s.paymentMethod, s.cart.Len()) {
		return entity.SaleSnapshot{}, apperror.NewConflictError("Sale is not ready to complete")
	}

	s.ledger.Record(s.paymentMethod, totals.Total, totals.DiscountAmount)
	snapshot := s.snapshotLocked()

	s.cart.Clear()
	s.resetSaleInputsLocked()
	s.transitionLocked(enum.ScreenProducts)

	return snapshot, nil
}

// DaySummary returns a copy of the daily sales aggregates.
func (s *RegisterService) DaySummary() entity.DailySales {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger
}

// ResetDay zeroes the daily aggregates. Operator confirmation is collected
// by the caller before this is invoked.
func (s *RegisterService) ResetDay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.Reset()
}

// totalsLocked derives the totals from current state. Callers hold mu.
func (s *RegisterService) totalsLocked() entity.Totals {
	return entity.ComputeTotals(s.cart.SubtotalCents(), s.discountPercent, s.tenderedCents)
}

func (s *RegisterService) snapshotLocked() entity.SaleSnapshot {
	totals := s.totalsLocked()
	paid := totals.AmountTendered
	change := totals.Change
	if s.paymentMethod != enum.PaymentCash {
		paid = totals.Total
		change = 0
	}
	return entity.SaleSnapshot{
		ReceiptNo:       utils.GenerateReceiptNo(),
		Cashier:         s.cashierName,
		PaymentMethod:   s.paymentMethod,
		Items:           s.cart.Items(),
		SubTotal:        totals.SubTotal,
		DiscountPercent: totals.DiscountPercent,
		DiscountAmount:  totals.DiscountAmount,
		Total:           totals.Total,
		AmountPaid:      paid,
		Change:          change,
		TakenAt:         time.Now(),
	}
}

func (s *RegisterService) resetSaleInputsLocked() {
	s.discountPercent = 0
	s.tenderedCents = 0
	s.paymentMethod = enum.PaymentCash
}

// transitionLocked switches screens immediately and arms the presentation
// grace timer. A transition requested while one is pending stops the old
// timer and supersedes it, so at most one screen is ever marked exiting.
// State mutations never wait on the timer.
func (s *RegisterService) transitionLocked(to enum.Screen) {
	from := s.screen
	s.screen = to

	if s.graceTimer != nil {
		s.graceTimer.Stop()
	}

	tr := &entity.ScreenTransition{From: from, To: to, Pending: true}
	s.transition = tr
	if s.grace <= 0 {
		tr.Pending = false
		s.transition = nil
		return
	}
	s.graceTimer = time.AfterFunc(s.grace, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// Only clear our own transition; a newer one may have superseded it.
		if s.transition == tr {
			tr.Pending = false
			s.transition = nil
		}
	})
}
