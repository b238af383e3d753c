package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Amankewlld/swift-register/internal/domain/entity"
	"github.com/Amankewlld/swift-register/internal/domain/enum"
	"github.com/Amankewlld/swift-register/internal/infrastructure/repository"
	"github.com/Amankewlld/swift-register/pkg/apperror"
)

func testCatalog(t *testing.T) *repository.InMemoryCatalogRepository {
	t.Helper()
	repo, err := repository.NewCatalogRepository([]entity.Product{
		{ID: "1", Name: "Coffee", PriceCents: 350, Category: "Beverages", Icon: "☕"},
		{ID: "7", Name: "Sandwich", PriceCents: 649, Category: "Food", Icon: "🥪"},
	})
	if err != nil {
		t.Fatalf("catalog setup failed: %v", err)
	}
	return repo
}

func newTestRegister(t *testing.T) *RegisterService {
	t.Helper()
	return NewRegisterService(testCatalog(t), 0)
}

func signedInRegister(t *testing.T) *RegisterService {
	t.Helper()
	svc := newTestRegister(t)
	if _, err := svc.SignIn("Alice"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	return svc
}

func TestSignIn(t *testing.T) {
	svc := newTestRegister(t)

	if _, err := svc.SignIn("  "); err == nil {
		t.Error("blank name must be rejected")
	}
	if got := svc.ScreenState().Current; got != enum.ScreenSignIn {
		t.Errorf("rejected sign-in must stay on sign-in, got %v", got)
	}

	id, err := svc.SignIn("  Alice  ")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if id == uuid.Nil {
		t.Error("expected a cashier ID")
	}
	if svc.CashierName() != "Alice" {
		t.Errorf("expected trimmed name Alice, got %q", svc.CashierName())
	}
	if got := svc.ScreenState().Current; got != enum.ScreenProducts {
		t.Errorf("expected products screen after sign-in, got %v", got)
	}
}

func TestSignInTwiceConflicts(t *testing.T) {
	svc := signedInRegister(t)

	_, err := svc.SignIn("Bob")
	if err == nil {
		t.Fatal("second sign-in must conflict")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 409 {
		t.Errorf("expected 409, got %d", appErr.Code)
	}
	if svc.CashierName() != "Alice" {
		t.Errorf("cashier must be unchanged, got %q", svc.CashierName())
	}
}

func TestAddCatalogItem(t *testing.T) {
	svc := signedInRegister(t)

	item, err := svc.AddCatalogItem("1")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if item.Name != "Coffee" || item.Quantity != 1 {
		t.Errorf("unexpected item %+v", item)
	}

	if _, err := svc.AddCatalogItem("nope"); err == nil {
		t.Error("unknown product must be rejected")
	}
}

func TestAddCustomItemValidation(t *testing.T) {
	svc := signedInRegister(t)

	if _, err := svc.AddCustomItem("Gift Wrap", 0); err == nil {
		t.Error("zero price must be rejected")
	}
	if _, err := svc.AddCustomItem("Gift Wrap", -1); err == nil {
		t.Error("negative price must be rejected")
	}
	if _, err := svc.AddCustomItem("  ", 2.50); err == nil {
		t.Error("blank name must be rejected")
	}

	item, err := svc.AddCustomItem("Gift Wrap", 2.50)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if item.PriceCents != 250 {
		t.Errorf("expected 250 cents, got %d", item.PriceCents)
	}
}

func TestCheckoutNavigation(t *testing.T) {
	svc := newTestRegister(t)

	if err := svc.ProceedToCheckout(); err == nil {
		t.Error("checkout must not be reachable from sign-in")
	}
	if err := svc.BackToProducts(); err == nil {
		t.Error("back must not apply outside checkout")
	}

	if _, err := svc.SignIn("Alice"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if _, err := svc.AddCatalogItem("1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.ProceedToCheckout(); err != nil {
		t.Fatalf("proceed failed: %v", err)
	}
	if got := svc.ScreenState().Current; got != enum.ScreenCheckout {
		t.Errorf("expected checkout screen, got %v", got)
	}

	if err := svc.BackToProducts(); err != nil {
		t.Fatalf("back failed: %v", err)
	}
	if got := svc.ScreenState().Current; got != enum.ScreenProducts {
		t.Errorf("expected products screen, got %v", got)
	}
}

func TestBackToProductsKeepsSaleInputs(t *testing.T) {
	svc := signedInRegister(t)
	svc.AddCatalogItem("1")
	svc.ProceedToCheckout()
	svc.SetDiscountPercent(10)
	svc.SetTendered(20)

	svc.BackToProducts()
	svc.ProceedToCheckout()

	totals := svc.Totals()
	if totals.DiscountPercent != 10 {
		t.Errorf("discount lost on navigation, got %d", totals.DiscountPercent)
	}
	if totals.AmountTendered != 2000 {
		t.Errorf("tender lost on navigation, got %d", totals.AmountTendered)
	}
}

func TestSetDiscountPercentClamps(t *testing.T) {
	svc := signedInRegister(t)
	svc.AddCustomItem("Thing", 10)

	if got := svc.SetDiscountPercent(-5).DiscountPercent; got != 0 {
		t.Errorf("expected clamp to 0, got %d", got)
	}
	if got := svc.SetDiscountPercent(150).DiscountPercent; got != 100 {
		t.Errorf("expected clamp to 100, got %d", got)
	}
}

func TestSetTenderedValidation(t *testing.T) {
	svc := signedInRegister(t)

	if _, err := svc.SetTendered(-1); err == nil {
		t.Error("negative tender must be rejected")
	}
	totals, err := svc.SetTendered(20)
	if err != nil {
		t.Fatalf("tender failed: %v", err)
	}
	if totals.AmountTendered != 2000 {
		t.Errorf("expected 2000 cents, got %d", totals.AmountTendered)
	}
}

func TestSetExactTender(t *testing.T) {
	svc := signedInRegister(t)
	svc.AddCustomItem("Lunch Special", 15.99)
	svc.SetDiscountPercent(10)

	totals := svc.SetExactTender()
	if totals.AmountTendered != totals.Total {
		t.Errorf("exact tender must equal the total: %d vs %d", totals.AmountTendered, totals.Total)
	}
	if totals.Change != 0 {
		t.Errorf("expected zero change, got %d", totals.Change)
	}
}

func TestCompleteCashSale(t *testing.T) {
	svc := signedInRegister(t)
	svc.AddCustomItem("Lunch Special", 15.99)
	if err := svc.ProceedToCheckout(); err != nil {
		t.Fatalf("proceed failed: %v", err)
	}
	svc.SetDiscountPercent(10)
	svc.SetTendered(20)

	snap, err := svc.CompleteSale()
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	if snap.SubTotal != 1599 || snap.DiscountAmount != 160 || snap.Total != 1439 {
		t.Errorf("unexpected money values: subtotal %d discount %d total %d",
			snap.SubTotal, snap.DiscountAmount, snap.Total)
	}
	if snap.AmountPaid != 2000 || snap.Change != 561 {
		t.Errorf("expected paid 2000 change 561, got %d / %d", snap.AmountPaid, snap.Change)
	}
	if snap.Cashier != "Alice" {
		t.Errorf("expected cashier Alice, got %q", snap.Cashier)
	}
	if snap.ReceiptNo == "" {
		t.Error("expected a receipt number")
	}

	// The register is ready for the next sale
	items, totals := svc.CartView()
	if len(items) != 0 {
		t.Errorf("cart must be empty after completion, got %d items", len(items))
	}
	if totals.DiscountPercent != 0 || totals.AmountTendered != 0 {
		t.Errorf("sale inputs must be reset, got %+v", totals)
	}
	if svc.PaymentMethod() != enum.PaymentCash {
		t.Errorf("payment method must reset to cash, got %v", svc.PaymentMethod())
	}
	if got := svc.ScreenState().Current; got != enum.ScreenProducts {
		t.Errorf("expected products screen after completion, got %v", got)
	}

	day := svc.DaySummary()
	if day.CashTotal != 1439 {
		t.Errorf("expected cash total 1439, got %d", day.CashTotal)
	}
	if day.TotalDiscounts != 160 {
		t.Errorf("expected discounts 160, got %d", day.TotalDiscounts)
	}
	if day.TransactionCount != 1 || day.DiscountedTransactions != 1 {
		t.Errorf("unexpected counts %+v", day)
	}
}

func TestCompleteCardSaleWithoutTender(t *testing.T) {
	svc := signedInRegister(t)
	svc.AddCatalogItem("7")
	svc.ProceedToCheckout()
	if err := svc.SetPaymentMethod(enum.PaymentCard); err != nil {
		t.Fatalf("set method failed: %v", err)
	}

	snap, err := svc.CompleteSale()
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if snap.AmountPaid != snap.Total {
		t.Errorf("non-cash sale must report paid == total, got %d vs %d", snap.AmountPaid, snap.Total)
	}
	if snap.Change != 0 {
		t.Errorf("non-cash sale must report zero change, got %d", snap.Change)
	}
	if day := svc.DaySummary(); day.CardTotal != 649 {
		t.Errorf("expected card total 649, got %d", day.CardTotal)
	}
}

func TestCompleteSaleRejectedWhenNotReady(t *testing.T) {
	svc := signedInRegister(t)
	svc.AddCatalogItem("1")

	// Not at checkout yet
	if _, err := svc.CompleteSale(); err == nil {
		t.Error("completion must require the checkout screen")
	}

	svc.ProceedToCheckout()
	// Cash with no tender
	if _, err := svc.CompleteSale(); err == nil {
		t.Error("cash sale with no tender must be rejected")
	}

	day := svc.DaySummary()
	if day.TransactionCount != 0 {
		t.Errorf("rejected completion must not touch the ledger, got %+v", day)
	}
	if items, _ := svc.CartView(); len(items) != 1 {
		t.Errorf("rejected completion must keep the cart, got %d items", len(items))
	}
}

func TestClearCartResetsSaleInputs(t *testing.T) {
	svc := signedInRegister(t)
	svc.AddCatalogItem("1")
	svc.SetDiscountPercent(25)
	svc.SetTendered(10)
	svc.SetPaymentMethod(enum.PaymentMobile)

	svc.ClearCart()

	items, totals := svc.CartView()
	if len(items) != 0 {
		t.Errorf("expected empty cart, got %d items", len(items))
	}
	if totals.DiscountPercent != 0 || totals.AmountTendered != 0 {
		t.Errorf("sale inputs must reset with the cart, got %+v", totals)
	}
	if svc.PaymentMethod() != enum.PaymentCash {
		t.Errorf("payment method must reset to cash, got %v", svc.PaymentMethod())
	}
}

func TestResetDay(t *testing.T) {
	svc := signedInRegister(t)
	svc.AddCatalogItem("1")
	svc.ProceedToCheckout()
	svc.SetTendered(5)
	if _, err := svc.CompleteSale(); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	svc.ResetDay()

	if day := svc.DaySummary(); day != (entity.DailySales{}) {
		t.Errorf("expected zeroed summary after reset, got %+v", day)
	}
}

func TestTransitionGraceExpires(t *testing.T) {
	svc := NewRegisterService(testCatalog(t), 30*time.Millisecond)

	if _, err := svc.SignIn("Alice"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	state := svc.ScreenState()
	if state.Current != enum.ScreenProducts {
		t.Fatalf("screen must change immediately, got %v", state.Current)
	}
	if state.Transition == nil || !state.Transition.Pending {
		t.Fatal("expected a pending transition during the grace period")
	}
	if state.Transition.From != enum.ScreenSignIn || state.Transition.To != enum.ScreenProducts {
		t.Errorf("unexpected transition %+v", state.Transition)
	}

	time.Sleep(100 * time.Millisecond)
	if svc.ScreenState().Transition != nil {
		t.Error("transition must clear after the grace period")
	}
}

func TestTransitionSuperseded(t *testing.T) {
	svc := NewRegisterService(testCatalog(t), 50*time.Millisecond)

	svc.SignIn("Alice")
	svc.AddCatalogItem("1")
	if err := svc.ProceedToCheckout(); err != nil {
		t.Fatalf("proceed failed: %v", err)
	}
	// Immediately reverse; the second transition supersedes the first.
	if err := svc.BackToProducts(); err != nil {
		t.Fatalf("back failed: %v", err)
	}

	state := svc.ScreenState()
	if state.Current != enum.ScreenProducts {
		t.Errorf("expected products screen, got %v", state.Current)
	}
	if state.Transition == nil || state.Transition.From != enum.ScreenCheckout {
		t.Errorf("expected the superseding transition, got %+v", state.Transition)
	}

	time.Sleep(150 * time.Millisecond)
	if svc.ScreenState().Transition != nil {
		t.Error("superseding transition must clear after its own grace period")
	}
}
