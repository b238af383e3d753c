package entity

import (
	"strings"
	"testing"
)

func coffee() *Product {
	return &Product{ID: "1", Name: "Coffee", PriceCents: 350, Category: "Beverages", Icon: "☕"}
}

func sandwich() *Product {
	return &Product{ID: "7", Name: "Sandwich", PriceCents: 649, Category: "Food", Icon: "🥪"}
}

func TestAddProductNewAndRepeat(t *testing.T) {
	cart := NewCart()

	item := cart.AddProduct(coffee())
	if item.Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", item.Quantity)
	}
	if cart.Len() != 1 {
		t.Errorf("expected 1 line item, got %d", cart.Len())
	}

	again := cart.AddProduct(coffee())
	if again.Quantity != 2 {
		t.Errorf("expected quantity 2 after re-add, got %d", again.Quantity)
	}
	if cart.Len() != 1 {
		t.Errorf("re-adding the same product must not create a new line, got %d lines", cart.Len())
	}
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(coffee())
	cart.AddProduct(sandwich())
	cart.AddProduct(coffee())

	items := cart.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(items))
	}
	if items[0].Name != "Coffee" || items[1].Name != "Sandwich" {
		t.Errorf("insertion order not preserved: %q, %q", items[0].Name, items[1].Name)
	}
}

func TestAddCustomItem(t *testing.T) {
	cart := NewCart()

	item := cart.AddCustomItem("Gift Wrap", 250)
	if item == nil {
		t.Fatal("expected custom item to be added")
	}
	if !strings.HasPrefix(item.ID, "custom-") {
		t.Errorf("custom item ID must carry the custom- prefix, got %q", item.ID)
	}
	if item.Icon != CustomItemIcon {
		t.Errorf("expected default icon %q, got %q", CustomItemIcon, item.Icon)
	}

	// Same name twice stays two distinct lines
	other := cart.AddCustomItem("Gift Wrap", 250)
	if other == nil {
		t.Fatal("expected second custom item to be added")
	}
	if other.ID == item.ID {
		t.Error("custom items must get unique IDs")
	}
	if cart.Len() != 2 {
		t.Errorf("expected 2 line items, got %d", cart.Len())
	}
}

func TestAddCustomItemRejectsBadInput(t *testing.T) {
	cart := NewCart()

	if cart.AddCustomItem("   ", 100) != nil {
		t.Error("blank name must be rejected")
	}
	if cart.AddCustomItem("Thing", 0) != nil {
		t.Error("zero price must be rejected")
	}
	if cart.AddCustomItem("Thing", -50) != nil {
		t.Error("negative price must be rejected")
	}
	if !cart.IsEmpty() {
		t.Error("rejected input must leave the cart untouched")
	}
}

func TestUpdateQuantityClampsAndRemoves(t *testing.T) {
	cart := NewCart()
	item := cart.AddProduct(coffee())

	cart.UpdateQuantity(item.ID, 2)
	if got := cart.Find(item.ID).Quantity; got != 3 {
		t.Errorf("expected quantity 3, got %d", got)
	}

	// Driving below one removes the line
	cart.UpdateQuantity(item.ID, -5)
	if cart.Find(item.ID) != nil {
		t.Error("item driven to zero must be removed")
	}
	if !cart.IsEmpty() {
		t.Error("cart should be empty after removal")
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(coffee())

	if cart.UpdateQuantity("nope", 1) {
		t.Error("unknown ID must report no change")
	}
	if cart.SubtotalCents() != 350 {
		t.Errorf("subtotal changed on unknown-ID update: %d", cart.SubtotalCents())
	}
}

func TestRemoveAndClear(t *testing.T) {
	cart := NewCart()
	a := cart.AddProduct(coffee())
	cart.AddProduct(sandwich())

	if !cart.Remove(a.ID) {
		t.Error("expected removal to report a change")
	}
	if cart.Len() != 1 {
		t.Errorf("expected 1 line item after removal, got %d", cart.Len())
	}
	if cart.Remove("nope") {
		t.Error("unknown ID must report no change")
	}

	cart.Clear()
	if !cart.IsEmpty() {
		t.Error("cart should be empty after Clear")
	}
	if cart.SubtotalCents() != 0 {
		t.Errorf("expected zero subtotal, got %d", cart.SubtotalCents())
	}
}

func TestSubtotalSumsExtendedPrices(t *testing.T) {
	cart := NewCart()
	item := cart.AddProduct(coffee())
	cart.UpdateQuantity(item.ID, 2) // 3 x 350
	cart.AddProduct(sandwich())     // 1 x 649

	if got := cart.SubtotalCents(); got != 3*350+649 {
		t.Errorf("expected subtotal %d, got %d", 3*350+649, got)
	}
}

func TestItemsReturnsCopies(t *testing.T) {
	cart := NewCart()
	cart.AddProduct(coffee())

	items := cart.Items()
	items[0].Quantity = 99

	if got := cart.Find("1").Quantity; got != 1 {
		t.Errorf("mutating the returned slice must not affect the cart, quantity is %d", got)
	}
}
