package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Amankewlld/swift-register/internal/application/service"
	"github.com/Amankewlld/swift-register/internal/domain/enum"
	"github.com/Amankewlld/swift-register/internal/presentation/http/dto/request"
	"github.com/Amankewlld/swift-register/internal/presentation/http/dto/response"
	"github.com/Amankewlld/swift-register/pkg/apperror"
)

// CheckoutHandler drives the checkout flow: navigation between the
// product and checkout screens, discount and tender entry, and sale
// completion.
type CheckoutHandler struct {
	registerService *service.RegisterService
	printerService  *service.PrinterService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(registerService *service.RegisterService, printerService *service.PrinterService) *CheckoutHandler {
	return &CheckoutHandler{registerService: registerService, printerService: printerService}
}

// Proceed moves from the product screen to checkout. An empty cart
// cannot be checked out.
func (h *CheckoutHandler) Proceed(c *gin.Context) {
	items, _ := h.registerService.CartView()
	if len(items) == 0 {
		response.Error(c, apperror.NewConflictError("Cart is empty"))
		return
	}

	if err := h.registerService.ProceedToCheckout(); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Proceeding to checkout", gin.H{
		"screen": h.registerService.ScreenState(),
	})
}

// Back returns from checkout to the product screen, keeping the sale
// inputs intact.
func (h *CheckoutHandler) Back(c *gin.Context) {
	if err := h.registerService.BackToProducts(); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Back to products", gin.H{
		"screen": h.registerService.ScreenState(),
	})
}

// SetDiscount applies a sale-level discount percentage, clamped to
// [0,100].
func (h *CheckoutHandler) SetDiscount(c *gin.Context) {
	var req request.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	totals := h.registerService.SetDiscountPercent(req.Percent)
	response.OK(c, "Discount applied", gin.H{"totals": totals})
}

// SetPaymentMethod selects cash, card or mobile settlement.
func (h *CheckoutHandler) SetPaymentMethod(c *gin.Context) {
	var req request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method, err := enum.ParsePaymentMethod(req.Method)
	if err != nil {
		response.BadRequest(c, "Unknown payment method")
		return
	}
	if err := h.registerService.SetPaymentMethod(method); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment method set", gin.H{
		"payment_method": method,
		"totals":         h.registerService.Totals(),
	})
}

// SetTender records the cash amount offered, or snaps it to the exact
// total when the "exact" preset is given.
func (h *CheckoutHandler) SetTender(c *gin.Context) {
	var req request.TenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	switch {
	case req.Preset == "exact":
		totals := h.registerService.SetExactTender()
		response.OK(c, "Tender set", gin.H{"totals": totals})
	case req.Amount != nil:
		totals, err := h.registerService.SetTendered(*req.Amount)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Tender set", gin.H{"totals": totals})
	default:
		response.BadRequest(c, "Provide an amount or the 'exact' preset")
	}
}

// GetTotals returns the derived money values and completion
// eligibility for the sale in progress.
func (h *CheckoutHandler) GetTotals(c *gin.Context) {
	response.OK(c, "Totals retrieved", gin.H{
		"totals":         h.registerService.Totals(),
		"payment_method": h.registerService.PaymentMethod(),
		"can_complete":   h.registerService.CanComplete(),
	})
}

// Receipt prints a receipt for the sale in progress without completing
// it. The rendered receipt is always returned, so with no printer
// attached this doubles as a preview.
func (h *CheckoutHandler) Receipt(c *gin.Context) {
	snap := h.registerService.Snapshot()
	receipt, text, err := h.printerService.PrintReceipt(snap)
	data := gin.H{
		"receipt": receipt,
		"text":    text,
	}
	if err != nil {
		data["warning"] = err.Error()
		response.OK(c, "Receipt generated but printing failed", data)
		return
	}
	response.OK(c, "Receipt printed", data)
}

// Complete finalizes the sale, records it in the daily ledger and
// sends the receipt to the printer. Printing failures never lose the
// sale: the snapshot and receipt are returned with a warning.
func (h *CheckoutHandler) Complete(c *gin.Context) {
	snap, err := h.registerService.CompleteSale()
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, text, printErr := h.printerService.PrintReceipt(snap)
	data := gin.H{
		"sale":    snap,
		"receipt": receipt,
		"text":    text,
		"screen":  h.registerService.ScreenState(),
	}
	if printErr != nil {
		data["warning"] = printErr.Error()
		response.OK(c, "Sale completed (receipt printing failed)", data)
		return
	}

	response.OK(c, "Sale completed", data)
}
