package stripewebhooks

import (
	"log"

	"github.com/stripe/stripe-go/v75"
)

// handleInvoicePaymentFailed only records the failure for operational
// follow-up. Entitlement is not touched: Stripe emits subscription.updated /
// subscription.deleted once the failure actually changes the subscription.
// TODO: wire dunning notifications once the email templates exist.
func handleInvoicePaymentFailed(invoice *stripe.Invoice) {
	customerID := ""
	if invoice.Customer != nil {
		customerID = invoice.Customer.ID
	}
	log.Printf("⚠️ invoice payment failed: invoice=%s customer=%s amount_due=%d", invoice.ID, customerID, invoice.AmountDue)
}
