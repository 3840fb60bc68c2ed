package handler

import "github.com/zumech/backend/internal/interfaces/http/router"

// Handlers holds one handler per API domain
type Handlers struct {
	Challan   *ChallanHandler
	Invoice   *InvoiceHandler
	Quotation *QuotationHandler
	GatePass  *GatePassHandler
	Messaging *MessagingHandler
	Document  *DocumentHandler
}

// Registrars returns the route groups of every non-nil handler
func (h Handlers) Registrars() []router.RouteRegistrar {
	var out []router.RouteRegistrar
	if h.Challan != nil {
		out = append(out, h.Challan.Routes())
	}
	if h.Invoice != nil {
		out = append(out, h.Invoice.Routes())
	}
	if h.Quotation != nil {
		out = append(out, h.Quotation.Routes())
	}
	if h.GatePass != nil {
		out = append(out, h.GatePass.Routes())
	}
	if h.Messaging != nil {
		out = append(out, h.Messaging.Routes())
	}
	if h.Document != nil {
		out = append(out, h.Document.Routes())
	}
	return out
}
