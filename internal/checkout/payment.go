package checkout

import (
	"context"
	"fmt"

	pkgerrors "github.com/shopstreamhq/shopstream-backend/pkg/errors"
)

// Payment methods offered on the order view.
const (
	PaymentCash   = "cash"
	PaymentOnline = "online"
)

const (
	cashConfirmationMessage   = "Order placed with Cash on Delivery!"
	onlineConfirmationMessage = "Please scan the QR code to complete the payment."
)

// PaymentSelection is the outcome of picking a payment method. Online
// payments carry a static reference string for the client to render as a
// placeholder code; nothing is charged.
type PaymentSelection struct {
	Method           string
	Message          string
	PaymentReference string
}

// SelectPayment resolves the chosen method against the current order
// selection. An empty order cannot reach payment.
func (s *service) SelectPayment(ctx context.Context, sessionID, method string) (PaymentSelection, error) {
	summary, err := s.Summary(ctx, sessionID)
	if err != nil {
		return PaymentSelection{}, err
	}
	if len(summary.Lines) == 0 {
		return PaymentSelection{}, pkgerrors.New(pkgerrors.CodeNotFound, "no orders found")
	}

	switch method {
	case PaymentCash:
		return PaymentSelection{
			Method:  PaymentCash,
			Message: cashConfirmationMessage,
		}, nil
	case PaymentOnline:
		return PaymentSelection{
			Method:           PaymentOnline,
			Message:          onlineConfirmationMessage,
			PaymentReference: s.paymentReference(summary),
		}, nil
	default:
		return PaymentSelection{}, pkgerrors.New(pkgerrors.CodeValidation, "payment method must be cash or online")
	}
}

// paymentReference derives the static UPI-style placeholder from the order
// total and the fixed merchant identity.
func (s *service) paymentReference(summary Summary) string {
	return fmt.Sprintf(
		"upi://pay?pa=%s&pn=%s&am=%s&cu=%s",
		s.payment.MerchantID,
		s.payment.MerchantName,
		summary.Total.StringFixed(2),
		s.payment.Currency,
	)
}
