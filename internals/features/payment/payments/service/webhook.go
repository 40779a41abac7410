package service

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// HandlePaymentStatusWebhook processes a gateway status notification.
// It funnels into the same RegisterPayment/Cancel entry points as the
// REST API, so the transition rules hold regardless of who pays.
func (s *PaymentService) HandlePaymentStatusWebhook(body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	p, err := s.GetByGatewayOrderID(orderID)
	if err != nil {
		return fmt.Errorf("payment with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		method := "gateway"
		_, err = s.RegisterPayment(p.PaymentID, PayInput{Method: &method, ReceiptReference: &orderID}, time.Now().UTC())
	case "expire", "cancel", "deny":
		reason := "gateway: " + status
		_, err = s.Cancel(p.PaymentID, &reason, nil)
	default:
		log.Println("[INFO] webhook status ignored:", status)
		return nil
	}

	// the gateway retries webhooks; a transition that already happened
	// is not an error from its point of view
	if errors.Is(err, ErrInvalidTransition) {
		log.Printf("[INFO] webhook replay for %s ignored (status already %s)", orderID, p.PaymentStatus)
		return nil
	}
	return err
}
