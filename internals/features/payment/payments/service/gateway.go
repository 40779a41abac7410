package service

import (
	"fmt"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	model "condominiogt_backend/internals/features/payment/payments/model"
	"condominiogt_backend/internals/helpers/money"
)

var SnapClient snap.Client

// InitMidtrans is called once at bootstrap.
func InitMidtrans(serverKey string, useProd bool) {
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// CreateCheckout issues a gateway order for an open charge and returns
// the Snap token + redirect URL. Only pending/overdue revenue charges
// can be checked out; the amount is the current final value.
func (s *PaymentService) CreateCheckout(id uuid.UUID, payerName, payerEmail string) (*model.PaymentModel, string, string, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, "", "", err
	}
	if p.PaymentStatus.IsTerminal() {
		return nil, "", "", ErrInvalidTransition
	}
	if p.PaymentKind != model.PaymentRevenue {
		return nil, "", "", newValidationError(map[string]string{"kind": "only revenue charges can be checked out"})
	}

	orderID := p.PaymentGatewayOrderID
	if orderID == nil {
		oid := fmt.Sprintf("PAY-%s", uuid.New().String())
		tx := s.DB.Model(&model.PaymentModel{}).
			Where("payment_id = ? AND payment_gateway_order_id IS NULL", p.PaymentID).
			Update("payment_gateway_order_id", oid)
		if tx.Error != nil {
			return nil, "", "", tx.Error
		}
		if tx.RowsAffected == 0 {
			// another checkout raced us; use the stored order id
			if p, err = s.GetByID(id); err != nil {
				return nil, "", "", err
			}
			orderID = p.PaymentGatewayOrderID
		} else {
			p.PaymentGatewayOrderID = &oid
			orderID = &oid
		}
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID: *orderID,
			// the gateway takes whole currency units
			GrossAmt: money.Round2(p.EffectiveValue()).IntPart(),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return nil, "", "", err
	}
	return p, resp.Token, resp.RedirectURL, nil
}
