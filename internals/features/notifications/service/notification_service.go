// file: internals/features/notifications/service/notification_service.go
package service

import (
	"fmt"

	"gorm.io/gorm"

	notifModel "condominiogt_backend/internals/features/notifications/model"
	paymentModel "condominiogt_backend/internals/features/payment/payments/model"
	"condominiogt_backend/internals/helpers/money"
)

// NotificationService records in-app notifications. It satisfies the
// payment service Notifier contract, so payment transitions land here
// after commit.
type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// ========== Payment hooks ==========

func (s *NotificationService) PaymentOverdue(p *paymentModel.PaymentModel) error {
	n := &notifModel.NotificationModel{
		NotificationCondominiumID: p.PaymentCondominiumID,
		NotificationUnitID:        p.PaymentUnitID,
		NotificationPaymentID:     &p.PaymentID,
		NotificationKind:          notifModel.NotificationPaymentOverdue,
		NotificationTitle:         "Pagamento em atraso",
		NotificationMessage: fmt.Sprintf("%s venceu em %s, valor atualizado %s.",
			p.PaymentDescription,
			p.PaymentDueDate.Format("02/01/2006"),
			money.FormatBRL(money.Round2(p.EffectiveValue()))),
	}
	return s.DB.Create(n).Error
}

func (s *NotificationService) PaymentReceived(p *paymentModel.PaymentModel) error {
	n := &notifModel.NotificationModel{
		NotificationCondominiumID: p.PaymentCondominiumID,
		NotificationUnitID:        p.PaymentUnitID,
		NotificationPaymentID:     &p.PaymentID,
		NotificationKind:          notifModel.NotificationPaymentReceived,
		NotificationTitle:         "Pagamento confirmado",
		NotificationMessage: fmt.Sprintf("%s quitado, valor %s.",
			p.PaymentDescription,
			money.FormatBRL(money.Round2(p.EffectiveValue()))),
	}
	return s.DB.Create(n).Error
}
