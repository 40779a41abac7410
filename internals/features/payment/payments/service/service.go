// Persistence wrapper around the pure lifecycle. Every transition is a
// single conditional UPDATE guarded by the status observed at read
// time, so two racing terminal transitions can never both win: the
// loser sees zero rows affected and gets ErrConcurrentModification or
// ErrInvalidTransition after a re-read.
package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	unitModel "condominiogt_backend/internals/features/condominium/units/model"
	model "condominiogt_backend/internals/features/payment/payments/model"
)

// Notifier is invoked after a transition committed. Failures are the
// notifier's problem: the service logs and moves on, never rolls back.
type Notifier interface {
	PaymentOverdue(p *model.PaymentModel) error
	PaymentReceived(p *model.PaymentModel) error
}

type PaymentService struct {
	DB       *gorm.DB
	Notifier Notifier
}

func NewPaymentService(db *gorm.DB, n Notifier) *PaymentService {
	return &PaymentService{DB: db, Notifier: n}
}

/* ======================= Reads ======================= */

func (s *PaymentService) GetByID(id uuid.UUID) (*model.PaymentModel, error) {
	var p model.PaymentModel
	if err := model.ScopeAlive(s.DB).First(&p, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *PaymentService) GetByGatewayOrderID(orderID string) (*model.PaymentModel, error) {
	var p model.PaymentModel
	if err := model.ScopeAlive(s.DB).First(&p, "payment_gateway_order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

/* ======================= Create ======================= */

func (s *PaymentService) Create(in CreateInput) (*model.PaymentModel, error) {
	p, err := NewPayment(in)
	if err != nil {
		return nil, err
	}

	// freeze the unit's identity at billing time: later unit edits or
	// removals must not rewrite history
	if in.UnitID != nil {
		var u unitModel.UnitModel
		err := unitModel.ScopeAlive(s.DB).First(&u, "unit_id = ?", *in.UnitID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		snap := &model.PaymentUnitSnapshotPayload{
			ID:         u.UnitID,
			Identifier: u.UnitIdentifier,
		}
		if u.UnitBlock != nil {
			snap.Block = *u.UnitBlock
		}
		if err := p.SetUnitSnapshot(snap); err != nil {
			return nil, err
		}
	}

	if err := s.DB.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

/* ======================= Transitions ======================= */

// MarkOverdue is the single pending→overdue entry point; the cron sweep
// and the edit path both funnel through here or through ApplyOverdue.
func (s *PaymentService) MarkOverdue(id uuid.UUID, asOf time.Time, actor *uuid.UUID) (*model.PaymentModel, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	prev := p.PaymentStatus

	if err := ApplyOverdue(p, asOf); err != nil {
		return nil, err
	}
	if actor != nil {
		p.PaymentUpdatedBy = actor
	}

	updates := map[string]interface{}{
		"payment_status":         p.PaymentStatus,
		"payment_interest_value": p.PaymentInterestValue,
		"payment_penalty_value":  p.PaymentPenaltyValue,
		"payment_final_value":    p.PaymentFinalValue,
		"payment_updated_by":     p.PaymentUpdatedBy,
		"payment_updated_at":     time.Now().UTC(),
	}
	if err := s.persistTransition(id, prev, updates); err != nil {
		return nil, err
	}

	s.notify(func() error { return s.Notifier.PaymentOverdue(p) })
	return p, nil
}

func (s *PaymentService) RegisterPayment(id uuid.UUID, in PayInput, now time.Time) (*model.PaymentModel, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	prev := p.PaymentStatus

	if err := ApplyRegisterPayment(p, in, now); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"payment_status":            p.PaymentStatus,
		"payment_paid_date":         p.PaymentPaidDate,
		"payment_interest_value":    p.PaymentInterestValue,
		"payment_penalty_value":     p.PaymentPenaltyValue,
		"payment_final_value":       p.PaymentFinalValue,
		"payment_method":            p.PaymentMethod,
		"payment_receipt_reference": p.PaymentReceiptReference,
		"payment_updated_by":        p.PaymentUpdatedBy,
		"payment_updated_at":        time.Now().UTC(),
	}
	if err := s.persistTransition(id, prev, updates); err != nil {
		return nil, err
	}

	s.notify(func() error { return s.Notifier.PaymentReceived(p) })
	return p, nil
}

func (s *PaymentService) Cancel(id uuid.UUID, reason *string, actor *uuid.UUID) (*model.PaymentModel, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	prev := p.PaymentStatus

	if err := ApplyCancel(p, reason, actor); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"payment_status":     p.PaymentStatus,
		"payment_notes":      p.PaymentNotes,
		"payment_updated_by": p.PaymentUpdatedBy,
		"payment_updated_at": time.Now().UTC(),
	}
	return p, s.persistTransition(id, prev, updates)
}

func (s *PaymentService) Edit(id uuid.UUID, in EditInput, now time.Time) (*model.PaymentModel, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	prev := p.PaymentStatus
	becamePaid := false
	becameOverdue := false

	if err := ApplyEdit(p, in, now); err != nil {
		return nil, err
	}
	becamePaid = prev != model.PaymentPaid && p.PaymentStatus == model.PaymentPaid
	becameOverdue = prev != model.PaymentOverdue && p.PaymentStatus == model.PaymentOverdue

	updates := map[string]interface{}{
		"payment_description":       p.PaymentDescription,
		"payment_kind":              p.PaymentKind,
		"payment_category":          p.PaymentCategory,
		"payment_status":            p.PaymentStatus,
		"payment_base_value":        p.PaymentBaseValue,
		"payment_final_value":       p.PaymentFinalValue,
		"payment_interest_value":    p.PaymentInterestValue,
		"payment_penalty_value":     p.PaymentPenaltyValue,
		"payment_due_date":          p.PaymentDueDate,
		"payment_paid_date":         p.PaymentPaidDate,
		"payment_method":            p.PaymentMethod,
		"payment_receipt_reference": p.PaymentReceiptReference,
		"payment_notes":             p.PaymentNotes,
		"payment_updated_by":        p.PaymentUpdatedBy,
		"payment_updated_at":        time.Now().UTC(),
	}
	if err := s.persistTransition(id, prev, updates); err != nil {
		return nil, err
	}

	if becameOverdue {
		s.notify(func() error { return s.Notifier.PaymentOverdue(p) })
	}
	if becamePaid {
		s.notify(func() error { return s.Notifier.PaymentReceived(p) })
	}
	return p, nil
}

/* ======================= Delete ======================= */

// Delete soft-deletes; the row stays for the aggregation history of
// other reports but drops out of every alive scope.
func (s *PaymentService) Delete(id uuid.UUID) error {
	tx := s.DB.Model(&model.PaymentModel{}).
		Where("payment_id = ? AND payment_deleted_at IS NULL", id).
		Update("payment_deleted_at", gorm.Expr("NOW()"))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

/* ======================= internals ======================= */

// persistTransition writes the full field set in one conditional
// UPDATE: all-or-nothing, keyed on the status seen at read time.
func (s *PaymentService) persistTransition(id uuid.UUID, prev model.PaymentStatus, updates map[string]interface{}) error {
	tx := s.DB.Model(&model.PaymentModel{}).
		Where("payment_id = ? AND payment_status = ? AND payment_deleted_at IS NULL", id, prev).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return s.resolveConflict(id)
	}
	return nil
}

// resolveConflict decides why a conditional update matched nothing.
func (s *PaymentService) resolveConflict(id uuid.UUID) error {
	cur, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if cur.PaymentStatus.IsTerminal() {
		return ErrInvalidTransition
	}
	return ErrConcurrentModification
}

func (s *PaymentService) notify(fn func() error) {
	if s.Notifier == nil {
		return
	}
	go func() {
		if err := fn(); err != nil {
			log.Printf("[NOTIFY ERROR] %v", err)
		}
	}()
}
