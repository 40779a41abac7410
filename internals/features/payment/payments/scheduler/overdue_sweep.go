// Periodic pending→overdue sweep. The job only selects candidates; the
// actual transition goes through the same service.MarkOverdue entry
// point the API uses, so the accrual formula lives in exactly one place.
package scheduler

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	model "condominiogt_backend/internals/features/payment/payments/model"
	service "condominiogt_backend/internals/features/payment/payments/service"
)

const sweepBatchSize = 500

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ── ENTRYPOINT: call from main.go after the DB is up
func StartOverdueSweepCron(db *gorm.DB, svc *service.PaymentService) *cron.Cron {
	schedule := getEnvOrDefault("OVERDUE_SWEEP_CRON", "0 3 * * *")

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { RunOverdueSweep(db, svc, time.Now().UTC()) }); err != nil {
		log.Printf("[SWEEP ERROR] invalid cron spec %q: %v", schedule, err)
		return c
	}
	c.Start()
	log.Printf("[SWEEP] overdue sweep scheduled: %q", schedule)
	return c
}

// RunOverdueSweep marks every pending payment past its due date as
// overdue. Per-payment failures are logged and skipped; a payment that
// raced a concurrent pay/cancel simply stops being a candidate.
func RunOverdueSweep(db *gorm.DB, svc *service.PaymentService, asOf time.Time) {
	log.Println("[SWEEP] running pending→overdue sweep...")

	// compare whole days: a payment due today is not overdue yet
	cut := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)

	var candidates []model.PaymentModel
	err := model.ScopeAlive(db).
		Where("payment_status = ? AND payment_due_date < ?", model.PaymentPending, cut).
		Limit(sweepBatchSize).
		Find(&candidates).Error
	if err != nil {
		log.Printf("[SWEEP ERROR] candidate query: %v", err)
		return
	}

	marked := 0
	for i := range candidates {
		_, err := svc.MarkOverdue(candidates[i].PaymentID, asOf, nil)
		switch {
		case err == nil:
			marked++
		case errors.Is(err, service.ErrInvalidTransition),
			errors.Is(err, service.ErrConcurrentModification),
			errors.Is(err, service.ErrNotFound):
			// lost a race with a pay/cancel/delete; nothing to do
		default:
			log.Printf("[SWEEP ERROR] payment %s: %v", candidates[i].PaymentID, err)
		}
	}

	if marked > 0 {
		log.Printf("[SWEEP] %d payments marked overdue", marked)
	} else {
		log.Println("[SWEEP] no candidates")
	}
}
