package jobs

import (
	"context"
	"log"
	"time"

	"upvc_marketplace/internal/usecase"

	"github.com/robfig/cron/v3"
)

const quotaResetSweepTimeout = 2 * time.Minute

// InitQuotaResetCron schedules the daily sweep that rolls sellers whose
// monthly free quota window has elapsed onto a fresh allowance.
func InitQuotaResetCron(quotaUseCase usecase.IQuotaUseCase) {
	c := cron.New()

	_, err := c.AddFunc("0 0 * * *", func() {
		sweepQuotaResets(quotaUseCase)
	})

	if err != nil {
		log.Printf("Could not initialize quota reset cron: %v", err)
		return
	}

	c.Start()
}

func sweepQuotaResets(quotaUseCase usecase.IQuotaUseCase) {
	log.Println("Checking for sellers due a quota reset...")

	ctx, cancel := context.WithTimeout(context.Background(), quotaResetSweepTimeout)
	defer cancel()

	count, err := quotaUseCase.ResetDueSellers(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("Error sweeping quota resets: %v", err)
		return
	}

	log.Printf("Reset monthly free quota for %d sellers", count)
}
