package observability

import (
	"errors"
	"time"

	"github.com/geocoder89/staffportal/internal/domain/user"
)

// ObserveStore times a store operation and counts its failures by class.
func (p *Prom) ObserveStore(op string, fn func() error) error {
	start := time.Now()
	err := fn()

	status := "ok"

	if err != nil {
		status = "error"
		p.StoreErrorsTotal.WithLabelValues(op, classifyStoreErr(err)).Inc()
	}
	p.StoreOpDuration.WithLabelValues(op, status).Observe(time.Since(start).Seconds())
	return err
}

func classifyStoreErr(err error) string {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return "not_found"
	case errors.Is(err, user.ErrEmailTaken):
		return "email_taken"
	default:
		return "unknown"
	}
}
