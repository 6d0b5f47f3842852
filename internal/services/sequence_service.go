package services

import (
	"context"
	"fmt"

	"github.com/avast/retry-go"
	"go.uber.org/zap"

	"github.com/supermax-promo/cupom-backend/internal/repositories"
)

// SequenceServiceImpl issues coupon codes from the durable counter.
// All atomicity lives in the repository's single-document increment; the
// service only formats the value and applies a small retry budget for
// transient store failures.
type SequenceServiceImpl struct {
	counterRepo repositories.CounterRepository
	prefix      string
	pad         int
	attempts    uint
}

// Compile-time check to ensure SequenceServiceImpl implements SequenceService
var _ SequenceService = (*SequenceServiceImpl)(nil)

// NewSequenceService creates a new SequenceServiceImpl. pad is the
// minimum number of digits in the formatted code (e.g. 5 -> SM-00001).
func NewSequenceService(counterRepo repositories.CounterRepository, prefix string, pad int) *SequenceServiceImpl {
	return &SequenceServiceImpl{
		counterRepo: counterRepo,
		prefix:      prefix,
		pad:         pad,
		attempts:    3,
	}
}

// NextCode returns the next coupon code. On exhaustion of the retry
// budget it returns ErrSequenceUnavailable so the caller can surface a
// "try again" error instead of fabricating a code.
func (s *SequenceServiceImpl) NextCode(ctx context.Context) (string, error) {
	var number int64

	err := retry.Do(
		func() error {
			n, err := s.counterRepo.NextNumber(ctx)
			if err != nil {
				return err
			}
			number = n
			return nil
		},
		retry.Attempts(s.attempts),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		zap.L().Error("coupon counter increment failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrSequenceUnavailable, err)
	}

	return fmt.Sprintf("%s-%0*d", s.prefix, s.pad, number), nil
}
