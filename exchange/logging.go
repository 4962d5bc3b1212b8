package exchange

import (
	"time"

	"github.com/go-kit/log"

	"github.com/pago46/money"
)

// loggingConverter decorates a money.Converter with logging
type loggingConverter struct {
	logger log.Logger
	next   money.Converter
}

// NewLoggingConverter returns a converter that logs every conversion made by next.
func NewLoggingConverter(logger log.Logger, next money.Converter) money.Converter {
	return &loggingConverter{
		logger: logger,
		next:   next,
	}
}

func (c *loggingConverter) Convert(a money.Amount, to money.Currency) (b money.Amount, err error) {
	defer func(begin time.Time) {
		c.logger.Log( //nolint:errcheck
			"method", "convert",
			"amount", a.Decimal(),
			"from", a.Curr(),
			"to", to,
			"converted_amount", b.Decimal(),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(a, to)
}
