package paylink

import (
	"github.com/stxpay/paylink/logger"
	"github.com/stxpay/paylink/metrics"
)

type Option func(*Paylink)

func WithLogger(l logger.Logger) Option {
	return func(p *Paylink) {
		p.logger = l
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(p *Paylink) {
		p.metrics = r
	}
}
