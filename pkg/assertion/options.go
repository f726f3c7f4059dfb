package assertion

import (
	"digital.vasic.failmsg/pkg/logging"
	"digital.vasic.failmsg/pkg/metrics"
	"digital.vasic.failmsg/pkg/render"
)

// SynthesizerOption configures a Synthesizer.
type SynthesizerOption func(*Synthesizer)

// WithLogger sets the logger. Long field values are truncated
// before they reach it.
func WithLogger(logger logging.Logger) SynthesizerOption {
	return func(s *Synthesizer) {
		if logger != nil {
			s.logger = logging.NewTruncatingLogger(logger, 0)
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m metrics.SynthesizerMetrics) SynthesizerOption {
	return func(s *Synthesizer) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithRenderConfig sets the tunables used by operands that honour
// them (floats, complex numbers and slices).
func WithRenderConfig(cfg render.Config) SynthesizerOption {
	return func(s *Synthesizer) {
		s.renderOpts = []render.Option{render.WithConfig(cfg)}
	}
}

// WithRenderOptions appends individual render options.
func WithRenderOptions(opts ...render.Option) SynthesizerOption {
	return func(s *Synthesizer) {
		s.renderOpts = append(s.renderOpts, opts...)
	}
}
