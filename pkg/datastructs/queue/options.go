package queue

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/go-queue/pkg/settings"
)

// defaultCapacity is the initial slot count of a Ring created without WithInitialCapacity.
const defaultCapacity = 16

type options struct {
	capacity int
	logger   *zap.Logger
}

// Option configures a queue created by New or NewFromSettings.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		capacity: defaultCapacity,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithInitialCapacity sets the starting slot count of a Ring.
// The value is rounded up to a power of two; non-positive values keep the default.
// A Ring never shrinks below its initial capacity.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger sets the logger used for resize events. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithSettings applies the queue section of the configuration.
func WithSettings(cfg settings.Queue) Option {
	return WithInitialCapacity(cfg.InitialCapacity)
}

// NewFromSettings creates the queue backing selected by cfg.Backend.
// Options given here are applied after cfg and only affect a Ring.
func NewFromSettings[T any](cfg settings.Queue, opts ...Option) Queue[T] {
	if cfg.Backend == settings.BackendList {
		return NewList[T]()
	}
	return New[T](append([]Option{WithSettings(cfg)}, opts...)...)
}
