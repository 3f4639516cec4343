package container

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var (
	ErrConfiguration   = errors.New("missing required behaviour")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmpty           = errors.New("empty container")
	ErrNotFound        = errors.New("not found")
)

// NotFound is returned by index lookups that miss.
const NotFound = -1

// Compare returns a negative number when a < b, zero when a == b and a
// positive number when a > b.
type Compare[T any] func(a, b T) int

type Free[T any] func(v T)

type Print[T any] func(v T)

type Predicate[T any] func(v T) bool

type Mapper[T any] func(v T) T

type Config struct {
	Output io.Writer
	Logger *zap.Logger
}

type Option func(cfg *Config)

// WithOutput sets where empty-container markers and prints are written.
func WithOutput(w io.Writer) Option {
	return func(cfg *Config) {
		if w != nil {
			cfg.Output = w
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

func NewConfig(opts ...Option) Config {
	cfg := Config{
		Output: os.Stdout,
		Logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Misconfigured wraps ErrConfiguration with the name of the missing behaviour.
func Misconfigured(container, what string) error {
	return errors.Wrapf(ErrConfiguration, "%s: %s function undefined", container, what)
}

func InvalidArgument(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// Reverse flips the order of cmp, turning a max-heap comparator into a
// min-heap one.
func Reverse[T any](cmp Compare[T]) Compare[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}
