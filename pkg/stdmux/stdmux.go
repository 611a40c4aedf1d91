// Package stdmux decodes the multiplexed stdout/stderr log stream of a container. See
// doc.go for docs.
package stdmux

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// HeaderLen is the size of a frame header in bytes.
const HeaderLen = 8

// MaxPayloadLen is the largest payload a single frame can announce.
const MaxPayloadLen = math.MaxUint32

// StreamTag identifies the origin of a frame.
type StreamTag byte

const (
	Stdout StreamTag = 1
	Stderr StreamTag = 2
)

// String returns "stdout" or "stderr". Invalid tags render as "stream(N)".
func (s StreamTag) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return fmt.Sprintf("stream(%d)", byte(s))
	}
}

// Valid reports whether s is Stdout or Stderr.
func (s StreamTag) Valid() bool {
	return s == Stdout || s == Stderr
}

// ParseStreamTag accepts "stdout", "stderr" or the raw ids "1" and "2".
func ParseStreamTag(s string) (StreamTag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stdout", strconv.Itoa(int(Stdout)):
		return Stdout, nil
	case "stderr", strconv.Itoa(int(Stderr)):
		return Stderr, nil
	}
	return 0, fmt.Errorf("unknown stream %q (expected stdout or stderr)", s)
}

// Frame is one header-plus-payload unit of the stream.
type Frame struct {
	Stream  StreamTag
	Payload []byte
}

// Option configures decoding.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for debug records. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
