package observability

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Notifier reports non-fatal simulation diagnostics (unknown move ids, unknown
// animation states) without letting a misbehaving caller flood the log. Each
// notice key gets its own limiter.
type Notifier struct {
	logger   *zap.Logger
	perSec   rate.Limit
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	dropped  map[string]int
}

// NewNotifier wraps logger. A nil logger discards everything.
func NewNotifier(logger *zap.Logger, perSecond float64) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if perSecond <= 0 {
		perSecond = 1
	}
	return &Notifier{
		logger:   logger,
		perSec:   rate.Limit(perSecond),
		limiters: make(map[string]*rate.Limiter),
		dropped:  make(map[string]int),
	}
}

// Nop returns a Notifier that discards every notice.
func Nop() *Notifier {
	return NewNotifier(zap.NewNop(), 1)
}

// Notice logs msg at warn level unless key has exceeded its rate. Suppressed
// notices are counted and reported with the next one that gets through.
func (n *Notifier) Notice(key, msg string, fields ...zap.Field) bool {
	if n == nil {
		return false
	}
	n.mu.Lock()
	lim, ok := n.limiters[key]
	if !ok {
		lim = rate.NewLimiter(n.perSec, 1)
		n.limiters[key] = lim
	}
	if !lim.Allow() {
		n.dropped[key]++
		n.mu.Unlock()
		return false
	}
	suppressed := n.dropped[key]
	delete(n.dropped, key)
	n.mu.Unlock()

	fields = append(fields, zap.String("notice", key))
	if suppressed > 0 {
		fields = append(fields, zap.Int("suppressed", suppressed))
	}
	n.logger.Warn(msg, fields...)
	return true
}

// Logger returns the wrapped logger.
func (n *Notifier) Logger() *zap.Logger {
	if n == nil {
		return zap.NewNop()
	}
	return n.logger
}
