package fixed_window

import (
	"fmt"
	"sync"
	"time"
)

/*
Лимитер со счетчиком в фиксированном окне: ключ prefix:identifier, первый запрос
открывает окно, по истечении окна счетчик сбрасывается. В отличие от
pkg/token_bucket отдает телеметрию (remaining/resetAt/retryAfter) для заголовков
X-RateLimit-*.
*/

// Config - именованный пресет лимита для одного класса операций.
type Config struct {
	// MaxRequests - максимум запросов в окне
	MaxRequests int
	// Window - длительность окна
	Window time.Duration
	// Prefix - неймспейс ключа, чтобы пресеты не пересекались по identifier
	Prefix string
}

// Пресеты по классам операций.
var (
	CreatePayment = Config{MaxRequests: 5, Window: time.Minute, Prefix: "create-payment"}
	CheckStatus   = Config{MaxRequests: 30, Window: time.Minute, Prefix: "check-status"}
	SendEmail     = Config{MaxRequests: 10, Window: time.Minute, Prefix: "send-email"}
	Webhook       = Config{MaxRequests: 100, Window: time.Minute, Prefix: "webhook"}
)

// Result - решение лимитера плюс телеметрия для ответа клиенту.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
	// RetryAfter - секунды до сброса окна, заполняется только при отказе
	RetryAfter int
}

type entry struct {
	count       int
	windowStart time.Time
	window      time.Duration
}

type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

type Option func(*Limiter)

// WithClock подменяет источник времени, нужен тестам.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

func New(opts ...Option) *Limiter {
	l := &Limiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check атомарно учитывает запрос identifier в пресете cfg и возвращает решение.
func (l *Limiter) Check(identifier string, cfg Config) Result {
	key := fmt.Sprintf("%s:%s", cfg.Prefix, identifier)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]

	// нет записи или окно истекло - открываем новое окно
	if !ok || now.Sub(e.windowStart) >= cfg.Window {
		l.entries[key] = &entry{
			count:       1,
			windowStart: now,
			window:      cfg.Window,
		}
		return Result{
			Allowed:   true,
			Remaining: cfg.MaxRequests - 1,
			ResetAt:   now.Add(cfg.Window),
		}
	}

	resetAt := e.windowStart.Add(cfg.Window)

	if e.count >= cfg.MaxRequests {
		return Result{
			Allowed:    false,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfterSeconds(resetAt.Sub(now)),
		}
	}

	e.count++
	return Result{
		Allowed:   true,
		Remaining: cfg.MaxRequests - e.count,
		ResetAt:   resetAt,
	}
}

// Cleanup удаляет записи с полностью истекшим окном и возвращает их количество.
// Вызывается периодически фоновой задачей, на решения Check не влияет:
// истекшая запись и так сбрасывается при следующем обращении.
func (l *Limiter) Cleanup() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for key, e := range l.entries {
		if now.Sub(e.windowStart) >= e.window {
			delete(l.entries, key)
			evicted++
		}
	}
	return evicted
}

func retryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
