package notify

import (
	"sync"
	"time"

	"github.com/hugohenrick/pdv-varejo/pkg/logger"
)

// Severity indica a severidade de uma notificação exibida ao operador
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification é uma mensagem destinada à interface do terminal
type Notification struct {
	ID        uint64    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier é o destino de notificações do núcleo de vendas
type Notifier interface {
	Notify(message string, severity Severity)
}

// Feed é um Notifier com buffer circular consultado pela interface
type Feed struct {
	mu     sync.Mutex
	buffer []Notification
	limit  int
	nextID uint64
	logger logger.Logger
}

// NewFeed cria um novo Feed com o limite de notificações retidas
func NewFeed(limit int, log logger.Logger) *Feed {
	if limit <= 0 {
		limit = 50
	}
	return &Feed{
		limit:  limit,
		nextID: 1,
		logger: log,
	}
}

// Notify registra uma notificação no buffer e espelha no log
func (f *Feed) Notify(message string, severity Severity) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := Notification{
		ID:        f.nextID,
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}
	f.nextID++

	f.buffer = append(f.buffer, n)
	if len(f.buffer) > f.limit {
		f.buffer = f.buffer[len(f.buffer)-f.limit:]
	}

	if f.logger == nil {
		return
	}
	switch severity {
	case SeverityError:
		f.logger.Error("notificação", "message", message)
	case SeverityWarning:
		f.logger.Warn("notificação", "message", message)
	default:
		f.logger.Info("notificação", "message", message)
	}
}

// After retorna as notificações com ID maior que o informado, em ordem
// de criação. Com afterID zero retorna todo o buffer retido.
func (f *Feed) After(afterID uint64) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]Notification, 0, len(f.buffer))
	for _, n := range f.buffer {
		if n.ID > afterID {
			result = append(result, n)
		}
	}
	return result
}
