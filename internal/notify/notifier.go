// Package notify — хаб подписчиков на изменения истории и штатные подписчики
// (автосохранение, логирование, публикация в брокер, архив, аналитика).
package notify

import (
	"context"
	"log/slog"

	"lizzyHist/internal/domain"
	"lizzyHist/internal/ports"
)

// entry — одна регистрация подписчика.
type entry struct {
	id  int
	sub ports.ISubscriber
}

// Notifier рассылает события истории подписчикам: синхронно, в порядке регистрации.
// Ошибка или паника одного подписчика логируется и не мешает остальным.
type Notifier struct {
	subs   []entry
	nextID int
	log    *slog.Logger
}

// New создаёт хаб подписчиков.
func New(log *slog.Logger) *Notifier {
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{nextID: 1, log: log}
}

// Subscribe регистрирует подписчика и возвращает дескриптор для Unsubscribe.
func (n *Notifier) Subscribe(sub ports.ISubscriber) int {
	id := n.nextID
	n.nextID++
	n.subs = append(n.subs, entry{id: id, sub: sub})
	return id
}

// Unsubscribe снимает регистрацию по дескриптору. Неизвестный дескриптор — не ошибка.
func (n *Notifier) Unsubscribe(id int) {
	for i, e := range n.subs {
		if e.id == id {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

// Notify вызывает каждого подписчика один раз с событием после изменения.
func (n *Notifier) Notify(ctx context.Context, e domain.HistoryEvent) {
	for _, s := range n.subs {
		n.dispatch(ctx, s, e)
	}
}

// dispatch вызывает одного подписчика, изолируя ошибку и панику.
func (n *Notifier) dispatch(ctx context.Context, s entry, e domain.HistoryEvent) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Error("subscriber panic", "subscriber", s.id, "event", e.Kind, "panic", r)
		}
	}()
	if err := s.sub.OnHistoryChanged(ctx, e); err != nil {
		n.log.Warn("subscriber failed", "subscriber", s.id, "event", e.Kind, "error", err)
	}
}
