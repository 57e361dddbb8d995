package domain

// EventKind — вид изменения истории.
type EventKind string

// Виды событий истории. Подписчики получают событие после того, как история
// и стеки undo/redo пришли в согласованное состояние.
const (
	EventAppend  EventKind = "append"  // добавлено новое вычисление
	EventClear   EventKind = "clear"   // история очищена
	EventRestore EventKind = "restore" // история заменена снапшотом (undo/redo)
	EventLoad    EventKind = "load"    // история загружена из файла
)

// HistoryEvent — событие изменения истории. Records — вид истории после изменения
// (копия, менять можно безопасно). Latest заполнен только для EventAppend.
type HistoryEvent struct {
	Kind    EventKind
	Records []Calculation
	Latest  *Calculation
}
