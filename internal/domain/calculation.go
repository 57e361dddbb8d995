package domain

import (
	"errors"
	"time"
)

// Ошибки домена. Проверяй через errors.Is — обёртки добавляют контекст через %w.
var (
	// ErrUnknownOperation возвращается, когда операция не поддерживается.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrDivisionByZero возвращается при делении на ноль.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidRoot возвращается для корня нулевой степени или корня из отрицательного числа.
	ErrInvalidRoot = errors.New("invalid root")
	// ErrNothingToUndo возвращается, когда стек undo пуст.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo возвращается, когда стек redo пуст.
	ErrNothingToRedo = errors.New("nothing to redo")
	// ErrPersistence возвращается при ошибках чтения/записи файла истории.
	ErrPersistence = errors.New("persistence error")
)

// Константы арифметических операций.
const (
	OpAdd  = "+"
	OpSub  = "-"
	OpMul  = "*"
	OpDiv  = "/"
	OpPow  = "^"
	OpRoot = "√"
)

// Calculation — запись об одном выполненном вычислении. После создания не меняется,
// сравнение по значению.
type Calculation struct {
	Number1   float64
	Number2   float64
	Operation string
	Result    float64
	Timestamp time.Time
}
