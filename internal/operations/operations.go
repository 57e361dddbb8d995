// Package operations содержит чистые арифметические функции и таблицу диспетчеризации
// по идентификатору операции (паттерн «стратегия»).
package operations

import (
	"fmt"
	"math"

	"lizzyHist/internal/domain"
)

// Func — одна арифметическая операция над двумя числами.
type Func func(a, b float64) (float64, error)

// table — статическая таблица операций. Никакой динамики: идентификатор → функция.
var table = map[string]Func{
	domain.OpAdd:  func(a, b float64) (float64, error) { return a + b, nil },
	domain.OpSub:  func(a, b float64) (float64, error) { return a - b, nil },
	domain.OpMul:  func(a, b float64) (float64, error) { return a * b, nil },
	domain.OpDiv:  divide,
	domain.OpPow:  func(a, b float64) (float64, error) { return math.Pow(a, b), nil },
	domain.OpRoot: root,
}

// divide делит a на b. При b == 0 — domain.ErrDivisionByZero.
func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, domain.ErrDivisionByZero
	}
	return a / b, nil
}

// root извлекает корень степени b из a: a^(1/b). Корень нулевой степени и корень
// из отрицательного числа не определены — domain.ErrInvalidRoot.
func root(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: zero degree", domain.ErrInvalidRoot)
	}
	if a < 0 {
		return 0, fmt.Errorf("%w: negative radicand", domain.ErrInvalidRoot)
	}
	return math.Pow(a, 1/b), nil
}

// Lookup возвращает функцию по идентификатору операции.
// Для неизвестного идентификатора — ошибка с domain.ErrUnknownOperation.
func Lookup(kind string) (Func, error) {
	fn, ok := table[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, kind)
	}
	return fn, nil
}

// Kinds возвращает список поддерживаемых идентификаторов операций.
func Kinds() []string {
	return []string{domain.OpAdd, domain.OpSub, domain.OpMul, domain.OpDiv, domain.OpPow, domain.OpRoot}
}
