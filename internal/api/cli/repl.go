// Package cli — строчный командный интерпретатор калькулятора. Тонкая обвязка:
// разбирает ввод, зовёт фасад, печатает результат или ошибку.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"lizzyHist/internal/domain"
	"lizzyHist/internal/ports"
)

const prompt = "> "

const helpText = `Команды:
  <число> <операция> <число>  — вычислить (+ - * / ^ √, псевдонимы pow и root)
  history                     — показать историю
  undo / redo                 — отменить / повторить
  clear                       — очистить историю (отменить нельзя)
  save [файл] / load [файл]   — сохранить / загрузить историю
  help                        — эта справка
  exit                        — выход`

// REPL читает команды построчно и выполняет их через фасад калькулятора.
type REPL struct {
	uc  ports.ICalculator
	in  io.Reader
	out io.Writer
	log *slog.Logger
}

// New создаёт интерпретатор поверх фасада.
func New(uc ports.ICalculator, in io.Reader, out io.Writer, log *slog.Logger) *REPL {
	if log == nil {
		log = slog.Default()
	}
	return &REPL{uc: uc, in: in, out: out, log: log}
}

// Run крутит цикл чтения команд до exit, EOF или отмены ctx. Одна команда
// обрабатывается целиком до приёма следующей.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Калькулятор с историей. help — справка, exit — выход.")
	scanner := bufio.NewScanner(r.in)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if done := r.execute(ctx, line); done {
			return nil
		}
	}
}

// execute выполняет одну команду; true — пора выходить.
func (r *REPL) execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "exit", "quit":
		return true
	case "help":
		fmt.Fprintln(r.out, helpText)
	case "history":
		r.printHistory(r.uc.List())
	case "undo":
		records, err := r.uc.Undo(ctx)
		if err != nil {
			r.printError(err)
			return false
		}
		fmt.Fprintln(r.out, "Отменено.")
		r.printHistory(records)
	case "redo":
		records, err := r.uc.Redo(ctx)
		if err != nil {
			r.printError(err)
			return false
		}
		fmt.Fprintln(r.out, "Повторено.")
		r.printHistory(records)
	case "clear":
		r.uc.Clear(ctx)
		fmt.Fprintln(r.out, "История очищена.")
	case "save":
		if err := r.uc.Save(ctx, argPath(fields)); err != nil {
			r.printError(err)
			return false
		}
		fmt.Fprintln(r.out, "История сохранена.")
	case "load":
		if err := r.uc.Load(ctx, argPath(fields)); err != nil {
			r.printError(err)
			return false
		}
		fmt.Fprintln(r.out, "История загружена.")
		r.printHistory(r.uc.List())
	default:
		r.compute(ctx, line)
	}
	return false
}

// compute разбирает арифметический ввод и вызывает фасад.
func (r *REPL) compute(ctx context.Context, line string) {
	a, b, kind, err := parseExpression(line)
	if err != nil {
		r.printError(err)
		return
	}
	calc, err := r.uc.Compute(ctx, kind, a, b)
	if err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintf(r.out, "= %g\n", calc.Result)
}

// printHistory печатает историю, старые записи первыми.
func (r *REPL) printHistory(records []domain.Calculation) {
	if len(records) == 0 {
		fmt.Fprintln(r.out, "История пуста.")
		return
	}
	for i, c := range records {
		fmt.Fprintf(r.out, "%3d. %g %s %g = %g\n", i+1, c.Number1, c.Operation, c.Number2, c.Result)
	}
}

// printError печатает ошибку пользователю человеческим языком.
func (r *REPL) printError(err error) {
	switch {
	case errors.Is(err, domain.ErrDivisionByZero):
		fmt.Fprintln(r.out, "Деление на ноль невозможно.")
	case errors.Is(err, domain.ErrInvalidRoot):
		fmt.Fprintln(r.out, "Такой корень не определён (нулевая степень или отрицательное число).")
	case errors.Is(err, domain.ErrUnknownOperation):
		fmt.Fprintln(r.out, "Неизвестная операция. Поддерживаются: + - * / ^ √.")
	case errors.Is(err, domain.ErrNothingToUndo):
		fmt.Fprintln(r.out, "Нечего отменять.")
	case errors.Is(err, domain.ErrNothingToRedo):
		fmt.Fprintln(r.out, "Нечего повторять.")
	case errors.Is(err, errBadInput):
		fmt.Fprintf(r.out, "Не понял ввод: %v\n", err)
	default:
		r.log.Error("command failed", "error", err)
		fmt.Fprintf(r.out, "Ошибка: %v\n", err)
	}
}

// argPath возвращает необязательный аргумент-путь команды save/load.
func argPath(fields []string) string {
	if len(fields) > 1 {
		return fields[1]
	}
	return ""
}
