package cli

import (
	"fmt"
	"strconv"
	"strings"

	"lizzyHist/internal/domain"
)

// errBadInput возвращается для строк, которые не разобрать как "число операция число".
var errBadInput = fmt.Errorf("bad input")

// aliases — текстовые псевдонимы операций для ввода с клавиатуры.
var aliases = map[string]string{
	"pow":  domain.OpPow,
	"root": domain.OpRoot,
}

// parseExpression разбирает строку вида "5 + 10" (или "27 root 3") в пару операндов
// и идентификатор операции. Валидность самой операции здесь не проверяется —
// это дело фасада.
func parseExpression(line string) (a, b float64, kind string, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, 0, "", fmt.Errorf("%w: ожидается «число операция число», получено %q", errBadInput, line)
	}
	a, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, "", fmt.Errorf("%w: %q не число", errBadInput, fields[0])
	}
	b, err = strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, "", fmt.Errorf("%w: %q не число", errBadInput, fields[2])
	}
	kind = fields[1]
	if full, ok := aliases[strings.ToLower(kind)]; ok {
		kind = full
	}
	return a, b, kind, nil
}
