// Package formdecode декодирует поля формы (query string и urlencoded-тело) в структуру
// по тегам `form`.
package formdecode

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ajg/form"
)

// ErrMalformed оборачивает любые ошибки разбора формы, включая нечисловые значения в числовых полях.
var ErrMalformed = errors.New("malformed form")

// Decode разбирает форму запроса в dst. Неизвестные поля игнорируются.
func Decode(r *http.Request, dst any) error {
	const op = "formdecode.Decode"
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrMalformed, err)
	}
	dec := form.NewDecoder(nil)
	dec.IgnoreUnknownKeys(true)
	if err := dec.DecodeValues(dst, r.Form); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrMalformed, err)
	}
	return nil
}
