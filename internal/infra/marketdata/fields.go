package marketdata

import "fmt"

// Required - разыменовывает обязательное поле ответа, отсутствие поля - ошибка разбора
func Required[T any](field string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, fmt.Errorf("%w: missing field %q", ErrDecode, field)
	}
	return *v, nil
}
