package validation

import (
	"errors"
	"strings"
)

// ErrEmptyCarName возвращается, если название автомобиля пустое или состоит из пробелов
var ErrEmptyCarName = errors.New("car name cannot be empty")

// NormalizeCarName обрезает пробелы по краям и проверяет, что название не пустое.
// Возвращает обрезанное название.
func NormalizeCarName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyCarName
	}
	return name, nil
}
