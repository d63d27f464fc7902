package shoecard

import "fmt"

// Pluralize возвращает "{count} {noun}", добавляя "s" ко всем количествам, кроме 1.
// Неправильные формы множественного числа не поддерживаются.
func Pluralize(noun string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}

	return fmt.Sprintf("%d %ss", count, noun)
}
