package pagination

import "strconv"

// DefaultPageSize: размер страницы списка вопросов
const DefaultPageSize = 10

// Paginate возвращает элементы страницы page из уже упорядоченного списка:
// полуоткрытый диапазон [(page-1)*pageSize, page*pageSize), обрезанный по длине списка.
// Страница за пределами списка: пустой результат, а не ошибка.
// page < 1 трактуется как 1, а pageSize < 1 как DefaultPageSize.
func Paginate[T any](page, pageSize int, items []T) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	// Проверка делением: (page-1)*pageSize может переполнить int
	if len(items) == 0 || page-1 > (len(items)-1)/pageSize {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := len(items)
	if pageSize < end-start {
		end = start + pageSize
	}
	return items[start:end]
}

// ParsePage разбирает номер страницы из query-параметра.
// Отсутствующее или некорректное значение даёт первую страницу.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
