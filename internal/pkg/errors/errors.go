package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	// Пустой пул вопросов викторины сюда НЕ относится: это штатное завершение игры.
	ErrNotFound = errors.New("resource not found")

	// ErrUnprocessable используется, когда запрос корректен по форме,
	// но операция не может быть выполнена (не прошла валидация, не удалось вставить/удалить запись).
	ErrUnprocessable = errors.New("unprocessable")

	// ErrBadRequest используется для синтаксически некорректного запроса (битый JSON и т.п.).
	ErrBadRequest = errors.New("bad request")
)
