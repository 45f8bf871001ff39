package entity

import "strconv"

// Category представляет категорию вопросов. Через API доступна только на чтение.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"column:type;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// CategoryMap преобразует список категорий в словарь id -> type.
// Ключи: строки, т.к. JSON-объект не допускает числовых ключей.
func CategoryMap(categories []Category) map[string]string {
	m := make(map[string]string, len(categories))
	for _, c := range categories {
		m[strconv.FormatUint(uint64(c.ID), 10)] = c.Type
	}
	return m
}
