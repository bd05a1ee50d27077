// Package models содержит доменные структуры, описывающие ревизию —
// единицу сгенерированного учебного материала, а также вспомогательные
// типы для приёма данных из JSON-запросов.
package models

import "time"

// Revision представляет собой единицу учебного материала.
// UserUID может быть nil — анонимная генерация, которая не была сохранена.
type Revision struct {
	ID           string    `json:"id"`                // Уникальный идентификатор ревизии
	UserUID      *string   `json:"user_id"`           // Владелец, nil для анонимной генерации
	Subject      string    `json:"subject"`           // Школьный предмет
	RevisionType string    `json:"revision_type"`     // Формат материала: fiche, qcm, flashcard, resume, trous
	Prompt       string    `json:"prompt"`            // Исходный текст темы от пользователя
	Content      string    `json:"content"`           // Сгенерированный или присланный материал
	CreatedAt    time.Time `json:"created_at"`        // Дата создания, неизменяемая
}

// DummyGenerateRequest используется для приёма данных запроса на генерацию.
// Image — необязательное изображение в base64, передаётся провайдеру как есть.
type DummyGenerateRequest struct {
	Prompt       string `json:"prompt" validate:"required"`
	Subject      string `json:"subject" validate:"required"`
	RevisionType string `json:"revision_type" validate:"required"`
	ImageBase64  string `json:"image_base64,omitempty"`
}

// DummySaveRequest используется для приёма данных запроса на сохранение
// уже сгенерированного материала.
type DummySaveRequest struct {
	Prompt       string `json:"prompt" validate:"required"`
	Subject      string `json:"subject" validate:"required"`
	RevisionType string `json:"revision_type" validate:"required"`
	Content      string `json:"content" validate:"required"`
}
