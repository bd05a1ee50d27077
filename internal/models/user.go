// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Email        string    // Электронная почта, уникальная, используется для входа
	Name         string    // Отображаемое имя пользователя
	PasswordHash string    // bcrypt-хэш пароля, наружу не сериализуется
	CreatedAt    time.Time // Дата создания учётной записи
}

// PublicUser — публичная проекция пользователя для JSON-ответов.
// Хэш пароля сюда не попадает никогда.
type PublicUser struct {
	UID       string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Public возвращает публичную проекцию пользователя.
func (u *User) Public() PublicUser {
	return PublicUser{
		UID:       u.UID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
