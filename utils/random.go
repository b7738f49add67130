package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GuestCredentials генерирует случайные реквизиты гостевого аккаунта.
// Пароль совпадает с именем - гостевая сессия живёт до истечения TTL,
// повторный вход гостю не нужен.
func GuestCredentials() (username, email, password string) {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	username = "guest-" + suffix
	email = username + "@kitcollabguest.com"
	password = username
	return username, email, password
}
