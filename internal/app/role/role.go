package role

// Роли пользователей API
type Role int

const (
	Member Role = iota // Обычный участник, видит только свои схемы
	Manager
	Admin
)
