package domain

// Role роль пользователя в системе
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleOwner     Role = "owner"
	RoleDeveloper Role = "developer"
)

// Actor аутентифицированный инициатор запроса
type Actor struct {
	UserID int64
	Role   Role
}

// CanManageTenant возвращает true, если актор может управлять тенантом:
// разработчик управляет любым, владелец - только своим
func (a *Actor) CanManageTenant(t *Tenant) bool {
	if a == nil {
		return false
	}
	if a.Role == RoleDeveloper {
		return true
	}
	return a.Role == RoleOwner && t.OwnerID == a.UserID
}

// BookingSource источник запроса на бронирование
// Определяет уровень доверия к входным данным и применяемые гейты валидации
type BookingSource string

const (
	// SourceCustomer самостоятельное бронирование клиентом (строгая валидация)
	SourceCustomer BookingSource = "customer"
	// SourceOwner бронь, внесенная владельцем от имени клиента
	SourceOwner BookingSource = "owner"
	// SourceBlock ручная блокировка слота владельцем (без клиента и уведомлений)
	SourceBlock BookingSource = "block"
)

// Valid возвращает true для известного источника
func (s BookingSource) Valid() bool {
	switch s {
	case SourceCustomer, SourceOwner, SourceBlock:
		return true
	}
	return false
}

// BypassesLeadTime владелец и блокировка не ограничены порогом advance_hours:
// ручное закрытие слота должно работать и для ближайшего времени
func (s BookingSource) BypassesLeadTime() bool {
	return s == SourceOwner || s == SourceBlock
}

// TruncatesLongFields доверенные пути обрезают слишком длинные поля,
// клиентский путь жестко отклоняет их
func (s BookingSource) TruncatesLongFields() bool {
	return s == SourceOwner || s == SourceBlock
}

// DropsUnknownMenu легаси-поведение владельческих путей: нераспознанный
// menu id молча игнорируется вместо отказа
func (s BookingSource) DropsUnknownMenu() bool {
	return s == SourceOwner || s == SourceBlock
}

// Notifies блокировки слотов не порождают уведомлений
func (s BookingSource) Notifies() bool {
	return s != SourceBlock
}

// RequiresActor владельческие пути требуют аутентифицированного актора
func (s BookingSource) RequiresActor() bool {
	return s == SourceOwner || s == SourceBlock
}
