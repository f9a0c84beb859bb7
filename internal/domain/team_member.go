package domain

// TeamMember участник команды. Имя используется как идентичность владельца брони.
type TeamMember struct {
	ID          int64
	Name        string
	DesiredDays int
}

// TeamMemberUpdate частичное обновление участника: nil - поле не меняется
type TeamMemberUpdate struct {
	Name        *string
	DesiredDays *int
}

// IsEmpty true, если обновлять нечего
func (u TeamMemberUpdate) IsEmpty() bool {
	return u.Name == nil && u.DesiredDays == nil
}

// ClampDesiredDays приводит желаемое количество дней к диапазону [0, 7]
func ClampDesiredDays(days int) int {
	return clamp(days, MinDesiredDays, MaxDesiredDays)
}
