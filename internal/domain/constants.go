package domain

// Значения по умолчанию
const (
	DefaultNumDesks = 6
)

// Ограничения бизнес-валидации
const (
	MinDesks              = 1
	MaxDesks              = 12
	MinBookedByLength     = 2
	MaxBookedByLength     = 40
	MaxNoteLength         = 140
	MinMemberNameLength   = 2
	MaxMemberNameLength   = 80
	MinDesiredDays        = 0
	MaxDesiredDays        = 7
	WorkWeekDays          = 5
	MaxTZOffsetMinutes    = 24 * 60
	NumDesksSettingKey    = "num_desks"
	DefaultDeskNamePrefix = "Стол"
)

// DateFormat формат календарной даты (YYYY-MM-DD)
const DateFormat = "2006-01-02"
