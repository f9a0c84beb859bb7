package psqlbuilder

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Dialect SQL-диалект хранилища
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ParseDialect проверяет имя драйвера из конфигурации
func ParseDialect(name string) (Dialect, error) {
	switch Dialect(name) {
	case Postgres:
		return Postgres, nil
	case SQLite, "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("psqlbuilder: unsupported dialect %q", name)
	}
}

// DriverName имя драйвера database/sql для диалекта
func (d Dialect) DriverName() string {
	if d == SQLite {
		return "sqlite3"
	}
	return "postgres"
}

// For возвращает squirrel builder с плейсхолдерами нужного диалекта
func For(d Dialect) squirrel.StatementBuilderType {
	if d == SQLite {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
