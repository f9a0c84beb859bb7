package sqldate

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Date civil.Date на границе с БД.
// PostgreSQL (lib/pq) отдает DATE как time.Time, SQLite хранит TEXT.
type Date struct {
	civil.Date
}

// Scan реализует sql.Scanner
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Date = civil.DateOf(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		return fmt.Errorf("sqldate: NULL date")
	default:
		return fmt.Errorf("sqldate: unsupported type %T", src)
	}
}

func (d *Date) parse(s string) error {
	// Postgres может вернуть timestamp-строку, нужна только дата
	if len(s) > 10 {
		s = s[:10]
	}
	parsed, err := civil.ParseDate(s)
	if err != nil {
		return fmt.Errorf("sqldate: %w", err)
	}
	d.Date = parsed
	return nil
}
