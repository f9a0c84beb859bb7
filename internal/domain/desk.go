package domain

import "fmt"

// Desk физический стол в офисе
type Desk struct {
	ID   int
	Name string
}

// DefaultDeskName имя стола по умолчанию ("Стол 3")
func DefaultDeskName(id int) string {
	return fmt.Sprintf("%s %d", DefaultDeskNamePrefix, id)
}

// ClampNumDesks приводит количество столов к диапазону [MinDesks, MaxDesks]
func ClampNumDesks(n int) int {
	return clamp(n, MinDesks, MaxDesks)
}

// IsValidDeskID проверяет, что id входит в 1..numDesks
func IsValidDeskID(id, numDesks int) bool {
	return id >= 1 && id <= numDesks
}

// PadDesks возвращает столы 1..numDesks: имена берутся из desks,
// отсутствующие столы получают имя по умолчанию
func PadDesks(desks []Desk, numDesks int) []Desk {
	names := make(map[int]string, len(desks))
	for _, d := range desks {
		names[d.ID] = d.Name
	}

	result := make([]Desk, 0, numDesks)
	for id := 1; id <= numDesks; id++ {
		name, ok := names[id]
		if !ok || name == "" {
			name = DefaultDeskName(id)
		}
		result = append(result, Desk{ID: id, Name: name})
	}
	return result
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
