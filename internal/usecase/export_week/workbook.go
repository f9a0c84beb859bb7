package export_week

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-DeskBookingService/internal/usecase/get_week"
)

const (
	teamSheet = "Команда"
	// ограничение Excel на длину имени листа
	maxSheetName = 31
)

// buildWorkbook лист с сеткой недели и лист с прогрессом команды
func buildWorkbook(week *get_week.Response) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	gridSheet := sheetName(week.Dates)
	if err := f.SetSheetName("Sheet1", gridSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, 0, len(week.Dates)+1)
	header = append(header, "Стол")
	for _, d := range week.Dates {
		header = append(header, d)
	}
	if err := writeRow(f, gridSheet, 1, header); err != nil {
		return nil, err
	}

	dayIndex := make(map[string]int, len(week.Dates))
	for i, d := range week.Dates {
		dayIndex[d] = i
	}
	cells := make(map[int][]string, len(week.Desks))
	for _, d := range week.Desks {
		cells[d.ID] = make([]string, len(week.Dates))
	}
	for _, b := range week.Bookings {
		row, ok := cells[b.DeskID]
		i, inWeek := dayIndex[b.Date]
		if !ok || !inWeek {
			continue
		}
		row[i] = b.BookedBy
		if b.Note != nil {
			row[i] = fmt.Sprintf("%s (%s)", b.BookedBy, *b.Note)
		}
	}

	for r, d := range week.Desks {
		values := make([]interface{}, 0, len(week.Dates)+1)
		values = append(values, d.Name)
		for _, c := range cells[d.ID] {
			values = append(values, c)
		}
		if err := writeRow(f, gridSheet, r+2, values); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(teamSheet); err != nil {
		return nil, fmt.Errorf("create sheet %s: %w", teamSheet, err)
	}
	if err := writeRow(f, teamSheet, 1, []interface{}{"Участник", "Желаемые дни", "Забронировано"}); err != nil {
		return nil, err
	}
	for r, m := range week.TeamMembers {
		if err := writeRow(f, teamSheet, r+2, []interface{}{m.Name, m.DesiredDays, m.BookedCount}); err != nil {
			return nil, err
		}
	}

	boldHeader(f, gridSheet, len(header))
	boldHeader(f, teamSheet, 3)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

func boldHeader(f *excelize.File, sheet string, columns int) {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return
	}
	endCell, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return
	}
	_ = f.SetCellStyle(sheet, "A1", endCell, style)
}

func sheetName(dates []string) string {
	if len(dates) == 0 {
		return "Неделя"
	}
	name := fmt.Sprintf("%s - %s", dates[0], dates[len(dates)-1])
	if len([]rune(name)) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	return name
}
