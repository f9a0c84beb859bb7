package export_week

// ContentType MIME-тип выгрузки
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Request модель запроса выгрузки
type Request struct {
	TZOffsetMinutes *float64
}

// Response файл выгрузки
type Response struct {
	FileName string
	Content  []byte
}
