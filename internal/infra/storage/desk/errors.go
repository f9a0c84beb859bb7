package desk

import "errors"

var (
	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("desk.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("desk.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("desk.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("desk.repository: failed to scan row")
)
