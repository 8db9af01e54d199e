package pricing

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricing.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pricing.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricing.repository: failed to scan row")

	// ErrInvalidWeekday возвращается при дне недели вне диапазона 0-6
	ErrInvalidWeekday = errors.New("pricing.repository: weekday must be in range 0-6")

	// ErrInvalidPrice возвращается при попытке сохранить неположительную цену
	ErrInvalidPrice = errors.New("pricing.repository: price must be positive")
)
