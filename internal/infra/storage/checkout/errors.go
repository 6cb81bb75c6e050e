package checkout

import "errors"

var (
	// ErrAttemptNotFound возвращается, когда попытка оформления не найдена
	ErrAttemptNotFound = errors.New("checkout.repository: attempt not found")

	// ErrStatusChanged возвращается, когда статус попытки уже изменен другим запросом
	ErrStatusChanged = errors.New("checkout.repository: attempt status already changed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("checkout.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("checkout.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("checkout.repository: failed to scan row")
)
