package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrAccessDenied возвращается, когда запрос пришёл не от участника записи
	ErrAccessDenied = errors.New("appointments: access denied")

	// ErrAppointmentFinalized возвращается при попытке изменить отменённую или завершённую запись
	ErrAppointmentFinalized = errors.New("appointments: appointment already finalized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
