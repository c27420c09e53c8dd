package get_free_slots

import "errors"

var (
	// ErrProfessorNotFound возвращается, когда преподаватель не найден
	ErrProfessorNotFound = errors.New("get_free_slots: professor not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_free_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_slots: internal error")
)
