package professors

import "errors"

var (
	// ErrProfessorNotFound возвращается, когда преподаватель не найден
	ErrProfessorNotFound = errors.New("professors: professor not found")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("professors: email already registered")

	// ErrInvalidOfficeHours возвращается для неполных или перевёрнутых интервалов
	ErrInvalidOfficeHours = errors.New("professors: invalid office hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("professors: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("professors: internal error")
)
