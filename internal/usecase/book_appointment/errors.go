package book_appointment

import "errors"

var (
	// ErrStudentNotFound возвращается, когда студент не найден
	ErrStudentNotFound = errors.New("book_appointment: student not found")

	// ErrProfessorNotFound возвращается, когда преподаватель не найден
	ErrProfessorNotFound = errors.New("book_appointment: professor not found")

	// ErrProfessorUnavailable возвращается, когда преподаватель отключил запись
	ErrProfessorUnavailable = errors.New("book_appointment: professor is not available")

	// ErrSlotNotOffered возвращается, когда время не входит в часы приёма, уже прошло
	// или дата за пределами горизонта записи
	ErrSlotNotOffered = errors.New("book_appointment: slot is not offered")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("book_appointment: slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
