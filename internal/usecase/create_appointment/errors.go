package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrProfessionalClosed возвращается, когда мастер не работает
	// в запрошенное время: выходной, блокировка или выход за пределы окна
	ErrProfessionalClosed = errors.New("create_appointment: professional is closed at requested time")

	// ErrIntervalConflict возвращается, когда интервал пересекается
	// с существующей активной записью
	ErrIntervalConflict = errors.New("create_appointment: interval conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
