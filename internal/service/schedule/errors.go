package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание мастера не настроено
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrBlockedDateNotFound возвращается, когда блокировка не найдена
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
