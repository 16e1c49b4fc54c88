package calendars

import "errors"

var (
	// ErrTooFewWorkDays возвращается валидатором, когда рабочих дней меньше трёх
	ErrTooFewWorkDays = errors.New("calendars: at least 3 working days must be defined")

	// ErrNoBusinessHours возвращается валидатором, когда не задано ни одного правила рабочих часов
	ErrNoBusinessHours = errors.New("calendars: at least one business hours rule must be defined")

	// ErrIncompleteWorkDayCoverage возвращается валидатором, когда не все рабочие дни
	// покрыты правилами рабочих часов
	ErrIncompleteWorkDayCoverage = errors.New("calendars: not all working days have business hours")

	// ErrCalendarNotFound возвращается, когда календарь не найден
	ErrCalendarNotFound = errors.New("calendars: calendar not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calendars: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendars: internal error")
)
