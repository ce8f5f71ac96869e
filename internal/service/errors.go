package service

import "errors"

// Сентинельные ошибки движка. Хэндлеры различают их через errors.Is:
// ErrStationNotFound и ErrNoRoute — разные ответы клиенту.
var (
	// ErrStationNotFound - станция не найдена: пустая таблица станций либо
	// имя (с учетом фильтра по агентству) не дало ни одной строки
	ErrStationNotFound = errors.New("station not found")

	// ErrNoRoute - обе станции существуют, но пути между ними в графе нет
	ErrNoRoute = errors.New("no route between stations")

	// ErrSearchBudgetExceeded - поиск превысил бюджет состояний или таймаут
	ErrSearchBudgetExceeded = errors.New("search budget exceeded")

	// ErrIncidentNotFound - инцидент с данным ID не существует
	ErrIncidentNotFound = errors.New("incident not found")

	// ErrIncidentTypeNotFound - тип инцидента с данным ID не существует
	ErrIncidentTypeNotFound = errors.New("incident type not found")
)
