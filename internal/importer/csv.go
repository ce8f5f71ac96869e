package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shenikar/transit_routing_system/internal/models"
	"github.com/sirupsen/logrus"
)

// GraphWriter - контракт записи графа, который нужен импортеру
type GraphWriter interface {
	GetOrCreateAgency(ctx context.Context, name string) (*models.Agency, error)
	GetOrCreateRoute(ctx context.Context, name, shortName string, agencyID int64) (*models.Route, error)
	GetOrCreateStation(ctx context.Context, name string, lat, lon float64, routeID int64) (*models.Station, error)
	CreateJourney(ctx context.Context, journey *models.Journey) error
}

// Importer загружает таблицы графа из CSV-расписания перед стартом движка.
// Ожидаемые колонки:
// agency_name,route_long_name,route_short_name,origin_stop,origin_lat,origin_lon,destiny_stop,destiny_lat,destiny_lon,time_of_journey
type Importer struct {
	writer GraphWriter
	logger *logrus.Logger
}

func New(writer GraphWriter, logger *logrus.Logger) *Importer {
	return &Importer{
		writer: writer,
		logger: logger,
	}
}

// ImportFile импортирует CSV-файл с расписанием по пути path
func (i *Importer) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer f.Close()

	return i.Import(ctx, f)
}

// Import читает CSV из r и наполняет граф: агентства, маршруты и станции
// создаются по принципу get-or-create, журней — на каждую строку
func (i *Importer) Import(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.TrimSpace(name)] = idx
	}
	for _, required := range []string{
		"agency_name", "route_long_name", "route_short_name",
		"origin_stop", "origin_lat", "origin_lon",
		"destiny_stop", "destiny_lat", "destiny_lon",
		"time_of_journey",
	} {
		if _, ok := columns[required]; !ok {
			return 0, fmt.Errorf("csv is missing required column %q", required)
		}
	}

	imported := 0
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		if err := i.importRow(ctx, columns, record); err != nil {
			// Битая строка не останавливает весь импорт
			i.logger.WithError(err).WithField("line", line).Warn("Skipping csv row")
			continue
		}
		imported++
	}

	i.logger.WithField("journeys", imported).Info("CSV import completed")
	return imported, nil
}

func (i *Importer) importRow(ctx context.Context, columns map[string]int, record []string) error {
	field := func(name string) string {
		return strings.TrimSpace(record[columns[name]])
	}

	agency, err := i.writer.GetOrCreateAgency(ctx, field("agency_name"))
	if err != nil {
		return err
	}

	route, err := i.writer.GetOrCreateRoute(ctx, field("route_long_name"), field("route_short_name"), agency.ID)
	if err != nil {
		return err
	}

	originLat, err := strconv.ParseFloat(field("origin_lat"), 64)
	if err != nil {
		return fmt.Errorf("invalid origin_lat: %w", err)
	}
	originLon, err := strconv.ParseFloat(field("origin_lon"), 64)
	if err != nil {
		return fmt.Errorf("invalid origin_lon: %w", err)
	}
	destinyLat, err := strconv.ParseFloat(field("destiny_lat"), 64)
	if err != nil {
		return fmt.Errorf("invalid destiny_lat: %w", err)
	}
	destinyLon, err := strconv.ParseFloat(field("destiny_lon"), 64)
	if err != nil {
		return fmt.Errorf("invalid destiny_lon: %w", err)
	}

	origin, err := i.writer.GetOrCreateStation(ctx, field("origin_stop"), originLat, originLon, route.ID)
	if err != nil {
		return err
	}
	destiny, err := i.writer.GetOrCreateStation(ctx, field("destiny_stop"), destinyLat, destinyLon, route.ID)
	if err != nil {
		return err
	}

	travelSeconds, err := parseJourneyTime(field("time_of_journey"))
	if err != nil {
		return err
	}

	return i.writer.CreateJourney(ctx, &models.Journey{
		OriginStationID:      origin.ID,
		DestinationStationID: destiny.ID,
		TravelSeconds:        travelSeconds,
		RouteID:              route.ID,
	})
}

// parseJourneyTime разбирает время журнея формата HH:MM:SS в секунды
func parseJourneyTime(value string) (int64, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid time_of_journey %q, want HH:MM:SS", value)
	}
	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hours in time_of_journey %q: %w", value, err)
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in time_of_journey %q: %w", value, err)
	}
	seconds, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds in time_of_journey %q: %w", value, err)
	}
	if hours < 0 || minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("time_of_journey %q out of range", value)
	}
	return hours*3600 + minutes*60 + seconds, nil
}
