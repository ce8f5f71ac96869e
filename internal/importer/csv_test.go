package importer

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shenikar/transit_routing_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGraphWriter накапливает созданные сущности в памяти, присваивая
// последовательные ID, как это делал бы настоящий репозиторий
type fakeGraphWriter struct {
	agencies map[string]int64
	routes   map[string]int64
	stations map[string]int64
	journeys []*models.Journey
	nextID   int64

	failStation string
}

func newFakeGraphWriter() *fakeGraphWriter {
	return &fakeGraphWriter{
		agencies: make(map[string]int64),
		routes:   make(map[string]int64),
		stations: make(map[string]int64),
	}
}

func (w *fakeGraphWriter) id(table map[string]int64, key string) int64 {
	if existing, ok := table[key]; ok {
		return existing
	}
	w.nextID++
	table[key] = w.nextID
	return w.nextID
}

func (w *fakeGraphWriter) GetOrCreateAgency(_ context.Context, name string) (*models.Agency, error) {
	return &models.Agency{ID: w.id(w.agencies, name), Name: name}, nil
}

func (w *fakeGraphWriter) GetOrCreateRoute(_ context.Context, name, shortName string, agencyID int64) (*models.Route, error) {
	return &models.Route{ID: w.id(w.routes, name), Name: name, ShortName: shortName, AgencyID: agencyID}, nil
}

func (w *fakeGraphWriter) GetOrCreateStation(_ context.Context, name string, lat, lon float64, routeID int64) (*models.Station, error) {
	if name == w.failStation {
		return nil, fmt.Errorf("station %q rejected", name)
	}
	key := fmt.Sprintf("%s/%d", name, routeID)
	return &models.Station{ID: w.id(w.stations, key), Name: name, Latitude: lat, Longitude: lon, RouteID: routeID}, nil
}

func (w *fakeGraphWriter) CreateJourney(_ context.Context, journey *models.Journey) error {
	w.journeys = append(w.journeys, journey)
	return nil
}

func newTestImporter() (*Importer, *fakeGraphWriter) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	writer := newFakeGraphWriter()
	return New(writer, logger), writer
}

const csvHeader = "agency_name,route_long_name,route_short_name,origin_stop,origin_lat,origin_lon,destiny_stop,destiny_lat,destiny_lon,time_of_journey\n"

func TestImport_CreatesGraphEntities(t *testing.T) {
	// Подготовка: две строки одного маршрута делят станцию Beta
	importer, writer := newTestImporter()
	data := csvHeader +
		"CRTM,Linea 1,L1,Alpha,40.0,-3.0,Beta,40.1,-3.1,00:05:00\n" +
		"CRTM,Linea 1,L1,Beta,40.1,-3.1,Gamma,40.2,-3.2,00:03:30\n"

	// Действие
	imported, err := importer.Import(context.Background(), strings.NewReader(data))

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	assert.Len(t, writer.agencies, 1)
	assert.Len(t, writer.routes, 1)
	assert.Len(t, writer.stations, 3)
	require.Len(t, writer.journeys, 2)
	assert.Equal(t, int64(300), writer.journeys[0].TravelSeconds)
	assert.Equal(t, int64(210), writer.journeys[1].TravelSeconds)
}

func TestImport_MissingColumnFails(t *testing.T) {
	// Подготовка: нет колонки time_of_journey
	importer, _ := newTestImporter()
	data := "agency_name,route_long_name,route_short_name,origin_stop,origin_lat,origin_lon,destiny_stop,destiny_lat,destiny_lon\n"

	// Действие
	_, err := importer.Import(context.Background(), strings.NewReader(data))

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time_of_journey")
}

func TestImport_BrokenRowSkipped(t *testing.T) {
	// Подготовка: строка с нечисловой широтой пропускается, остальные загружаются
	importer, writer := newTestImporter()
	data := csvHeader +
		"CRTM,Linea 1,L1,Alpha,not-a-number,-3.0,Beta,40.1,-3.1,00:05:00\n" +
		"CRTM,Linea 1,L1,Beta,40.1,-3.1,Gamma,40.2,-3.2,00:03:00\n"

	// Действие
	imported, err := importer.Import(context.Background(), strings.NewReader(data))

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Len(t, writer.journeys, 1)
}

func TestImport_WriterFailureSkipsRow(t *testing.T) {
	// Подготовка: репозиторий отклоняет одну станцию
	importer, writer := newTestImporter()
	writer.failStation = "Beta"
	data := csvHeader +
		"CRTM,Linea 1,L1,Alpha,40.0,-3.0,Beta,40.1,-3.1,00:05:00\n" +
		"CRTM,Linea 1,L1,Alpha,40.0,-3.0,Gamma,40.2,-3.2,00:02:00\n"

	// Действие
	imported, err := importer.Import(context.Background(), strings.NewReader(data))

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
}

func TestParseJourneyTime(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "00:05:00", want: 300},
		{in: "01:00:30", want: 3630},
		{in: "00:00:00", want: 0},
		{in: "00:61:00", wantErr: true},
		{in: "00:05", wantErr: true},
		{in: "aa:bb:cc", wantErr: true},
	}

	for _, tc := range cases {
		got, err := parseJourneyTime(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
