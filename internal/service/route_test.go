package service

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shenikar/transit_routing_system/internal/config"
	"github.com/shenikar/transit_routing_system/internal/models"
	"github.com/shenikar/transit_routing_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testEdge - ненаправленное ребро тестового графа
type testEdge struct {
	journeyID int64
	from, to  int64
	seconds   int64
	delay     int64
	routeID   int64
	agencyID  int64
}

// newTestRouteService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestRouteService(t *testing.T, cfg *config.Config) (*routeService, *mocks.MockGraphRepository, *mocks.MockIncidentAnnotator) {
	ctrl := gomock.NewController(t)
	graphMock := mocks.NewMockGraphRepository(ctrl)
	annotatorMock := mocks.NewMockIncidentAnnotator(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	if cfg == nil {
		cfg = &config.Config{
			AgencyChangePenaltySec: 480,
			RouteChangePenaltySec:  480,
			SearchMaxSettled:       100000,
			SearchTimeout:          time.Second,
		}
	}

	service := NewRouteService(graphMock, annotatorMock, logger, cfg, nil)
	return service.(*routeService), graphMock, annotatorMock
}

// stubGraph настраивает моки графа на фиксированный набор станций и ребер
func stubGraph(graphMock *mocks.MockGraphRepository, stations map[int64]models.Station, edges []testEdge) {
	graphMock.EXPECT().
		StationByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64) (*models.Station, error) {
			station, ok := stations[id]
			if !ok {
				return nil, fmt.Errorf("station %d not found", id)
			}
			return &station, nil
		}).AnyTimes()

	graphMock.EXPECT().
		JourneysAdjacent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64) ([]models.AdjacentJourney, error) {
			adjacent := make([]models.AdjacentJourney, 0)
			for _, edge := range edges {
				var neighborID int64
				switch id {
				case edge.from:
					neighborID = edge.to
				case edge.to:
					neighborID = edge.from
				default:
					continue
				}
				adjacent = append(adjacent, models.AdjacentJourney{
					JourneyID:     edge.journeyID,
					Neighbor:      stations[neighborID],
					TravelSeconds: edge.seconds,
					DelayMinutes:  edge.delay,
					RouteID:       edge.routeID,
					AgencyID:      edge.agencyID,
				})
			}
			return adjacent, nil
		}).AnyTimes()
}

// exhaustiveBest - независимый эталон: полный перебор простых путей в
// пространстве состояний (станция, агентство, маршрут) с той же моделью
// стоимости. Возвращает минимальную стоимость и признак достижимости.
func exhaustiveBest(edges []testEdge, agencyPenalty, routePenalty, from, to int64) (int64, bool) {
	type pathState struct {
		station, agency, route int64
		start                  bool
	}

	best := int64(-1)
	var walk func(state pathState, cost int64, visited map[pathState]bool)
	walk = func(state pathState, cost int64, visited map[pathState]bool) {
		if state.station == to {
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		for _, edge := range edges {
			var neighbor int64
			switch state.station {
			case edge.from:
				neighbor = edge.to
			case edge.to:
				neighbor = edge.from
			default:
				continue
			}
			next := pathState{station: neighbor, agency: edge.agencyID, route: edge.routeID}
			if visited[next] {
				continue
			}

			var penalty int64
			switch {
			case state.start:
				penalty = 0
			case edge.agencyID != state.agency:
				penalty = agencyPenalty
			case edge.routeID != state.route:
				penalty = routePenalty
			}

			visited[next] = true
			walk(next, cost+edge.seconds+edge.delay*60+penalty, visited)
			delete(visited, next)
		}
	}

	startState := pathState{station: from, start: true}
	walk(startState, 0, map[pathState]bool{startState: true})
	return best, best >= 0
}

func TestFindRouteByNames_MatchesExhaustiveSearch(t *testing.T) {
	// Подготовка: серия маленьких псевдослучайных графов с фиксированными
	// сидами; результат поиска сверяется с полным перебором путей
	for _, seed := range []int64{1, 2, 3, 5, 8, 13, 21} {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))

			n := 5 + rng.Intn(4)
			stations := make(map[int64]models.Station, n)
			for i := 1; i <= n; i++ {
				stations[int64(i)] = models.Station{ID: int64(i), Name: fmt.Sprintf("S%d", i)}
			}

			edgeCount := n + rng.Intn(2*n)
			edges := make([]testEdge, 0, edgeCount)
			for j := 0; j < edgeCount; j++ {
				from := int64(1 + rng.Intn(n))
				to := int64(1 + rng.Intn(n))
				if from == to {
					continue
				}
				edges = append(edges, testEdge{
					journeyID: int64(100 + j),
					from:      from,
					to:        to,
					seconds:   int64(60 + rng.Intn(900)),
					delay:     int64(rng.Intn(4)),
					routeID:   int64(10 + rng.Intn(3)),
					agencyID:  int64(1 + rng.Intn(2)),
				})
			}

			service, graphMock, annotatorMock := newTestRouteService(t, nil)
			stubGraph(graphMock, stations, edges)

			destName := fmt.Sprintf("S%d", n)
			graphMock.EXPECT().StationsByName(gomock.Any(), "S1", "").Return([]models.Station{stations[1]}, nil).Times(1)
			graphMock.EXPECT().StationsByName(gomock.Any(), destName, "").Return([]models.Station{stations[int64(n)]}, nil).Times(1)
			annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

			want, reachable := exhaustiveBest(edges, 480, 480, 1, int64(n))

			// Действие
			plan, err := service.FindRouteByNames(context.Background(), "S1", destName, "", "")

			// Проверки
			if !reachable {
				assert.ErrorIs(t, err, ErrNoRoute)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, plan.TotalSeconds)
		})
	}
}

func TestFindRouteByNames_DelayIncreaseMonotonic(t *testing.T) {
	// Подготовка: прямой путь 600с против обхода через Mid за 400с; рост
	// задержки на журнее Alpha-Mid не может уменьшить итоговое время и не
	// может сделать задержанный журней привлекательнее
	service, graphMock, annotatorMock := newTestRouteService(t, nil)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Alpha", RouteID: 20},
		2: {ID: 2, Name: "Mid", RouteID: 20},
		3: {ID: 3, Name: "Gamma", RouteID: 10},
	}
	edges := []testEdge{
		{journeyID: 100, from: 1, to: 3, seconds: 600, routeID: 10, agencyID: 1},
		{journeyID: 101, from: 1, to: 2, seconds: 200, routeID: 20, agencyID: 1},
		{journeyID: 102, from: 2, to: 3, seconds: 200, routeID: 20, agencyID: 1},
	}
	stubGraph(graphMock, stations, edges)

	graphMock.EXPECT().StationsByName(ctx, "Alpha", "").Return([]models.Station{stations[1]}, nil).AnyTimes()
	graphMock.EXPECT().StationsByName(ctx, "Gamma", "").Return([]models.Station{stations[3]}, nil).AnyTimes()
	annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	prevTotal := int64(0)
	for delay := int64(0); delay <= 8; delay++ {
		// stubGraph читает слайс ребер по ссылке
		edges[1].delay = delay

		// Действие
		plan, err := service.FindRouteByNames(ctx, "Alpha", "Gamma", "", "")

		// Проверки
		require.NoError(t, err)
		assert.GreaterOrEqual(t, plan.TotalSeconds, prevTotal)
		prevTotal = plan.TotalSeconds

		if 400+delay*60 > 600 {
			// Обход дороже прямого пути: оптимум не идет через Mid
			require.Len(t, plan.Steps, 1)
			assert.Equal(t, int64(600), plan.TotalSeconds)
			assert.Equal(t, "Gamma", plan.Steps[0].To.Name)
		}
	}
}

func TestFindRouteByNames_ZeroAgencyIdentifier(t *testing.T) {
	// Подготовка: у первого ребра нулевые идентификаторы агентства и
	// маршрута; пересадка с него на другое агентство все равно штрафуется
	service, graphMock, annotatorMock := newTestRouteService(t, nil)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Alpha"},
		2: {ID: 2, Name: "Beta"},
		3: {ID: 3, Name: "Gamma", RouteID: 20},
	}
	edges := []testEdge{
		{journeyID: 100, from: 1, to: 2, seconds: 300, routeID: 0, agencyID: 0},
		{journeyID: 101, from: 2, to: 3, seconds: 300, routeID: 20, agencyID: 1},
	}
	stubGraph(graphMock, stations, edges)

	graphMock.EXPECT().StationsByName(ctx, "Alpha", "").Return([]models.Station{stations[1]}, nil).Times(1)
	graphMock.EXPECT().StationsByName(ctx, "Gamma", "").Return([]models.Station{stations[3]}, nil).Times(1)
	annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	// Действие
	plan, err := service.FindRouteByNames(ctx, "Alpha", "Gamma", "", "")

	// Проверки: 300 + 480 + 300, состояние после первого ребра не стартовое
	require.NoError(t, err)
	assert.Equal(t, int64(1080), plan.TotalSeconds)
	require.Len(t, plan.Steps, 2)
	assert.True(t, plan.Steps[1].IsTransfer)
	assert.Equal(t, int64(480), plan.Steps[1].TransferPenalty)
}

func TestFindRouteByCoordinates_SameRouteLine(t *testing.T) {
	// Подготовка: линия A-B-C на одном маршруте одного агентства
	service, graphMock, annotatorMock := newTestRouteService(t, nil)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Alpha", Latitude: 40.0, Longitude: -3.0, RouteID: 10},
		2: {ID: 2, Name: "Beta", Latitude: 40.1, Longitude: -3.1, RouteID: 10},
		3: {ID: 3, Name: "Gamma", Latitude: 40.2, Longitude: -3.2, RouteID: 10},
	}
	edges := []testEdge{
		{journeyID: 100, from: 1, to: 2, seconds: 300, routeID: 10, agencyID: 1},
		{journeyID: 101, from: 2, to: 3, seconds: 300, routeID: 10, agencyID: 1},
	}
	stubGraph(graphMock, stations, edges)

	// Ожидания
	origin := stations[1]
	dest := stations[3]
	graphMock.EXPECT().NearestStation(ctx, 40.0, -3.0).Return(&origin, nil).Times(1)
	graphMock.EXPECT().NearestStation(ctx, 40.2, -3.2).Return(&dest, nil).Times(1)
	annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Return([]models.IncidentAlert{}, nil).Times(1)

	// Действие
	plan, err := service.FindRouteByCoordinates(ctx, 40.0, -3.0, 40.2, -3.2)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(600), plan.TotalSeconds)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, "Alpha", plan.Steps[0].From.Name)
	assert.Equal(t, "Beta", plan.Steps[0].To.Name)
	assert.Equal(t, "Gamma", plan.Steps[1].To.Name)
	assert.False(t, plan.Steps[0].IsTransfer)
	assert.False(t, plan.Steps[1].IsTransfer)
	assert.Zero(t, plan.Steps[1].TransferPenalty)
}

func TestFindRouteByCoordinates_SameStation(t *testing.T) {
	// Подготовка: обе координаты резолвятся в одну станцию
	service, graphMock, annotatorMock := newTestRouteService(t, nil)
	ctx := context.Background()

	station := models.Station{ID: 7, Name: "Solo", Latitude: 40.0, Longitude: -3.0}
	graphMock.EXPECT().NearestStation(ctx, gomock.Any(), gomock.Any()).Return(&station, nil).Times(2)
	annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	plan, err := service.FindRouteByCoordinates(ctx, 40.0, -3.0, 40.0001, -3.0001)

	// Проверки: пустой маршрут без обращения к графу
	require.NoError(t, err)
	assert.Zero(t, plan.TotalSeconds)
	assert.Empty(t, plan.Steps)
}

func TestFindRouteByNames_RouteChangeAddsPenalty(t *testing.T) {
	// Подготовка: смена маршрута внутри одного агентства на станции Beta
	service, graphMock, annotatorMock := newTestRouteService(t, nil)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Alpha", RouteID: 10},
		2: {ID: 2, Name: "Beta", RouteID: 10},
		3: {ID: 3, Name: "Gamma", RouteID: 20},
	}
	edges := []testEdge{
		{journeyID: 100, from: 1, to: 2, seconds: 300, routeID: 10, agencyID: 1},
		{journeyID: 101, from: 2, to: 3, seconds: 300, routeID: 20, agencyID: 1},
	}
	stubGraph(graphMock, stations, edges)

	graphMock.EXPECT().StationsByName(ctx, "Alpha", "").Return([]models.Station{stations[1]}, nil).Times(1)
	graphMock.EXPECT().StationsByName(ctx, "Gamma", "").Return([]models.Station{stations[3]}, nil).Times(1)
	annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	// Действие
	plan, err := service.FindRouteByNames(ctx, "Alpha", "Gamma", "", "")

	// Проверки: 300 + 480 + 300
	require.NoError(t, err)
	assert.Equal(t, int64(1080), plan.TotalSeconds)
	require.Len(t, plan.Steps, 2)
	assert.False(t, plan.Steps[0].IsTransfer)
	assert.True(t, plan.Steps[1].IsTransfer)
	assert.Equal(t, int64(480), plan.Steps[1].TransferPenalty)
}

func TestFindRouteByNames_AgencyChangeTakesPrecedence(t *testing.T) {
	// Подготовка: второе ребро меняет и агентство, и маршрут; штрафы различены,
	// чтобы проверить, что берется штраф агентства и ровно один раз
	cfg := &config.Config{
		AgencyChangePenaltySec: 480,
		RouteChangePenaltySec:  200,
		SearchMaxSettled:       100000,
		SearchTimeout:          time.Second,
	}
	service, graphMock, annotatorMock := newTestRouteService(t, cfg)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Alpha", RouteID: 10},
		2: {ID: 2, Name: "Beta", RouteID: 10},
		3: {ID: 3, Name: "Gamma", RouteID: 20},
	}
	edges := []testEdge{
		{journeyID: 100, from: 1, to: 2, seconds: 300, routeID: 10, agencyID: 1},
		{journeyID: 101, from: 2, to: 3, seconds: 300, routeID: 20, agencyID: 2},
	}
	stubGraph(graphMock, stations, edges)

	graphMock.EXPECT().StationsByName(ctx, "Alpha", "").Return([]models.Station{stations[1]}, nil).Times(1)
	graphMock.EXPECT().StationsByName(ctx, "Gamma", "").Return([]models.Station{stations[3]}, nil).Times(1)
	annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	// Действие
	plan, err := service.FindRouteByNames(ctx, "Alpha", "Gamma", "", "")

	// Проверки: 300 + 480 + 300, штраф маршрута не прибавляется сверху
	require.NoError(t, err)
	assert.Equal(t, int64(1080), plan.TotalSeconds)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, int64(480), plan.Steps[1].TransferPenalty)
}

func TestFindRouteByNames_NoPenaltyOnFirstEdge(t *testing.T) {
	// Подготовка: единственное ребро; у стартового состояния нет агентства,
	// поэтому первый шаг никогда не штрафуется
	service, graphMock, annotatorMock := newTestRouteService(t, nil)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Alpha", RouteID: 10},
		2: {ID: 2, Name: "Beta", RouteID: 10},
	}
	edges := []testEdge{
		{journeyID: 100, from: 1, to: 2, seconds: 420, routeID: 10, agencyID: 5},
	}
	stubGraph(graphMock, stations, edges)

	graphMock.EXPECT().StationsByName(ctx, "Alpha", "").Return([]models.Station{stations[1]}, nil).Times(1)
	graphMock.EXPECT().StationsByName(ctx, "Beta", "").Return([]models.Station{stations[2]}, nil).Times(1)
	annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	// Действие
	plan, err := service.FindRouteByNames(ctx, "Alpha", "Beta", "", "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(420), plan.TotalSeconds)
	require.Len(t, plan.Steps, 1)
	assert.False(t, plan.Steps[0].IsTransfer)
}

func TestFindRouteByNames_DelayIncludedInEdgeWeight(t *testing.T) {
	// Подготовка: задержка 2 минуты на единственном ребре
	service, graphMock, annotatorMock := newTestRouteService(t, nil)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Alpha", RouteID: 10},
		2: {ID: 2, Name: "Beta", RouteID: 10},
	}
	edges := []testEdge{
		{journeyID: 100, from: 1, to: 2, seconds: 300, delay: 2, routeID: 10, agencyID: 1},
	}
	stubGraph(graphMock, stations, edges)

	graphMock.EXPECT().StationsByName(ctx, "Alpha", "").Return([]models.Station{stations[1]}, nil).Times(1)
	graphMock.EXPECT().StationsByName(ctx, "Beta", "").Return([]models.Station{stations[2]}, nil).Times(1)
	annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	// Действие
	plan, err := service.FindRouteByNames(ctx, "Alpha", "Beta", "", "")

	// Проверки: 300 + 2*60
	require.NoError(t, err)
	assert.Equal(t, int64(420), plan.TotalSeconds)
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, int64(420), plan.Steps[0].Time)
}

func TestFindRouteByNames_DirectBeatsExpensiveTransfer(t *testing.T) {
	// Подготовка: прямой путь 600с против пересадочного 100+100+480=680с
	service, graphMock, annotatorMock := newTestRouteService(t, nil)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Alpha", RouteID: 10},
		2: {ID: 2, Name: "Mid", RouteID: 20},
		3: {ID: 3, Name: "Gamma", RouteID: 10},
	}
	edges := []testEdge{
		{journeyID: 100, from: 1, to: 3, seconds: 600, routeID: 10, agencyID: 1},
		{journeyID: 101, from: 1, to: 2, seconds: 100, routeID: 20, agencyID: 1},
		{journeyID: 102, from: 2, to: 3, seconds: 100, routeID: 30, agencyID: 1},
	}
	stubGraph(graphMock, stations, edges)

	graphMock.EXPECT().StationsByName(ctx, "Alpha", "").Return([]models.Station{stations[1]}, nil).Times(1)
	graphMock.EXPECT().StationsByName(ctx, "Gamma", "").Return([]models.Station{stations[3]}, nil).Times(1)
	annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	// Действие
	plan, err := service.FindRouteByNames(ctx, "Alpha", "Gamma", "", "")

	// Проверки: выбран прямой путь
	require.NoError(t, err)
	assert.Equal(t, int64(600), plan.TotalSeconds)
	require.Len(t, plan.Steps, 1)
}

func TestFindRouteByNames_TransferPickedWhenCheaper(t *testing.T) {
	// Подготовка: прямой путь 2000с против пересадочного 100+100+480=680с
	service, graphMock, annotatorMock := newTestRouteService(t, nil)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Alpha", RouteID: 10},
		2: {ID: 2, Name: "Mid", RouteID: 20},
		3: {ID: 3, Name: "Gamma", RouteID: 10},
	}
	edges := []testEdge{
		{journeyID: 100, from: 1, to: 3, seconds: 2000, routeID: 10, agencyID: 1},
		{journeyID: 101, from: 1, to: 2, seconds: 100, routeID: 20, agencyID: 1},
		{journeyID: 102, from: 2, to: 3, seconds: 100, routeID: 30, agencyID: 1},
	}
	stubGraph(graphMock, stations, edges)

	graphMock.EXPECT().StationsByName(ctx, "Alpha", "").Return([]models.Station{stations[1]}, nil).Times(1)
	graphMock.EXPECT().StationsByName(ctx, "Gamma", "").Return([]models.Station{stations[3]}, nil).Times(1)
	annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	// Действие
	plan, err := service.FindRouteByNames(ctx, "Alpha", "Gamma", "", "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(680), plan.TotalSeconds)
	require.Len(t, plan.Steps, 2)
	assert.True(t, plan.Steps[1].IsTransfer)
}

func TestFindRouteByNames_Disconnected(t *testing.T) {
	// Подготовка: станции без единого ребра
	service, graphMock, annotatorMock := newTestRouteService(t, nil)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Alpha", RouteID: 10},
		2: {ID: 2, Name: "Beta", RouteID: 20},
	}
	stubGraph(graphMock, stations, nil)

	graphMock.EXPECT().StationsByName(ctx, "Alpha", "").Return([]models.Station{stations[1]}, nil).Times(1)
	graphMock.EXPECT().StationsByName(ctx, "Beta", "").Return([]models.Station{stations[2]}, nil).Times(1)
	annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	plan, err := service.FindRouteByNames(ctx, "Alpha", "Beta", "", "")

	// Проверки
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestFindRouteByNames_UnknownName(t *testing.T) {
	// Подготовка
	service, graphMock, _ := newTestRouteService(t, nil)
	ctx := context.Background()

	graphMock.EXPECT().StationsByName(ctx, "Nowhere", "").Return([]models.Station{}, nil).Times(1)
	graphMock.EXPECT().StationsByName(ctx, "Beta", "").Return([]models.Station{{ID: 2, Name: "Beta"}}, nil).Times(1)

	// Действие
	plan, err := service.FindRouteByNames(ctx, "Nowhere", "Beta", "", "")

	// Проверки
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrStationNotFound)
}

func TestFindRouteByNames_FanOutPicksGlobalMinimum(t *testing.T) {
	// Подготовка: имя старта резолвится в две станции, побеждает более
	// дешевая пара независимо от порядка перебора
	service, graphMock, annotatorMock := newTestRouteService(t, nil)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Central", RouteID: 10},
		2: {ID: 2, Name: "Central", RouteID: 20},
		3: {ID: 3, Name: "Gamma", RouteID: 10},
	}
	edges := []testEdge{
		{journeyID: 100, from: 1, to: 3, seconds: 500, routeID: 10, agencyID: 1},
		{journeyID: 101, from: 2, to: 3, seconds: 300, routeID: 20, agencyID: 2},
	}
	stubGraph(graphMock, stations, edges)

	graphMock.EXPECT().StationsByName(ctx, "Central", "").Return([]models.Station{stations[1], stations[2]}, nil).Times(1)
	graphMock.EXPECT().StationsByName(ctx, "Gamma", "").Return([]models.Station{stations[3]}, nil).Times(1)
	annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	// Действие
	plan, err := service.FindRouteByNames(ctx, "Central", "Gamma", "", "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(300), plan.TotalSeconds)
}

func TestFindRouteByNames_SkipsIdenticalPair(t *testing.T) {
	// Подготовка: пара (S1, S1) пропускается, остается пара (S1, C)
	service, graphMock, annotatorMock := newTestRouteService(t, nil)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Shared", RouteID: 10},
		3: {ID: 3, Name: "Shared", RouteID: 10},
	}
	edges := []testEdge{
		{journeyID: 100, from: 1, to: 3, seconds: 250, routeID: 10, agencyID: 1},
	}
	stubGraph(graphMock, stations, edges)

	graphMock.EXPECT().StationsByName(ctx, "Shared", "").Return([]models.Station{stations[1]}, nil).Times(1)
	graphMock.EXPECT().StationsByName(ctx, "Shared", "X").Return([]models.Station{stations[1], stations[3]}, nil).Times(1)
	annotatorMock.EXPECT().ActiveIncidentsNear(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	// Действие
	plan, err := service.FindRouteByNames(ctx, "Shared", "Shared", "", "X")

	// Проверки: найден путь S1 -> S3, нулевая пара не участвует
	require.NoError(t, err)
	assert.Equal(t, int64(250), plan.TotalSeconds)
	require.Len(t, plan.Steps, 1)
}

func TestFindRouteByNames_SearchBudgetExceeded(t *testing.T) {
	// Подготовка: бюджет в одно состояние исчерпывается сразу после старта
	cfg := &config.Config{
		AgencyChangePenaltySec: 480,
		RouteChangePenaltySec:  480,
		SearchMaxSettled:       1,
		SearchTimeout:          time.Second,
	}
	service, graphMock, _ := newTestRouteService(t, cfg)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Alpha", RouteID: 10},
		2: {ID: 2, Name: "Beta", RouteID: 10},
		3: {ID: 3, Name: "Gamma", RouteID: 10},
	}
	edges := []testEdge{
		{journeyID: 100, from: 1, to: 2, seconds: 300, routeID: 10, agencyID: 1},
		{journeyID: 101, from: 2, to: 3, seconds: 300, routeID: 10, agencyID: 1},
	}
	stubGraph(graphMock, stations, edges)

	graphMock.EXPECT().StationsByName(ctx, "Alpha", "").Return([]models.Station{stations[1]}, nil).Times(1)
	graphMock.EXPECT().StationsByName(ctx, "Gamma", "").Return([]models.Station{stations[3]}, nil).Times(1)

	// Действие
	plan, err := service.FindRouteByNames(ctx, "Alpha", "Gamma", "", "")

	// Проверки
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrSearchBudgetExceeded)
}

func TestFindRouteByCoordinates_AnnotatorFailureTolerated(t *testing.T) {
	// Подготовка: отказ аннотатора не должен ломать найденный маршрут
	service, graphMock, annotatorMock := newTestRouteService(t, nil)
	ctx := context.Background()

	stations := map[int64]models.Station{
		1: {ID: 1, Name: "Alpha", RouteID: 10},
		2: {ID: 2, Name: "Beta", RouteID: 10},
	}
	edges := []testEdge{
		{journeyID: 100, from: 1, to: 2, seconds: 300, routeID: 10, agencyID: 1},
	}
	stubGraph(graphMock, stations, edges)

	origin := stations[1]
	dest := stations[2]
	graphMock.EXPECT().NearestStation(ctx, gomock.Any(), gomock.Any()).Return(&origin, nil).Times(1)
	graphMock.EXPECT().NearestStation(ctx, gomock.Any(), gomock.Any()).Return(&dest, nil).Times(1)
	annotatorMock.EXPECT().
		ActiveIncidentsNear(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("postgis unavailable")).
		Times(1)

	// Действие
	plan, err := service.FindRouteByCoordinates(ctx, 40.0, -3.0, 40.1, -3.1)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(300), plan.TotalSeconds)
	assert.Empty(t, plan.Incidents)
}
