package service

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/shenikar/transit_routing_system/internal/models"
)

// searchState - состояние поиска: станция плюс агентство и маршрут ребра,
// по которому в нее приехали. Штраф за пересадку зависит от последнего
// пройденного ребра, а не только от станции, поэтому состояний больше,
// чем физических станций.
type searchState struct {
	StationID int64
	AgencyID  int64
	RouteID   int64
	// Start отличает стартовое состояние от состояний, достигнутых по ребру;
	// идентификаторы агентства и маршрута здесь не годятся как признак
	Start bool
}

// searchItem - элемент очереди с приоритетом; dist в секундах
type searchItem struct {
	state searchState
	dist  int64
}

type searchQueue []*searchItem

func (q searchQueue) Len() int            { return len(q) }
func (q searchQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q searchQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *searchQueue) Push(x interface{}) { *q = append(*q, x.(*searchItem)) }
func (q *searchQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[0 : n-1]
	return item
}

// predecessor хранит обратную ссылку для восстановления пути. Записывается
// в момент улучшения дистанции до состояния, а не в момент извлечения из кучи.
type predecessor struct {
	prev searchState
	step models.RouteStep
}

// shortestPath выполняет Dijkstra по расширенному пространству состояний
// (станция, агентство, маршрут) от startID до destID.
//
// Вес ребра = время журнея + накопленная задержка + штраф за пересадку.
// Штраф не начисляется из стартового состояния (агентства еще нет); иначе
// смена агентства и смена маршрута стоят фиксированные секунды, причем
// смена агентства имеет приоритет — штрафы никогда не суммируются.
//
// Каждое состояние финализируется не более одного раза (lazy decrease-key:
// устаревшие записи кучи отбрасываются при извлечении). Поиск завершается,
// как только финализированное состояние оказывается на станции назначения,
// независимо от агентства/маршрута этого состояния.
func (s *routeService) shortestPath(ctx context.Context, startID, destID int64) (*models.RoutePlan, error) {
	start, err := s.graphRepo.StationByID(ctx, startID)
	if err != nil {
		return nil, fmt.Errorf("failed to load start station: %w", err)
	}

	startState := searchState{StationID: start.ID, Start: true}

	dist := map[searchState]int64{startState: 0}
	prev := make(map[searchState]predecessor)
	settled := make(map[searchState]bool)
	// Станции, уже увиденные поиском; нужны для конечных точек шагов
	stations := map[int64]models.Station{start.ID: *start}

	pq := make(searchQueue, 0)
	heap.Init(&pq)
	heap.Push(&pq, &searchItem{state: startState, dist: 0})

	settledCount := 0

	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSearchBudgetExceeded, err)
		}

		item := heap.Pop(&pq).(*searchItem)
		current := item.state

		// Устаревшая запись кучи для уже финализированного состояния
		if settled[current] {
			continue
		}
		settled[current] = true
		settledCount++
		if settledCount > s.maxSettled {
			return nil, fmt.Errorf("%w: settled %d states", ErrSearchBudgetExceeded, settledCount)
		}

		if current.StationID == destID {
			return s.reconstructPath(prev, startState, current, item.dist, settledCount), nil
		}

		edges, err := s.graphRepo.JourneysAdjacent(ctx, current.StationID)
		if err != nil {
			return nil, fmt.Errorf("failed to expand station %d: %w", current.StationID, err)
		}

		from := stations[current.StationID]
		for _, edge := range edges {
			stations[edge.Neighbor.ID] = edge.Neighbor

			var penalty int64
			switch {
			case current.Start:
				// Стартовое состояние: пересадки еще не было
				penalty = 0
			case edge.AgencyID != current.AgencyID:
				penalty = s.agencyChangePenalty
			case edge.RouteID != current.RouteID:
				penalty = s.routeChangePenalty
			}

			travel := edge.TravelSeconds + edge.DelayMinutes*60
			next := searchState{
				StationID: edge.Neighbor.ID,
				AgencyID:  edge.AgencyID,
				RouteID:   edge.RouteID,
			}
			if settled[next] {
				continue
			}

			newDist := item.dist + travel + penalty
			if old, ok := dist[next]; ok && newDist >= old {
				continue
			}
			dist[next] = newDist
			prev[next] = predecessor{
				prev: current,
				step: models.RouteStep{
					From: models.StepEndpoint{
						Name:      from.Name,
						Latitude:  from.Latitude,
						Longitude: from.Longitude,
					},
					To: models.StepEndpoint{
						Name:      edge.Neighbor.Name,
						Latitude:  edge.Neighbor.Latitude,
						Longitude: edge.Neighbor.Longitude,
					},
					Time:            travel,
					TransferPenalty: penalty,
					IsTransfer:      penalty > 0,
					RouteInfo: models.RouteInfo{
						Agency:     edge.AgencyName,
						RouteLong:  edge.RouteName,
						RouteShort: edge.RouteShort,
					},
				},
			}
			heap.Push(&pq, &searchItem{state: next, dist: newDist})
		}
	}

	return nil, ErrNoRoute
}

// reconstructPath идет по карте предшественников от финализированного
// состояния назначения к старту и разворачивает шаги. Стартовое состояние
// шага не дает.
func (s *routeService) reconstructPath(prev map[searchState]predecessor, start, dest searchState, total int64, settledCount int) *models.RoutePlan {
	if s.metrics != nil {
		s.metrics.SettledStates.Observe(float64(settledCount))
	}

	steps := make([]models.RouteStep, 0)
	for state := dest; state != start; {
		p, ok := prev[state]
		if !ok {
			break
		}
		steps = append(steps, p.step)
		state = p.prev
	}

	// Разворачиваем: шаги собраны от назначения к старту
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return &models.RoutePlan{
		TotalSeconds: total,
		Steps:        steps,
	}
}
