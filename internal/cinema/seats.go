package cinema

import (
	"sort"

	"github.com/multiplexhq/cinema-reservation-system/internal/domain"
)

// SeatsValidator checks a requested seat set against room geometry and the
// seats already held by active reservations, enforcing the no-isolated-seat
// rule.
type SeatsValidator struct{}

// Validate accepts or rejects the requested seats. The reserved argument maps
// row -> set of occupied columns for currently active reservations.
//
// The gap rule treats the whole requested set as simultaneously reserved, so
// two seats which only strand a neighbour in combination are rejected no
// matter in which order they arrive. Duplicate (row, column) pairs in the
// request collapse into one seat.
func (SeatsValidator) Validate(
	seatsToReserve []domain.ReservedSeat,
	reserved map[int]map[int]bool,
	room domain.Room) error {

	if len(seatsToReserve) == 0 {
		return &domain.NoSeatToReserveError{}
	}

	toReserve := make(map[int]map[int]bool)
	for _, seat := range seatsToReserve {
		if toReserve[seat.Row] == nil {
			toReserve[seat.Row] = make(map[int]bool)
		}
		toReserve[seat.Row][seat.Column] = true
	}

	// Seats in a row or column map iterate in random order; walking them
	// sorted keeps the reported seat deterministic.
	rows := sortedKeys(toReserve)

	for _, row := range rows {
		columns := sortedKeys(toReserve[row])

		for _, column := range columns {
			if row < 1 || row > room.RowCount ||
				column < 1 || column > room.ColumnCount {
				return &domain.SeatNotFoundError{Row: row, Column: column, RoomName: room.Name}
			}

			if reserved[row][column] {
				return &domain.SeatReservedError{Row: row, Column: column}
			}

			taken := func(col int) bool {
				return reserved[row][col] || toReserve[row][col]
			}

			// Seat gap on the left of the candidate column.
			if column > 2 && taken(column-2) && !taken(column-1) {
				return &domain.SeatGapError{Row: row, Column: column}
			}

			// Seat gap on the right. The boundary condition is
			// intentionally not symmetric with the left-hand check.
			if column < room.ColumnCount-1 && taken(column+2) && !taken(column+1) {
				return &domain.SeatGapError{Row: row, Column: column}
			}
		}
	}

	return nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
