package web

// GridSeat is one cell of the rendered seat grid.
type GridSeat struct {
    Number uint32 // 1-based seat number
    Taken  bool   // true when an existing booking owns this seat
}

// BuildSeatGrid lays seats 1..capacity into rows of cols cells each.  The
// last row is short when capacity is not a multiple of cols.  Occupancy is
// looked up per seat number so the template can disable taken seats.
func BuildSeatGrid(capacity, cols uint32, occupied map[uint32]bool) [][]GridSeat {
    if cols == 0 {
        cols = 1
    }
    rows := (capacity + cols - 1) / cols
    grid := make([][]GridSeat, 0, rows)
    num := uint32(1)
    for r := uint32(0); r < rows; r++ {
        row := make([]GridSeat, 0, cols)
        for c := uint32(0); c < cols && num <= capacity; c++ {
            row = append(row, GridSeat{Number: num, Taken: occupied[num]})
            num++
        }
        grid = append(grid, row)
    }
    return grid
}
