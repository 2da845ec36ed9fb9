package grid

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	cellPrefix = "crop_row"
	imageExt   = ".jpg"
)

var cellNamePattern = regexp.MustCompile(`^crop_row(\d+)_col(\d+)\.jpg$`)

// Position identifies a grid cell by zero-based row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CellName returns the artifact name of the cell at (row, col).
func CellName(row, col int) string {
	return fmt.Sprintf("crop_row%d_col%d.jpg", row, col)
}

// CombinedName returns the artifact name of the face+verso pair at (row, col).
func CombinedName(row, col int) string {
	return fmt.Sprintf("combined_row%d_col%d.jpg", row, col)
}

// LotName returns the artifact name of the lot for a zero-based column.
// The external name is one-based: column 0 is "lot_column_1.jpg".
func LotName(col int) string {
	return fmt.Sprintf("lot_column_%d.jpg", col+1)
}

// IsCellName reports whether name looks like a cell artifact (prefix and
// extension match). It does not guarantee ParseCellName succeeds.
func IsCellName(name string) bool {
	return strings.HasPrefix(name, cellPrefix) && strings.HasSuffix(name, imageExt)
}

// ParseCellName recovers the position encoded in a cell artifact name.
// It returns false for names that do not follow the convention exactly.
func ParseCellName(name string) (Position, bool) {
	m := cellNamePattern.FindStringSubmatch(name)
	if m == nil {
		return Position{}, false
	}
	row, err := strconv.Atoi(m[1])
	if err != nil {
		return Position{}, false
	}
	col, err := strconv.Atoi(m[2])
	if err != nil {
		return Position{}, false
	}
	return Position{Row: row, Col: col}, true
}

// SortPositions orders positions by row, then column.
func SortPositions(positions []Position) {
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Col < positions[j].Col
	})
}

// Extent returns (max row + 1, max col + 1) over the positions, or (0, 0)
// when there are none.
func Extent(positions []Position) (rows, cols int) {
	for _, p := range positions {
		if p.Row+1 > rows {
			rows = p.Row + 1
		}
		if p.Col+1 > cols {
			cols = p.Col + 1
		}
	}
	return rows, cols
}
