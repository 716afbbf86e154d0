package topology

import (
	"fmt"
	"strconv"
	"strings"
)

// gridAlphabet is the row lettering for grid-array packages. I and O are
// skipped so designators cannot be misread as 1 and 0.
const gridAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"

// ParseGridDesignator splits a ball designator like "A1" or "AC13" into a
// 0-based row and column index. Rows letter in gridAlphabet order and extend
// to two letters past Z (Z, AA, AB, ...); columns are 1-based digits in the
// designator.
func ParseGridDesignator(number string) (row, col int, err error) {
	s := strings.ToUpper(strings.TrimSpace(number))
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(s) {
		return 0, 0, fmt.Errorf("%q is not <row letters><column digits>", number)
	}

	row = 0
	for _, ch := range s[:i] {
		idx := strings.IndexRune(gridAlphabet, ch)
		if idx < 0 {
			return 0, 0, fmt.Errorf("row letter %q is not used in grid arrays", string(ch))
		}
		row = row*len(gridAlphabet) + idx + 1
	}
	row--

	n, convErr := strconv.Atoi(s[i:])
	if convErr != nil || n < 1 {
		return 0, 0, fmt.Errorf("column %q is not a positive number", s[i:])
	}
	return row, n - 1, nil
}

// GridRowName is the inverse of ParseGridDesignator's row parsing: 0 -> "A",
// 23 -> "Z", 24 -> "AA".
func GridRowName(row int) string {
	name := ""
	r := row
	for {
		name = string(gridAlphabet[r%len(gridAlphabet)]) + name
		r = r/len(gridAlphabet) - 1
		if r < 0 {
			break
		}
	}
	return name
}
