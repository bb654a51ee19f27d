package handy

// The 5x5 code matrix is indexed 0..24 in row-major order. There are 20
// lines of 5 cells each, with torus wrap: columns 0-4, rows 5-9, right
// diagonals 10-14, left diagonals 15-19. This table is a structural
// constant of the cipher and must match the reference implementation
// bit-for-bit.
var lines = [20][5]int{
	{0, 5, 10, 15, 20}, {1, 6, 11, 16, 21}, {2, 7, 12, 17, 22}, {3, 8, 13, 18, 23}, {4, 9, 14, 19, 24},
	{0, 1, 2, 3, 4}, {5, 6, 7, 8, 9}, {10, 11, 12, 13, 14}, {15, 16, 17, 18, 19}, {20, 21, 22, 23, 24},
	{0, 6, 12, 18, 24}, {1, 7, 13, 19, 20}, {2, 8, 14, 15, 21}, {3, 9, 10, 16, 22}, {4, 5, 11, 17, 23},
	{0, 9, 13, 17, 21}, {1, 5, 14, 18, 22}, {2, 6, 10, 19, 23}, {3, 7, 11, 15, 24}, {4, 8, 12, 16, 20},
}

// knightjumps[c] lists the 8 cells not colinear with cell c: the complement
// of the 16 cells c shares a line with (4 lines of 5 cells each, minus c
// itself, with overlaps), over the 24 other cells of the torus.
var knightjumps = [25][8]int{
	{7, 8, 11, 14, 16, 19, 22, 23}, {8, 9, 10, 12, 15, 17, 23, 24}, {5, 9, 11, 13, 16, 18, 20, 24},
	{5, 6, 12, 14, 17, 19, 20, 21}, {6, 7, 10, 13, 15, 18, 21, 22}, {2, 3, 12, 13, 16, 19, 21, 24},
	{3, 4, 13, 14, 15, 17, 20, 22}, {0, 4, 10, 14, 16, 18, 21, 23}, {0, 1, 10, 11, 17, 19, 22, 24},
	{1, 2, 11, 12, 15, 18, 20, 23}, {1, 4, 7, 8, 17, 18, 21, 24}, {0, 2, 8, 9, 18, 19, 20, 22},
	{1, 3, 5, 9, 15, 19, 21, 23}, {2, 4, 5, 6, 15, 16, 22, 24}, {0, 3, 6, 7, 16, 17, 20, 23},
	{1, 4, 6, 9, 12, 13, 22, 23}, {0, 2, 5, 7, 13, 14, 23, 24}, {1, 3, 6, 8, 10, 14, 20, 24},
	{2, 4, 7, 9, 10, 11, 20, 21}, {0, 3, 5, 8, 11, 12, 21, 22}, {2, 3, 6, 9, 11, 14, 17, 18},
	{3, 4, 5, 7, 10, 12, 18, 19}, {0, 4, 6, 8, 11, 13, 15, 19}, {0, 1, 7, 9, 12, 14, 15, 16},
	{1, 2, 5, 8, 10, 13, 16, 17},
}

// cellOf returns the index of character ch in the code matrix, or -1 if ch
// does not appear in it.
func (c *Cipher) cellOf(ch byte) int {
	for i, v := range c.CodeMat {
		if v == ch {
			return i
		}
	}
	return -1
}

// hasDirection reports whether ch lies on line dir of the code matrix.
func (c *Cipher) hasDirection(ch byte, dir int) bool {
	for _, idx := range lines[dir] {
		if c.CodeMat[idx] == ch {
			return true
		}
	}
	return false
}

// getDirection returns the line containing both a and b, or -1 if they are
// not colinear.
func (c *Cipher) getDirection(a, b byte) int {
	for dir, cells := range lines {
		found := 0
		for _, idx := range cells {
			v := c.CodeMat[idx]
			if v == a || v == b {
				found++
				if found == 2 {
					return dir
				}
			}
		}
	}
	return -1
}

// colinear reports whether a and b share a line: equivalently, whether b is
// not among the 8 knight-neighbors of a's cell.
func (c *Cipher) colinear(a, b byte) bool {
	cell := c.cellOf(a)
	for _, idx := range knightjumps[cell] {
		if c.CodeMat[idx] == b {
			return false
		}
	}
	return true
}

// getColumn returns the column (one of the first 5 lines) containing ch.
func (c *Cipher) getColumn(ch byte) int {
	for col := 0; col < 5; col++ {
		for _, idx := range lines[col] {
			if c.CodeMat[idx] == ch {
				return col
			}
		}
	}
	return -1
}
