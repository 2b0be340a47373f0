package model

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// FitHeight returns the number of rows a textarea of the given content width
// paints for value, clamped to [1, maxRows]. A maxRows below 1 means unbounded.
func FitHeight(value string, width, maxRows int) int {
	if width < 1 {
		width = 1
	}
	rows := 0
	for _, line := range strings.Split(value, "\n") {
		rows += wrappedRows(line, width)
	}
	if rows < 1 {
		rows = 1
	}
	if maxRows > 0 && rows > maxRows {
		rows = maxRows
	}
	return rows
}

// wrappedRows counts the soft-wrapped rows of one logical line. It follows the
// bubbles textarea wrap: words move whole to the next row, a word wider
// than the row is split, and the last row keeps one cell for the cursor.
func wrappedRows(line string, width int) int {
	var (
		rows           = 1
		lineW, lineN   int // current row width and rune count
		wordW, wordN   int
		spaces, lastRW int
	)
	for _, r := range line {
		if unicode.IsSpace(r) {
			spaces++
		} else {
			lastRW = runewidth.RuneWidth(r)
			wordW += lastRW
			wordN++
		}

		if spaces > 0 {
			if lineW+wordW+spaces > width {
				rows++
				lineW, lineN = wordW+spaces, wordN+spaces
			} else {
				lineW += wordW + spaces
				lineN += wordN + spaces
			}
			wordW, wordN, spaces = 0, 0, 0
			continue
		}
		if wordW+lastRW > width {
			if lineN > 0 {
				rows++
			}
			lineW, lineN = wordW, wordN
			wordW, wordN = 0, 0
		}
	}
	if lineW+wordW >= width {
		rows++
	}
	return rows
}
