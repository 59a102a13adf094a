// Package keyboard maps keystrokes between keyboard layouts by physical key position.
package keyboard

import (
	"fmt"
	"strings"
)

// Layout identifies one of the supported keyboard layouts
type Layout int

const (
	Qwerty Layout = iota
	Dvorak
	Azerty
	Colemark
)

// Layouts lists every layout in table order
var Layouts = []Layout{Qwerty, Dvorak, Azerty, Colemark}

// String returns the display name of the layout
func (l Layout) String() string {
	switch l {
	case Qwerty:
		return "Qwerty"
	case Dvorak:
		return "Dvorak"
	case Azerty:
		return "Azerty"
	case Colemark:
		return "Colemark"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Next returns the layout that follows l in the cycle
// Dvorak -> Qwerty -> Azerty -> Colemark -> Dvorak.
func (l Layout) Next() Layout {
	switch l {
	case Dvorak:
		return Qwerty
	case Qwerty:
		return Azerty
	case Azerty:
		return Colemark
	case Colemark:
		return Dvorak
	default:
		return Qwerty
	}
}

// ParseLayout resolves a layout from its case-insensitive name.
// "colemak" is accepted as an alias for Colemark.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "qwerty":
		return Qwerty, nil
	case "dvorak":
		return Dvorak, nil
	case "azerty":
		return Azerty, nil
	case "colemark", "colemak":
		return Colemark, nil
	default:
		return Qwerty, fmt.Errorf("unknown keyboard layout %q", name)
	}
}

// Each table lists the character produced at every physical key position:
// the four unshifted rows and the space bar, then the same keys shifted.
const (
	qwertyKeys = "`1234567890-=" + "qwertyuiop[]\\" + "asdfghjkl;'" + "zxcvbnm,./" + " " +
		"~!@#$%^&*()_+" + "QWERTYUIOP{}|" + "ASDFGHJKL:\"" + "ZXCVBNM<>?" + " "

	dvorakKeys = "`1234567890[]" + "',.pyfgcrl/=\\" + "aoeuidhtns-" + ";qjkxbmwvz" + " " +
		"~!@#$%^&*(){}" + "\"<>PYFGCRL?+|" + "AOEUIDHTNS_" + ":QJKXBMWVZ" + " "

	azertyKeys = "`1234567890°+" + "azertyuiop^$*" + "qsdfghjklmù" + "wxcvbn,;:!" + " " +
		"²&é\"'(-è_çà)=" + "AZERTYUIOP¨£µ" + "QSDFGHJKLM%" + "WXCVBN?./§" + " "

	colemarkKeys = "`1234567890-=" + "qwfpgjluy;[]\\" + "arstdhneio'" + "zxcvbkm,./" + " " +
		"~!@#$%^&*()_+" + "QWFPGJLUY:{}|" + "ARSTDHNEIO\"" + "ZXCVBKM<>?" + " "
)

// positionTable is built once at startup and only read afterwards.
type positionTable struct {
	keys      [4][]rune
	canonical map[rune]int // qwerty character -> first position
}

var table = newPositionTable()

func newPositionTable() *positionTable {
	t := &positionTable{canonical: make(map[rune]int)}
	t.keys[Qwerty] = []rune(qwertyKeys)
	t.keys[Dvorak] = []rune(dvorakKeys)
	t.keys[Azerty] = []rune(azertyKeys)
	t.keys[Colemark] = []rune(colemarkKeys)

	for _, l := range Layouts {
		if len(t.keys[l]) != len(t.keys[Qwerty]) {
			panic(fmt.Sprintf("keyboard: %s table has %d positions, want %d", l, len(t.keys[l]), len(t.keys[Qwerty])))
		}
	}
	for i, r := range t.keys[Qwerty] {
		if _, seen := t.canonical[r]; !seen {
			t.canonical[r] = i
		}
	}
	return t
}

// MapKey returns the character layout produces on the physical key that
// types c on a Qwerty board. Characters outside the table pass through.
func MapKey(layout Layout, c rune) rune {
	i, ok := table.canonical[c]
	if !ok {
		return c
	}
	switch layout {
	case Qwerty:
		return c
	case Dvorak, Azerty, Colemark:
		return table.keys[layout][i]
	default:
		return c
	}
}

// Positions returns the number of physical key positions in the tables.
func Positions() int {
	return len(table.keys[Qwerty])
}

// KeyAt returns the character layout produces at position i.
func KeyAt(layout Layout, i int) rune {
	return table.keys[layout][i]
}

// rowLengths are the unshifted key rows at the start of each table
var rowLengths = []int{13, 13, 11, 10}

// Rows returns the unshifted character rows of layout, top to bottom
func Rows(layout Layout) []string {
	keys := table.keys[layout]
	rows := make([]string, 0, len(rowLengths))
	start := 0
	for _, n := range rowLengths {
		rows = append(rows, string(keys[start:start+n]))
		start += n
	}
	return rows
}
