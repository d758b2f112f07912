package game

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the glyph colors. Numbers is indexed by NearbyMines (1-8).
type Theme struct {
	Numbers    [9]tcell.Color
	Hidden     tcell.Color
	Flag       tcell.Color
	Mine       tcell.Color
	CursorFg   tcell.Color
	CursorBg   tcell.Color
	CursorFlag tcell.Color
	Won        tcell.Color
	Lost       tcell.Color
}

var numberPalette = [9]string{
	1: "#4a7dff", // blue
	2: "#2fa84f", // green
	3: "#e53935", // red
	4: "#b04ad8", // magenta
	5: "#20b2b2", // cyan
	6: "#d4a017", // yellow
	7: "#e0e0e0", // white
	8: "#808080", // grey
}

func DefaultTheme() Theme {
	t := Theme{
		Hidden:     mustColor("#20b2b2"),
		Flag:       mustColor("#f0c000"),
		Mine:       mustColor("#ff3030"),
		CursorFg:   tcell.ColorBlack,
		CursorBg:   tcell.ColorWhite,
		CursorFlag: mustColor("#d00000"),
		Won:        mustColor("#2fa84f"),
		Lost:       mustColor("#e53935"),
	}
	for i := 1; i < len(numberPalette); i++ {
		t.Numbers[i] = mustColor(numberPalette[i])
	}
	return t
}

func mustColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
