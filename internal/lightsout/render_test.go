package lightsout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-lightsout/internal/core"
)

func TestRenderBoardColors(t *testing.T) {
	g := newTestGame(t, &scriptedSource{values: []uint32{0, 0}}, 1)
	screen := core.NewScreen(80, 23)
	g.Render(screen)

	theme := DefaultTheme()

	// (0, 0) is lit by the generated corner press, (4, 4) is not
	lit := g.layout.CellRect(0, 0)
	if c := screen.GetCell(lit.X, lit.Y); c.Rune != runeOn || c.Color != theme.On {
		t.Errorf("Lit cell drawn as %+v", c)
	}
	dark := g.layout.CellRect(4, 4)
	if c := screen.GetCell(dark.X, dark.Y); c.Rune != runeOff || c.Color != theme.Off {
		t.Errorf("Dark cell drawn as %+v", c)
	}

	cx, cy := g.cellFace(2, 2).Center()
	if c := screen.GetCell(cx, cy); c.Rune != runeCursor {
		t.Errorf("Cursor marker missing at board center, got %+v", c)
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, nil, DefaultStrength)
	g.Session().ResetWithSeed(2504604244)

	screen := core.NewScreen(80, 23)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{
		"Turn the Lights Out",
		"Seed:     2504604244",
		"Clicks:   0",
		"Attempts: 1",
		"Board:    5x5",
		"R   - Reset current board",
		"F11 - Toggle full screen",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD missing %q", want)
		}
	}
	if strings.Contains(out, "YOU WON!") {
		t.Error("HUD should not announce a win before the board is cleared")
	}
}

func TestRenderWon(t *testing.T) {
	g := newTestGame(t, &scriptedSource{values: []uint32{2, 2}}, 1)

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	screen := core.NewScreen(80, 23)
	g.Render(screen)

	if !strings.Contains(screen.String(), "YOU WON!") {
		t.Error("Expected win banner")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, nil, DefaultStrength)
	g.SetScreenSize(20, 5)

	screen := core.NewScreen(20, 5)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("Expected too-small message, got:\n%s", screen.String())
	}
}
