// Command bandview shows the color band presets in a truecolor terminal.
//
// Each band is drawn across the screen from 0 at the left to 1 at the right,
// over a checkerboard so that transparency is visible. Up and down select a
// band, s cycles the sample function and q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ironsheep/color-tools-mcp/internal/band"
	"github.com/ironsheep/color-tools-mcp/internal/blend"
	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/mapping"
)

const labelWidth = 10

// stopsExample is shown in the -stops usage text.
const stopsExample = "#000000:0,red:0.5,#ffffff:1"

var sampleFuncs = []string{"linear", "smoothstep", "square", "sqrt", "invert"}

type entry struct {
	name string
	band *band.ColorBand
}

type viewer struct {
	screen   tcell.Screen
	entries  []entry
	selected int
	funcIdx  int
	over     blend.Blender
}

func main() {
	stops := flag.String("stops", "", "extra band as color:param pairs, e.g. "+strconv.Quote(stopsExample))
	glow := flag.String("glow", "orange", "base color of the glow band")
	flag.Parse()

	entries, err := buildEntries(*stops, *glow)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bandview:", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	v := &viewer{screen: screen, entries: entries, over: blend.NewSrcOver()}
	v.run()
}

func buildEntries(stops, glow string) ([]entry, error) {
	var entries []entry
	for _, name := range band.PresetNames() {
		b, err := band.Preset(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{name, b})
	}

	g, err := color.Parse(glow)
	if err != nil {
		return nil, fmt.Errorf("glow: %w", err)
	}
	entries = append(entries, entry{"glow", band.Glow(g, 0.9)})

	if stops != "" {
		b, err := parseStops(stops)
		if err != nil {
			return nil, fmt.Errorf("stops: %w", err)
		}
		entries = append(entries, entry{"custom", b})
	}
	return entries, nil
}

// parseStops reads "color:param" pairs separated by commas.
func parseStops(s string) (*band.ColorBand, error) {
	var stops []band.ColorStop
	for _, part := range strings.Split(s, ",") {
		i := strings.LastIndexByte(part, ':')
		if i < 0 {
			return nil, fmt.Errorf("%q: want color:param", part)
		}
		c, err := color.Parse(strings.TrimSpace(part[:i]))
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(part[i+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", part, err)
		}
		stops = append(stops, band.ColorStop{Color: c, Param: p})
	}
	return band.New(stops...)
}

func (v *viewer) run() {
	v.draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyUp:
				v.selected = (v.selected + len(v.entries) - 1) % len(v.entries)
			case ev.Key() == tcell.KeyDown:
				v.selected = (v.selected + 1) % len(v.entries)
			case ev.Key() == tcell.KeyRune && ev.Rune() == 's':
				v.funcIdx = (v.funcIdx + 1) % len(sampleFuncs)
			}
			v.draw()
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case nil:
			return
		}
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	f, _ := mapping.ByName(sampleFuncs[v.funcIdx])

	row := 0
	for i, e := range v.entries {
		if row+1 >= h {
			break
		}
		label := tcell.StyleDefault
		if i == v.selected {
			label = label.Reverse(true)
		}
		v.text(0, row, label, e.name)
		v.drawBand(row, w, e.band, f)
		row += 2
	}

	sel := v.entries[v.selected]
	v.text(0, h-1, tcell.StyleDefault, fmt.Sprintf("%s: %d stops, sample %s   up/down select  s sample  q quit",
		sel.name, sel.band.NumColorStops(), sampleFuncs[v.funcIdx]))
	v.screen.Show()
}

// drawBand fills two rows after the label with b, each cell composited over
// a checkerboard.
func (v *viewer) drawBand(row, width int, b *band.ColorBand, f mapping.Mapping) {
	n := width - labelWidth
	if n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		c := b.Eval(f.Call(x))
		for dy := 0; dy < 2; dy++ {
			bg := color.Gray70
			if (i/2+dy)%2 == 0 {
				bg = color.Gray40
			}
			out := blend.BlendColor(v.over, c, bg, 1, 1).ByteColor(color.SpaceRGB)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(out.C0), int32(out.C1), int32(out.C2)))
			v.screen.SetContent(labelWidth+i, row+dy, ' ', nil, style)
		}
	}
}

func (v *viewer) text(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
