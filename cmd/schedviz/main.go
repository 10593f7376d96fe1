// Command schedviz runs a demo workload on the threading runtime and
// presents the live thread table plus the scheduler event log in a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"image/color"

	"uthread"
	"uthread/display"
	"uthread/internal/buildinfo"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	fbWidth  = 320
	fbHeight = 320

	cellW    = 36
	cellH    = 16
	cellGap  = 4
	gridX    = 8
	gridY    = 24
	gridCols = 8

	logX = 8
	logY = 170
)

var (
	colorBG  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	colorFG  = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorDim = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}

	statusColors = [...]color.RGBA{
		uthread.Ready:   {R: 0x2a, G: 0x5a, B: 0xdf, A: 0xff},
		uthread.Running: {R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff},
		uthread.Exited:  {R: 0x24, G: 0x24, B: 0x24, A: 0xff},
		uthread.Blocked: {R: 0xdf, G: 0x9a, B: 0x2a, A: 0xff},
	}
)

func main() {
	quantum := flag.Duration("quantum", uthread.DefaultQuantum, "Scheduling interval.")
	workers := flag.Int("workers", 6, "Worker thread count.")
	flag.Parse()

	rt := uthread.New(uthread.Config{
		Quantum: *quantum,
		Trace:   true,
		Logger:  uthread.NewLineLogger(os.Stdout),
	})
	defer rt.Shutdown()

	go workload(rt, *workers)

	fb := display.NewFramebuffer(fbWidth, fbHeight)
	fb.ClearRGB(colorBG.R, colorBG.G, colorBG.B)

	logPane := display.NewRegion(fb, logX, logY, fbWidth-2*logX, fbHeight-logY-8)
	term := display.NewTerm(logPane, &proggy.TinySZ8pt7b, 10, 7)

	font := &proggy.TinySZ8pt7b
	var snap []uthread.ThreadState
	update := func() error {
		for {
			ev, ok := rt.Trace().TryPop()
			if !ok {
				break
			}
			term.Printf("t%-5d %-8s thread %d\r\n", ev.Tick, ev.Kind, ev.Thread)
		}
		snap = rt.Snapshot(snap[:0])
		drawHeader(fb, font, rt.Ticks(), len(snap))
		drawTable(fb, font, snap)
		return nil
	}

	title := "uthread schedviz (" + buildinfo.Short() + ")"
	if err := display.RunWindow(title, fb, update); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func drawHeader(fb *display.Framebuffer, font tinyfont.Fonter, ticks uint64, threads int) {
	fb.FillRectangle(0, 0, fbWidth, gridY-4, colorBG)
	line := fmt.Sprintf("tick %d  threads %d", ticks, threads)
	tinyfont.WriteLine(fb, font, gridX, 14, line, colorFG)
}

func drawTable(fb *display.Framebuffer, font tinyfont.Fonter, snap []uthread.ThreadState) {
	for i, st := range snap {
		col := i % gridCols
		row := i / gridCols
		x := int16(gridX + col*(cellW+cellGap))
		y := int16(gridY + row*(cellH+cellGap))
		if int(y)+cellH >= logY {
			tinyfont.WriteLine(fb, font, gridX, int16(logY-6), "...", colorDim)
			return
		}
		c := colorDim
		if int(st.Status) < len(statusColors) {
			c = statusColors[st.Status]
		}
		fb.FillRectangle(x, y, cellW, cellH, c)
		tinyfont.WriteLine(fb, font, x+3, y+11, fmt.Sprintf("T%d", st.ID), colorBG)
	}
}

// workload keeps the runtime busy: workers take turns bumping a shared
// counter under a binary semaphore, with staggered sleeps so every thread
// state shows up in the table.
func workload(rt *uthread.Runtime, workers int) {
	mutex, err := rt.SemInit(1)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	shared := 0
	for i := 0; i < workers; i++ {
		n := i
		_, err := rt.Create(func(any) any {
			for {
				if err := rt.SemWait(mutex); err != nil {
					return nil
				}
				shared++
				if err := rt.SemPost(mutex); err != nil {
					return nil
				}
				rt.Sleep(time.Duration(n+1) * 120 * time.Millisecond)
			}
		}, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}

	for {
		rt.Sleep(time.Second)
	}
}
