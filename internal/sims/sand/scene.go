package sand

// PaintSandbox lays out the demo scene: a walled box, two sloped ramps, a
// flat shelf and two catch platforms, with piles of sand and dirt, a pool
// of water and a wooden beam. Every chunk is scheduled afterwards so the
// scene starts moving on the first tick.
func PaintSandbox(w *World) {
	width, height := w.w, w.h
	paintBox(w, width, height)
	paintPlatforms(w, width, height)
	paintPiles(w, width, height)
	w.MarkAllActive()
}

const (
	sandboxWall     = 10
	sandboxPadding  = 40
	sandboxPlatform = 5
)

func fillRect(w *World, x0, y0, x1, y1 int, m Material) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			w.PlaceMaterial(x, y, m, 1)
		}
	}
}

func paintBox(w *World, width, height int) {
	p, t := sandboxPadding, sandboxWall
	fillRect(w, p, p, p+t, height-p, Wall)
	fillRect(w, width-p-t, p, width-p, height-p, Wall)
	fillRect(w, p, height-p-t, width-p, height-p, Wall)
}

func paintPlatforms(w *World, width, height int) {
	t := sandboxPlatform

	shelfW := width / 3
	shelfX := width/2 - shelfW/2
	shelfY := height / 2
	fillRect(w, shelfX, shelfY, shelfX+shelfW, shelfY+t, Wall)

	rampLen := width / 4
	rampY := height * 3 / 10
	const slope = 0.4
	for i := 0; i < rampLen; i++ {
		drop := int(float64(i) * slope)
		left := width/6 + i
		right := width - width/6 - i
		for k := 0; k < t; k++ {
			w.PlaceMaterial(left, rampY+drop+k, Wall, 1)
			w.PlaceMaterial(right, rampY+drop+k, Wall, 1)
		}
	}

	catchW := width / 8
	catchY := height * 7 / 10
	leftX := width/4 - catchW/2
	rightX := width*3/4 - catchW/2
	fillRect(w, leftX, catchY, leftX+catchW, catchY+t, Wall)
	fillRect(w, rightX, catchY, rightX+catchW, catchY+t, Wall)
}

func paintPiles(w *World, width, height int) {
	pyramid := func(cx, top, rows, base, minRow int, density float64, m Material) {
		for y := 0; y < rows; y++ {
			rowW := max(minRow, base-y)
			for x := cx - rowW/2; x < cx+(rowW+1)/2; x++ {
				if w.rng.Float64() < density {
					w.PlaceMaterial(x, top+y, m, 1)
				}
			}
		}
	}
	pyramid(width/2, height*15/100, 20, width/10, 4, 0.9, Sand)
	pyramid(width*3/4, height/4, 15, 15, 3, 0.8, Dirt)

	const pool = 20
	poolX, poolY := width/4, height/5
	for y := poolY; y < poolY+pool; y++ {
		for x := poolX - pool/2; x < poolX+pool/2; x++ {
			if w.rng.Float64() < 0.9 {
				w.PlaceMaterial(x, y, Water, 1)
			}
		}
	}

	const beamW, beamH = 40, 5
	beamX, beamY := width/2, height*4/10
	fillRect(w, beamX-beamW/2, beamY, beamX+beamW/2, beamY+beamH, Wood)
}
