package sand

// The rules read the current plane and write the next plane. Ages live in a
// single plane shared by both. A cell whose next value no longer matches
// its current value has already been claimed this tick, either as the
// source or as the target of a neighbour's move, and is left alone.

func (w *World) updateCell(idx int) {
	cur := w.grid.Cur()
	m := Material(cur[idx])
	if m == Empty || m == Wall {
		return
	}
	if !w.unclaimed(idx) {
		return
	}
	x, y := idx%w.w, idx/w.w
	t := &w.table
	switch {
	case m == Fire:
		w.updateFire(x, y, idx)
	case t.IsStatic(m):
		if t.CanBurn(m) && w.age[idx] > 0 {
			w.updateBurning(x, y, idx, m)
		}
	default:
		moved := false
		if t.CanFall(m) {
			if g := t[m].Gravity; g < 0 {
				moved = w.rise(x, y, idx, m, -int(g))
			} else {
				moved = w.fall(x, y, idx, m, int(g))
			}
		}
		if !moved {
			w.interact(x, y, idx, m)
		}
	}
}

func (w *World) unclaimed(idx int) bool {
	return w.grid.Next()[idx] == w.grid.Cur()[idx]
}

func (w *World) leftFirst() int {
	if w.rng.Float64() < w.cfg.Params.DirectionChance {
		return -1
	}
	return 1
}

func (w *World) fall(x, y, idx int, m Material, g int) bool {
	t := &w.table
	if y+1 < w.h {
		below := idx + w.w
		if b := Material(w.grid.Cur()[below]); t.CanDisplace(m, b) && w.unclaimed(below) {
			w.displace(idx, below)
			return true
		}
	}
	if !t.CanFlow(m) {
		return false
	}
	disperse := t[m].DisperseRate
	dir := w.leftFirst()
	intensity := min(1.0, float64(disperse)/10)
	if w.rng.Float64() < intensity*float64(g)/10 {
		if w.stepDiagonal(x, y, m, dir, 1) || w.stepDiagonal(x, y, m, -dir, 1) {
			return true
		}
	}
	if disperse > 5 && w.rng.Float64() < float64(disperse)/30 {
		if w.stepLateral(x, y, dir) || w.stepLateral(x, y, -dir) {
			return true
		}
	}
	return false
}

func (w *World) rise(x, y, idx int, m Material, a int) bool {
	t := &w.table
	if y > 0 {
		above := idx - w.w
		if b := Material(w.grid.Cur()[above]); t.CanDisplace(m, b) && w.unclaimed(above) {
			w.displace(idx, above)
			return true
		}
	}
	if t.CanFlow(m) && w.rng.Float64() < float64(a)/10 {
		dir := w.leftFirst()
		if w.stepDiagonal(x, y, m, dir, -1) || w.stepDiagonal(x, y, m, -dir, -1) {
			return true
		}
	}
	return false
}

// stepDiagonal moves into an empty target or swaps with a lighter,
// non-static occupant.
func (w *World) stepDiagonal(x, y int, m Material, dx, dy int) bool {
	nx, ny := x+dx, y+dy
	if !w.grid.InBounds(nx, ny) {
		return false
	}
	target := ny*w.w + nx
	if !w.unclaimed(target) {
		return false
	}
	b := Material(w.grid.Cur()[target])
	if b != Empty && (w.table.IsStatic(b) || !w.table.CanDisplace(m, b)) {
		return false
	}
	w.displace(y*w.w+x, target)
	return true
}

// stepLateral moves into an empty cell in the same row.
func (w *World) stepLateral(x, y, dx int) bool {
	nx := x + dx
	if nx < 0 || nx >= w.w {
		return false
	}
	target := y*w.w + nx
	if Material(w.grid.Cur()[target]) != Empty || !w.unclaimed(target) {
		return false
	}
	w.move(y*w.w+x, target)
	return true
}

// displace moves into an empty target or swaps with its occupant.
func (w *World) displace(from, to int) {
	if Material(w.grid.Cur()[to]) == Empty {
		w.move(from, to)
		return
	}
	w.swap(from, to)
}

// move carries the source material and age into an empty destination and
// clears the source.
func (w *World) move(from, to int) {
	next := w.grid.Next()
	next[to] = w.grid.Cur()[from]
	next[from] = uint8(Empty)
	w.age[to] = w.age[from]
	w.age[from] = 0
	w.touch(from)
	w.touch(to)
}

// swap exchanges type and age between two cells.
func (w *World) swap(a, b int) {
	cur, next := w.grid.Cur(), w.grid.Next()
	next[a], next[b] = cur[b], cur[a]
	w.age[a], w.age[b] = w.age[b], w.age[a]
	w.touch(a)
	w.touch(b)
}

// touch schedules the chunk around idx and widens the redraw region.
func (w *World) touch(idx int) {
	x, y := idx%w.w, idx/w.w
	w.chunks.markActive(x, y)
	w.expandDirty(x, y)
}

// become rewrites a cell in the next plane and restarts its age.
func (w *World) become(idx int, m Material) {
	w.grid.Next()[idx] = uint8(m)
	w.age[idx] = 0
	w.touch(idx)
}

func (w *World) interact(x, y, idx int, m Material) {
	t := &w.table
	if !t.CanBurn(m) || !w.nearFire(x, y) {
		return
	}
	chance := float64(t[m].Flammability) / 255 * w.cfg.Params.FireSpreadChance
	if w.rng.Float64() < chance {
		w.become(idx, Fire)
	}
}

func (w *World) nearFire(x, y int) bool {
	cur := w.grid.Cur()
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= w.h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= w.w {
				continue
			}
			if Material(cur[ny*w.w+nx]) == Fire {
				return true
			}
		}
	}
	return false
}

func (w *World) updateFire(x, y, idx int) {
	w.age[idx]++
	w.expandDirty(x, y) // flame color follows age
	if w.age[idx] >= w.table[Fire].BurnTime {
		w.become(idx, Empty)
		return
	}
	spread := w.spreadFire(x, y)
	cur := w.grid.Cur()
	if !spread && y > 0 && w.rng.Float64() < w.cfg.Params.FireRiseChance {
		above := idx - w.w
		if Material(cur[above]) == Empty && w.unclaimed(above) {
			w.move(idx, above)
			return
		}
	}
	if w.rng.Float64() < w.cfg.Params.FireDriftChance {
		w.stepLateral(x, y, w.leftFirst())
	}
}

// spreadFire independently tries to ignite each flammable neighbour and
// reports whether any caught.
func (w *World) spreadFire(x, y int) bool {
	t := &w.table
	cur := w.grid.Cur()
	spread := false
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= w.h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= w.w {
				continue
			}
			n := ny*w.w + nx
			nm := Material(cur[n])
			if !t.CanBurn(nm) || !w.unclaimed(n) {
				continue
			}
			if w.rng.Float64() >= w.cfg.Params.FireSpreadChance {
				continue
			}
			if w.rng.Float64() < float64(t[nm].Flammability)/255 {
				w.become(n, Fire)
				spread = true
			}
		}
	}
	return spread
}

// updateBurning ages a lit static solid, turns it into its residue once it
// has burned long enough, and occasionally throws an ember upward.
func (w *World) updateBurning(x, y, idx int, m Material) {
	w.age[idx]++
	if w.age[idx] >= w.table[m].BurnTime {
		residue := Empty
		if m == Wood {
			residue = Sand
		}
		w.become(idx, residue)
	}
	if y > 0 && w.rng.Float64() < w.cfg.Params.EmberChance {
		above := idx - w.w
		if Material(w.grid.Cur()[above]) == Empty && w.unclaimed(above) {
			w.become(above, Fire)
		}
	}
}

// restless reports whether the cell at idx could still change on a later
// tick without outside help. Settled chunks contain no restless cells.
func (w *World) restless(x, y, idx int) bool {
	t := &w.table
	cur := w.grid.Cur()
	m := Material(cur[idx])
	switch {
	case m == Empty || m == Wall:
		return false
	case m == Fire:
		return true
	case t.IsStatic(m):
		return t.CanBurn(m) && w.age[idx] > 0
	}
	if t.CanBurn(m) && w.nearFire(x, y) {
		return true
	}
	if !t.CanFall(m) {
		return false
	}
	dy := 1
	if t[m].Gravity < 0 {
		dy = -1
	}
	if ny := y + dy; ny >= 0 && ny < w.h && t.CanDisplace(m, Material(cur[ny*w.w+x])) {
		return true
	}
	if !t.CanFlow(m) {
		return false
	}
	for _, dx := range [2]int{-1, 1} {
		nx, ny := x+dx, y+dy
		if w.grid.InBounds(nx, ny) {
			b := Material(cur[ny*w.w+nx])
			if b == Empty || (!t.IsStatic(b) && t.CanDisplace(m, b)) {
				return true
			}
		}
		if dy > 0 && t[m].DisperseRate > 5 && nx >= 0 && nx < w.w && Material(cur[y*w.w+nx]) == Empty {
			return true
		}
	}
	return false
}
