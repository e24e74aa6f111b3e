package dungeon

import (
	"math"

	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

const truncNormalAttempts = 1000

// placeRoom samples a room inside leaf. The leaf keeps a one cell margin
// on every side unless the layout spreads rooms across the dungeon.
func placeRoom(leaf Rect, layout Layout, src rng.Source) Rect {
	lo := layout.MinLeafSize - 2
	w := truncNormal(src, lo, leaf.Width-2)
	h := truncNormal(src, lo, leaf.Height-2)

	px := rng.Between(src, 1, leaf.Width-w-1)
	py := rng.Between(src, 1, leaf.Height-h-1)

	if src.IntN(3) != 0 {
		amount := rng.Between(src, 1, layout.MaxMove)
		px, py = jitter(leaf, layout, px, py, w, h, amount, src)
	}

	return Rect{X: leaf.X + px, Y: leaf.Y + py, Width: w, Height: h}
}

// jitter moves the room one step horizontally and one step vertically,
// choosing among feasible directions only. An axis with no feasible
// direction is left alone.
func jitter(leaf Rect, layout Layout, px, py, w, h, amount int, src rng.Source) (int, int) {
	var left, right, up, down bool
	if layout.Spread == SpreadDungeon {
		left = leaf.X+px-amount >= 1
		right = layout.Width > leaf.X+px+w+amount
		up = leaf.Y+py-amount >= 1
		down = layout.Height > leaf.Y+py+h+amount
	} else {
		left = px-amount >= 1
		right = px+w+amount <= leaf.Width-1
		up = py-amount >= 1
		down = py+h+amount <= leaf.Height-1
	}

	px += pickStep(left, right, amount, src)
	py += pickStep(up, down, amount, src)
	return px, py
}

func pickStep(negative, positive bool, amount int, src rng.Source) int {
	var steps []int
	if negative {
		steps = append(steps, -amount)
	}
	if positive {
		steps = append(steps, amount)
	}
	if len(steps) == 0 {
		return 0
	}
	return steps[src.IntN(len(steps))]
}

// truncNormal samples N(mid, 1) restricted to [lo, hi] and rounds half to
// even. A collapsed range returns lo without drawing.
func truncNormal(src rng.Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	mean := math.RoundToEven(float64(lo+hi) / 2)
	for i := 0; i < truncNormalAttempts; i++ {
		v := mean + src.NormFloat64()
		if v >= float64(lo) && v <= float64(hi) {
			return int(math.RoundToEven(v))
		}
	}
	return int(mean)
}
