package tui

import "testing"

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < 6; active++ {
		a := App{activeTab: active}
		pos := 1 // leading space

		for i := 0; i < 6; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < 5 {
				pos += 2 // separator
			}
		}
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	nameWidths := []int{
		len("Overview"),
		len("Pressure"),
		len("Timeline"),
		len("Debt"),
		len("Compare"),
		len("Settings"),
	}

	w := nameWidths[tabIdx]
	if tabIdx == activeIdx {
		return w
	}
	if tabIdx == 5 {
		return w + 3 // inactive Settings appends "[x]"
	}
	return w + 2 // brackets around the in-name shortcut
}
