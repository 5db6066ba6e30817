package input

import "image"

// Zone is a named screen rectangle that accepts drops or clicks.
type Zone struct {
	Name string
	Rect image.Rectangle
}

// HitTest returns the first zone containing pt.
func HitTest(pt image.Point, zones []Zone) (Zone, bool) {
	for _, z := range zones {
		if pt.In(z.Rect) {
			return z, true
		}
	}
	return Zone{}, false
}
