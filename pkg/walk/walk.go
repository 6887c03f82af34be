package walk

// Walk is one 2D random-walk trajectory. X and Y hold the coordinate at each
// step index, starting at the origin, so both slices have length steps+1.
type Walk struct {
	X []int `json:"x"`
	Y []int `json:"y"`
}

// Steps returns the number of steps taken in the walk.
func (w Walk) Steps() int {
	if len(w.X) == 0 {
		return 0
	}
	return len(w.X) - 1
}
