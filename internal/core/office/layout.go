package office

import "math"

// Vec2 is a point or displacement in office units. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v minus other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies both components by factor.
func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

// Len returns the euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points.
func (v Vec2) Dist(other Vec2) float64 {
	return v.Sub(other).Len()
}

// Layout holds the fixed way-points of the office floor.
type Layout struct {
	Width  float64
	Height float64

	// CorridorX is the vertical walkway east of the desks.
	CorridorX float64

	Entry       Vec2
	DoorInside  Vec2
	DoorOutside Vec2
	Offstage    Vec2
	Window      Vec2

	// WindowThresholdY opens the window for anyone standing below it.
	WindowThresholdY float64
	// FallBound is the lowest visible Y; falling employees past it are gone.
	FallBound float64
}

// DefaultLayout returns the 16x9 office used by the game.
func DefaultLayout() Layout {
	const doorY = 7.5
	return Layout{
		Width:            16,
		Height:           9,
		CorridorX:        9,
		Entry:            Vec2{X: 17, Y: doorY},
		DoorInside:       Vec2{X: 15, Y: doorY},
		DoorOutside:      Vec2{X: 16.5, Y: doorY},
		Offstage:         Vec2{X: 18, Y: doorY},
		Window:           Vec2{X: 12, Y: 0.5},
		WindowThresholdY: 1,
		FallBound:        -1,
	}
}

// DefaultWorkstations returns the 4x4 desk grid.
func DefaultWorkstations() []Workstation {
	columns := []float64{1, 3, 5, 7}
	rows := []float64{1, 2, 4, 5}

	stations := make([]Workstation, 0, len(columns)*len(rows))
	for _, x := range columns {
		for _, y := range rows {
			rotation := math.Pi / 2
			if y == 1 || y == 4 {
				rotation = -math.Pi / 2
			}
			seat := Vec2{X: x, Y: y}
			stations = append(stations, Workstation{
				ID:       WorkstationID(len(stations)),
				Seat:     seat,
				Arrival:  seat.Add(Vec2{X: 1}),
				Rotation: rotation,
			})
		}
	}
	return stations
}
