package scanplan

import (
	"sort"

	"github.com/arclight-gfx/rasterpipe/internal/edgeplan"
)

// activeIntercept is one shape currently "open" while sweeping a scanline
// left to right.
type activeIntercept struct {
	count    int
	startX   float64
	zIndex   int64
	shapeID  edgeplan.ShapeId
	isOpaque bool
}

// interceptState tracks which shapes are open at the current sweep position,
// kept sorted by (zIndex, shapeID) so the topmost active shape is always
// last, and maintains the "z-floor": the z-index of the highest opaque shape
// currently active, below which nothing needs to be drawn at all.
type interceptState struct {
	active  []activeIntercept
	zFloor  int64
}

const zFloorNone = int64(-1) << 62

func newInterceptState() *interceptState {
	return &interceptState{zFloor: zFloorNone}
}

func (s *interceptState) find(zIndex int64, shapeID edgeplan.ShapeId) (int, bool) {
	idx := sort.Search(len(s.active), func(i int) bool {
		a := s.active[i]
		if a.zIndex != zIndex {
			return a.zIndex >= zIndex
		}
		return a.shapeID >= shapeID
	})
	if idx < len(s.active) && s.active[idx].zIndex == zIndex && s.active[idx].shapeID == shapeID {
		return idx, true
	}
	return idx, false
}

func (s *interceptState) len() int { return len(s.active) }

func (s *interceptState) get(i int) activeIntercept { return s.active[i] }

// addIntercept applies one edge crossing, inserting or updating the active
// shape list and the z-floor.
func (s *interceptState) addIntercept(dir edgeplan.Direction, shapeID edgeplan.ShapeId, desc *edgeplan.ShapeDescriptor, x float64) {
	if desc == nil {
		return
	}
	zIndex, isOpaque := desc.ZIndex, desc.IsOpaque

	if idx, ok := s.find(zIndex, shapeID); ok {
		existing := &s.active[idx]
		remove := false
		switch dir {
		case edgeplan.Toggle:
			remove = true
		case edgeplan.DirectionOut:
			existing.count++
			remove = existing.count == 0
		case edgeplan.DirectionIn:
			existing.count--
			remove = existing.count == 0
		}

		if remove {
			s.active = append(s.active[:idx], s.active[idx+1:]...)
			if isOpaque && zIndex == s.zFloor {
				s.zFloor = zFloorNone
				for i := idx - 1; i >= 0; i-- {
					if s.active[i].isOpaque {
						s.zFloor = s.active[i].zIndex
						break
					}
				}
			}
		}
		return
	}

	idx, _ := s.find(zIndex, shapeID)
	count := 1
	if dir == edgeplan.DirectionIn {
		count = -1
	}
	if isOpaque && zIndex > s.zFloor {
		s.zFloor = zIndex
	}
	s.active = append(s.active, activeIntercept{})
	copy(s.active[idx+1:], s.active[idx:])
	s.active[idx] = activeIntercept{count: count, startX: x, zIndex: zIndex, shapeID: shapeID, isOpaque: isOpaque}
}

// clipStartX resets the recorded start position of every active shape, used
// when the sweep begins partway through the plan's x-range.
func (s *interceptState) clipStartX(x float64) {
	for i := range s.active {
		s.active[i].startX = x
	}
}
