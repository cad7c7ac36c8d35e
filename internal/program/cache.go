// Package program implements the pixel program cache and pixel program data
// cache: registration of program kinds, reference-counted binding of program
// instances, and dispatch of bound instances against a span of destination
// pixels.
package program

import "github.com/arclight-gfx/rasterpipe/internal/color"

// ID identifies a registered program kind.
type ID int

// DataID identifies a bound program instance.
type DataID int

// XRange is a half-open pixel range [Start, End) on a scanline.
type XRange struct {
	Start, End int
}

// Width reports the number of pixels covered by the range.
func (r XRange) Width() int { return r.End - r.Start }

// BoundFunc is the erased callable a Kind produces once bound to concrete
// parameters: it paints dst[0:xRange.Width()] for scanline y.
type BoundFunc func(dst []color.PixelF32, xRange XRange, y float64)

// Kind is a registered program description. Implementations close over
// nothing; all per-instance state is supplied to Bind as data.
type Kind interface {
	// Bind produces the callable for one concrete instance of this program,
	// e.g. a specific flat colour or a specific texture + transform.
	Bind(data any) BoundFunc
}

// Stored is the handle returned by Cache.Register, used to bind new
// instances of that kind.
type Stored struct {
	id   ID
	kind Kind
}

// ID reports the program id this handle was registered under.
func (s Stored) ID() ID { return s.id }

// Cache assigns IDs to registered program kinds.
type Cache struct {
	kinds []Kind
}

// NewCache creates an empty pixel program cache.
func NewCache() *Cache {
	return &Cache{}
}

// Register assigns a new PixelProgramId to kind and returns a handle used to
// bind instances of it.
func (c *Cache) Register(kind Kind) Stored {
	id := ID(len(c.kinds))
	c.kinds = append(c.kinds, kind)
	return Stored{id: id, kind: kind}
}

// CreateDataCache returns an empty, reusable-across-frames data cache.
func (c *Cache) CreateDataCache() *DataCache {
	return &DataCache{}
}

// Bind writes a new bound program instance into an unused slot of dc
// (recycled if one is free, else appended) with a retain count of 1, and
// returns its DataID.
func (c *Cache) Bind(stored Stored, data any, dc *DataCache) DataID {
	fn := stored.kind.Bind(data)
	if n := len(dc.free); n > 0 {
		idx := dc.free[n-1]
		dc.free = dc.free[:n-1]
		dc.slots[idx] = slot{fn: fn, refs: 1}
		return DataID(idx)
	}
	dc.slots = append(dc.slots, slot{fn: fn, refs: 1})
	return DataID(len(dc.slots) - 1)
}

// Retain increments the reference count of a bound instance.
func (c *Cache) Retain(id DataID, dc *DataCache) {
	s := &dc.slots[id]
	if s.freed {
		panic("program: retain on a freed program data slot")
	}
	s.refs++
}

// Release decrements the reference count of a bound instance, freeing
// (recycling) the slot when the count reaches zero.
func (c *Cache) Release(id DataID, dc *DataCache) {
	s := &dc.slots[id]
	if s.freed || s.refs == 0 {
		panic("program: release underflow on program data slot")
	}
	s.refs--
	if s.refs == 0 {
		s.fn = nil
		s.freed = true
		dc.free = append(dc.free, int(id))
	}
}

// FreeAll resets the data cache for teardown, invalidating every DataID
// previously bound against it.
func (c *Cache) FreeAll(dc *DataCache) {
	dc.slots = dc.slots[:0]
	dc.free = dc.free[:0]
}

// Run dispatches the bound callable for id against dst. Running an id whose
// retain count has reached zero is a caller logic error; a freed slot is
// detected and the call is silently ignored rather than panicking. The
// caches take no locks of their own.
func (c *Cache) Run(id DataID, dc *DataCache, dst []color.PixelF32, xRange XRange, y float64) {
	s := dc.slots[id]
	if s.freed {
		return
	}
	s.fn(dst, xRange, y)
}

type slot struct {
	fn    BoundFunc
	refs  int
	freed bool
}

// DataCache is the reference-counted storage of bound program instances.
type DataCache struct {
	slots []slot
	free  []int
}

// Len reports how many slots (live and freed) the cache currently has.
func (dc *DataCache) Len() int { return len(dc.slots) }

// IsLive reports whether id currently refers to a live (non-freed) instance.
func (dc *DataCache) IsLive(id DataID) bool {
	if int(id) < 0 || int(id) >= len(dc.slots) {
		return false
	}
	return !dc.slots[id].freed
}
