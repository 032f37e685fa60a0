package thumbnail

import (
	"image"
	"image/color"
	"sync"
)

// Cell is one terminal cell drawn as an upper half block: Top is the foreground, Bottom the background
type Cell struct {
	Top    color.NRGBA
	Bottom color.NRGBA
}

// Cells is a cols×rows grid of half-block cells
type Cells struct {
	Cols, Rows int
	Grid       []Cell
}

// At returns the cell at (col, row); out of range returns the zero cell
func (c Cells) At(col, row int) Cell {
	if col < 0 || row < 0 || col >= c.Cols || row >= c.Rows {
		return Cell{}
	}
	return c.Grid[row*c.Cols+col]
}

// ToCells scales img to cols×(2·rows) pixels and packs pixel pairs into cells
func ToCells(img image.Image, cols, rows int) Cells {
	if cols <= 0 || rows <= 0 {
		return Cells{}
	}
	px := Cover(img, cols, rows*2)
	out := Cells{Cols: cols, Rows: rows, Grid: make([]Cell, cols*rows)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.Grid[r*cols+c] = Cell{
				Top:    px.NRGBAAt(c, 2*r),
				Bottom: px.NRGBAAt(c, 2*r+1),
			}
		}
	}
	return out
}

type cacheKey struct {
	key        string
	cols, rows int
}

// Cache memoizes decoded sources and their cell grids per size
type Cache struct {
	mu      sync.Mutex
	sources map[string]image.Image
	grids   map[cacheKey]Cells
	failed  map[string]error
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{
		sources: make(map[string]image.Image),
		grids:   make(map[cacheKey]Cells),
		failed:  make(map[string]error),
	}
}

// Put registers an already decoded source under key
func (c *Cache) Put(key string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources[key] = img
	delete(c.failed, key)
	for k := range c.grids {
		if k.key == key {
			delete(c.grids, k)
		}
	}
}

// Source returns the image for key, loading path on first use
// A failed load is remembered so it is not retried every frame
func (c *Cache) Source(key, path string) (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if img, ok := c.sources[key]; ok {
		return img, nil
	}
	if err, ok := c.failed[key]; ok {
		return nil, err
	}
	img, err := Load(path)
	if err != nil {
		c.failed[key] = err
		return nil, err
	}
	c.sources[key] = img
	return img, nil
}

// Cells returns the grid for key at the given size, building it from the cached source
func (c *Cache) Cells(key string, cols, rows int) (Cells, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := cacheKey{key, cols, rows}
	if g, ok := c.grids[k]; ok {
		return g, true
	}
	src, ok := c.sources[key]
	if !ok {
		return Cells{}, false
	}
	g := ToCells(src, cols, rows)
	c.grids[k] = g
	return g, true
}
