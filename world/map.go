package world

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

type tileIndex int

const (
	groundTile tileIndex = iota
	wallTile
	spawnTile
)

var tileIndices = []Tile{
	groundTile: {},
	wallTile:   {Dense: true},
	spawnTile:  {Spawn: true},
}

type Tile struct {
	Dense bool
	Spawn bool
}

// Map is a rectangular arena read from a text file: width, height, then one
// row per line using '.' for ground, '#' for walls and 'S' for spawn points.
type Map struct {
	Tiles    []tileIndex
	Width    int64
	Height   int64
	TileSize float32
}

// DefaultMap mirrors the reference arena: a flat plane with two spawn points.
const DefaultMap = `10
10
..........
..........
..........
..........
.....S....
..........
..........
..........
.........S
..........
`

const (
	groundDepth = 0.5
	wallHeight  = 1
	spawnHeight = 0.5
)

func (m *Map) ForEach(callback func(x, y int64, tile Tile)) {
	for y := int64(0); y < m.Height; y++ {
		for x := int64(0); x < m.Width; x++ {
			callback(x, y, tileIndices[m.Tiles[m.Width*y+x]])
		}
	}
}

// Center returns the arena position of the middle of tile (x, y).
func (m *Map) Center(x, y int64) (float32, float32) {
	cx := (float32(x) + 0.5 - float32(m.Width)/2) * m.TileSize
	cz := (float32(y) + 0.5 - float32(m.Height)/2) * m.TileSize
	return cx, cz
}

func LoadMap(contents string, tileSize float32) (*Map, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %v", tileSize)
	}
	scanner := bufio.NewScanner(strings.NewReader(contents))

	scanner.Scan()
	width, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("map width: %w", err)
	}

	scanner.Scan()
	height, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("map height: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("map size %dx%d", width, height)
	}

	tiles := make([]tileIndex, 0, width*height)
	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \r\t")
		if line == "" {
			continue
		}
		if len(line) != width {
			return nil, fmt.Errorf("map row %d: got %d tiles, want %d", row, len(line), width)
		}
		for _, item := range line {
			switch item {
			case '.':
				tiles = append(tiles, groundTile)
			case '#':
				tiles = append(tiles, wallTile)
			case 'S':
				tiles = append(tiles, spawnTile)
			default:
				return nil, fmt.Errorf("map row %d: unknown tile %q", row, item)
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if row != height {
		return nil, fmt.Errorf("map has %d rows, want %d", row, height)
	}

	return &Map{
		Tiles:    tiles,
		Width:    int64(width),
		Height:   int64(height),
		TileSize: tileSize,
	}, nil
}

// Build places the arena in w: one paintable ground slab whose top sits at
// y=0, a static block per wall tile, and the spawn points in row-major order.
func (m *Map) Build(w *World) {
	ground := w.Spawn()
	w.Transforms.Set(ground, NewTransform(0, -groundDepth/2, 0))
	slab := BoxCollider(float32(m.Width)*m.TileSize, groundDepth, float32(m.Height)*m.TileSize)
	slab.Friction = 0.9
	w.Colliders.Set(ground, slab)
	w.Surfaces.Set(ground, PaintableSurface{})

	m.ForEach(func(x, y int64, tile Tile) {
		cx, cz := m.Center(x, y)
		switch {
		case tile.Dense:
			wall := w.Spawn()
			w.Transforms.Set(wall, NewTransform(cx, wallHeight/2, cz))
			w.Colliders.Set(wall, BoxCollider(m.TileSize, wallHeight, m.TileSize))
		case tile.Spawn:
			w.AddSpawnPoint(NewTransform(cx, spawnHeight, cz))
		}
	})
}
