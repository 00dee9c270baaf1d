package gltext

import (
	"math"

	"github.com/golang/freetype/truetype"
)

// floatsPerVert is the interleaved vertex layout: position x,y then
// texture u,v.
const floatsPerVert = 4

// pageRange addresses one contiguous run of vertices in a layout that
// samples a single atlas page. start and count are in vertices, ready
// for DrawArrays.
type pageRange struct {
	page  uint32
	start int32
	count int32
}

// layout is the device-independent result of laying out a string:
// interleaved vertex data grouped by atlas page, the draw ranges, and
// the ink bounding box in pen-relative screen coordinates (Y down).
type layout struct {
	verts  []float32
	ranges []pageRange
	box    BBox
}

// pageBatch accumulates the vertices of one page while walking the
// string. Batches keep the order in which their page was first
// encountered so identical strings produce identical buffers.
type pageBatch struct {
	page  uint32
	verts []float32
}

// buildLayout walks the decoded string with a pen starting at the
// baseline origin, applying kerning and advances, and emits six
// vertices (two triangles) per glyph. Newlines reset the pen to the
// start of the next line and break kerning. Pages are built on demand.
func (f *Font) buildLayout(runes []rune) layout {
	var (
		batches []pageBatch
		slot    = map[uint32]int{}

		penX, penY float32
		prev       truetype.Index

		minX, minY float32 = math.MaxFloat32, math.MaxFloat32
		maxX, maxY float32 = -math.MaxFloat32, -math.MaxFloat32
	)

	cellW, cellH := f.rz.cell.width(), f.rz.cell.height()
	texW := float32(cellW * pageCols)
	texH := float32(cellH * pageRows)

	nverts := 0
	for _, r := range runes {
		if r == '\n' {
			penX = 0
			penY += f.rz.lineHeight
			prev = 0
			continue
		}

		pageNum := uint32(r) >> 8
		page := f.getPage(pageNum)
		idx := int(uint32(r) & 0xFF)
		rec := &page.records[idx]

		if prev != 0 && rec.index != 0 {
			penX += float32(f.rz.kern(prev, rec.index)) / 64
		}

		// Quad corners in screen space. The ink box is baseline
		// relative with Y up, so its upper edge subtracts.
		ulX := penX + float32(rec.box.ulX)
		ulY := penY - float32(rec.box.ulY)
		lrX := penX + float32(rec.box.lrX)
		lrY := penY - float32(rec.box.lrY)

		col := idx % pageCols
		row := idx / pageCols
		u0 := (float32(col*cellW) + float32(rec.originX)) / texW
		v0 := (float32(row*cellH) + float32(rec.originY)) / texH
		u1 := u0 + float32(rec.box.width())/texW
		v1 := v0 + float32(rec.box.height())/texH

		bi, ok := slot[pageNum]
		if !ok {
			bi = len(batches)
			slot[pageNum] = bi
			batches = append(batches, pageBatch{page: pageNum})
		}
		b := &batches[bi]
		b.verts = append(b.verts,
			ulX, lrY, u0, v1, // lower left
			lrX, lrY, u1, v1, // lower right
			ulX, ulY, u0, v0, // upper left
			ulX, ulY, u0, v0,
			lrX, lrY, u1, v1,
			lrX, ulY, u1, v0, // upper right
		)
		nverts += 6

		minX = min(minX, ulX)
		minY = min(minY, ulY)
		maxX = max(maxX, lrX)
		maxY = max(maxY, lrY)

		penX += float32(rec.advance) / 64
		prev = rec.index
	}

	out := layout{}
	if nverts == 0 {
		return out
	}
	out.box = BBox{Min: Vec2{minX, minY}, Max: Vec2{maxX, maxY}}
	out.verts = make([]float32, 0, nverts*floatsPerVert)
	var start int32
	for _, b := range batches {
		count := int32(len(b.verts) / floatsPerVert)
		out.ranges = append(out.ranges, pageRange{page: b.page, start: start, count: count})
		out.verts = append(out.verts, b.verts...)
		start += count
	}
	return out
}
