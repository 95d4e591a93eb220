package scene

import (
	"github.com/chewxy/math32"

	"hexisland/core"
	"hexisland/math"
)

// The primitives below share the layout conventions of the common web
// geometry helpers: the angle around the Y axis starts at +Z and a vertex on
// the rim sits at (r·sinθ, y, r·cosθ). Hex columns built with six segments
// are therefore pointy along Z, which the terrain tiling relies on.

// CreateCylinder generates an indexed cylinder, frustum or cone centred on the
// origin. A zero radiusTop or radiusBottom collapses that end to a point and
// drops the degenerate triangles and the cap there.
func CreateCylinder(radiusTop, radiusBottom, height float32, radialSegments, heightSegments int, openEnded bool) *Mesh {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if heightSegments < 1 {
		heightSegments = 1
	}

	var vertices []core.Vertex
	indices := []uint32{}
	halfHeight := height / 2
	slope := float32(0)
	if height != 0 {
		slope = (radiusBottom - radiusTop) / height
	}

	// Torso
	grid := make([][]uint32, heightSegments+1)
	for y := 0; y <= heightSegments; y++ {
		v := float32(y) / float32(heightSegments)
		radius := v*(radiusBottom-radiusTop) + radiusTop
		grid[y] = make([]uint32, radialSegments+1)

		for x := 0; x <= radialSegments; x++ {
			u := float32(x) / float32(radialSegments)
			sinT, cosT := math32.Sincos(u * 2 * math32.Pi)

			grid[y][x] = uint32(len(vertices))
			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{X: radius * sinT, Y: -v*height + halfHeight, Z: radius * cosT},
				Normal:   math.Vec3{X: sinT, Y: slope, Z: cosT}.Normalize(),
				UV:       math.Vec2{X: u, Y: 1 - v},
				Color:    core.ColorWhite,
			})
		}
	}

	for x := 0; x < radialSegments; x++ {
		for y := 0; y < heightSegments; y++ {
			a := grid[y][x]
			b := grid[y+1][x]
			c := grid[y+1][x+1]
			d := grid[y][x+1]

			if radiusTop > 0 || y != 0 {
				indices = append(indices, a, b, d)
			}
			if radiusBottom > 0 || y != heightSegments-1 {
				indices = append(indices, b, c, d)
			}
		}
	}

	if !openEnded {
		if radiusTop > 0 {
			vertices, indices = appendCap(vertices, indices, radiusTop, halfHeight, radialSegments, true)
		}
		if radiusBottom > 0 {
			vertices, indices = appendCap(vertices, indices, radiusBottom, halfHeight, radialSegments, false)
		}
	}

	return CreateMeshFromData("Cylinder", vertices, indices)
}

// appendCap adds a flat disc at ±halfHeight: one centre vertex per segment
// followed by the rim, so each wedge gets its own centre UV.
func appendCap(vertices []core.Vertex, indices []uint32, radius, halfHeight float32, segments int, top bool) ([]core.Vertex, []uint32) {
	sign := float32(-1)
	if top {
		sign = 1
	}
	normal := math.Vec3{Y: sign}

	centerStart := uint32(len(vertices))
	for x := 1; x <= segments; x++ {
		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{Y: halfHeight * sign},
			Normal:   normal,
			UV:       math.Vec2{X: 0.5, Y: 0.5},
			Color:    core.ColorWhite,
		})
	}

	rimStart := uint32(len(vertices))
	for x := 0; x <= segments; x++ {
		u := float32(x) / float32(segments)
		sinT, cosT := math32.Sincos(u * 2 * math32.Pi)
		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: radius * sinT, Y: halfHeight * sign, Z: radius * cosT},
			Normal:   normal,
			UV:       math.Vec2{X: cosT*0.5 + 0.5, Y: sinT*0.5*sign + 0.5},
			Color:    core.ColorWhite,
		})
	}

	for x := uint32(0); x < uint32(segments); x++ {
		c := centerStart + x
		i := rimStart + x
		if top {
			indices = append(indices, i, i+1, c)
		} else {
			indices = append(indices, i+1, i, c)
		}
	}
	return vertices, indices
}

// CreateHexColumn generates a closed hexagonal prism of circumradius 1 whose
// base sits on y = 0.
func CreateHexColumn(height float32) *Mesh {
	m := CreateCylinder(1, 1, height, 6, 1, false)
	m.Name = "HexColumn"
	return m.Translate(0, height*0.5, 0)
}

// CreateCone generates a cone with its apex up and a closed base.
func CreateCone(radius, height float32, segments int) *Mesh {
	m := CreateCylinder(0, radius, height, segments, 1, false)
	m.Name = "Cone"
	return m
}

// CreateSphere generates an indexed UV-sphere. The pole rows are not
// triangulated twice, so the index count is widthSegments·(heightSegments·2-2)·3.
func CreateSphere(radius float32, widthSegments, heightSegments int) *Mesh {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	var vertices []core.Vertex
	indices := []uint32{}
	grid := make([][]uint32, heightSegments+1)

	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		uOffset := float32(0)
		switch iy {
		case 0:
			uOffset = 0.5 / float32(widthSegments)
		case heightSegments:
			uOffset = -0.5 / float32(widthSegments)
		}
		sinTheta, cosTheta := math32.Sincos(v * math32.Pi)
		grid[iy] = make([]uint32, widthSegments+1)

		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			sinPhi, cosPhi := math32.Sincos(u * 2 * math32.Pi)

			position := math.Vec3{
				X: -radius * cosPhi * sinTheta,
				Y: radius * cosTheta,
				Z: radius * sinPhi * sinTheta,
			}
			grid[iy][ix] = uint32(len(vertices))
			vertices = append(vertices, core.Vertex{
				Position: position,
				Normal:   position.Normalize(),
				UV:       math.Vec2{X: u + uOffset, Y: 1 - v},
				Color:    core.ColorWhite,
			})
		}
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			if iy != 0 {
				indices = append(indices, a, b, d)
			}
			if iy != heightSegments-1 {
				indices = append(indices, b, c, d)
			}
		}
	}

	return CreateMeshFromData("Sphere", vertices, indices)
}

// CreatePlane generates a flat plane on XZ facing +Y, centred on the origin.
// UV (0,0) is the -X,-Z corner.
func CreatePlane(width, depth float32, widthSegments, depthSegments int) *Mesh {
	if widthSegments < 1 {
		widthSegments = 1
	}
	if depthSegments < 1 {
		depthSegments = 1
	}

	var vertices []core.Vertex
	var indices []uint32

	halfW := width / 2.0
	halfD := depth / 2.0

	for z := 0; z <= depthSegments; z++ {
		for x := 0; x <= widthSegments; x++ {
			u := float32(x) / float32(widthSegments)
			v := float32(z) / float32(depthSegments)

			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{X: -halfW + u*width, Y: 0, Z: -halfD + v*depth},
				Normal:   math.Vec3Up,
				UV:       math.Vec2{X: u, Y: v},
				Color:    core.ColorWhite,
			})
		}
	}

	row := uint32(widthSegments + 1)
	for z := 0; z < depthSegments; z++ {
		for x := 0; x < widthSegments; x++ {
			topLeft := uint32(z)*row + uint32(x)
			topRight := topLeft + 1
			bottomLeft := topLeft + row
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, topRight)
			indices = append(indices, topRight, bottomLeft, bottomRight)
		}
	}

	return CreateMeshFromData("Plane", vertices, indices)
}
