package terrain

import (
	"math"

	"hexisland/scene"
)

// Dressing is the static scenery around the island.
type Dressing struct {
	Sea       *scene.Mesh // translucent water disc
	Container *scene.Mesh // open rim around the sea
	Floor     *scene.Mesh // base slab under everything
}

// Surroundings builds the sea, rim and floor for an island of maxHeight.
// Invalid heights yield empty meshes.
func Surroundings(maxHeight float64) Dressing {
	if maxHeight < 0 || math.IsNaN(maxHeight) || math.IsInf(maxHeight, 0) {
		return Dressing{
			Sea:       scene.NewMesh("Sea"),
			Container: scene.NewMesh("Container"),
			Floor:     scene.NewMesh("Floor"),
		}
	}
	h := float32(maxHeight)

	sea := scene.CreateCylinder(17, 17, h*0.2, 50, 1, false).Translate(0, h*0.1, 0)
	sea.Name = "Sea"

	container := scene.CreateCylinder(17.1, 17.1, h*0.25, 50, 1, true).Translate(0, h*0.125, 0)
	container.Name = "Container"

	floor := scene.CreateCylinder(19.5, 19.5, h*0.1, 50, 1, false).Translate(0, -h*0.01, 0)
	floor.Name = "Floor"

	return Dressing{Sea: sea, Container: container, Floor: floor}
}
