package export

import (
	"github.com/f1vefour/carbide/scene"
	"github.com/f1vefour/carbide/types"
)

// Convert a right-handed host camera transform into the renderer's
// left-handed space. The flips are applied on the right so they act in the
// camera's local space, preserving its position and view direction. Only the
// camera undergoes this correction; object transforms are serialized as-is.
func cameraTransform(matrixWorld types.Mat4) types.Mat4 {
	return matrixWorld.
		Mul4(types.AxisScale4(-1, types.Vec3{0, 0, 1})).
		Mul4(types.AxisScale4(-1, types.Vec3{1, 0, 0}))
}

// Apply the host resolution percentage and floor to integers. Pixel aspect
// ratio and render border cropping are not taken into account.
func renderResolution(settings scene.RenderSettings) [2]int {
	scale := float64(settings.ResolutionPercentage) / 100.0
	return [2]int{
		int(float64(settings.ResolutionX) * scale),
		int(float64(settings.ResolutionY) * scale),
	}
}
