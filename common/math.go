package common

import (
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Perspective creates a perspective projection matrix for WebGPU clip space, where depth
// spans [0, 1] rather than the [-1, 1] range mgl32.Perspective produces.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// BuildModelMatrix constructs a model matrix from position, Euler rotation, and uniform or
// per-axis scale. The rotation order is Y * X * Z (yaw-pitch-roll), matching the scene's
// convention for decorative instances and roaming entities.
//
// Parameters:
//   - pos: translation in world space
//   - rot: rotation angles in radians around X, Y and Z
//   - scale: scale factors along each axis
//
// Returns:
//   - mgl32.Mat4: the column-major model matrix
func BuildModelMatrix(pos, rot, scale mgl32.Vec3) mgl32.Mat4 {
	cx := float32(math.Cos(float64(rot.X())))
	sx := float32(math.Sin(float64(rot.X())))
	cy := float32(math.Cos(float64(rot.Y())))
	sy := float32(math.Sin(float64(rot.Y())))
	cz := float32(math.Cos(float64(rot.Z())))
	sz := float32(math.Sin(float64(rot.Z())))

	var out mgl32.Mat4

	// R = Ry * Rx * Rz, column-major
	out[0] = (cy*cz + sy*sx*sz) * scale.X()
	out[1] = (cx * sz) * scale.X()
	out[2] = (-sy*cz + cy*sx*sz) * scale.X()

	out[4] = (cy*-sz + sy*sx*cz) * scale.Y()
	out[5] = (cx * cz) * scale.Y()
	out[6] = (sy*sz + cy*sx*cz) * scale.Y()

	out[8] = (sy * cx) * scale.Z()
	out[9] = (-sx) * scale.Z()
	out[10] = (cy * cx) * scale.Z()

	out[12] = pos.X()
	out[13] = pos.Y()
	out[14] = pos.Z()
	out[15] = 1
	return out
}

// ViewMatrix builds a right-handed look-at view matrix. A degenerate configuration
// (eye == center, or forward parallel to up) falls back to the identity so the camera never
// produces NaNs.
//
// Parameters:
//   - eye: camera position in world space
//   - center: point the camera looks at
//   - up: up vector (typically 0,1,0)
//
// Returns:
//   - mgl32.Mat4: the view matrix
func ViewMatrix(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	forward := center.Sub(eye)
	if forward.Len() == 0 || forward.Cross(up).Len() == 0 {
		return mgl32.Ident4()
	}
	return mgl32.LookAtV(eye, center, up)
}
