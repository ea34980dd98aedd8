package constant

import "time"

// Paddle Strokes
const (
	// PaddleRotationForce is the torque impulse magnitude about the vertical axis per stroke
	PaddleRotationForce = 0.9

	// PaddleForwardForce is the linear impulse magnitude along the stroke direction
	PaddleForwardForce = 28.0

	// PaddleLateralScale biases the stroke direction away from the paddling side
	// Positive for a left stroke, negated for a right stroke
	PaddleLateralScale = 0.35

	// PaddleCooldown is the lockout after a stroke; held keys re-fire at this rate
	PaddleCooldown = 350 * time.Millisecond
)

// Camera Follow
const (
	// CameraPositionSmoothing is the pivot position interpolation fraction per frame
	CameraPositionSmoothing = 0.1

	// CameraOrientationSmoothing is the pivot orientation slerp fraction per frame
	// Smaller than position smoothing so rotation catches up slower on quick turns
	CameraOrientationSmoothing = 0.05

	// CameraHeight is the rig's fixed local height above the pivot
	CameraHeight = 4.5

	// CameraBackDistance is the rig's fixed local distance behind the pivot
	CameraBackDistance = 7.0

	// CameraLookAhead is how far ahead of the pivot origin the rig aims
	CameraLookAhead = 1.5
)
