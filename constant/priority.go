package constant

// System priorities, lower runs first within an update frame
const (
	PriorityPaddle = 10
	PriorityCamera = 20
	PriorityAudio  = 30
)
