package telemetry

import "github.com/renato0307/inboxsim/internal/ports"

// Stream names one telemetry output file
type Stream string

const (
	StreamEye      Stream = "eye"
	StreamInput    Stream = "input"
	StreamKeyboard Stream = "keyboard"
	StreamMouse    Stream = "mouse"
)

// Spec describes a stream's file layout and flush threshold
type Spec struct {
	Columns   []string
	Threshold int // Buffered rows are written once the buffer holds more than this
}

// Specs lists every stream and its layout
var Specs = map[Stream]Spec{
	StreamEye: {
		Columns: []string{"timestamp", "timestamp_device", "GazeLeftX", "GazeLeftY", "GazeRightX", "GazeRightY",
			"LeftPupilDiameter", "RightPupilDiameter", "LeftEyeDistance", "RightEyeDistance",
			"LeftEyePosX", "LeftEyePosY", "RightEyePosX", "RightEyePosY"},
		Threshold: 1000,
	},
	StreamInput: {
		Columns:   []string{"timestamp", "device", "event", "detail", "x", "y"},
		Threshold: 20,
	},
	StreamKeyboard: {
		Columns:   []string{"timestamp", "timestamp_device", "keys"},
		Threshold: 5,
	},
	StreamMouse: {
		Columns:   []string{"timestamp", "timestamp_device", "mouse_event", "x", "y", "button"},
		Threshold: 5,
	},
}

// Record field counts sent by the tracker
const (
	eyeFields      = 18
	keyboardFields = 6
	mouseFields    = 10
)

// Route maps a tracker record to its stream and output row, stamped with ts (epoch ms).
// Records of any other width are not telemetry and are dropped.
func Route(record []string, ts string) (Stream, []string, bool) {
	switch len(record) {
	case eyeFields:
		row := append([]string{ts, record[3]}, record[6:18]...)
		return StreamEye, row, true
	case mouseFields:
		return StreamMouse, []string{ts, record[3], record[5], record[6], record[7], record[8]}, true
	case keyboardFields:
		return StreamKeyboard, []string{ts, record[3], record[5]}, true
	default:
		return "", nil, false
	}
}

// Router implements ports.RecordRouter with Route
type Router struct{}

// Verify interface compliance at compile time
var _ ports.RecordRouter = Router{}

// Route implements ports.RecordRouter
func (Router) Route(record ports.TrackerRecord, ts string) (string, []string, bool) {
	stream, row, ok := Route(record, ts)
	return string(stream), row, ok
}
