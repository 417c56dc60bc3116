package datapoint

// Resolution selects the granularity of a forecast feed, which in turn
// determines the shape of its Rep records.
type Resolution string

const (
	ResolutionThreeHourly Resolution = "3hourly"
	ResolutionDaily       Resolution = "daily"
)

// ParseResolution validates a resolution string as received from a caller or
// the command line.
func ParseResolution(s string) (Resolution, error) {
	switch Resolution(s) {
	case ResolutionThreeHourly, ResolutionDaily:
		return Resolution(s), nil
	default:
		return "", &UnknownResolutionError{Value: Resolution(s)}
	}
}
