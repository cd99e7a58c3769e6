package dataset

// OutlierOption disables one of the conditions checked by
// Screen.IsOutlier. Every condition is enabled by default.
type OutlierOption func(*outlierChecks)

type outlierChecks struct {
	windowed     bool
	obstacle     bool
	beyondBounds bool
	incremental  bool
	noMatch      bool
}

func defaultOutlierChecks() outlierChecks {
	return outlierChecks{
		windowed:     true,
		obstacle:     true,
		beyondBounds: true,
		incremental:  true,
		noMatch:      true,
	}
}

// KeepWindowed keeps screens that display windowed content.
func KeepWindowed() OutlierOption {
	return func(c *outlierChecks) { c.windowed = false }
}

// KeepObstacle keeps screens obscured by an obstacle.
func KeepObstacle() OutlierOption {
	return func(c *outlierChecks) { c.obstacle = false }
}

// KeepBeyondBounds keeps screens that extend beyond the bounds of their
// video.
func KeepBeyondBounds() OutlierOption {
	return func(c *outlierChecks) { c.beyondBounds = false }
}

// KeepIncremental keeps screens whose keyrefs match no page in full.
func KeepIncremental() OutlierOption {
	return func(c *outlierChecks) { c.incremental = false }
}

// KeepNoMatch keeps screens without any keyref.
func KeepNoMatch() OutlierOption {
	return func(c *outlierChecks) { c.noMatch = false }
}
