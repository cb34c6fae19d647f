package engine

// Options configures an engine
type Options struct {
	// MaxNodes caps the number of live nodes. Zero means unlimited.
	MaxNodes int
}
