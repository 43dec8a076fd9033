package ports

// InputSource loads raw puzzle text from a source (e.g., filesystem).
type InputSource interface {
	Load(path string) (string, error)
}
