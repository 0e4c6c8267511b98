package extract

// Extractor turns a raw capture into a Summary.
// Implementations must be deterministic and free of side effects.
type Extractor interface {
	Extract(text string) (Summary, error)
}

// PatternExtractor matches the known minified bundle shape with fixed
// regular expressions. It is the default strategy.
type PatternExtractor struct{}

func (PatternExtractor) Extract(text string) (Summary, error) {
	return Extract(text)
}
