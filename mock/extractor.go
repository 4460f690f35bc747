package mock

import "github.com/jgrzelak/sitecrawl"

var _ sitecrawl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitecrawl.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*sitecrawl.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*sitecrawl.ExtractResult, error) {
	return e.ExtractFn(html)
}
