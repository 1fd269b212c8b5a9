package mock

import gcsadmin "github.com/squareinnov8/gcs-admin"

var _ gcsadmin.DocumentProcessor = (*Processor)(nil)

// Processor is a mock implementation of gcsadmin.DocumentProcessor.
type Processor struct {
	ProcessFn func(raw *gcsadmin.RawDocument) (string, error)
}

func (p *Processor) Process(raw *gcsadmin.RawDocument) (string, error) {
	return p.ProcessFn(raw)
}
