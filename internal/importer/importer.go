package importer

import (
	"io"

	"github.com/jpmercado/infratrack/internal/project"
)

type Source string

const (
	SourcePDIP Source = "pdip"
)

type Importer interface {
	Parse(r io.Reader) ([]project.CreateParams, error)
}
