package importer

import (
	"fmt"
	"io"

	"github.com/jpmercado/infratrack/internal/importer/pdip"
	"github.com/jpmercado/infratrack/internal/project"
)

type Service struct {
	pdipImporter Importer
}

func NewService() *Service {
	return &Service{
		pdipImporter: pdip.New(),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]project.CreateParams, error) {
	var importer Importer

	switch source {
	case SourcePDIP:
		importer = s.pdipImporter
	default:
		return nil, fmt.Errorf("unknown source: %s", source)
	}

	return importer.Parse(r)
}
