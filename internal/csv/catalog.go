package csv

import (
	"fmt"

	"hermes/internal/models"
)

// Catalog serves both datasets straight from their source files. Nothing is
// cached: every call re-opens and re-parses the file.
type Catalog struct {
	transfer *Parser
	phaseout *Parser
}

func NewCatalog(transfer, phaseout *Parser) *Catalog {
	return &Catalog{transfer: transfer, phaseout: phaseout}
}

func (c *Catalog) Transfers() ([]models.TransferRecord, error) {
	return c.transfer.ParseTransfers()
}

func (c *Catalog) Phaseouts() ([]models.PhaseoutRecord, error) {
	return c.phaseout.ParsePhaseouts()
}

// Documents loads a dataset as a list of generic documents for export.
func (c *Catalog) Documents(dataset models.Dataset) ([]interface{}, error) {
	switch dataset {
	case models.Transfer:
		records, err := c.Transfers()
		if err != nil {
			return nil, err
		}
		docs := make([]interface{}, len(records))
		for i, r := range records {
			docs[i] = r
		}
		return docs, nil
	case models.Phaseout:
		records, err := c.Phaseouts()
		if err != nil {
			return nil, err
		}
		docs := make([]interface{}, len(records))
		for i, r := range records {
			docs[i] = r
		}
		return docs, nil
	}
	return nil, fmt.Errorf("unknown dataset %q", dataset)
}
