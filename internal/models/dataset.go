package models

import "fmt"

// Dataset identifies one of the two reference tables. The value doubles as
// the API path segment and the Mongo collection name.
type Dataset string

const (
	Transfer Dataset = "transferencia"
	Phaseout Dataset = "phaseout"
)

// Datasets returns every dataset in a fixed order.
func Datasets() []Dataset {
	return []Dataset{Transfer, Phaseout}
}

// ParseDataset accepts the dataset name as used on the command line.
func ParseDataset(name string) (Dataset, error) {
	switch Dataset(name) {
	case Transfer, Phaseout:
		return Dataset(name), nil
	}
	return "", fmt.Errorf("unknown dataset %q (use %q or %q)", name, Transfer, Phaseout)
}
