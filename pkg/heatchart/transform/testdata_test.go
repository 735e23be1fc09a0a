package transform

import "github.com/meltlab/heatchart-go/pkg/heatchart/models"

func conc(v float64) *float64 { return &v }

func measurement(melt, element, position string, v float64) models.Measurement {
	return models.Measurement{AlloyCode: "140", MeltID: melt, Element: element, Position: position, Conc: conc(v)}
}

// sampleReport is the two-melt aluminium report used across tests.
func sampleReport() *models.Report {
	return &models.Report{
		Source: "140V.csv",
		Measurements: []models.Measurement{
			measurement("140B001", "Al", "Beg", 1.0),
			measurement("140B001", "Al", "End", 1.2),
			measurement("140B002", "Al", "Beg", 0.9),
			measurement("140B002", "Al", "End", 1.1),
		},
	}
}
