package output

import (
	"encoding/json"

	"github.com/meltlab/heatchart-go/pkg/heatchart/models"
)

// ToJSON serializes a run summary.
func ToJSON(s *models.RunSummary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}
