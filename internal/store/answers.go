package store

import (
	"fmt"

	"solarenroll/internal/wizard"
)

// Answers is a prepared set of wizard inputs, one block per step.
type Answers struct {
	Personal        wizard.PersonalUpdate `yaml:"personal"`
	Address         wizard.AddressUpdate  `yaml:"address"`
	Utility         wizard.UtilityUpdate  `yaml:"utility"`
	ValidateAddress bool                  `yaml:"validate_address"`
}

// ReadAnswers loads an answers file.
func ReadAnswers(path string) (Answers, error) {
	var a Answers
	if err := readYAML(path, &a); err != nil {
		return Answers{}, fmt.Errorf("read answers %s: %w", path, err)
	}
	return a, nil
}
