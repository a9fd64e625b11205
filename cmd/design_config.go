package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/irt-sim/irt-sim/irt"
)

// DesignSpec is the top-level simulation design.
// Loaded from YAML via LoadDesignSpec(path).
type DesignSpec struct {
	Seed        int64      `yaml:"seed"`
	Respondents int        `yaml:"respondents"`
	Model       string     `yaml:"model"`
	Theta       ThetaSpec  `yaml:"theta"`
	Items       []ItemSpec `yaml:"items"`
}

// ThetaSpec parameterizes the latent trait population.
type ThetaSpec struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
}

// ItemSpec defines one item's generating parameters.
type ItemSpec struct {
	Alpha    float64   `yaml:"alpha"`
	Betas    []float64 `yaml:"betas"`
	Guessing *float64  `yaml:"guessing,omitempty"` // 3pl only
}

// LoadDesignSpec reads and parses a design YAML file. Defaults are
// applied here; shape and value validation happens in Bank.
func LoadDesignSpec(path string) (*DesignSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read design spec: %w", err)
	}
	var spec DesignSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse design spec %s: %w", path, err)
	}
	if spec.Model == "" {
		spec.Model = string(irt.ModelGPCM)
	}
	if spec.Theta.StdDev == 0 {
		spec.Theta.StdDev = 1
	}
	if spec.Respondents == 0 {
		spec.Respondents = 1000
	}
	return &spec, nil
}

// Bank converts the spec's item list into a validated ItemBank.
func (d *DesignSpec) Bank() (*irt.ItemBank, error) {
	kind, err := irt.ParseModelKind(d.Model)
	if err != nil {
		return nil, err
	}
	alphas := make([]float64, len(d.Items))
	betas := make([][]float64, len(d.Items))
	var guessing []float64
	for j, item := range d.Items {
		alphas[j] = item.Alpha
		betas[j] = item.Betas
		if item.Guessing != nil {
			if guessing == nil {
				guessing = make([]float64, len(d.Items))
			}
			guessing[j] = *item.Guessing
		}
	}
	return irt.NewItemBank(kind, alphas, betas, guessing)
}
