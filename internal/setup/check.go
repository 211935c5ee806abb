package setup

import "fmt"

// Issue is one problem found while checking an existing env file.
type Issue struct {
	Key    string
	Reason string
}

func (i Issue) String() string { return fmt.Sprintf("%s: %s", i.Key, i.Reason) }

// Check validates a parsed env file against the field catalog. Optional
// fields may be absent; everything else must be present and must satisfy
// its field validator. Keys outside the catalog are ignored, since env
// files routinely carry values for other tools.
func Check(values map[string]string) []Issue {
	var issues []Issue
	for _, sec := range Sections() {
		for _, f := range sec.Fields {
			v, ok := values[f.Key]
			if !ok {
				if !f.Optional {
					issues = append(issues, Issue{Key: f.Key, Reason: "missing"})
				}
				continue
			}
			if f.Validate != nil {
				if err := f.Validate(v); err != nil {
					issues = append(issues, Issue{Key: f.Key, Reason: err.Error()})
				}
			}
		}
	}
	return issues
}
