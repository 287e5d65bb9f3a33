package deps

import (
	"fmt"

	"github.com/alnah/go-licensedoc/internal/yamlutil"
)

// dependencyList is the YAML document accepted by ParseList:
//
//	dependencies:
//	  - name: serde
//	    version: 1.0.197
//	    license: MIT OR Apache-2.0
//	    authors: Erick Tryzelaar|David Tolnay
//	    repository: https://github.com/serde-rs/serde
type dependencyList struct {
	Dependencies []Dependency `yaml:"dependencies"`
}

// ParseList decodes a YAML dependency list. Entries keep their order;
// each must carry a name and a version.
func ParseList(data []byte) ([]Dependency, error) {
	var list dependencyList
	if err := yamlutil.UnmarshalStrict(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDependencyList, err)
	}

	for i, dep := range list.Dependencies {
		if dep.Name == "" {
			return nil, fmt.Errorf("%w: dependencies[%d]: name is required", ErrDependencyList, i)
		}
		if dep.Version == "" {
			return nil, fmt.Errorf("%w: dependencies[%d] (%s): version is required", ErrDependencyList, i, dep.Name)
		}
	}
	return list.Dependencies, nil
}
