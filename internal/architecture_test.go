package internal

import (
	"github.com/kcmvp/archunit"
	"testing"
)

func TestArchitecture(t *testing.T) {
	domain := archunit.Packages("domain", []string{".../internal/domain/..."})
	adapters := archunit.Packages("adapters", []string{".../internal/adapters/..."})

	// Rule 1: Domain should not depend on adapters
	if err := domain.ShouldNotReferLayers(adapters); err != nil {
		t.Errorf("Architecture violation: Domain depends on Adapters: %v", err)
	}
}

func TestPorts(t *testing.T) {
	// The domain talks to Home Assistant and the position tool through ports only
	ports := archunit.Packages("ports", []string{".../internal/ports"})
	if len(ports.Packages()) == 0 {
		t.Error("No ports package found")
	}
}
