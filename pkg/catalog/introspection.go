package catalog

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	StoreType string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	storeType := "store"
	if comp, ok := s.store.(introspection.Component); ok {
		storeType = comp.ComponentType()
	}
	return ServiceState{StoreType: storeType}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "catalog-service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
