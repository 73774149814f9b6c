package models

// registry collects every generated model for automigration.
var registry []any

// Register adds a model to the automigration registry.
func Register(model any) {
	registry = append(registry, model)
}

// Registry returns every registered model.
func Registry() []any {
	return registry
}
