// Package model defines the domain types for the zoopage CLI.
package model

// UnnamedAnimal is the card title used when a record has no usable name.
const UnnamedAnimal = "Unnamed Animal"

// Field labels used by both renderers. They are shared so the HTML cards and
// the text report always describe a record with the same words.
const (
	LabelName     = "Name"
	LabelDiet     = "Diet"
	LabelType     = "Type"
	LabelLocation = "Location"
)

// Animal is the typed view of one Animal Record from the input data.
//
// Every field is optional in the source data. An empty string means the
// field was absent or falsy, and renderers must omit it entirely rather
// than print an empty placeholder.
type Animal struct {
	// Name is the record's "name" value.
	Name string

	// Diet comes from characteristics.diet.
	Diet string

	// Type comes from characteristics.type.
	Type string

	// Location is the first element of "locations". Later elements are
	// never used.
	Location string
}

// Title returns the name to show on an HTML card, falling back to
// UnnamedAnimal when the record has no name.
func (a Animal) Title() string {
	if a.Name == "" {
		return UnnamedAnimal
	}
	return a.Name
}

// IsEmpty reports whether no field of the record carried a value.
func (a Animal) IsEmpty() bool {
	return a == Animal{}
}
