package types

// OperationType names the two kinds of worklist steps.
type OperationType string

const (
	OperationFragment OperationType = "fragment"
	OperationField    OperationType = "field"
)

// Operation is one ordered step of a worklist: either a Fragment to
// ensure or a StructuredField to update.
type Operation struct {
	Type     OperationType
	Fragment Fragment
	Field    StructuredField
}

// FragmentOp wraps a fragment as a worklist step.
func FragmentOp(f Fragment) Operation {
	return Operation{Type: OperationFragment, Fragment: f}
}

// FieldOp wraps a structured field as a worklist step.
func FieldOp(f StructuredField) Operation {
	return Operation{Type: OperationField, Field: f}
}

// Label returns the label of the wrapped fragment or field.
func (o Operation) Label() string {
	if o.Type == OperationField {
		return o.Field.Label()
	}
	return o.Fragment.Label()
}

// Target is a configuration file together with the ordered steps to apply to it.
type Target struct {
	// Path is the absolute path of the configuration file.
	Path       string
	Operations []Operation
}
