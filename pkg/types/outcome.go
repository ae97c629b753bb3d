package types

// Outcome is the result of applying one worklist operation to a file.
// Dry runs produce the same outcome a real run would.
type Outcome string

const (
	// OutcomeAlreadyPresent means the fragment was detected; nothing written.
	OutcomeAlreadyPresent Outcome = "already_present"

	// OutcomeAppended means the fragment was appended to an existing file.
	OutcomeAppended Outcome = "appended"

	// OutcomeCreated means the file did not exist and was created with the fragment.
	OutcomeCreated Outcome = "created"

	// OutcomeUnchanged means the field already holds the target value.
	OutcomeUnchanged Outcome = "unchanged"

	// OutcomeUpdated means the field's declaration line was rewritten in place.
	OutcomeUpdated Outcome = "updated"

	// OutcomeAppendedAsNew means no usable declaration existed and one was appended.
	OutcomeAppendedAsNew Outcome = "appended_as_new"

	// OutcomeFailed means the operation could not be applied.
	OutcomeFailed Outcome = "failed"

	// OutcomeSkipped means an earlier failure on the same file stopped the run for it.
	OutcomeSkipped Outcome = "skipped"
)

// Mutates reports whether the outcome implies a change to file contents.
func (o Outcome) Mutates() bool {
	switch o {
	case OutcomeAppended, OutcomeCreated, OutcomeUpdated, OutcomeAppendedAsNew:
		return true
	}
	return false
}

// IsNoop reports whether the outcome is one of the idempotent no-change results.
func (o Outcome) IsNoop() bool {
	return o == OutcomeAlreadyPresent || o == OutcomeUnchanged
}
