package entity

// ErrMissingField is returned when a payload lacks a field the hydrator
// cannot proceed without (composite fields like date ranges and author
// lists; plain optional fields default to nil instead).
type ErrMissingField struct {
	Field string
}

func (e *ErrMissingField) Error() string {
	return "missing required field: " + e.Field
}

// ErrMalformedReference is returned when a URL expected to embed a
// numeric entity ID does not contain one.
type ErrMalformedReference struct {
	URL string
}

func (e *ErrMalformedReference) Error() string {
	return "no numeric ID in reference URL: " + e.URL
}

// ErrUnknownEntityKind is returned when a relation record declares a type
// discriminator other than "anime" or "manga".
type ErrUnknownEntityKind struct {
	Kind string
}

func (e *ErrUnknownEntityKind) Error() string {
	return "unknown entity kind: " + e.Kind
}
