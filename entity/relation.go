package entity

import (
	"sort"
	"strings"
)

// Relation is a related-entity reference, tagged with how it relates to
// the parent entry ("Sequel", "Adaptation", ...). It is a two-case
// variant: the concrete value is either a *PartialAnime or a
// *PartialManga, distinguishable through EntityKind.
type Relation interface {
	// EntityKind reports the referenced entity's kind, "anime" or "manga".
	EntityKind() string
}

// NewRelation builds the lightweight reference matching the record's
// declared type discriminator. The record is expected to carry its
// "relation" label already attached.
func NewRelation(rec Raw) (Relation, error) {
	kind := rec.optString("type")
	if kind == nil {
		return nil, &ErrMissingField{Field: "type"}
	}
	switch strings.ToLower(*kind) {
	case "anime":
		return newPartialAnimeFromRelation(rec)
	case "manga":
		return newPartialMangaFromRelation(rec)
	}
	return nil, &ErrUnknownEntityKind{Kind: *kind}
}

// buildRelated flattens a relation-type -> records mapping into a single
// list, tagging each record with its relation label before construction.
// Labels are walked in sorted order so the result is deterministic;
// record order within a label follows the payload.
func buildRelated(raw Raw) ([]Relation, error) {
	v, ok := raw["related"]
	if !ok {
		return nil, &ErrMissingField{Field: "related"}
	}
	m, ok := asRaw(v)
	if !ok {
		return nil, &ErrMissingField{Field: "related"}
	}

	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	related := make([]Relation, 0)
	for _, label := range labels {
		for _, rec := range m.optMaps(label) {
			tagged := rec.clone()
			tagged["relation"] = label
			rel, err := NewRelation(tagged)
			if err != nil {
				return nil, err
			}
			related = append(related, rel)
		}
	}
	return related, nil
}
