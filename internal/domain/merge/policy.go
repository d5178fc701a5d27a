// Package merge holds the pure decision rules of the venue merge: primary
// selection, the closed set of overridable fields, and the field policy.
// Keeping them here, outside the transaction, makes them independently
// testable and lets invalid requests fail before any write begins.
package merge

import (
	"bytes"

	"quizmap/internal/domain/entity"
	"quizmap/internal/errors"
)

// ErrFieldNotOverridable is returned when a field override names a field
// outside the allow-list.
var ErrFieldNotOverridable = errors.New("field is not overridable")

// OverridableField enumerates the venue fields a reviewer may explicitly take
// from the secondary venue instead of the default policy. Slug and name are
// deliberately absent: the primary always keeps its URL identity.
type OverridableField string

// Overridable fields.
const (
	FieldWebsite     OverridableField = "website"
	FieldPhone       OverridableField = "phone"
	FieldAddress     OverridableField = "address"
	FieldPostcode    OverridableField = "postcode"
	FieldFacebook    OverridableField = "facebook"
	FieldInstagram   OverridableField = "instagram"
	FieldDescription OverridableField = "description"
)

// ParseOverridableField validates a requested override against the allow-list.
func ParseOverridableField(name string) (OverridableField, error) {
	switch f := OverridableField(name); f {
	case FieldWebsite, FieldPhone, FieldAddress, FieldPostcode,
		FieldFacebook, FieldInstagram, FieldDescription:
		return f, nil
	default:
		return "", errors.Wrapf(ErrFieldNotOverridable, "field %q", name)
	}
}

// ParseOverridableFields validates a list of requested overrides.
// The first invalid name fails the whole request.
func ParseOverridableFields(names []string) ([]OverridableField, error) {
	fields := make([]OverridableField, 0, len(names))
	for _, name := range names {
		f, err := ParseOverridableField(name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return fields, nil
}

// ChoosePrimary selects which of two venues survives a merge when the caller
// does not specify. The older record wins; a venue with a slug beats one
// without; ties break on the smaller id so the choice is stable.
func ChoosePrimary(a, b *entity.Venue) (primary, secondary *entity.Venue) {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		if a.CreatedAt.Before(b.CreatedAt) {
			return a, b
		}

		return b, a
	}

	if (a.Slug != "") != (b.Slug != "") {
		if a.Slug != "" {
			return a, b
		}

		return b, a
	}

	if bytes.Compare(a.ID[:], b.ID[:]) <= 0 {
		return a, b
	}

	return b, a
}

// ApplyFieldPolicy merges the secondary venue's fields into the primary.
// Default direction keeps the primary's value and only fills gaps from the
// secondary; fields named in overrides take the secondary's value
// unconditionally. The primary's slug and name are never touched. Returns the
// fields whose final value came from the secondary, for the audit record.
func ApplyFieldPolicy(primary, secondary *entity.Venue, overrides []OverridableField) []string {
	overridden := make(map[OverridableField]bool, len(overrides))
	for _, f := range overrides {
		overridden[f] = true
	}

	var taken []string
	apply := func(field OverridableField, dst *string, src string) {
		if overridden[field] || (*dst == "" && src != "") {
			if src != *dst {
				*dst = src
				taken = append(taken, string(field))
			}
		}
	}

	apply(FieldWebsite, &primary.Website, secondary.Website)
	apply(FieldPhone, &primary.Phone, secondary.Phone)
	apply(FieldAddress, &primary.Address, secondary.Address)
	apply(FieldPostcode, &primary.Postcode, secondary.Postcode)
	apply(FieldFacebook, &primary.Facebook, secondary.Facebook)
	apply(FieldInstagram, &primary.Instagram, secondary.Instagram)
	apply(FieldDescription, &primary.Description, secondary.Description)

	return taken
}

// CombineImages unions the primary's and secondary's image sets, de-duplicated
// by source URL. Secondary images keep their relative order after the
// primary's. No image without a duplicate is ever dropped.
func CombineImages(primary, secondary []*entity.VenueImage) []*entity.VenueImage {
	seen := make(map[string]bool, len(primary)+len(secondary))
	combined := make([]*entity.VenueImage, 0, len(primary)+len(secondary))

	for _, img := range primary {
		if img.SourceURL != "" && seen[img.SourceURL] {
			continue
		}
		seen[img.SourceURL] = true
		combined = append(combined, img)
	}
	for _, img := range secondary {
		if img.SourceURL != "" && seen[img.SourceURL] {
			continue
		}
		seen[img.SourceURL] = true
		combined = append(combined, img)
	}

	for i, img := range combined {
		img.Position = i
	}

	return combined
}
