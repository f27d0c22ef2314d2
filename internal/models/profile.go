package models

// FieldMap maps schema-defined field names to their string values.
type FieldMap map[string]string

// Clone returns an independent copy. A nil map clones to an empty one.
func (m FieldMap) Clone() FieldMap {
	out := make(FieldMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Profile is a user's reusable billing identity.
type Profile struct {
	Supplier  FieldMap `json:"supplier"`
	Recipient FieldMap `json:"recipient"`

	// Stamp is a data URL ("data:image/png;base64,...") or empty.
	Stamp string `json:"stamp"`
}

// NewProfile returns an empty profile with initialized maps.
func NewProfile() Profile {
	return Profile{Supplier: FieldMap{}, Recipient: FieldMap{}}
}

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	return Profile{
		Supplier:  p.Supplier.Clone(),
		Recipient: p.Recipient.Clone(),
		Stamp:     p.Stamp,
	}
}
