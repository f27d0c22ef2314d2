package models

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed doctypes.yaml
var builtinDocTypes []byte

// Built-in document type keys.
const (
	DocTypeStatement = "statement"
	DocTypeEstimate  = "estimate"
)

// Field is one named input of a FieldMap schema.
type Field struct {
	Name  string `yaml:"name" json:"name"`
	Label string `yaml:"label" json:"label"`
}

// DocType describes one document variant. All behavior that differs between an
// estimate and a transaction statement is driven by these values.
type DocType struct {
	Key   string `yaml:"key" json:"key"`
	Title string `yaml:"title" json:"title"`

	// ExportName is the base file name used for exported artifacts.
	ExportName string `yaml:"export_name" json:"export_name"`

	// Scope prefixes every storage key of this variant.
	Scope string `yaml:"scope" json:"scope"`

	// DocumentsKey is the JSON field holding a user's document list.
	DocumentsKey string `yaml:"documents_key" json:"documents_key"`

	// Stamp reports whether the variant supports a supplier stamp image.
	Stamp bool `yaml:"stamp" json:"stamp"`

	TaxExemptLabel string `yaml:"tax_exempt_label" json:"tax_exempt_label"`

	Supplier  []Field `yaml:"supplier" json:"supplier"`
	Recipient []Field `yaml:"recipient" json:"recipient"`
	Header    []Field `yaml:"header" json:"header"`
}

// CurrentUserKey is the storage key of the active session for this variant.
func (d *DocType) CurrentUserKey() string { return d.Scope + ".current_user" }

// UsersKey is the storage key of the users blob for this variant.
func (d *DocType) UsersKey() string { return d.Scope + ".users" }

// Side identifies which profile map a field belongs to.
type Side int

const (
	SideNone Side = iota
	SideSupplier
	SideRecipient
)

// ProfileSide reports which profile map owns the field, or SideNone.
func (d *DocType) ProfileSide(field string) Side {
	if hasField(d.Supplier, field) {
		return SideSupplier
	}
	if hasField(d.Recipient, field) {
		return SideRecipient
	}
	return SideNone
}

// FilterSupplier returns a copy of m restricted to supplier fields.
func (d *DocType) FilterSupplier(m FieldMap) FieldMap { return filter(d.Supplier, m) }

// FilterRecipient returns a copy of m restricted to recipient fields.
func (d *DocType) FilterRecipient(m FieldMap) FieldMap { return filter(d.Recipient, m) }

// FilterHeader returns a copy of m restricted to header fields.
func (d *DocType) FilterHeader(m FieldMap) FieldMap { return filter(d.Header, m) }

// Validate checks that the descriptor is usable.
func (d *DocType) Validate() error {
	switch {
	case d.Key == "":
		return fmt.Errorf("doctype: key is required")
	case d.Scope == "":
		return fmt.Errorf("doctype %s: scope is required", d.Key)
	case d.DocumentsKey == "":
		return fmt.Errorf("doctype %s: documents_key is required", d.Key)
	case d.DocumentsKey == "profile" || d.DocumentsKey == SchemaVersionKey || d.DocumentsKey == StampsKey:
		return fmt.Errorf("doctype %s: documents_key %q is reserved", d.Key, d.DocumentsKey)
	}
	seen := make(map[string]bool)
	for _, group := range [][]Field{d.Supplier, d.Recipient, d.Header} {
		for _, f := range group {
			if f.Name == "" {
				return fmt.Errorf("doctype %s: field with empty name", d.Key)
			}
			if seen[f.Name] {
				return fmt.Errorf("doctype %s: duplicate field %q", d.Key, f.Name)
			}
			seen[f.Name] = true
		}
	}
	return nil
}

func hasField(fields []Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func filter(fields []Field, m FieldMap) FieldMap {
	out := make(FieldMap, len(fields))
	for _, f := range fields {
		if v, ok := m[f.Name]; ok {
			out[f.Name] = v
		}
	}
	return out
}

// DocTypes is a registry of descriptors keyed by DocType.Key.
type DocTypes map[string]*DocType

// BuiltinDocTypes returns the embedded estimate and statement descriptors.
func BuiltinDocTypes() DocTypes {
	types, err := ParseDocTypes(builtinDocTypes)
	if err != nil {
		panic(fmt.Sprintf("models: embedded doctypes: %v", err))
	}
	return types
}

// ParseDocTypes decodes a YAML list of descriptors.
func ParseDocTypes(data []byte) (DocTypes, error) {
	var list []*DocType
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse doctypes: %w", err)
	}
	types := make(DocTypes, len(list))
	for _, d := range list {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := types[d.Key]; dup {
			return nil, fmt.Errorf("doctype %s: defined twice", d.Key)
		}
		types[d.Key] = d
	}
	return types, nil
}

// LoadDocTypes returns the built-in descriptors merged with those in path.
// Descriptors from the file replace built-ins with the same key.
func LoadDocTypes(path string) (DocTypes, error) {
	types := BuiltinDocTypes()
	if path == "" {
		return types, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read doctypes file: %w", err)
	}
	extra, err := ParseDocTypes(data)
	if err != nil {
		return nil, err
	}
	for k, d := range extra {
		types[k] = d
	}
	return types, nil
}

// Get returns the descriptor for key.
func (t DocTypes) Get(key string) (*DocType, error) {
	d, ok := t[key]
	if !ok {
		return nil, fmt.Errorf("unknown document type %q", key)
	}
	return d, nil
}

// Keys returns the registered keys in sorted order.
func (t DocTypes) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
