// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ravenbix

package models

// Well-known catalog item property names understood by the management
// endpoint. Property names are case-sensitive on the wire.
const (
	PropertyDescription = "Description"
	PropertyHidden      = "Hidden"
)

// Property is a single name/value metadata pair attached to a catalog item.
type Property struct {
	Name  string
	Value string
}

// Properties is an ordered list of item properties. The list holds at most
// one entry per property name; Set replaces an existing entry in place.
type Properties []Property

// Set returns the list with name set to value. If an entry with the same
// name already exists its value is replaced and the original position is
// kept, otherwise the entry is appended.
func (p Properties) Set(name, value string) Properties {
	for i := range p {
		if p[i].Name == name {
			p[i].Value = value
			return p
		}
	}
	return append(p, Property{Name: name, Value: value})
}

// Get returns the value for name and whether an entry with that name exists.
func (p Properties) Get(name string) (string, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Value, true
		}
	}
	return "", false
}
