package models

import (
	"encoding/json"
	"fmt"
)

// EntityField describes one field of a JHipster entity.
type EntityField struct {
	FieldName          string   `json:"fieldName"`
	FieldType          string   `json:"fieldType"`
	FieldValues        string   `json:"fieldValues,omitempty"`
	FieldValidateRules []string `json:"fieldValidateRules,omitempty"`
}

// Required reports whether the field carries the "required" validation rule.
func (f EntityField) Required() bool {
	for _, rule := range f.FieldValidateRules {
		if rule == "required" {
			return true
		}
	}
	return false
}

// IsEnum reports whether the field is an enumeration.
func (f EntityField) IsEnum() bool {
	return f.FieldValues != ""
}

// JSType maps the backend field type to the form input kind used by the
// generated screens: string, number, boolean, date or enum.
func (f EntityField) JSType() string {
	if f.IsEnum() {
		return "enum"
	}
	switch f.FieldType {
	case "Integer", "Long", "Float", "Double", "BigDecimal":
		return "number"
	case "Boolean":
		return "boolean"
	case "LocalDate", "Instant", "ZonedDateTime", "Duration":
		return "date"
	default:
		return "string"
	}
}

// EntityRelationship describes one relationship of a JHipster entity.
type EntityRelationship struct {
	RelationshipType   string `json:"relationshipType"`
	RelationshipName   string `json:"relationshipName"`
	OtherEntityName    string `json:"otherEntityName"`
	OtherEntityField   string `json:"otherEntityField,omitempty"`
	OwnerSide          bool   `json:"ownerSide,omitempty"`
	OtherEntityRelName string `json:"otherEntityRelationshipName,omitempty"`
}

// IsCollection reports whether the relationship holds many related entities.
func (r EntityRelationship) IsCollection() bool {
	return r.RelationshipType == "one-to-many" || r.RelationshipType == "many-to-many"
}

// EntityDefinition is the JSON entity description produced by the backend
// generator. The schema is owned by that generator; only the keys used for
// rendering are decoded, the original bytes are kept in Raw.
type EntityDefinition struct {
	Name            string               `json:"name"`
	Fields          []EntityField        `json:"fields"`
	Relationships   []EntityRelationship `json:"relationships"`
	ChangelogDate   string               `json:"changelogDate,omitempty"`
	EntityTableName string               `json:"entityTableName,omitempty"`
	DTO             string               `json:"dto,omitempty"`
	Pagination      string               `json:"pagination,omitempty"`
	Service         string               `json:"service,omitempty"`
	SearchEngine    json.RawMessage      `json:"searchEngine,omitempty"`

	Raw []byte `json:"-"`
}

// ParseEntityDefinition decodes an entity definition read from path.
func ParseEntityDefinition(path string, data []byte) (*EntityDefinition, error) {
	var def EntityDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	def.Raw = data
	return &def, nil
}

// HasSearch reports whether the entity is indexed by a search engine. The
// backend writes either false or the engine name.
func (d *EntityDefinition) HasSearch() bool {
	if len(d.SearchEngine) == 0 {
		return false
	}

	var engine any
	if err := json.Unmarshal(d.SearchEngine, &engine); err != nil {
		return false
	}

	switch v := engine.(type) {
	case bool:
		return v
	case string:
		return v != "" && v != "no" && v != "false"
	default:
		return false
	}
}

// Paginated reports whether list endpoints are paginated.
func (d *EntityDefinition) Paginated() bool {
	return d.Pagination != "" && d.Pagination != "no"
}

// Validate checks that the definition can drive template rendering.
func (d *EntityDefinition) Validate() error {
	for i, f := range d.Fields {
		if f.FieldName == "" {
			return fmt.Errorf("field %d has no fieldName", i)
		}
	}
	for i, r := range d.Relationships {
		if r.RelationshipName == "" || r.OtherEntityName == "" {
			return fmt.Errorf("relationship %d is missing relationshipName or otherEntityName", i)
		}
	}
	return nil
}
