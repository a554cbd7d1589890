package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/tidwall/pretty"

	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
)

const sampleAlphabet = "abcdefghijklmnopqrstuvwxyz"

// SampleFunc returns a sample string value for a field.
type SampleFunc func(field models.EntityField) (string, error)

// RandomSample fills string fields with short random words.
func RandomSample(models.EntityField) (string, error) {
	return gonanoid.Generate(sampleAlphabet, 10)
}

// BuildFixture renders a sample instance of def with id 1, keeping the
// field order of the definition.
func BuildFixture(def *models.EntityDefinition, sample SampleFunc) (string, error) {
	obj := models.NewOrderedMap()
	obj.Set("id", json.RawMessage("1"))

	for i, f := range def.Fields {
		var value any
		switch f.JSType() {
		case "number":
			value = i + 1
		case "boolean":
			value = false
		case "date":
			if f.FieldType == "LocalDate" {
				value = "2017-10-09"
			} else {
				value = "2017-10-09T12:00:00Z"
			}
		case "enum":
			value = strings.TrimSpace(strings.Split(f.FieldValues, ",")[0])
		default:
			s, err := sample(f)
			if err != nil {
				return "", fmt.Errorf("failed to generate sample for %s: %w", f.FieldName, err)
			}
			value = s
		}

		raw, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		obj.Set(f.FieldName, raw)
	}

	for _, r := range def.Relationships {
		if r.IsCollection() || (r.RelationshipType == "one-to-one" && !r.OwnerSide) {
			continue
		}
		obj.Set(r.RelationshipName+"Id", json.RawMessage("1"))
	}

	b, err := obj.MarshalJSON()
	if err != nil {
		return "", err
	}

	out := pretty.PrettyOptions(b, &pretty.Options{Indent: "  ", SortKeys: false})
	return strings.TrimSuffix(string(out), "\n"), nil
}
