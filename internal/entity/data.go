package entity

import (
	"strings"

	"github.com/jakoblorz/go-ignite-jhipster/internal/models"
	"github.com/jakoblorz/go-ignite-jhipster/internal/render"
)

// TemplateData is passed to the entity templates and needle patches.
type TemplateData struct {
	Name        string // FieldTestEntity
	CamelName   string // fieldTestEntity
	PluralName  string // FieldTestEntities
	CamelPlural string // fieldTestEntities
	KebabPlural string // field-test-entities
	ConstName   string // FIELD_TEST_ENTITY

	Fields        []models.EntityField
	Relationships []models.EntityRelationship

	AuthType   models.AuthType
	Pagination bool
	Search     bool
	Tests      bool
	HasBoolean bool

	// Fixture is a sample instance as indented JSON.
	Fixture string
}

// NewTemplateData derives the naming variants for def. Search is enabled
// only when both the app and the entity use a search engine.
func NewTemplateData(name string, def *models.EntityDefinition, cfg models.ProjectConfig, tests bool) *TemplateData {
	plural := render.Plural(name)

	data := &TemplateData{
		Name:          name,
		CamelName:     render.CamelCase(name),
		PluralName:    plural,
		CamelPlural:   render.CamelCase(plural),
		KebabPlural:   joinWords(plural, "-", strings.ToLower),
		ConstName:     joinWords(name, "_", strings.ToUpper),
		Fields:        def.Fields,
		Relationships: def.Relationships,
		AuthType:      models.AuthType(cfg.String(models.ConfigKeyAuthType)),
		Pagination:    def.Paginated(),
		Search:        cfg.Bool(models.ConfigKeySearchEngine) && def.HasSearch(),
		Tests:         tests,
	}

	for _, f := range def.Fields {
		if f.JSType() == "boolean" {
			data.HasBoolean = true
		}
	}

	return data
}

func joinWords(s, sep string, transform func(string) string) string {
	words := render.Words(s)
	for i, w := range words {
		words[i] = transform(w)
	}
	return strings.Join(words, sep)
}
