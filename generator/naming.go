package generator

import "github.com/go-openapi/inflect"

// Identifier helpers for generated source. Table names in the schema dialect
// are plural snake/camel case; components are singular PascalCase.

func pascalSingular(table string) string {
	return inflect.Camelize(inflect.Singularize(table))
}

func camelSingular(table string) string {
	return inflect.CamelizeDownFirst(inflect.Singularize(table))
}

func humanize(field string) string {
	return inflect.Humanize(inflect.Underscore(field))
}
