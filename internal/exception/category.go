// Package exception converts a schema validation failure tree into a flat
// list of leaf failures tagged by category, ready to be fanned out across
// the exception parser registry.
package exception

// Category tags a leaf failure with the kind of JSON Schema rule it
// violates, matching the taxonomy every exception parser's matches
// predicate is written against.
type Category int

const (
	CategoryUnknownKey Category = iota
	CategoryMissingKey
	CategoryBasicType
	CategoryEnum
	CategoryConst
	CategoryContainsConst
	CategoryRegex
	CategoryDatetime
	CategoryIPv4
	CategoryIPv6
	CategoryIDNHostname
	CategoryHostnameInURI
	CategoryUniqueItems
	CategoryNumeric
	CategoryDependencies
	CategoryComplexType
)

func (c Category) String() string {
	switch c {
	case CategoryUnknownKey:
		return "unknownKey"
	case CategoryMissingKey:
		return "missingKey"
	case CategoryBasicType:
		return "basicType"
	case CategoryEnum:
		return "enum"
	case CategoryConst:
		return "const"
	case CategoryContainsConst:
		return "containsConst"
	case CategoryRegex:
		return "regex"
	case CategoryDatetime:
		return "datetime"
	case CategoryIPv4:
		return "ipv4"
	case CategoryIPv6:
		return "ipv6"
	case CategoryIDNHostname:
		return "idnHostname"
	case CategoryHostnameInURI:
		return "hostnameInURI"
	case CategoryUniqueItems:
		return "uniqueItems"
	case CategoryNumeric:
		return "numeric"
	case CategoryDependencies:
		return "dependencies"
	case CategoryComplexType:
		return "complexType"
	default:
		return "unknown"
	}
}

// wrapperKeyword is a schema keyword whose own EvaluationError is a
// structural pointer to a nested failure (the informative failure lives one
// level down in Details), not a leaf in its own right. Build recurses
// through these transparently.
var wrapperKeywords = map[string]bool{
	"properties":            true,
	"patternProperties":     true,
	"propertyNames":         true,
	"additionalProperties":  true,
	"items":                 true,
	"prefixItems":           true,
	"unevaluatedItems":      true,
	"unevaluatedProperties": true,
	"dependentSchemas":      true,
	"contentSchema":         true,
	"$ref":                  true,
	"$dynamicRef":           true,
}

// combinedKeyword is a schema keyword whose failure Build records as a
// CategoryComplexType node holding each failing branch as a cause. Leaves
// descends into those causes, so the combined node itself is a leaf only
// when no branch produced a decomposable failure.
var combinedKeywords = map[string]bool{
	"allOf": true,
	"anyOf": true,
	"oneOf": true,
	"not":   true,
	"if":    true,
	"then":  true,
	"else":  true,
}

func categoryFor(keyword string, params map[string]any) Category {
	switch keyword {
	case "schema":
		// A schema value of `false` almost always backs additionalProperties
		// in a closed RDAP object class; rejection by it means the instance
		// carried a property the schema does not allow.
		return CategoryUnknownKey
	case "required":
		return CategoryMissingKey
	case "type":
		return CategoryBasicType
	case "enum":
		return CategoryEnum
	case "const":
		return CategoryConst
	case "minContains", "maxContains":
		return CategoryContainsConst
	case "pattern":
		return CategoryRegex
	case "format":
		return categoryForFormat(params)
	case "uniqueItems":
		return CategoryUniqueItems
	case "minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum",
		"multipleOf", "maxLength", "minLength", "maxItems", "minItems",
		"maxProperties", "minProperties":
		return CategoryNumeric
	case "dependentRequired":
		return CategoryDependencies
	case "allOf", "anyOf", "oneOf", "not", "if", "then", "else":
		return CategoryComplexType
	default:
		return CategoryBasicType
	}
}

func categoryForFormat(params map[string]any) Category {
	name, _ := params["format"].(string)
	switch name {
	case "date-time", "date", "time", "duration", "period":
		return CategoryDatetime
	case "ipv4":
		return CategoryIPv4
	case "ipv6":
		return CategoryIPv6
	case "idn-hostname":
		return CategoryIDNHostname
	case "hostname", "uri", "uri-reference":
		return CategoryHostnameInURI
	default:
		return CategoryDatetime
	}
}
