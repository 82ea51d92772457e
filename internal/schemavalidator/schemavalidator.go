// Package schemavalidator implements the single validate(documentText) bool
// entry point: parse, recover from non-schema parse failures, validate
// against the root schema, and on failure fan the exception tree out across
// the registered exception parsers.
package schemavalidator

import (
	"strings"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"rivaas.dev/logging"

	"github.com/rdapval/conformance/internal/exception"
	"github.com/rdapval/conformance/internal/exception/parser"
	"github.com/rdapval/conformance/internal/result"
	"github.com/rdapval/conformance/internal/schema"
)

const truncatedValueLimit = 80

// Validator binds a compiled root schema to the result sink and message
// catalog every exception parser needs.
type Validator struct {
	Schema  *schema.Schema
	Tree    *schema.Tree
	Acc     *result.Accumulator
	Catalog *result.Catalog
	Parsers []parser.Parser
	Logger  *logging.Logger
}

// New returns a Validator using the default exception parser registry. The
// annotation tree is built once here rather than per Validate call, since
// root's structure (and therefore its parent links) never changes.
func New(root *schema.Schema, acc *result.Accumulator, catalog *result.Catalog) *Validator {
	return &Validator{Schema: root, Tree: schema.BuildTree(root), Acc: acc, Catalog: catalog, Parsers: parser.Default()}
}

// Validate implements spec.md §4.4's four-step algorithm. It never returns
// a Go error: malformed input is a validation finding, recorded on Acc, not
// a fault.
func (v *Validator) Validate(documentText []byte) bool {
	if key, value, ok := firstDuplicateKey(documentText); ok {
		v.emitDuplicateKey(key, value)
		return false
	}

	var doc any
	if err := jsonv2.Unmarshal(documentText, &doc); err != nil {
		v.emitStructureInvalid(documentText)
		return false
	}

	evalResult := v.Schema.Validate(doc)
	if evalResult.IsValid() {
		return true
	}

	root := exception.Build(evalResult)
	ctx := &parser.Context{
		Tree:        v.Tree,
		Document:    doc,
		Accumulator: v.Acc,
		Catalog:     v.Catalog,
		Logger:      v.Logger,
	}
	parser.Dispatch(ctx, v.Parsers, root.Leaves())
	return false
}

func (v *Validator) emitDuplicateKey(key, value string) {
	code, err := v.Tree.SearchBottomMostErrorCode(key, "duplicateKeys")
	if err != nil {
		v.Acc.Add(result.Result{
			Code:    result.SentinelCode,
			Value:   key,
			Message: "schema annotation lookup failed: " + err.Error(),
		})
		if v.Logger != nil {
			v.Logger.Info("schema validator: duplicateKeys annotation lookup failed", "key", key, "error", err)
		}
		return
	}
	codeInt, ok := toInt(code)
	if !ok {
		v.Acc.Add(result.Result{Code: result.SentinelCode, Value: key, Message: "duplicateKeys annotation is not numeric"})
		return
	}
	v.Acc.Add(result.Result{
		Code:    codeInt,
		Value:   key + ":" + truncate(value, truncatedValueLimit),
		Message: v.Catalog.Message("rdap_general_duplicate_keys", nil),
	})
}

func (v *Validator) emitStructureInvalid(raw []byte) {
	code, err := v.Tree.SearchBottomMostErrorCode("", "structureInvalid")
	if err != nil {
		v.Acc.Add(result.Result{
			Code:    result.SentinelCode,
			Value:   truncate(string(raw), truncatedValueLimit),
			Message: "schema annotation lookup failed: " + err.Error(),
		})
		if v.Logger != nil {
			v.Logger.Info("schema validator: structureInvalid annotation lookup failed", "error", err)
		}
		return
	}
	codeInt, ok := toInt(code)
	if !ok {
		v.Acc.Add(result.Result{Code: result.SentinelCode, Value: string(raw), Message: "structureInvalid annotation is not numeric"})
		return
	}
	v.Acc.Add(result.Result{
		Code:    codeInt,
		Value:   string(raw),
		Message: v.Catalog.Message("rdap_general_structure_invalid", nil),
	})
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// objectFrame tracks the member-name/value alternation of one open JSON
// object (or array, where name tracking is simply unused) so the scanner
// below can recognize a repeated member name at the point it is read,
// before the first occurrence's value is overwritten the way a plain
// map[string]any decode would silently do.
type objectFrame struct {
	isObject     bool
	awaitingName bool
	pendingKey   string
	seen         map[string]string
}

// firstDuplicateKey walks documentText token by token looking for the first
// JSON object member name repeated within the same object. It reports the
// repeated key and the first occurrence's literal value text. A tokenizer
// error (including "valid JSON but no duplicate key") simply reports no
// duplicate; the caller's subsequent json.Unmarshal pass is what surfaces a
// genuine syntax error.
func firstDuplicateKey(documentText []byte) (key, value string, found bool) {
	dec := jsontext.NewDecoder(strings.NewReader(string(documentText)), jsontext.AllowDuplicateNames(true))
	var stack []*objectFrame

	recordValue := func(raw string) {
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		if !top.isObject || top.awaitingName {
			return
		}
		top.seen[top.pendingKey] = raw
		top.awaitingName = true
	}

	for {
		tok, err := dec.ReadToken()
		if err != nil {
			return "", "", false
		}
		switch tok.Kind() {
		case '{':
			recordValue("{...}")
			stack = append(stack, &objectFrame{isObject: true, awaitingName: true, seen: make(map[string]string)})
		case '[':
			recordValue("[...]")
			stack = append(stack, &objectFrame{isObject: false})
		case '}', ']':
			stack = stack[:len(stack)-1]
			recordValue("...")
		case '"':
			if len(stack) > 0 && stack[len(stack)-1].isObject && stack[len(stack)-1].awaitingName {
				top := stack[len(stack)-1]
				name := tok.String()
				if prev, ok := top.seen[name]; ok {
					return name, prev, true
				}
				top.pendingKey = name
				top.awaitingName = false
			} else {
				recordValue(tok.String())
			}
		default:
			recordValue("<value>")
		}
		if len(stack) == 0 {
			return "", "", false
		}
	}
}
