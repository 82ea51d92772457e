package schema

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kaptinlin/jsonpointer"
)

// NodeKind classifies a Schema node for the annotation-walking algorithm.
// A node can only belong to exactly one kind: the classification is derived
// from which structural fields are populated, mirroring the mutually
// exclusive keyword groups JSON Schema itself enforces in practice.
type NodeKind int

const (
	KindSimple NodeKind = iota
	KindObject
	KindArray
	KindReference
	KindCombined
)

// RecursiveVcardArrayProperty is the one schema property name excluded from
// FindJSONPointersBySchemaID's recursive descent. jCard (RFC 7095) encodes a
// vCard as ["vcard", [[name, params, type, value], ...]]; the bundle's
// $defs.vcardArray (schemas/common.json) declares a vcardArray property
// whose $ref points back at the def itself. The walk descends into at most
// one vcardArray along any path.
const RecursiveVcardArrayProperty = "vcardArray"

var (
	ErrAnnotationAbsent = errors.New("annotation absent on schema and all ancestors")
	ErrNilSchema        = errors.New("schema node is nil")
)

// kindOf reports which structural shape a schema node has. Boolean schemas
// and leaf keyword-only schemas (string/number/format constraints with no
// nested schema) are KindSimple.
func kindOf(s *Schema) NodeKind {
	if s == nil {
		return KindSimple
	}
	if s.Ref != "" || s.DynamicRef != "" {
		return KindReference
	}
	if len(s.AllOf) > 0 || len(s.AnyOf) > 0 || len(s.OneOf) > 0 || s.Not != nil {
		return KindCombined
	}
	if s.Properties != nil || s.PatternProperties != nil || len(s.Required) > 0 {
		return KindObject
	}
	if s.Items != nil || len(s.PrefixItems) > 0 || s.Contains != nil {
		return KindArray
	}
	return KindSimple
}

// Node is one entry of a Tree: a compiled Schema paired with the parent
// link the library keeps private to itself. The library's own Schema has
// no exported way to walk upward, so this package rebuilds that link in a
// structure it owns instead of reaching into the library's internals.
type Node struct {
	Schema *Schema
	Parent *Node
}

// Kind reports the structural shape of the node's schema.
func (n *Node) Kind() NodeKind {
	if n == nil {
		return KindSimple
	}
	return kindOf(n.Schema)
}

// Tree is an arena of Nodes built by walking a compiled root Schema's
// structural children, recording each child's parent as it goes. It exists
// solely to answer "what annotation applies here, considering ancestors",
// which the library itself has no reason to support.
type Tree struct {
	root  *Node
	nodes map[*Schema]*Node
}

// BuildTree walks root's structural children — $defs, allOf/anyOf/oneOf,
// not/if/then/else, dependentSchemas, prefixItems/items/contains,
// properties/patternProperties, additionalProperties,
// unevaluatedProperties/unevaluatedItems, contentSchema, propertyNames, and
// both resolved reference targets — the same set the library's own
// compiler walks when it wires up $ref/$dynamicRef resolution. A schema
// already present in the arena is never revisited, which breaks $ref
// cycles such as vcardArray's self-reference through its own vcardArray
// property.
func BuildTree(root *Schema) *Tree {
	t := &Tree{nodes: make(map[*Schema]*Node)}
	if root == nil {
		return t
	}
	t.root = t.visit(root, nil)
	return t
}

func (t *Tree) visit(s *Schema, parent *Node) *Node {
	if s == nil {
		return nil
	}
	if existing, ok := t.nodes[s]; ok {
		return existing
	}
	n := &Node{Schema: s, Parent: parent}
	t.nodes[s] = n
	for _, child := range structuralChildren(s) {
		t.visit(child, n)
	}
	return n
}

// nodeFor returns the arena's Node for s, building an unparented one on
// demand if s was never reached from the root walk (e.g. a schema surfaced
// only through a dynamic resolution path at validation time).
func (t *Tree) nodeFor(s *Schema) *Node {
	if s == nil {
		return nil
	}
	if n, ok := t.nodes[s]; ok {
		return n
	}
	return t.visit(s, nil)
}

func structuralChildren(s *Schema) []*Schema {
	var out []*Schema
	add := func(c *Schema) {
		if c != nil {
			out = append(out, c)
		}
	}
	for _, def := range s.Defs {
		add(def)
	}
	out = append(out, s.AllOf...)
	out = append(out, s.AnyOf...)
	out = append(out, s.OneOf...)
	add(s.Not)
	add(s.If)
	add(s.Then)
	add(s.Else)
	for _, dep := range s.DependentSchemas {
		add(dep)
	}
	out = append(out, s.PrefixItems...)
	add(s.Items)
	add(s.Contains)
	add(s.AdditionalProperties)
	if s.Properties != nil {
		for _, prop := range *s.Properties {
			add(prop)
		}
	}
	if s.PatternProperties != nil {
		for _, prop := range *s.PatternProperties {
			add(prop)
		}
	}
	add(s.UnevaluatedProperties)
	add(s.UnevaluatedItems)
	add(s.ContentSchema)
	add(s.PropertyNames)
	add(s.ResolvedRef)
	add(s.ResolvedDynamicRef)
	return out
}

// FindChild performs a depth-first search of the tree for any object node
// that declares key as one of its own properties, returning that
// property's child node. $ref nodes are dereferenced one hop before their
// properties are inspected. First match wins; search order is properties
// (in map iteration order), then patternProperties, items, prefixItems,
// contains, and the allOf/anyOf/oneOf/not branches. A visited-node guard
// breaks $ref cycles such as vcardArray's self-reference through its own
// vcardArray property.
func (t *Tree) FindChild(key string) (*Node, bool) {
	return t.findChild(t.root, key, map[*Node]bool{})
}

func (t *Tree) findChild(n *Node, key string, visited map[*Node]bool) (*Node, bool) {
	if n == nil || visited[n] {
		return nil, false
	}
	visited[n] = true

	node := n
	if node.Kind() == KindReference && node.Schema.ResolvedRef != nil {
		ref := t.nodeFor(node.Schema.ResolvedRef)
		if ref == nil || visited[ref] {
			return nil, false
		}
		node = ref
		visited[node] = true
	}
	if node.Schema.Properties != nil {
		if child, ok := (*node.Schema.Properties)[key]; ok {
			return t.nodeFor(child), true
		}
		for _, child := range *node.Schema.Properties {
			if found, ok := t.findChild(t.nodeFor(child), key, visited); ok {
				return found, true
			}
		}
	}
	if node.Schema.PatternProperties != nil {
		for _, child := range *node.Schema.PatternProperties {
			if found, ok := t.findChild(t.nodeFor(child), key, visited); ok {
				return found, true
			}
		}
	}
	candidates := append(append([]*Schema{node.Schema.Items}, node.Schema.PrefixItems...), node.Schema.Contains)
	for _, c := range candidates {
		if found, ok := t.findChild(t.nodeFor(c), key, visited); ok {
			return found, true
		}
	}
	for _, group := range [][]*Schema{node.Schema.AllOf, node.Schema.AnyOf, node.Schema.OneOf} {
		for _, c := range group {
			if found, ok := t.findChild(t.nodeFor(c), key, visited); ok {
				return found, true
			}
		}
	}
	if found, ok := t.findChild(t.nodeFor(node.Schema.Not), key, visited); ok {
		return found, true
	}
	return nil, false
}

// SearchBottomMostErrorCode walks from the tree's node located at searchKey
// up through its ancestors and returns the first occurrence of errorKey
// found in Extra, starting at the node itself. This implements the
// "bottom-most annotation wins" rule: a property-level errorCode overrides
// one declared higher up the tree, but a leaf with no annotation of its
// own inherits its nearest annotated ancestor's.
func (t *Tree) SearchBottomMostErrorCode(searchKey, errorKey string) (any, error) {
	node, ok := t.FindChild(searchKey)
	if !ok {
		node = t.root
	}
	return t.bottomMostAnnotation(node, errorKey)
}

// AnnotationAt resolves pointer to a tree node via FindAssociatedSchema,
// then walks that node's ancestors for the first occurrence of
// annotationKey. It is SearchBottomMostErrorCode's counterpart for callers
// that already have a JSON Pointer into the document rather than a bare
// property name.
func (t *Tree) AnnotationAt(pointer, annotationKey string) (any, error) {
	node, ok := t.FindAssociatedSchema(pointer)
	if !ok {
		return nil, fmt.Errorf("%w: pointer %q", ErrAnnotationAbsent, pointer)
	}
	return t.bottomMostAnnotation(node, annotationKey)
}

// AnnotationOn walks from n up through its ancestors for the first
// occurrence of key in Extra. Exported for callers (the validation-wrapper
// pass in the exception parser) that already hold a *Node from
// FindValidationNodes rather than a bare pointer or property name.
func (t *Tree) AnnotationOn(n *Node, key string) (any, error) {
	return t.bottomMostAnnotation(n, key)
}

func (t *Tree) bottomMostAnnotation(n *Node, errorKey string) (any, error) {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Schema == nil || cur.Schema.Extra == nil {
			continue
		}
		if v, ok := cur.Schema.Extra[errorKey]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: key %q", ErrAnnotationAbsent, errorKey)
}

// FindAssociatedSchema resolves a JSON Pointer (RFC 6901, as emitted in
// EvaluationResult.InstanceLocation) against the tree, skipping numeric
// array-index segments since a schema has no per-index branching: every
// element of an array keyword is governed by the same Items/Contains
// schema regardless of which index failed.
func (t *Tree) FindAssociatedSchema(pointer string) (*Node, bool) {
	if t.root == nil {
		return nil, false
	}
	if pointer == "" || pointer == "/" {
		return t.root, true
	}
	current := t.root
	for _, segment := range jsonpointer.Parse(pointer) {
		if current.Kind() == KindReference && current.Schema.ResolvedRef != nil {
			current = t.nodeFor(current.Schema.ResolvedRef)
		}
		if current == nil {
			return nil, false
		}
		if _, err := strconv.Atoi(segment); err == nil {
			if current.Schema.Items != nil {
				current = t.nodeFor(current.Schema.Items)
				continue
			}
			if current.Schema.Contains != nil {
				current = t.nodeFor(current.Schema.Contains)
				continue
			}
			return nil, false
		}
		child, ok := t.findChild(current, segment, map[*Node]bool{})
		if !ok {
			return nil, false
		}
		current = child
	}
	return current, true
}

// ValidationNode pairs a tree node carrying a validationName annotation
// with the instance pointer it governs, so the shared validation-wrapper
// pass in the exception parser registry can emit a generic parent-level
// result alongside the specific leaf failure.
type ValidationNode struct {
	Pointer string
	Node    *Node
	Name    string
}

// FindValidationNodes walks from instancePointer up through the tree's
// ancestor chain collecting every node that carries annotationKey in
// Extra, most specific first. A document instance nested three properties
// deep under a validated object can surface more than one applicable
// validationName (e.g. a property-level one and an object-level one).
func (t *Tree) FindValidationNodes(instancePointer, annotationKey string) []ValidationNode {
	node, ok := t.FindAssociatedSchema(instancePointer)
	if !ok {
		return nil
	}
	var out []ValidationNode
	for n := node; n != nil; n = n.Parent {
		if n.Schema == nil || n.Schema.Extra == nil {
			continue
		}
		name, ok := n.Schema.Extra[annotationKey].(string)
		if !ok {
			continue
		}
		out = append(out, ValidationNode{Pointer: instancePointer, Node: n, Name: name})
	}
	return out
}

// FindJSONPointersBySchemaID walks document against the tree's root
// depth-first, collecting the concrete JSON Pointer of every location
// governed by a schema node whose (possibly inherited) $id equals id.
// Array traversal is concretized against the actual document: a
// schema-level Items pointer becomes one document pointer per array
// element actually present. RecursiveVcardArrayProperty is never descended
// into twice along the same path, which stops the walk at the vcardArray
// def's self-reference.
func (t *Tree) FindJSONPointersBySchemaID(id string, document any) []string {
	var out []string
	var walk func(node *Schema, doc any, pointer []string, onVcard bool)
	walk = func(node *Schema, doc any, pointer []string, onVcard bool) {
		if node == nil {
			return
		}
		if kindOf(node) == KindReference && node.ResolvedRef != nil {
			node = node.ResolvedRef
		}
		if node.ID != "" && node.ID == id {
			out = append(out, "#"+jsonpointer.Format(pointer...))
		}
		switch v := doc.(type) {
		case map[string]any:
			if node.Properties == nil {
				return
			}
			for key, val := range v {
				if key == RecursiveVcardArrayProperty {
					if onVcard {
						continue
					}
					onVcard = true
				}
				child, ok := (*node.Properties)[key]
				if !ok {
					continue
				}
				walk(child, val, append(pointer, key), onVcard)
			}
		case []any:
			for i, val := range v {
				if node.Items != nil {
					walk(node.Items, val, append(pointer, strconv.Itoa(i)), onVcard)
				}
			}
		}
	}
	if t.root != nil {
		walk(t.root.Schema, document, nil, false)
	}
	return out
}

// FindAllValuesOf returns every value found under key anywhere in document,
// recursing through nested objects and arrays. Used to gather all instances
// of a repeated field (e.g. every "handle" in a response) without needing
// a schema to drive the walk.
func FindAllValuesOf(document any, key string) []any {
	var out []any
	var walk func(doc any)
	walk = func(doc any) {
		switch v := doc.(type) {
		case map[string]any:
			if val, ok := v[key]; ok {
				out = append(out, val)
			}
			for _, val := range v {
				walk(val)
			}
		case []any:
			for _, val := range v {
				walk(val)
			}
		}
	}
	walk(document)
	return out
}
