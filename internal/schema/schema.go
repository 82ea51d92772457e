// Package schema adapts the real kaptinlin/jsonschema evaluator to this
// project's annotation-driven error-code model. The evaluator itself is a
// straight import: this package only adds what the library has no reason
// to expose itself — a navigable tree of schema nodes with parent links,
// built by walking the library's exported schema graph after compilation.
package schema

import jsonschema "github.com/kaptinlin/jsonschema"

// Schema is the library's compiled schema node.
type Schema = jsonschema.Schema

// Compiler is the library's schema compiler.
type Compiler = jsonschema.Compiler

// EvaluationResult is the library's validation result tree.
type EvaluationResult = jsonschema.EvaluationResult

// EvaluationError is one keyword failure within an EvaluationResult.
type EvaluationError = jsonschema.EvaluationError

// NewCompiler returns a Compiler configured with the library's defaults.
func NewCompiler() *Compiler {
	return jsonschema.NewCompiler()
}
