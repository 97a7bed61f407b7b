package evaluator

import (
	"github.com/google/uuid"

	"github.com/chrismichaelps/solis/internal/diagnostics"
)

// Builtins returns the fixed set of built-in bindings installed into
// every fresh interpreter (spec.md §4.4: "Environment::builtins()").
// Beyond what the prelude source itself defines, the core contributes
// two identifier-generation builtins backed by google/uuid: "uuid"
// (random v4) and "uuidv7" (time-ordered v7), both returning their
// canonical string form as a Str value.
func Builtins() map[string]Value {
	return map[string]Value{
		"uuid": &Function{Name: "uuid", Apply: func(_ Value) (Value, error) {
			id, err := uuid.NewRandom()
			if err != nil {
				return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeTypeMismatch, diagnostics.Position{}, "uuid generation failed")
			}
			return Str(id.String()), nil
		}},
		"uuidv7": &Function{Name: "uuidv7", Apply: func(_ Value) (Value, error) {
			id, err := uuid.NewV7()
			if err != nil {
				return nil, diagnostics.New(diagnostics.PhaseEvaluator, diagnostics.CodeTypeMismatch, diagnostics.Position{}, "uuidv7 generation failed")
			}
			return Str(id.String()), nil
		}},
	}
}
