// Package schema compiles a JSON Schema once and validates chart-options
// documents against it.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// MaxViolations caps how many violations a single Result reports.
const MaxViolations = 50

//go:embed echarts_options.schema.json
var echartsOptionsSchema []byte

// Violation identifies one failed constraint.
type Violation struct {
	Path       string `json:"path"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Result is returned by value from every Validate call.
type Result struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
	Truncated  bool        `json:"truncated,omitempty"`
}

// Validator holds a compiled schema. It is read-only after construction and
// safe for concurrent use.
type Validator struct {
	schema *gojsonschema.Schema
}

// New compiles schemaDoc. A compile error is a configuration error.
func New(schemaDoc []byte) (*Validator, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaDoc))
	if err != nil {
		return nil, fmt.Errorf("schema: compile: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// NewFromFile compiles the schema document stored at path.
func NewFromFile(path string) (*Validator, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return New(doc)
}

// Default compiles the embedded ECharts options schema.
func Default() (*Validator, error) {
	return New(echartsOptionsSchema)
}

// Load returns the validator for path, or the embedded schema when path is empty.
func Load(path string) (*Validator, error) {
	if path == "" {
		return Default()
	}
	return NewFromFile(path)
}

// Validate checks doc, a JSON text, against the compiled schema.
// Anything after the first JSON value makes the document invalid.
func (v *Validator) Validate(doc []byte) Result {
	var raw json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return undecodable(err)
	}
	res, err := v.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return undecodable(err)
	}
	if res.Valid() {
		return Result{Valid: true, Violations: []Violation{}}
	}

	errs := res.Errors()
	out := Result{Violations: make([]Violation, 0, min(len(errs), MaxViolations))}
	for _, e := range errs {
		if len(out.Violations) == MaxViolations {
			out.Truncated = true
			break
		}
		out.Violations = append(out.Violations, Violation{
			Path:       e.Field(),
			Constraint: e.Type(),
			Message:    e.Description(),
		})
	}
	return out
}

func undecodable(err error) Result {
	return Result{
		Violations: []Violation{{Path: "(root)", Constraint: "json", Message: err.Error()}},
	}
}
