package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// BranchCodePattern matches short discipline codes such as "CSE" or "AI"
	BranchCodePattern = `^[A-Za-z0-9_&-]{1,16}$`

	// BranchCodeMaxLength bounds a submitted code before the pattern runs
	BranchCodeMaxLength = 16
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	BranchCode *regexp.Regexp
}{
	BranchCode: regexp.MustCompile(BranchCodePattern),
}

// StringValidation checks a single string value
type StringValidation struct {
	Value    string
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}
	return true
}

// IsBranchCode reports whether s looks like a branch code
func IsBranchCode(s string) bool {
	return NewStringValidation(s).
		WithMaxLength(BranchCodeMaxLength).
		WithPattern(CompiledPatterns.BranchCode).
		Validate()
}

// branchCodeRule is the validator.Func behind the "branchcode" tag.
// Blank entries pass; required-field checks happen in the filter service.
func branchCodeRule(fl validator.FieldLevel) bool {
	code := strings.TrimSpace(fl.Field().String())
	return code == "" || IsBranchCode(code)
}

// Register adds the custom rules to a validator instance
func Register(v *validator.Validate) error {
	return v.RegisterValidation("branchcode", branchCodeRule)
}
