package validatorx

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// Fields lists the failing field paths of a validation error, e.g.
// "CreateRuleRequest.Tiers[0].BuyTo:gtfield".
func Fields(err error) []string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("%s:%s", fe.Namespace(), fe.Tag()))
	}
	return out
}

// Describe joins Fields for log output.
func Describe(err error) string {
	if f := Fields(err); len(f) > 0 {
		return strings.Join(f, ",")
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
