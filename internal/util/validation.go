package util

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by request structs.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"form", "json"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return ""
		})
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return IsSlug(fl.Field().String())
		})
	})
}

// FieldErrors flattens binding errors into a field name -> message map.
// Field names follow the struct's form tag when present.
func FieldErrors(err error, messages map[string]string) map[string]string {
	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["__all__"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		name := fe.Field()
		if msg, ok := messages[fe.Tag()]; ok {
			out[name] = msg
			continue
		}
		out[name] = "Enter a valid value."
	}
	return out
}
