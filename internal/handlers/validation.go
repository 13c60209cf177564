package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/relief_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNames sync.Once

// useJSONFieldNames makes binding errors report the JSON name of a field instead of the Go name.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, key := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
}

// respondWithBindError answers a failed ShouldBind call. Tag violations become a field map,
// anything else (malformed JSON, wrong types) a plain message.
func respondWithBindError(c *gin.Context, err error, op string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request for "+op, slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "uppercase":
		return "must be upper case"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return "is invalid"
}
