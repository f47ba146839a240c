package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/you/fitbyte/domain"
)

func init() {
	// report request field names as the client sent them
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	}
}

// FieldViolation describes one rejected field. The submitted value is never included.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule,omitempty"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message,omitempty"`
}

var kindStatus = map[domain.ErrorKind]int{
	domain.KindValidation:          http.StatusBadRequest,
	domain.KindUnauthenticated:     http.StatusUnauthorized,
	domain.KindNotFound:            http.StatusNotFound,
	domain.KindConflict:            http.StatusConflict,
	domain.KindUpstreamUnavailable: http.StatusServiceUnavailable,
	domain.KindInternal:            http.StatusInternalServerError,
}

// StatusFor maps err onto an HTTP status through domain.KindOf
func StatusFor(err error) int {
	return kindStatus[domain.KindOf(err)]
}

// respondError writes err using the shared taxonomy. Internal and upstream
// details are logged, never returned.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	kind := domain.KindOf(err)
	status := kindStatus[kind]

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(status, gin.H{
			"error":   domain.ErrValidation.Error(),
			"details": []FieldViolation{{Field: ve.Field, Message: ve.Message}},
		})
	case kind == domain.KindUpstreamUnavailable:
		log.Error("upstream unavailable", "path", c.FullPath(), "error", err)
		c.JSON(status, gin.H{"error": domain.ErrStorageUnavailable.Error()})
	case kind == domain.KindInternal:
		log.Error("request failed", "path", c.FullPath(), "error", err)
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "Internal server error"})
	default:
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// respondBindError renders request decoding and binding failures as 400
func respondBindError(c *gin.Context, err error) {
	var (
		verrs   validator.ValidationErrors
		typeErr *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &verrs):
		details := make([]FieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldViolation{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrValidation.Error(), "details": details})
	case errors.As(err, &typeErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   domain.ErrValidation.Error(),
			"details": []FieldViolation{{Field: typeErr.Field, Rule: "type", Param: typeErr.Type.String()}},
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
	}
}
