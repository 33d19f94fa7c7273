package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/JMURv/go-attractions/internal/config"
	"github.com/JMURv/go-attractions/internal/hdl"
	"github.com/JMURv/go-attractions/internal/repo/s3"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(
		func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		},
	)
	return v
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Debug("failed to encode response", zap.Error(err))
	}
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(&ErrorResponse{Message: err.Error()}); err != nil {
		zap.L().Debug("failed to encode error response", zap.Error(err))
	}
}

// ParseAndValidate decodes the JSON body into dst and validates it.
// On failure it writes a 400 and returns false.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxMemory)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		zap.L().Debug("failed to decode request", zap.String("path", r.URL.Path), zap.Error(err))
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		ErrResponse(w, http.StatusBadRequest, ValidationError(err))
		return false
	}

	return true
}

// ValidationError turns validator output into a single readable error.
func ValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "min":
		return fmt.Sprintf("%s must contain at least %s item(s)", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// ParseFileField reads an image from a parsed multipart form into req.
func ParseFileField(r *http.Request, field string, req *s3.UploadFileRequest) error {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return hdl.ErrMissingFile
		}
		zap.L().Debug("failed to get form file", zap.String("field", field), zap.Error(err))
		return hdl.ErrDecodeRequest
	}
	defer func() {
		if err := file.Close(); err != nil {
			zap.L().Debug("failed to close form file", zap.Error(err))
		}
	}()

	if header.Size > config.MaxMemory {
		return hdl.ErrFileTooLarge
	}

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, io.LimitReader(file, config.MaxMemory+1)); err != nil {
		zap.L().Error("failed to read form file", zap.String("field", field), zap.Error(err))
		return hdl.ErrInternal
	}

	if buf.Len() > config.MaxMemory {
		return hdl.ErrFileTooLarge
	}

	contentType := http.DetectContentType(buf.Bytes())
	if !strings.HasPrefix(contentType, "image/") {
		return hdl.ErrUnsupportedMedia
	}

	req.File = buf.Bytes()
	req.Filename = header.Filename
	req.ContentType = contentType
	return nil
}
