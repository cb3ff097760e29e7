package api

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/lbryio/base58.go/address"
	"github.com/lbryio/base58.go/address/base58"
	"github.com/lbryio/base58.go/chainparams"
	"github.com/lbryio/base58.go/extras/errors"

	v "github.com/lbryio/ozzo-validation"
	"github.com/spf13/cast"
)

// ResponseHeaders are returned with each response
var ResponseHeaders map[string]string

// LogError Allows specific error logging for the server at specific points.
var LogError = func(*http.Request, *Response, error) {}

// LogInfo Allows for specific logging information.
var LogInfo = func(*http.Request, *Response) {}

// TraceEnabled Attaches a trace field to the JSON response when enabled.
var TraceEnabled = false

var (
	ErrRateLimited   = errors.Base("too many requests")
	ErrInvalidParams = errors.Base("invalid params")
)

// badRequestErrors are caller mistakes: malformed input rather than server failures.
var badRequestErrors = []error{
	ErrInvalidParams,
	base58.ErrFormat,
	base58.ErrChecksum,
	address.ErrPrefixLength,
	address.ErrInvalidAddress,
	address.ErrInvalidSecret,
	address.ErrNoDestination,
	address.ErrUnrecognized,
	address.ErrExtKey,
	chainparams.ErrUnknownNetwork,
	chainparams.ErrInvalidPrefix,
}

// StatusError represents an error with an associated HTTP status code.
type StatusError struct {
	Status int
	Err    error
}

// Allows StatusError to satisfy the error interface.
func (se StatusError) Error() string {
	return se.Err.Error()
}

// Response is returned by API handlers
type Response struct {
	Status int
	Data   interface{}
	Error  error
}

// Handler handles API requests
type Handler func(r *http.Request) Response

func (h Handler) callHandlerSafely(r *http.Request) (rsp Response) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = errors.Err("%v", r)
			}
			rsp = Response{Error: errors.Wrap(err, 2)}
		}
	}()

	return h(r)
}

func statusFor(err error) int {
	if statusError, ok := err.(StatusError); ok {
		return statusError.Status
	}
	if errors.Is(err, ErrRateLimited) {
		return http.StatusTooManyRequests
	}
	for _, e := range badRequestErrors {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Set header settings
	if ResponseHeaders != nil {
		//Multiple readers, no writers is okay
		for key, value := range ResponseHeaders {
			w.Header().Set(key, value)
		}
	}

	// Stop here if its a preflighted OPTIONS request
	if r.Method == "OPTIONS" {
		return
	}

	rsp := h.callHandlerSafely(r)

	if rsp.Status == 0 {
		if rsp.Error != nil {
			rsp.Status = statusFor(rsp.Error)
		} else {
			rsp.Status = http.StatusOK
		}
	}

	success := rsp.Status < http.StatusBadRequest

	consoleText := r.RemoteAddr + " [" + strconv.Itoa(rsp.Status) + "]: " + r.Method + " " + r.URL.Path
	if success {
		LogInfo(r, &rsp)
	} else {
		LogError(r, &rsp, errors.Base(consoleText))
	}

	var errorString *string
	if rsp.Error != nil {
		errorStringRaw := rsp.Error.Error()
		errorString = &errorStringRaw
	}

	var trace []string
	if TraceEnabled && errors.HasTrace(rsp.Error) {
		trace = strings.Split(errors.Trace(rsp.Error), "\n")
		for index, element := range trace {
			if strings.HasPrefix(element, "\t") {
				trace[index] = strings.Replace(element, "\t", "    ", 1)
			}
		}
	}

	jsonResponse, err := json.MarshalIndent(&struct {
		Success bool        `json:"success"`
		Error   *string     `json:"error"`
		Data    interface{} `json:"data"`
		Trace   []string    `json:"_trace,omitempty"`
	}{
		Success: success,
		Error:   errorString,
		Data:    rsp.Data,
		Trace:   trace,
	}, "", "  ")
	if err != nil {
		LogError(r, &rsp, errors.Prefix("Error encoding JSON response: ", err))
	}

	if rsp.Status >= http.StatusInternalServerError {
		LogError(r, &rsp, errors.Prefix(r.Method+" "+r.URL.Path+"\n", rsp.Error))
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(rsp.Status)
	w.Write(jsonResponse)
}

// IgnoredFormFields are ignored by FormValues() when checking for extraneous fields
var IgnoredFormFields []string

// FormValues fills the fields of params from the request form. A field named VersionLength is
// read from "version_length".
func FormValues(r *http.Request, params interface{}, validationRules []*v.FieldRules) error {
	ref := reflect.ValueOf(params)
	if !ref.IsValid() || ref.Kind() != reflect.Ptr || ref.Elem().Kind() != reflect.Struct {
		return errors.Err("'params' must be a pointer to a struct")
	}

	structType := ref.Elem().Type()
	structValue := ref.Elem()
	fields := map[string]bool{}
	for i := 0; i < structType.NumField(); i++ {
		name := structType.Field(i).Name
		underscoredName := underscore(name)
		value := strings.TrimSpace(r.FormValue(underscoredName))

		// if param is not set at all, continue
		// comes after call to r.FormValue so form values get parsed internally (if they arent already)
		if len(r.Form[underscoredName]) == 0 {
			continue
		}

		fields[underscoredName] = true
		var finalValue reflect.Value

		structField := structValue.FieldByName(name)
		switch structField.Kind() {
		case reflect.String:
			finalValue = reflect.ValueOf(value)
		case reflect.Int:
			if value == "" {
				continue
			}
			castVal, err := cast.ToIntE(value)
			if err != nil {
				return errors.Prefix(underscoredName+": must be an integer", ErrInvalidParams)
			}
			finalValue = reflect.ValueOf(castVal)
		case reflect.Bool:
			if value == "" {
				continue
			}
			castVal, err := cast.ToBoolE(value)
			if err != nil {
				return errors.Prefix(underscoredName+": must be a boolean", ErrInvalidParams)
			}
			finalValue = reflect.ValueOf(castVal)
		default:
			return errors.Err("field %s is an unsupported type", name)
		}

		structField.Set(finalValue)
	}

	var extraParams []string
	for k := range r.Form {
		if _, ok := fields[k]; !ok && !inSlice(k, IgnoredFormFields) {
			extraParams = append(extraParams, k)
		}
	}
	if len(extraParams) > 0 {
		return errors.Prefix("extraneous params "+strings.Join(extraParams, ", "), ErrInvalidParams)
	}

	if len(validationRules) > 0 {
		validationErr := v.ValidateStruct(params, validationRules...)
		if validationErr != nil {
			return errors.Prefix(validationErr.Error(), ErrInvalidParams)
		}
	}

	return nil
}

func underscore(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func inSlice(str string, values []string) bool {
	for _, s := range values {
		if str == s {
			return true
		}
	}
	return false
}
