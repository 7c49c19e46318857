package apierrors

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/mcaco95/project-spark-blueprint-admin/pkg/translator"
)

// APIError is the wire shape of every error response: a stable code
// string, a translated human message and optional details.
type APIError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface for APIError.
func (e APIError) Error() string {
	return fmt.Sprintf("Code: %s, Message: %s", e.Code, e.Message)
}

// CreateError generates an APIError with a translated message.
func CreateError(code string, msgKey string, lang string) APIError {
	message := GetTransErrorMsg(msgKey, lang)
	return APIError{Code: code, Message: message}
}

// CreateErrorWithDetails is CreateError plus a free-form details value
// (validation failures attach field information here).
func CreateErrorWithDetails(code string, msgKey string, lang string, details any) APIError {
	err := CreateError(code, msgKey, lang)
	err.Details = details
	return err
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
