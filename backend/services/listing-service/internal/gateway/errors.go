package gateway

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/sirupsen/logrus"

	"github.com/harborview/realestate/backend/shared/go-utils"
)

// codeNoRows stands in for pgx.ErrNoRows, which carries no SQLSTATE.
const codeNoRows = "no_rows"

// storeCodeKinds is the complete translation table from store error codes to
// the error taxonomy. Codes not listed here are internal failures.
var storeCodeKinds = map[string]utils.ErrorKind{
	codeNoRows: utils.KindNotFound,
	"28000":    utils.KindAuthentication, // invalid_authorization_specification
	"28P01":    utils.KindAuthentication, // invalid_password
	"42501":    utils.KindAuthorization,  // insufficient_privilege
	"22P02":    utils.KindValidation,     // invalid_text_representation
	"23502":    utils.KindValidation,     // not_null_violation
	"23503":    utils.KindValidation,     // foreign_key_violation
	"23514":    utils.KindValidation,     // check_violation
}

// storeCode extracts the code the table is keyed by; "" when err is not a
// store error at all.
func storeCode(err error) string {
	if errors.Is(err, pgx.ErrNoRows) {
		return codeNoRows
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// messages are the client-facing texts of one gateway operation.
type messages struct {
	failed   string
	notFound string
	invalid  string
}

// translate funnels a repository error through storeCodeKinds. Errors that
// are already typed pass through untouched.
func translate(err error, msg messages) error {
	if err == nil {
		return nil
	}
	if utils.IsAppError(err) {
		return err
	}

	code := storeCode(err)
	kind, ok := storeCodeKinds[code]
	if !ok {
		utils.Logger.WithFields(logrus.Fields{
			"code":  code,
			"error": err.Error(),
		}).Error(msg.failed)
		return utils.WrapInternal(msg.failed, err)
	}

	switch kind {
	case utils.KindNotFound:
		text := msg.notFound
		if text == "" {
			text = "Resource not found"
		}
		return utils.NewErrorOfKind(kind, text, err)
	case utils.KindValidation:
		text := msg.invalid
		if text == "" {
			text = "Invalid request data"
		}
		appErr := utils.NewErrorOfKind(kind, text, err)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
			appErr.Details = map[string]string{"constraint": pgErr.ConstraintName}
		}
		return appErr
	case utils.KindAuthentication:
		return utils.NewErrorOfKind(kind, "Authentication required", err)
	case utils.KindAuthorization:
		return utils.NewErrorOfKind(kind, "Permission denied", err)
	default:
		return utils.WrapInternal(msg.failed, err)
	}
}

// wrapAll reports every failure as the operation's generic 500 while keeping
// the translated error as its cause.
func wrapAll(err error, msg messages) error {
	if err == nil {
		return nil
	}
	return utils.WrapInternal(msg.failed, translate(err, msg))
}
