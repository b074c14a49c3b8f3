package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/harborview/realestate/backend/shared/go-middleware"
)

// currentUserID is uuid.Nil for anonymous visitors.
func currentUserID(r *http.Request) uuid.UUID {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil
	}
	return id
}

// pathUUID parses a mux path variable. ok is false for a malformed id.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// localRedirect only accepts same-site absolute paths.
func localRedirect(target, fallback string) string {
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") && !strings.HasPrefix(target, "/\\") {
		return target
	}
	return fallback
}
