// Package paths builds every remote store path the application writes.
package paths

import (
	"strings"

	"jalsetu/internal/domain/repository"
	"jalsetu/internal/errors"
)

const (
	usersRoot      = "users"
	reportsKey     = "reports"
	propertiesKey  = "properties"
	graminKey      = "graminProfile"
	forbiddenChars = ".$#[]/"
)

// ValidateKey rejects empty keys and keys containing . $ # [ ] or /.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.Wrap(repository.ErrInvalidKey, "empty key")
	}
	if strings.ContainsAny(key, forbiddenChars) {
		return errors.Wrapf(repository.ErrInvalidKey, "key %q contains one of %q", key, forbiddenChars)
	}

	return nil
}

// User is users/{uid}.
func User(uid string) (string, error) {
	if err := ValidateKey(uid); err != nil {
		return "", err
	}

	return join(usersRoot, uid), nil
}

// Reports is users/{uid}/reports.
func Reports(uid string) (string, error) {
	return userChild(uid, reportsKey)
}

// Report is users/{uid}/reports/{reportID}.
func Report(uid, reportID string) (string, error) {
	return collectionItem(uid, reportsKey, reportID)
}

// Properties is users/{uid}/properties.
func Properties(uid string) (string, error) {
	return userChild(uid, propertiesKey)
}

// Property is users/{uid}/properties/{propertyID}.
func Property(uid, propertyID string) (string, error) {
	return collectionItem(uid, propertiesKey, propertyID)
}

// GraminProfile is users/{uid}/graminProfile.
func GraminProfile(uid string) (string, error) {
	return userChild(uid, graminKey)
}

// Split breaks a path into its non-empty segments.
func Split(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}

func userChild(uid, child string) (string, error) {
	user, err := User(uid)
	if err != nil {
		return "", err
	}

	return join(user, child), nil
}

func collectionItem(uid, collection, id string) (string, error) {
	parent, err := userChild(uid, collection)
	if err != nil {
		return "", err
	}
	if err := ValidateKey(id); err != nil {
		return "", err
	}

	return join(parent, id), nil
}

func join(segments ...string) string {
	return strings.Join(segments, "/")
}
