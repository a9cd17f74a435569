package service

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/roya-gateway/models"
)

var phoneIdentifier = regexp.MustCompile(`^\d{8,15}$`)

// ClassifyIdentifier decides which column a login identifier is matched
// against. The value is only trimmed: "+1 (555) 0100" stays a username.
func ClassifyIdentifier(raw string) models.Identifier {
	value := strings.TrimSpace(raw)

	switch {
	case strings.Contains(value, "@"):
		return models.Identifier{Kind: models.IdentifierEmail, Value: value}
	case phoneIdentifier.MatchString(value):
		return models.Identifier{Kind: models.IdentifierPhone, Value: value}
	default:
		return models.Identifier{Kind: models.IdentifierUsername, Value: value}
	}
}
