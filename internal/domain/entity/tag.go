package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/logcat/internal/domain/error"
)

// MaxAppTagLength is the longest application tag accepted, in bytes
const MaxAppTagLength = 23

// TagDelimiter separates the component tag from the message
const TagDelimiter = ": "

// NewAppTag trims tag and validates it as an application tag
func NewAppTag(tag string) (string, error) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return "", &errs.TagError{Tag: tag, Reason: "the tag is null or empty"}
	}
	if len(trimmed) > MaxAppTagLength {
		return "", &errs.TagError{Tag: tag, Reason: "the tag is too long"}
	}
	return trimmed, nil
}

// IsTagEmpty reports whether a component tag should be omitted
func IsTagEmpty(tag string) bool {
	return strings.TrimSpace(tag) == ""
}

// ComposeMessage prefixes msg with the component tag when one is given
func ComposeMessage(tag, msg string) string {
	if IsTagEmpty(tag) {
		return msg
	}
	return tag + TagDelimiter + msg
}
