package override

import "strings"

// KeyPrefix starts every override key: log.tag.<AppTag>
const KeyPrefix = "log.tag."

// Key returns the override key of tag
func Key(tag string) string {
	return KeyPrefix + tag
}

// TagOf returns the tag of an override key, false when key is not one
func TagOf(key string) (string, bool) {
	if !strings.HasPrefix(key, KeyPrefix) || len(key) == len(KeyPrefix) {
		return "", false
	}
	return key[len(KeyPrefix):], true
}
