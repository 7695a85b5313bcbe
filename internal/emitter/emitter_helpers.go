package emitter

import (
	"errors"
	"strings"
)

var errNoMain = errors.New("emitter: program has no main function")

func joinComma(items []string) string {
	return strings.Join(items, ", ")
}
