package interval

import (
	"fmt"

	"github.com/cs-au-dk/portion/utils"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

var colorize = struct {
	Bracket   func(...interface{}) string
	Element   func(...interface{}) string
	Empty     func(...interface{}) string
	Separator func(...interface{}) string
}{
	Bracket: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Empty: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiRed).SprintFunc())(is...)
	},
	Separator: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgMagenta).SprintFunc())(is...)
	},
}

// plain renders canonical text. Equality depends on it, so it must never colorize.
func plain(is ...interface{}) string {
	return fmt.Sprint(is...)
}

var (
	// ErrSyntax is returned when parsing text that is not a canonical interval.
	ErrSyntax = errors.New("malformed interval")

	errInternal     = errors.New("internal error")
	errPatternMatch = func(k Kind) error {
		return errors.New("invalid pattern match: " + k.String())
	}
)
