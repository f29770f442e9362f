package utils

import (
	"flag"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

type options struct {
	scalarType string
	contains   string
	limit      uint
	members    bool
	noColorize bool
	verbose    bool
}

const (
	_UINT8 = iota
	_UINT16
	_UINT32
	_UINT64
	_UINT
	_INT8
	_INT16
	_INT32
	_INT64
	_INT
)

var scalarTypes = []struct{ flag, explanation string }{{
	"u8", "8-bit unsigned integers, [0, 255]",
}, {
	"u16", "16-bit unsigned integers, [0, 65535]",
}, {
	"u32", "32-bit unsigned integers, [0, 4294967295]",
}, {
	"u64", "64-bit unsigned integers, [0, 18446744073709551615]",
}, {
	"uint", "platform sized unsigned integers",
}, {
	"i8", "8-bit signed integers, [-128, 127]",
}, {
	"i16", "16-bit signed integers, [-32768, 32767]",
}, {
	"i32", "32-bit signed integers, [-2147483648, 2147483647]",
}, {
	"i64", "64-bit signed integers, [-9223372036854775808, 9223372036854775807]",
}, {
	"int", "platform sized signed integers",
}}

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

var opts = &options{}

type optInterface struct{}

type scalarInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

// SetNoColorize overrides -no-colorize, e.g. when output is not a terminal.
func (optInterface) SetNoColorize(b bool) {
	opts.noColorize = b
}

func (optInterface) Members() bool {
	return opts.members
}

func (optInterface) Limit() uint {
	return opts.limit
}

// Contains is the raw value given to -contains, or "" if absent.
func (optInterface) Contains() string {
	return opts.contains
}

func (optInterface) Scalar() scalarInterface {
	return scalarInterface{}
}

func (scalarInterface) Name() string {
	return opts.scalarType
}
func (scalarInterface) IsUint8() bool {
	return opts.scalarType == scalarTypes[_UINT8].flag
}
func (scalarInterface) IsUint16() bool {
	return opts.scalarType == scalarTypes[_UINT16].flag
}
func (scalarInterface) IsUint32() bool {
	return opts.scalarType == scalarTypes[_UINT32].flag
}
func (scalarInterface) IsUint64() bool {
	return opts.scalarType == scalarTypes[_UINT64].flag
}
func (scalarInterface) IsUint() bool {
	return opts.scalarType == scalarTypes[_UINT].flag
}
func (scalarInterface) IsInt8() bool {
	return opts.scalarType == scalarTypes[_INT8].flag
}
func (scalarInterface) IsInt16() bool {
	return opts.scalarType == scalarTypes[_INT16].flag
}
func (scalarInterface) IsInt32() bool {
	return opts.scalarType == scalarTypes[_INT32].flag
}
func (scalarInterface) IsInt64() bool {
	return opts.scalarType == scalarTypes[_INT64].flag
}
func (scalarInterface) IsInt() bool {
	return opts.scalarType == scalarTypes[_INT].flag
}

func init() {
	typeFlag := "\n"
	for _, t := range scalarTypes {
		typeFlag += t.flag + " -- " + t.explanation + "\n"
	}
	typeFlag += "\n"

	flag.StringVar(&(opts.scalarType), "type", scalarTypes[_INT64].flag, "Scalar domain of the intervals. Options:"+typeFlag)
	flag.StringVar(&(opts.contains), "contains", "", "Report whether the result contains the given value")
	flag.BoolVar(&(opts.members), "members", false, "List the members of the result")
	flag.UintVar(&(opts.limit), "limit", 64, `Maximum number of members listed with -members.
- Use 0 to list every member. Wide intervals, e.g. [0, 18446744073709551615],
effectively never finish.`)
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "enable verbose output")

	// Set up logging
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
}

func ParseArgs() {
	// Calling flag.Parse in init messes up unit tests.
	// See https://stackoverflow.com/questions/60235896/flag-provided-but-not-defined-test-v
	flag.Parse()

	validType := false
	for _, t := range scalarTypes {
		if t.flag == opts.scalarType {
			validType = true
			break
		}
	}

	if !validType {
		log.Fatalf("Value \"%s\" is not valid for -type", opts.scalarType)
	}

	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}
}
