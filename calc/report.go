package calc

import (
	"fmt"
	"io"
	"strings"

	"github.com/cs-au-dk/portion/scalar"
	"github.com/cs-au-dk/portion/utils/slices"
)

// Query selects what Report prints besides the result itself.
type Query struct {
	// Contains is a value to test for membership; empty to skip.
	Contains string
	// Members lists the members of the result, up to Limit (0 for no limit).
	Members bool
	Limit   uint
}

// Report evaluates expr over T and writes the result, followed by the
// answers to q, one per line.
func Report[T scalar.Integer](w io.Writer, expr string, q Query) error {
	res, err := Eval[T](expr)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, res.Pretty())

	if q.Contains != "" {
		v, err := scalar.Parse[T](q.Contains)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "contains %s: %t\n", scalar.Format(v), res.Contains(v))
	}

	if q.Members {
		members, truncated := res.Members(q.Limit)
		line := strings.Join(slices.Map(members, scalar.Format[T]), " ")
		if truncated {
			line += fmt.Sprintf(" ... (first %d)", q.Limit)
		}
		fmt.Fprintf(w, "members: %s\n", line)
	}

	return nil
}
