package main

import (
	"os"
	"time"

	"github.com/cs-au-dk/portion/calc"
	"github.com/cs-au-dk/portion/utils"

	log "github.com/sirupsen/logrus"
)

var opts = utils.Opts()

func main() {
	utils.ParseArgs()
	defer utils.TimeTrack(time.Now(), "Evaluation")

	expr := utils.Expression()
	if expr == "" {
		log.Fatalln("Usage: portion [flags] <expression>, e.g. portion -type=u8 '[2, 5] & (3, 7)'")
	}
	log.Debugf("Evaluating %q over %s", expr, opts.Scalar().Name())

	q := calc.Query{
		Contains: opts.Contains(),
		Members:  opts.Members(),
		Limit:    opts.Limit(),
	}

	var err error
	switch sc := opts.Scalar(); {
	case sc.IsUint8():
		err = calc.Report[uint8](os.Stdout, expr, q)
	case sc.IsUint16():
		err = calc.Report[uint16](os.Stdout, expr, q)
	case sc.IsUint32():
		err = calc.Report[uint32](os.Stdout, expr, q)
	case sc.IsUint64():
		err = calc.Report[uint64](os.Stdout, expr, q)
	case sc.IsUint():
		err = calc.Report[uint](os.Stdout, expr, q)
	case sc.IsInt8():
		err = calc.Report[int8](os.Stdout, expr, q)
	case sc.IsInt16():
		err = calc.Report[int16](os.Stdout, expr, q)
	case sc.IsInt32():
		err = calc.Report[int32](os.Stdout, expr, q)
	case sc.IsInt64():
		err = calc.Report[int64](os.Stdout, expr, q)
	case sc.IsInt():
		err = calc.Report[int](os.Stdout, expr, q)
	}

	if err != nil {
		log.Fatalln(err)
	}
}
