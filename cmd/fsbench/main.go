package main

import (
	"log"
	"os"

	"github.com/hamzali/fsbench"
	"github.com/hamzali/fsbench/conf"
	"github.com/hamzali/fsbench/hostinfo"
)

func main() {
	errLogger := log.New(os.Stderr, "", log.Lmsgprefix)
	infoLogger := log.New(os.Stdout, "", log.Lmsgprefix)

	config, err := conf.InitConfig(os.Args[0], os.Args[1:])
	if err != nil {
		errLogger.Fatalln(err)
	}

	bench := config.Bench()
	if !bench.IsValid() {
		errLogger.Fatalf(
			"invalid benchmark config: dir=%q bs=%d size=%d iter=%d",
			bench.Dir, bench.IOSize, bench.DataSize, bench.Iterations,
		)
	}

	host, err := hostinfo.Gather()
	if err != nil {
		// the report simply renders without the host block
		errLogger.Println(err)
	}

	suite := fsbench.RunSuite(bench)

	report := fsbench.Report{Host: host, Suite: suite}

	if config.JSON {
		out, err := fsbench.FormatJSON(report)
		if err != nil {
			errLogger.Fatalln(err)
		}

		infoLogger.Print(out)
	} else {
		infoLogger.Print(fsbench.FormatReport(report))
	}

	if !suite.AllSuccess() {
		os.Exit(1)
	}
}
