/*

Gotherm computes Gibbs free energies (deltaG, kcal/mol) of DNA duplex
formation between an oligonucleotide and its perfect complement,
using the unified nearest-neighbor thermodynamic parameters.

The basic usage of gotherm looks like this:

	gotherm GATTACA

, this will print deltaG for the sequence at 37 °C and 1 M monovalent
cations.

You can change the solution conditions and compute multiple sequences
at once:

	gotherm -t 60 -s 0.5 GATTACA TAACAAGCAATGAGATAGAGAAAGAAATATATCCA

To see all the options run:

	gotherm --help

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/Davydov/gotherm/bio"
	"bitbucket.org/Davydov/gotherm/record"
	"bitbucket.org/Davydov/gotherm/thermo"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("gotherm")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("gotherm", "nearest-neighbor calculator of DNA duplex free energy").Version(version)

	// input sequences
	sequences = app.Arg("sequence", "DNA sequence (A, C, G, T; case-insensitive)").Required().Strings()

	// solution conditions
	temperature = app.Flag("temperature", "temperature, °C").Short('t').Default("37").Float64()
	saltConc    = app.Flag("salt", "monovalent cation concentration, M").Short('s').Default("1").Float64()

	// input/output
	printTable = app.Flag("table", "print the derived free-energy table").Bool()
	dbF        = app.Flag("db", "record results in a database file").String()
	outLogF    = app.Flag("log", "write log to a file").String()
	logLevel   = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json output to a file").String()
)

// printDGTable prints a free-energy table with the keys sorted.
func printDGTable(tbl map[string]float64) {
	keys := make([]string, 0, len(tbl))
	for k := range tbl {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s\t%g\n", k, tbl[k])
	}
}

func run() (summary *CallSummary) {
	startTime := time.Now()
	summary = &CallSummary{
		Temperature: *temperature,
		SaltConc:    *saltConc,
	}

	m, err := thermo.New(*temperature, *saltConc)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("Conditions: %g °C, %g M monovalent cations", m.Temperature(), m.SaltConc())

	if *printTable {
		printDGTable(m.DeltaGTable())
	}

	var db *bolt.DB
	if *dbF != "" {
		db, err = bolt.Open(*dbF, 0600, nil)
		if err != nil {
			log.Fatal("Error opening database:", err)
		}
		defer db.Close()
	}
	rec := record.NewResultIO(db)

	fmt.Println("sequence\tdeltaG")
	for _, seq := range *sequences {
		seq = strings.ToUpper(seq)

		res, err := rec.Get(seq, *temperature, *saltConc)
		if err != nil {
			log.Error("Error reading the database:", err)
		}

		var dG float64
		if res != nil {
			dG = res.DeltaG
		} else {
			dG, err = m.DeltaG(seq)
			if err != nil {
				log.Fatal(err)
			}
			err = rec.Save(&record.Result{
				Sequence:    seq,
				Temperature: *temperature,
				SaltConc:    *saltConc,
				DeltaG:      dG,
				Time:        time.Now(),
			})
			if err != nil {
				log.Error("Error saving the result:", err)
			}
		}

		fmt.Printf("%s\t%g\n", seq, dG)
		summary.Results = append(summary.Results, SequenceSummary{
			Sequence:          seq,
			Length:            len(seq),
			SelfComplementary: bio.IsSelfComplementary(seq),
			DeltaG:            dG,
		})
	}

	deltaT := time.Since(startTime)
	log.Noticef("Running time: %v", deltaT)
	summary.TotalTime = deltaT.Seconds()

	return
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "gotherm")
	logging.SetLevel(level, "thermo")
	logging.SetLevel(level, "record")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	summary := run()
	summary.Version = version
	summary.CommandLine = os.Args

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
