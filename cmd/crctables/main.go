// Command crctables builds the forward and inverse lookup tables of CRC
// variants, verifies them, and prints them as Go declarations.
//
// Usage:
//
//	crctables [-variant NAME|all] [-table forward|inverse|both] [-self-check=true|false]
//
// A table is printed only once its variant has been built and verified;
// any failure is reported on standard error and the exit status is 1.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pchchv/crcrev"
	"github.com/pchchv/crcrev/internal/emit"
	"github.com/pkg/errors"
)

// config holds the command line options.
type config struct {
	Variant   string // variant name, or "all"
	Table     string // forward, inverse or both
	SelfCheck bool   // run the round-trip self-check before printing
}

// Validate checks if the configuration is valid.
func (c *config) Validate() error {
	switch c.Table {
	case "forward", "inverse", "both":
	default:
		return errors.Errorf("invalid table kind %q; expected forward, inverse or both", c.Table)
	}

	if c.Variant == "all" {
		return nil
	}

	if _, ok := crcrev.Lookup(c.Variant); !ok {
		var names []string
		for _, def := range crcrev.Definitions() {
			names = append(names, def.Name)
		}
		return errors.Errorf("unknown variant %q; expected all or one of %s", c.Variant, strings.Join(names, ", "))
	}

	return nil
}

// definitions returns the definitions selected by the configuration.
func (c *config) definitions() []crcrev.Definition {
	if c.Variant == "all" {
		return crcrev.Definitions()
	}
	def, _ := crcrev.Lookup(c.Variant)
	return []crcrev.Definition{def}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("crctables: ")

	cfg := &config{}
	flag.StringVar(&cfg.Variant, "variant", "all", "variant `name` to generate, or all")
	flag.StringVar(&cfg.Table, "table", "inverse", "tables to print: forward, inverse or both")
	flag.BoolVar(&cfg.SelfCheck, "self-check", true, "verify every (state, byte) round trip before printing")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	w := bufio.NewWriter(os.Stdout)
	if err := run(w, cfg); err != nil {
		w.Flush()
		log.Fatal(err)
	}

	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

// run builds, verifies and prints every selected variant.
// It stops at the first variant that fails.
func run(w io.Writer, cfg *config) error {
	for _, def := range cfg.definitions() {
		v, err := crcrev.New(def)
		if err != nil {
			return errors.Wrapf(err, "building %s", def.Name)
		}

		if cfg.SelfCheck {
			if err := v.SelfCheck(); err != nil {
				return errors.Wrapf(err, "verifying %s", def.Name)
			}
			log.Printf("%s: self-check passed", v.Name())
		}

		if err := printVariant(w, cfg, v); err != nil {
			return err
		}
	}
	return nil
}

// printVariant writes the selected tables of v.
func printVariant(w io.Writer, cfg *config, v *crcrev.Variant) error {
	fmt.Fprintf(w, "// %s: width %d, %s, polynomial 0x%0*X (%v)\n",
		v.Name(), v.Width(), v.Style(), int(v.Width()/4), v.Polynomial().Value(), v.Polynomial())

	ident := identifier(v.Name())
	if cfg.Table != "inverse" {
		fwd := v.ForwardTable()
		if err := emit.Var(w, ident+"Table", &fwd, v.Width()); err != nil {
			return err
		}
	}

	if cfg.Table != "forward" {
		inv := v.InverseTable()
		if err := emit.Var(w, ident+"InverseTable", &inv, v.Width()); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// identifier returns the unexported Go identifier for a variant name,
// e.g. crc16IBM for CRC16IBM.
func identifier(name string) string {
	if strings.HasPrefix(name, "CRC") {
		return "crc" + name[3:]
	}
	return strings.ToLower(name[:1]) + name[1:]
}
