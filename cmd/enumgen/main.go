// enumgen generates nlenum tables from the constants in Linux uapi headers.
//
// Generate one table from #define lines:
//   enumgen -input_dir=/usr/include/linux -prefix=IFF_ -type=uint32 -hex if.h
// or many, from a manifest:
//   enumgen -config=enums.yaml
package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/m-lab/go/flagx"
	"github.com/m-lab/go/rtx"
	"github.com/pkg/errors"
)

func init() {
	// Always prepend the filename and line number.
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

var (
	inputDir  = flag.String("input_dir", ".", "Directory holding the C headers")
	outputDir = flag.String("output_dir", ".", "Directory to write generated files to")
	pkg       = flag.String("package", "nlenum", "Package name of the generated files")
	name      = flag.String("name", "", "Type name, derived from -prefix when empty")
	prefix    = flag.String("prefix", "", "Prefix of the constants to collect, e.g. RTN_")
	typ       = flag.String("type", "uint16", "Underlying type: uint8, uint16 or uint32")
	hex       = flag.Bool("hex", false, "Render constant values in hex")
	enum      = flag.Bool("enum", false, "Collect enumerators from enum bodies instead of #define lines")
	def       = flag.String("default", "", "Constant to declare as the type's default value")
	config    = flag.String("config", "", "YAML manifest of headers to generate; overrides the per-header flags")

	// A variable to enable mocking for testing.
	logFatal = log.Fatal
)

// Header configures the generation of one table.
type Header struct {
	File    string `yaml:"file"`
	Output  string `yaml:"output"`
	Name    string `yaml:"name"`
	Prefix  string `yaml:"prefix"`
	Type    string `yaml:"type"`
	Hex     bool   `yaml:"hex"`
	Enum    bool   `yaml:"enum"`
	Default string `yaml:"default"`
}

// Config is the manifest read with -config.
type Config struct {
	InputDir  string   `yaml:"input_dir"`
	OutputDir string   `yaml:"output_dir"`
	Package   string   `yaml:"package"`
	Headers   []Header `yaml:"headers"`
}

func loadConfig(fn string) (*Config, error) {
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	c := &Config{InputDir: *inputDir, OutputDir: *outputDir, Package: *pkg}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrap(err, fn)
	}
	for i := range c.Headers {
		h := &c.Headers[i]
		if h.File == "" || h.Prefix == "" {
			return nil, errors.Errorf("%s: header %d needs file and prefix", fn, i)
		}
		if h.Type == "" {
			h.Type = "uint16"
		}
	}
	return c, nil
}

// generate writes the table for one header and returns the output path.
func generate(c *Config, h Header) (string, error) {
	src, err := ioutil.ReadFile(filepath.Join(c.InputDir, h.File))
	if err != nil {
		return "", err
	}
	var values []constant
	if h.Enum {
		values, err = parseEnums(string(src), h.Prefix)
		if err != nil {
			return "", errors.Wrap(err, h.File)
		}
	} else {
		values = parseDefines(string(src), h.Prefix)
	}
	t := &table{
		Source:  filepath.Base(h.File),
		Package: c.Package,
		Name:    h.Name,
		Type:    h.Type,
		Prefix:  h.Prefix,
		Hex:     h.Hex,
		Default: h.Default,
		Values:  values,
	}
	if t.Name == "" {
		t.Name = typeName(h.Prefix)
	}
	out, err := emit(t)
	if err != nil {
		return "", errors.Wrap(err, h.File)
	}
	fn := h.Output
	if fn == "" {
		fn = strings.ToLower(t.Name) + "_gen.go"
	}
	fn = filepath.Join(c.OutputDir, fn)
	return fn, ioutil.WriteFile(fn, out, 0644)
}

func main() {
	flag.Parse()
	rtx.Must(flagx.ArgsFromEnv(flag.CommandLine), "Could not get args from environment")

	var c *Config
	if *config != "" {
		var err error
		c, err = loadConfig(*config)
		rtx.Must(err, "Could not load config")
	} else {
		if *prefix == "" || flag.NArg() == 0 {
			logFatal("Need -prefix and at least one header, or -config")
			return
		}
		c = &Config{InputDir: *inputDir, OutputDir: *outputDir, Package: *pkg}
		for _, f := range flag.Args() {
			c.Headers = append(c.Headers, Header{
				File: f, Name: *name, Prefix: *prefix, Type: *typ,
				Hex: *hex, Enum: *enum, Default: *def,
			})
		}
	}
	rtx.Must(os.MkdirAll(c.OutputDir, 0755), "Could not create %s", c.OutputDir)
	for _, h := range c.Headers {
		fn, err := generate(c, h)
		rtx.Must(err, "Could not generate from %s", h.File)
		log.Println("Wrote", fn)
	}
}
