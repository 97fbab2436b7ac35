// Package calc is the command-line front end of matrixcalc. It parses the
// configuration, turns textual grids into matrix.Dense values, dispatches the
// requested operation and writes the result.
package calc

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix of every environment variable read by matrixcalc.
// A flag given on the command line always wins over its variable.
const EnvPrefix = "MATRIXCALC_"

// Default configuration values.
const (
	DefaultOp       = "trace"
	DefaultScalar   = 1.0
	DefaultBlurring = 0.12
	DefaultLogLevel = "info"
)

// ErrConfig marks an invalid configuration (unknown op, missing operand, ...).
var ErrConfig = errors.New("calc: invalid configuration")

// Operation names accepted by -op.
const (
	OpAdd       = "add"
	OpSub       = "sub"
	OpNeg       = "neg"
	OpMul       = "mul"
	OpScale     = "scale"
	OpTranspose = "transpose"
	OpTrace     = "trace"
	OpDet       = "det"
	OpInv       = "inv"
	OpDot       = "dot"
	OpNormalize = "normalize"
	OpBlur      = "blur"
)

// binaryOps need both -a and -b.
var binaryOps = map[string]bool{OpAdd: true, OpSub: true, OpMul: true, OpDot: true}

// knownOps lists every operation Run can dispatch.
var knownOps = map[string]bool{
	OpAdd: true, OpSub: true, OpNeg: true, OpMul: true, OpScale: true,
	OpTranspose: true, OpTrace: true, OpDet: true, OpInv: true, OpDot: true,
	OpNormalize: true, OpBlur: true,
}

// Ops returns the supported operation names in sorted order.
func Ops() []string {
	out := make([]string, 0, len(knownOps))
	for op := range knownOps {
		out = append(out, op)
	}
	sort.Strings(out)

	return out
}

// Config holds the parsed command-line configuration.
type Config struct {
	// Op is the operation to run (see Ops).
	Op string
	// A is the left operand grid, e.g. "1,2;3,4".
	A string
	// B is the right operand grid for binary operations.
	B string
	// K is the scalar for "scale".
	K float64
	// Blurring is the blur factor in [0, 1] for "blur".
	Blurring float64
	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string
}

// Validate checks that the configuration is complete and consistent.
func (c Config) Validate() error {
	if !knownOps[c.Op] {
		return fmt.Errorf("%w: unknown op %q (valid: %s)", ErrConfig, c.Op, strings.Join(Ops(), ", "))
	}
	if strings.TrimSpace(c.A) == "" {
		return fmt.Errorf("%w: -a is required", ErrConfig)
	}
	if binaryOps[c.Op] && strings.TrimSpace(c.B) == "" {
		return fmt.Errorf("%w: -b is required for %s", ErrConfig, c.Op)
	}
	if c.Blurring < 0 || c.Blurring > 1 {
		return fmt.Errorf("%w: -blur must be within [0, 1], got %g", ErrConfig, c.Blurring)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: -log-level: %v", ErrConfig, err)
	}

	return nil
}

// ParseConfig parses args into a Config, applies MATRIXCALC_* environment
// overrides for flags that were not set explicitly, then validates.
// Usage and parse errors are written to errorWriter.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (Config, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	cfg := Config{}
	fs.StringVar(&cfg.Op, "op", DefaultOp, "Operation: "+strings.Join(Ops(), ", ")+".")
	fs.StringVar(&cfg.A, "a", "", `Left operand, rows separated by ';' and cells by ',' (e.g. "1,2;3,4").`)
	fs.StringVar(&cfg.B, "b", "", "Right operand for add, sub, mul and dot.")
	fs.Float64Var(&cfg.K, "k", DefaultScalar, "Scalar for the scale operation.")
	fs.Float64Var(&cfg.Blurring, "blur", DefaultBlurring, "Blurring factor in [0, 1] for the blur operation.")
	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error.")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := applyEnvOverrides(fs, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnvOverrides fills every flag not given on the command line from its
// MATRIXCALC_<NAME> variable (dashes become underscores).
func applyEnvOverrides(fs *flag.FlagSet, cfg *Config) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	strVars := map[string]*string{"op": &cfg.Op, "a": &cfg.A, "b": &cfg.B, "log-level": &cfg.LogLevel}
	for name, dst := range strVars {
		if val, ok := lookupEnv(name); ok && !set[name] {
			*dst = val
		}
	}

	floatVars := map[string]*float64{"k": &cfg.K, "blur": &cfg.Blurring}
	for name, dst := range floatVars {
		val, ok := lookupEnv(name)
		if !ok || set[name] {
			continue
		}
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrConfig, EnvPrefix, envName(name), val, err)
		}
		*dst = parsed
	}

	return nil
}

func envName(flagName string) string {
	return strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

func lookupEnv(flagName string) (string, bool) {
	val := os.Getenv(EnvPrefix + envName(flagName))
	return val, val != ""
}
