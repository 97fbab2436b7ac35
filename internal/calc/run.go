package calc

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/matrixlab/gridfilter"
	"github.com/katalvlaran/matrixlab/matrix"
	"github.com/rs/zerolog"
)

// Exit codes returned by Main.
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitConfigError = 2
)

// Runner executes one configured operation and prints its result.
type Runner struct {
	out    io.Writer
	logger zerolog.Logger
}

// NewRunner returns a Runner printing results to out.
func NewRunner(out io.Writer, logger zerolog.Logger) *Runner {
	return &Runner{out: out, logger: logger}
}

// Run parses the operands in cfg, applies cfg.Op and writes the result:
// matrices one row per line, scalars as a single number.
func (r *Runner) Run(cfg Config) error {
	log := r.logger.With().Str("op", cfg.Op).Logger()
	log.Debug().Str("a", cfg.A).Str("b", cfg.B).Msg("running operation")

	if cfg.Op == OpDot {
		return r.runDot(cfg, log)
	}

	a, err := ParseMatrix(cfg.A)
	if err != nil {
		return operandError(log, "a", err)
	}
	log.Debug().Int("rows", a.Rows()).Int("cols", a.Cols()).Msg("parsed operand a")

	var b *matrix.Dense
	if binaryOps[cfg.Op] {
		if b, err = ParseMatrix(cfg.B); err != nil {
			return operandError(log, "b", err)
		}
		log.Debug().Int("rows", b.Rows()).Int("cols", b.Cols()).Msg("parsed operand b")
	}

	var (
		res    *matrix.Dense
		scalar float64
	)
	switch cfg.Op {
	case OpAdd:
		res, err = a.Add(b)
	case OpSub:
		res, err = a.Sub(b)
	case OpNeg:
		res = a.Neg()
	case OpMul:
		res, err = a.Mul(b)
	case OpScale:
		res = a.Scale(cfg.K)
	case OpTranspose:
		res = a.T()
	case OpTrace:
		scalar, err = a.Trace()
	case OpDet:
		scalar, err = a.Determinant()
	case OpInv:
		res, err = a.Inverse()
	case OpNormalize:
		res, err = gridfilter.Normalize(a)
	case OpBlur:
		res, err = gridfilter.Blur(a, cfg.Blurring)
	default:
		err = fmt.Errorf("%w: unknown op %q", ErrConfig, cfg.Op)
	}
	if err != nil {
		log.Error().Err(err).Msg("operation failed")
		return err
	}

	if res == nil {
		log.Info().Float64("result", scalar).Msg("operation done")
		_, err = fmt.Fprintf(r.out, "%g\n", scalar)
		return err
	}
	log.Info().Int("rows", res.Rows()).Int("cols", res.Cols()).Msg("operation done")
	_, err = io.WriteString(r.out, res.String())

	return err
}

func (r *Runner) runDot(cfg Config, log zerolog.Logger) error {
	x, err := ParseVector(cfg.A)
	if err != nil {
		return operandError(log, "a", err)
	}
	y, err := ParseVector(cfg.B)
	if err != nil {
		return operandError(log, "b", err)
	}
	d, err := matrix.Dot(x, y)
	if err != nil {
		log.Error().Err(err).Msg("operation failed")
		return err
	}
	log.Info().Float64("result", d).Msg("operation done")
	_, err = fmt.Fprintf(r.out, "%g\n", d)

	return err
}

// operandError logs a rejected operand and wraps err with its name.
func operandError(log zerolog.Logger, name string, err error) error {
	log.Error().Err(err).Str("operand", name).Msg("invalid operand")
	return fmt.Errorf("operand %s: %w", name, err)
}

// Main is the whole matrixcalc program: it parses args, runs the operation
// and maps the outcome to an exit code. Logs go to stderr as JSON.
func Main(programName string, args []string, stdout, stderr io.Writer) int {
	cfg, err := ParseConfig(programName, args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return ExitConfigError
	}

	logger, err := NewLogger(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return ExitConfigError
	}

	if err = NewRunner(stdout, logger).Run(cfg); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return ExitFailure
	}

	return ExitSuccess
}
