package insts

import (
	"errors"
	"fmt"
)

// Decode failures. Decode returns an Instruction with Size 0 alongside
// any of them.
var (
	// ErrMisaligned is returned when the address is not a multiple of the
	// encoding's alignment (4 bytes legacy, 2 bytes compact).
	ErrMisaligned = errors.New("misaligned instruction address")

	// ErrInvalid is returned when the bits do not name an instruction.
	ErrInvalid = errors.New("invalid instruction encoding")

	// ErrTruncated is returned when the instruction runs past the end of
	// mapped memory.
	ErrTruncated = errors.New("truncated instruction")
)

// Diagnostics receives non-fatal decoder anomalies as a message plus
// key/value context. A go-ethereum log.Logger satisfies it.
type Diagnostics interface {
	Warn(msg string, ctx ...interface{})
}

type discardDiagnostics struct{}

func (discardDiagnostics) Warn(string, ...interface{}) {}

// Decoder decodes ARC instructions from a Memory.
//
// The opcode tables are immutable and the long-immediate cache is scoped
// to a single Decode call, so one Decoder may be used from several
// goroutines as long as its Memory and Diagnostics allow it.
type Decoder struct {
	mem    Memory
	config Config
	diag   Diagnostics
	mapped func(addr uint32) bool
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithConfig sets the decoder mode flags.
func WithConfig(config *Config) DecoderOption {
	return func(d *Decoder) {
		d.config = *config
	}
}

// WithDiagnostics sets the sink for non-fatal decode anomalies.
func WithDiagnostics(diag Diagnostics) DecoderOption {
	return func(d *Decoder) {
		d.diag = diag
	}
}

// WithMappedFunc sets the predicate PC-relative literal inlining uses to
// decide whether a computed address holds data.
func WithMappedFunc(mapped func(addr uint32) bool) DecoderOption {
	return func(d *Decoder) {
		d.mapped = mapped
	}
}

// NewDecoder creates a decoder reading from mem. Without options it uses
// DefaultConfig, discards diagnostics, and consults mem.IsMapped when mem
// implements MappedMemory.
func NewDecoder(mem Memory, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		mem:    mem,
		config: *DefaultConfig(),
		diag:   discardDiagnostics{},
	}

	if m, ok := mem.(MappedMemory); ok {
		d.mapped = m.IsMapped
	} else {
		d.mapped = func(uint32) bool { return false }
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Config returns a copy of the decoder's configuration.
func (d *Decoder) Config() Config {
	return d.config
}

// Decode decodes the instruction starting at addr.
func (d *Decoder) Decode(addr uint32) (Instruction, error) {
	s := newSession(d.mem, d.diag, addr)

	var err error
	if d.config.Format == EncodingLegacy {
		err = s.decodeLegacy()
	} else {
		err = s.decodeCompact()
	}

	if err == nil && s.err != nil {
		err = s.err
	}
	if err != nil {
		return Instruction{Address: addr}, fmt.Errorf("decode at 0x%x: %w", addr, err)
	}

	inst := s.inst
	fixLoadStore(&inst)
	if d.config.Simplify {
		simplify(&inst)
	}
	if d.config.InlineConst {
		inlineConst(&inst, d.mapped)
	}

	return inst, nil
}
