// Package rift0 implements the RIFT-0 tokenization core: a registry of
// named lexical patterns compiled into deterministic finite automata
// (package dfa, via package pattern), the longest-match scanning loop
// that turns input bytes into a token stream (package scan), and the
// dual-channel router that splits the stream into classical and
// quantum sub-sequences for downstream consumers.
package rift0

import (
	"sync"
	"time"

	"github.com/obinexus/rift0/pattern"
	"github.com/obinexus/rift0/registry"
	"github.com/obinexus/rift0/scan"
	"github.com/obinexus/rift0/token"
)

// maxTokenBufferCapacity bounds how large Context.ensureCapacity will
// grow the token buffer before reporting AllocationFailed.
const maxTokenBufferCapacity = 1 << 20

// Context is the opaque handle holding every mutable resource the
// tokenization core needs: a pattern registry, a growable token buffer,
// scan position state, mode, sticky error, and running statistics.
// When Mode.ThreadSafe is set, every public method acquires mu for its
// entire duration, so concurrent calls on the same Context serialize;
// distinct Contexts are fully independent.
type Context struct {
	mu sync.Mutex

	reg    *registry.Registry
	tokens []token.Token

	line, col   int
	quantumMode bool

	mode Mode

	errKind ErrorKind
	errMsg  string
	hasErr  bool

	stats Stats

	debugTrace []string
}

// Create builds a Context with the given starting token buffer capacity
// and pattern registry bound under DefaultMode.
func Create(tokenCapacity, patternCapacity int) (*Context, error) {
	return CreateWithConfig(DefaultConfig().WithTokenCapacity(tokenCapacity).WithPatternCapacity(patternCapacity))
}

// CreateWithConfig builds a Context from an explicit Config.
func CreateWithConfig(cfg Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tokenCap := 64
	for tokenCap < cfg.TokenCapacity {
		tokenCap *= 2
	}
	return &Context{
		reg:    registry.NewWithCapacity(cfg.PatternCapacity),
		tokens: make([]token.Token, 0, tokenCap),
		line:   1,
		col:    1,
		mode:   cfg.Mode,
		stats:  Stats{PeakTokenCapacity: tokenCap},
	}, nil
}

// Destroy releases the context's resources. The zero value is safe to
// discard; Destroy exists to match the original tokenizer's explicit
// lifecycle and to make reuse-after-destroy bugs visible: on a destroyed
// context RegisterPattern, UnregisterPattern, and Scan fail with
// NotFound, ClearPatterns does nothing, and the token buffer is empty.
func (c *Context) Destroy() {
	c.withLock(func() {
		c.reg = nil
		c.tokens = nil
		c.debugTrace = nil
	})
}

func (c *Context) withLock(f func()) {
	if c.mode.ThreadSafe {
		c.mu.Lock()
		defer c.mu.Unlock()
	}
	f()
}

func (c *Context) setError(kind ErrorKind, msg string) {
	c.hasErr = true
	c.errKind = kind
	c.errMsg = msg
	c.stats.ErrorCount++
}

// RegisterPattern compiles patternText and adds it to the context's
// registry under name. flags is ORed with Mode.GlobalFlags.
func (c *Context) RegisterPattern(name, patternText string, flags pattern.Flags, kind token.Kind, priority int) error {
	var outErr error
	c.withLock(func() {
		if c.reg == nil {
			outErr = c.fail(NotFound, nil, "context has been destroyed")
			return
		}
		_, err := c.reg.Register(name, patternText, kind, priority, flags|c.mode.GlobalFlags)
		if err != nil {
			outErr = c.fail(classifyRegistryErr(err), err, "RegisterPattern(%s) failed", name)
			return
		}
	})
	return outErr
}

// UnregisterPattern removes the named pattern.
func (c *Context) UnregisterPattern(name string) error {
	var outErr error
	c.withLock(func() {
		if c.reg == nil {
			outErr = c.fail(NotFound, nil, "context has been destroyed")
			return
		}
		if err := c.reg.Unregister(name); err != nil {
			outErr = c.fail(NotFound, err, "UnregisterPattern(%s) failed", name)
			return
		}
	})
	return outErr
}

// ClearPatterns removes every registered pattern.
func (c *Context) ClearPatterns() {
	c.withLock(func() {
		if c.reg != nil {
			c.reg.Clear()
		}
	})
}

// SetMode replaces the context's mode.
func (c *Context) SetMode(m Mode) {
	c.withLock(func() {
		c.mode = m
	})
}

// Scan runs the longest-match loop over input, appending emitted tokens
// to the context's buffer and returning how many tokens this call
// produced. Tokens emitted before a strict-mode failure are kept.
func (c *Context) Scan(input []byte) (int, error) {
	var n int
	var outErr error
	c.withLock(func() {
		if c.reg == nil {
			outErr = c.fail(NotFound, nil, "context has been destroyed")
			return
		}
		start := time.Now()
		res, err := scan.Scan(c.reg, input, scan.Options{
			Strict:                       c.mode.Strict,
			QuantumTogglesSubsequentOnly: true,
			InitialQuantumMode:           c.quantumMode,
		})
		if err != nil {
			outErr = c.fail(Internal, err, "scan failed")
			return
		}
		c.quantumMode = res.FinalQuantumMode

		if cerr := c.ensureCapacity(len(res.Tokens)); cerr != nil {
			outErr = cerr
			return
		}
		for _, tok := range res.Tokens {
			c.tokens = append(c.tokens, tok)
			if c.mode.Debug {
				c.debugTrace = append(c.debugTrace, tok.String())
			}
			lexemeEnd := int(tok.Offset()) + int(tok.Length())
			if lexemeEnd <= len(input) {
				scan.Advance(input[tok.Offset():lexemeEnd], &c.line, &c.col)
			}
		}
		n = len(res.Tokens)

		c.stats.TokensProcessed += uint64(n)
		c.stats.BytesScanned += uint64(len(input))
		c.stats.Elapsed += time.Since(start)

		if res.StrictFailed {
			outErr = c.fail(StrictScanFailed, nil, "strict scan stopped at an unmatched position")
		}
	})
	return n, outErr
}

// Reset clears the token buffer and scan position state. Sticky error
// state and cumulative statistics survive a Reset; call ClearError
// separately if a fresh error state is also wanted.
func (c *Context) Reset() {
	c.withLock(func() {
		if c.tokens != nil {
			c.tokens = c.tokens[:0]
		}
		c.line, c.col = 1, 1
		c.quantumMode = false
		c.debugTrace = nil
	})
}

// GetTokens copies as many buffered tokens as fit into out and returns
// the count copied.
func (c *Context) GetTokens(out []token.Token) int {
	var n int
	c.withLock(func() {
		n = copy(out, c.tokens)
	})
	return n
}

// GetTokenAt returns the token at index.
func (c *Context) GetTokenAt(index int) (token.Token, error) {
	var tok token.Token
	var outErr error
	c.withLock(func() {
		if index < 0 || index >= len(c.tokens) {
			outErr = c.fail(OutOfRange, nil, "index %d out of range [0,%d)", index, len(c.tokens))
			return
		}
		tok = c.tokens[index]
	})
	return tok, outErr
}

// GetError returns the context's sticky error state. An empty message
// means no error is currently set.
func (c *Context) GetError() (ErrorKind, string) {
	var kind ErrorKind
	var msg string
	c.withLock(func() {
		if c.hasErr {
			kind, msg = c.errKind, c.errMsg
		}
	})
	return kind, msg
}

// ClearError clears the sticky error state.
func (c *Context) ClearError() {
	c.withLock(func() {
		c.hasErr = false
		c.errKind = 0
		c.errMsg = ""
	})
}

// Route partitions the context's current token buffer into classical
// and quantum channels (spec §4.7).
func (c *Context) Route() (classical, quantum []token.Token) {
	c.withLock(func() {
		classical, quantum = Route(c.tokens, false)
	})
	return classical, quantum
}

// Statistics returns a snapshot of the context's running counters.
func (c *Context) Statistics() Stats {
	var s Stats
	c.withLock(func() {
		s = c.stats
	})
	return s
}

// DebugTrace returns one rendered-token string per token emitted since
// the last Reset, recorded only while Mode.Debug is set.
func (c *Context) DebugTrace() []string {
	var out []string
	c.withLock(func() {
		out = append(out, c.debugTrace...)
	})
	return out
}

// fail records kind/msg as the sticky error and returns it as a
// *ContextError wrapping cause.
func (c *Context) fail(kind ErrorKind, cause error, format string, args ...any) *ContextError {
	ce := newContextError(kind, cause, format, args...)
	c.setError(kind, ce.Message)
	return ce
}

func classifyRegistryErr(err error) ErrorKind {
	if _, ok := err.(*pattern.CompileError); ok {
		return InvalidPattern
	}
	if re, ok := err.(*registry.Error); ok {
		switch re.Kind {
		case registry.DuplicateName:
			return DuplicateName
		case registry.CapacityExhausted:
			return CapacityExhausted
		case registry.NotFound:
			return NotFound
		}
	}
	return Internal
}

// ensureCapacity grows the token buffer, if needed, to at least
// len(c.tokens)+additional, doubling from a power-of-two floor of 64 up
// to maxTokenBufferCapacity.
func (c *Context) ensureCapacity(additional int) error {
	need := len(c.tokens) + additional
	if need <= cap(c.tokens) {
		return nil
	}
	newCap := cap(c.tokens)
	if newCap < 64 {
		newCap = 64
	}
	for newCap < need {
		if newCap >= maxTokenBufferCapacity {
			return c.fail(AllocationFailed, nil, "token buffer ceiling %d exceeded", maxTokenBufferCapacity)
		}
		newCap *= 2
	}
	grown := make([]token.Token, len(c.tokens), newCap)
	copy(grown, c.tokens)
	c.tokens = grown
	if newCap > c.stats.PeakTokenCapacity {
		c.stats.PeakTokenCapacity = newCap
	}
	return nil
}
