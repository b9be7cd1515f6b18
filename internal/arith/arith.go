// Package arith implements the textbook Witten/Neal/Cleary 32-bit adaptive
// binary arithmetic coder, driven by a wbwt/internal/fenwick
// cumulative-frequency model: a shrinking [low, high] interval is narrowed
// on every encoded symbol in proportion to that symbol's modeled
// probability, renormalized by shifting out settled high bits (with
// underflow tracked via a pending-bit count across near-half-interval
// straddles), and the model itself adapts after each symbol so the
// interval narrows faster for frequently-seen symbols over time.
package arith

import (
	"wbwt/internal/bitio"
	"wbwt/internal/fenwick"
)

const (
	top  uint32 = 0xFFFFFFFF
	half uint32 = 0x80000000
	q1   uint32 = 0x40000000
	q3   uint32 = 0xC0000000
)

// Encoder is an adaptive binary arithmetic encoder over a fenwick.Model.
type Encoder struct {
	w       *bitio.BitWriter
	low     uint32
	high    uint32
	pending uint64
}

func NewEncoder(w *bitio.BitWriter) *Encoder {
	return &Encoder{w: w, low: 0, high: top}
}

func (e *Encoder) outputBitPlusPending(bit uint64) {
	e.w.WriteBit(bit)
	other := bit ^ 1
	for ; e.pending > 0; e.pending-- {
		e.w.WriteBit(other)
	}
}

func (e *Encoder) renormalize() {
	for {
		switch {
		case e.high < half:
			e.outputBitPlusPending(0)
		case e.low >= half:
			e.outputBitPlusPending(1)
			e.low -= half
			e.high -= half
		case e.low >= q1 && e.high < q3:
			e.pending++
			e.low -= q1
			e.high -= q1
		default:
			return
		}
		e.low <<= 1
		e.high = (e.high << 1) | 1
	}
}

// encode updates (low, high) for a symbol with cumulative frequency c,
// frequency f, under total t, then renormalizes.
func (e *Encoder) encode(c, f, t int64) {
	r := uint64(e.high-e.low) + 1
	e.high = e.low + uint32(r*uint64(c+f)/uint64(t)) - 1
	e.low = e.low + uint32(r*uint64(c)/uint64(t))
	e.renormalize()
}

// EncodeSymbol encodes the symbol at 1-based Fenwick index idx against m,
// then updates m in lock-step with the decoder (add 1, rescale if needed).
func (e *Encoder) EncodeSymbol(m *fenwick.Model, idx int) {
	var c int64
	if idx > 1 {
		c = m.Sum(idx - 1)
	}
	f := m.Freq(idx)
	t := m.Total()
	e.encode(c, f, t)
	m.Add(idx, 1)
}

// Finish flushes the final disambiguating bits.
func (e *Encoder) Finish() ([]byte, error) {
	e.pending++
	if e.low < q1 {
		e.outputBitPlusPending(0)
	} else {
		e.outputBitPlusPending(1)
	}
	return e.w.Finish()
}

// Decoder is the mirror adaptive binary arithmetic decoder.
type Decoder struct {
	r     *bitio.BitReader
	low   uint32
	high  uint32
	value uint32
}

func NewDecoder(r *bitio.BitReader) *Decoder {
	d := &Decoder{r: r, low: 0, high: top}
	d.value = uint32(r.ReadBits(32))
	return d
}

func (d *Decoder) renormalize() {
	for {
		switch {
		case d.high < half:
		case d.low >= half:
			d.low -= half
			d.high -= half
			d.value -= half
		case d.low >= q1 && d.high < q3:
			d.low -= q1
			d.high -= q1
			d.value -= q1
		default:
			return
		}
		d.low <<= 1
		d.high = (d.high << 1) | 1
		d.value = (d.value << 1) | uint32(d.r.ReadBit())
	}
}

func (d *Decoder) target(t int64) int64 {
	r := uint64(d.high-d.low) + 1
	return int64((((uint64(d.value-d.low) + 1) * uint64(t)) - 1) / r)
}

func (d *Decoder) consume(c, f, t int64) {
	r := uint64(d.high-d.low) + 1
	d.high = d.low + uint32(r*uint64(c+f)/uint64(t)) - 1
	d.low = d.low + uint32(r*uint64(c)/uint64(t))
	d.renormalize()
}

// DecodeSymbol decodes the next symbol's 1-based Fenwick index against m,
// updating m in lock-step with the encoder.
func (d *Decoder) DecodeSymbol(m *fenwick.Model) int {
	t := m.Total()
	cumValue := d.target(t)
	idx := m.FindByCumulative(cumValue)
	var c int64
	if idx > 1 {
		c = m.Sum(idx - 1)
	}
	f := m.Freq(idx)
	d.consume(c, f, t)
	m.Add(idx, 1)
	return idx
}
