// Package inst defines the arithmetic/logic instruction set as a closed
// tagged union: an operation kind paired with an operand selector. It is
// deliberately decoupled from the raw opcode encoding, which lives in the
// decode package.
package inst

// Op names an ALU operation, independent of any opcode encoding.
type Op uint8

const (
	ADD   Op = iota // A += r
	ADC             // A += r + carry-in
	SUB             // A -= r
	SBC             // A -= r - borrow-in
	AND             // A &= r
	XOR             // A ^= r
	OR              // A |= r
	CP              // SUB that discards the result, flags only
	INC             // r++ (carry untouched)
	DEC             // r-- (carry untouched)
	ADDHL           // HL += rr, 16-bit
	CCF             // complement carry
	SCF             // set carry
	CPL             // A = ^A
	OpCount         // sentinel
)

// Target selects the operand: a single 8-bit register, a 16-bit pair for the
// wide add, or nothing for the flag/accumulator specials.
type Target uint8

const (
	None Target = iota
	A
	B
	C
	D
	E
	H
	L
	BC
	DE
	HL
	TargetCount // sentinel
)

// Is8 reports whether the target selects an 8-bit register.
func (t Target) Is8() bool { return t >= A && t <= L }

// Is16 reports whether the target selects a 16-bit register pair.
func (t Target) Is16() bool { return t >= BC && t <= HL }

// Instruction is an immutable operation/selector pairing. It is constructed
// per dispatch, consumed immediately, and carries no other state.
type Instruction struct {
	Op     Op
	Target Target
}

// Valid reports whether the selector is legal for the operation. The
// instruction set is this relation and nothing more: the 8-bit ALU ops take
// one of the seven registers, the wide add takes a pair, and the specials
// take no operand.
func Valid(op Op, t Target) bool {
	switch op {
	case ADD, ADC, SUB, SBC, AND, XOR, OR, CP, INC, DEC:
		return t.Is8()
	case ADDHL:
		return t.Is16()
	case CCF, SCF, CPL:
		return t == None
	}
	return false
}

// Ops returns every operation kind, in enumeration order.
func Ops() []Op {
	ops := make([]Op, 0, OpCount)
	for op := Op(0); op < OpCount; op++ {
		ops = append(ops, op)
	}
	return ops
}

// Targets returns every selector legal for op, in enumeration order.
func Targets(op Op) []Target {
	ts := make([]Target, 0, TargetCount)
	for t := Target(0); t < TargetCount; t++ {
		if Valid(op, t) {
			ts = append(ts, t)
		}
	}
	return ts
}

// All returns every valid instruction, in (op, target) enumeration order.
func All() []Instruction {
	var all []Instruction
	for op := Op(0); op < OpCount; op++ {
		for _, t := range Targets(op) {
			all = append(all, Instruction{Op: op, Target: t})
		}
	}
	return all
}
