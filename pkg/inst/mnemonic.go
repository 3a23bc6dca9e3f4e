package inst

var opNames = [OpCount]string{
	ADD:   "ADD",
	ADC:   "ADC",
	SUB:   "SUB",
	SBC:   "SBC",
	AND:   "AND",
	XOR:   "XOR",
	OR:    "OR",
	CP:    "CP",
	INC:   "INC",
	DEC:   "DEC",
	ADDHL: "ADD HL",
	CCF:   "CCF",
	SCF:   "SCF",
	CPL:   "CPL",
}

var targetNames = [TargetCount]string{
	None: "",
	A:    "A",
	B:    "B",
	C:    "C",
	D:    "D",
	E:    "E",
	H:    "H",
	L:    "L",
	BC:   "BC",
	DE:   "DE",
	HL:   "HL",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "???"
}

func (t Target) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return "???"
}

// String renders the conventional mnemonic: "ADD A, B", "SUB B",
// "ADD HL, DE", "CCF". ADD and ADC spell out the accumulator; the remaining
// 8-bit ops leave it implicit, matching the assembly most references print.
func (in Instruction) String() string {
	switch in.Op {
	case ADD, ADC:
		return in.Op.String() + " A, " + in.Target.String()
	case ADDHL:
		return "ADD HL, " + in.Target.String()
	case CCF, SCF, CPL:
		return in.Op.String()
	default:
		return in.Op.String() + " " + in.Target.String()
	}
}
