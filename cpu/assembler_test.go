package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parse(asm *Assembler, program ...string) (*Program, error) {
	return asm.Parse(strings.NewReader(strings.Join(program, "\n")))
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := parse(asm)
	assert.NoError(err)
	assert.Equal(0, len(prog.Lines))
	assert.Equal("0", asm.Equate["LINENO"])
}

func TestAssembler_Program(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := parse(asm,
		"; load and add",
		"LDX 1",
		"",
		"ldy 2   ; second operand",
		"  add",
	)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Line{
		{LineNo: 2, Ip: 0, Words: []string{"LDX", "1"}, Bytes: []byte{0x1, 0x1}},
		{LineNo: 4, Ip: 2, Words: []string{"ldy", "2"}, Bytes: []byte{0x2, 0x2}},
		{LineNo: 5, Ip: 4, Words: []string{"add"}, Bytes: []byte{0x5}},
	}
	assert.Equal(expected, prog.Lines)
	assert.Equal([]byte{0x1, 0x1, 0x2, 0x2, 0x5}, prog.Binary())
}

func TestAssembler_Values(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		line  string
		bytes []byte
	}){
		{"decimal", ".byte 0 1 255", []byte{0, 1, 255}},
		{"hex", ".byte 0x10 0xff", []byte{0x10, 0xff}},
		{"binary", ".byte 0b101", []byte{5}},
		{"octal", ".byte 0o17", []byte{15}},
		{"invert", ".byte ~0 ~0xf0", []byte{0xff, 0x0f}},
		{"invert_max", ".byte ~0xff ~255", []byte{0x00, 0x00}},
		{"invert_equate", ".equ M 0xf0\n.byte ~M", []byte{0x0f}},
		{"invert_equate_inverted", ".equ M ~0xf0\n.byte M ~M", []byte{0x0f, 0xf0}},
		{"char", ".byte 'A' 'z'", []byte{'A', 'z'}},
		{"char_escape", ".byte '\\n' '\\0'", []byte{'\n', 0}},
		{"expr", ".byte $(3 * 4 + 1)", []byte{13}},
		{"expr_lineno", "nop $(LINENO)", []byte{0x0, 1}},
		{"opcode", "jmp 0xfe", []byte{0x7, 0xfe}},
		{"bare", "sub", []byte{0x6}},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := parse(asm, entry.line)
		assert.NoError(err, entry.name)
		if err != nil {
			continue
		}
		assert.Equal(entry.bytes, prog.Binary(), entry.name)
	}
}

func TestAssembler_Equate(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("LDX", "0x1")
	asm.Predefine("BASE", "0x20")

	prog, err := parse(asm,
		".equ OFFSET 3",
		".equ SUM $(BASE + OFFSET)",
		"ldx SUM",
		".byte LDX OFFSET",
	)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal("35", asm.Equate["SUM"])
	assert.Equal([]byte{0x1, 35, 0x1, 3}, prog.Binary())
}

func TestAssembler_Label(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := parse(asm,
		"start: ldx data",
		"loop: add",
		"jmp loop",
		"data: .byte 0x2a start",
		"end:",
		".byte $(end - start)",
	)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(map[string]int{"start": 0, "loop": 2, "data": 5, "end": 7}, asm.Label)
	assert.Equal([]byte{0x1, 5, 0x5, 0x7, 2, 0x2a, 0, 7}, prog.Binary())
	assert.Equal(map[int]string{1: "data"}, prog.Lines[0].Links)
}

func TestAssembler_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		lineno  int
		err     error
	}){
		{"opcode", []string{"nop", "hcf"}, 2, ErrOpcodeInvalid("hcf")},
		{"extra", []string{"ldx 1 2"}, 1, ErrOpcodeExtraArgs},
		{"byte_empty", []string{".byte"}, 1, ErrOpcodeValueMissing},
		{"range_high", []string{".byte 256"}, 1, ErrValueRange(256)},
		{"range_invert", []string{".byte ~300"}, 1, ErrValueRange(300)},
		{"range_invert_byte", []string{".byte ~0x100"}, 1, ErrValueRange(0x100)},
		{"range_invert_equate", []string{".equ M 0x1ff", ".byte ~M"}, 2, ErrValueRange(0x1ff)},
		{"range_low", []string{"ldx $(1 - 2)"}, 1, ErrValueRange(-1)},
		{"number", []string{".byte 12abc"}, 1, ErrParseNumber("12abc")},
		{"equ_syntax", []string{".equ A"}, 1, ErrEquateSyntax},
		{"equ_name", []string{".equ 1A 2"}, 1, ErrEquateSyntax},
		{"equ_duplicate", []string{".equ A 1", ".equ A 2"}, 2, ErrEquateDuplicate},
		{"label_duplicate", []string{"a: nop", "a: nop"}, 2, ErrLabelDuplicate},
		{"label_invalid", []string{"1a: nop"}, 1, ErrLabelInvalid},
		{"label_missing", []string{"nop", "jmp nowhere", "nop"}, 2, ErrLabelMissing("nowhere")},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := parse(asm, entry.program...)
		assert.ErrorIs(err, entry.err, entry.name)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}

func TestAssembler_Expression_Error(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := parse(asm, ".byte $(1 +)")
	assert.Error(err)

	_, err = parse(asm, `.byte $("x")`)
	assert.ErrorIs(err, ErrParseExpression(`"x"`))
}

func TestAssembler_Reuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := parse(asm, ".equ A 1", "a: .byte A")
	assert.NoError(err)

	prog, err := parse(asm, ".equ A 2", "a: .byte A")
	assert.NoError(err)
	assert.Equal([]byte{2}, prog.Binary())
}
