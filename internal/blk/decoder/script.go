package decoder

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/txscript"
)

// TokenKind tells how a script token was decoded.
type TokenKind uint8

const (
	TokenPushData TokenKind = iota
	TokenOpcode
	TokenUnsupported
)

// Token is one element of a disassembled script.
type Token struct {
	Kind   TokenKind
	Data   []byte
	Opcode byte
	Name   string
}

func (t Token) String() string {
	switch t.Kind {
	case TokenPushData:
		return hex.EncodeToString(t.Data)
	case TokenOpcode:
		return t.Name
	default:
		return fmt.Sprintf("OP_UNSUPPORTED:%02X", t.Opcode)
	}
}

// OpcodeTable maps opcode values to mnemonics.
type OpcodeTable map[byte]string

// DefaultOpcodes covers the opcodes of pay-to-pubkey and pay-to-pubkey-hash scripts.
var DefaultOpcodes = OpcodeTable{
	txscript.OP_CHECKSIG:    "OP_CHECKSIG",
	txscript.OP_DUP:         "OP_DUP",
	txscript.OP_HASH160:     "OP_HASH160",
	txscript.OP_EQUALVERIFY: "OP_EQUALVERIFY",
}

// Disassembler renders scripts as space separated mnemonics and hex pushes.
// It does not execute or validate anything.
type Disassembler struct {
	opcodes OpcodeTable
}

// NewDisassembler builds a Disassembler over the given table; nil selects DefaultOpcodes.
func NewDisassembler(opcodes OpcodeTable) *Disassembler {
	if opcodes == nil {
		opcodes = DefaultOpcodes
	}
	return &Disassembler{opcodes: opcodes}
}

// Tokens splits script into tokens. Bytes 0x01..0x4a are pushes of that many bytes;
// a push running past the end yields whatever bytes remain. 0x00 and 0x4b are looked up
// in the table like any other opcode.
func (d *Disassembler) Tokens(script []byte) []Token {
	tokens := make([]Token, 0, len(script))
	for i := 0; i < len(script); {
		c := script[i]
		i++
		if c > txscript.OP_0 && c < txscript.OP_DATA_75 {
			end := min(i+int(c), len(script))
			tokens = append(tokens, Token{Kind: TokenPushData, Data: script[i:end], Opcode: c})
			i = end
			continue
		}
		if name, ok := d.opcodes[c]; ok {
			tokens = append(tokens, Token{Kind: TokenOpcode, Opcode: c, Name: name})
			continue
		}
		tokens = append(tokens, Token{Kind: TokenUnsupported, Opcode: c})
	}
	return tokens
}

// Disassemble returns the textual form of script.
func (d *Disassembler) Disassemble(script []byte) string {
	tokens := d.Tokens(script)
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
