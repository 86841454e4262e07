// Copyright (c) 2024-2026 The koinsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// These constants are the script opcodes used by the standard scripts this
// package produces and recognizes.  Opcodes from OP_DATA_1 through
// OP_DATA_75 push the corresponding number of immediate bytes and are
// referenced through their numeric range rather than individual names.
const (
	OP_0           = 0x00 // 0
	OP_DATA_20     = 0x14 // 20
	OP_DATA_33     = 0x21 // 33
	OP_DATA_65     = 0x41 // 65
	OP_DATA_75     = 0x4b // 75
	OP_PUSHDATA1   = 0x4c // 76
	OP_PUSHDATA2   = 0x4d // 77
	OP_PUSHDATA4   = 0x4e // 78
	OP_DUP         = 0x76 // 118
	OP_EQUAL       = 0x87 // 135
	OP_EQUALVERIFY = 0x88 // 136
	OP_HASH160     = 0xa9 // 169
	OP_CHECKSIG    = 0xac // 172
)

// addData appends the canonical push of data to script and returns the
// result.  The smallest opcode able to represent the data length is used.
func addData(script, data []byte) []byte {
	dataLen := len(data)
	switch {
	case dataLen <= OP_DATA_75:
		script = append(script, byte(dataLen))
	case dataLen <= 0xff:
		script = append(script, OP_PUSHDATA1, byte(dataLen))
	case dataLen <= 0xffff:
		script = append(script, OP_PUSHDATA2, byte(dataLen),
			byte(dataLen>>8))
	default:
		script = append(script, OP_PUSHDATA4, byte(dataLen),
			byte(dataLen>>8), byte(dataLen>>16), byte(dataLen>>24))
	}
	return append(script, data...)
}

// extractPushes returns the data pushed by each opcode of a script comprised
// solely of data pushes, in order.  An error with kind ErrMalformedScript is
// returned for a push which runs past the end of the script, and one with
// kind ErrNonStandardScript when the script contains a non-push opcode.
func extractPushes(script []byte) ([][]byte, error) {
	var pushes [][]byte
	for i := 0; i < len(script); {
		op := script[i]
		i++

		var dataLen int
		switch {
		case op <= OP_DATA_75:
			dataLen = int(op)
		case op == OP_PUSHDATA1:
			if len(script)-i < 1 {
				return nil, scriptError(ErrMalformedScript,
					"OP_PUSHDATA1 is missing its length byte")
			}
			dataLen = int(script[i])
			i++
		case op == OP_PUSHDATA2:
			if len(script)-i < 2 {
				return nil, scriptError(ErrMalformedScript,
					"OP_PUSHDATA2 is missing its length bytes")
			}
			dataLen = int(script[i]) | int(script[i+1])<<8
			i += 2
		case op == OP_PUSHDATA4:
			if len(script)-i < 4 {
				return nil, scriptError(ErrMalformedScript,
					"OP_PUSHDATA4 is missing its length bytes")
			}
			dataLen = int(script[i]) | int(script[i+1])<<8 |
				int(script[i+2])<<16 | int(script[i+3])<<24
			i += 4
		default:
			return nil, scriptError(ErrNonStandardScript,
				"script contains a non-push opcode")
		}

		if dataLen < 0 || len(script)-i < dataLen {
			return nil, scriptError(ErrMalformedScript,
				"data push runs past the end of the script")
		}
		pushes = append(pushes, script[i:i+dataLen])
		i += dataLen
	}
	return pushes, nil
}
