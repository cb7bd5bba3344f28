package tokenizer

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// Bytes a primitive may not contain.
func isNonPrintable(b byte) bool {
	return b < 32 || b >= 127
}

// In strict mode primitives are numbers, booleans and null.
func isStrictPrimitiveStart(b byte) bool {
	return isDigit(b) || b == '-' || b == 't' || b == 'f' || b == 'n'
}
