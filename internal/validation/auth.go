package validation

import "strconv"

// TokenLength is the exact number of characters an authorization header
// must have. Login hands out tokens of this length.
const TokenLength = 16

var tokenLenTag = "len=" + strconv.Itoa(TokenLength)

const (
	MsgTokenNotFound = "Token não encontrado"
	MsgTokenInvalid  = "Token inválido"
)

// TokenPresent fails when the authorization header is missing or empty.
func TokenPresent(token string) *Failure {
	if !valid(token, "required") {
		return unauthorized(MsgTokenNotFound)
	}
	return nil
}

// TokenShape fails when the header does not have exactly TokenLength
// characters. The value itself is never verified.
func TokenShape(token string) *Failure {
	if !valid(token, tokenLenTag) {
		return unauthorized(MsgTokenInvalid)
	}
	return nil
}

// AuthorizationChecks is the fixed order applied to the authorization header.
var AuthorizationChecks = []Check[string]{
	TokenPresent,
	TokenShape,
}
