package validation

import "github.com/aanand-mishra/talker-api/internal/types"

const (
	MsgEmailRequired    = `O campo "email" é obrigatório`
	MsgEmailFormat      = `O "email" deve ter o formato "email@email.com"`
	MsgPasswordRequired = `O campo "password" é obrigatório`
	MsgPasswordLength   = `O "password" deve ter pelo menos 6 caracteres`
)

func EmailPresent(r types.LoginRequest) *Failure {
	if !valid(r.Email, "required") {
		return badRequest(MsgEmailRequired)
	}
	return nil
}

func EmailFormat(r types.LoginRequest) *Failure {
	if r.Email != "" && !valid(r.Email, "loginemail") {
		return badRequest(MsgEmailFormat)
	}
	return nil
}

// PasswordPresent and PasswordLength look at the text of the password; a
// numeric password counts by its digits.
func PasswordPresent(r types.LoginRequest) *Failure {
	if !valid(string(r.Password), "required") {
		return badRequest(MsgPasswordRequired)
	}
	return nil
}

func PasswordLength(r types.LoginRequest) *Failure {
	if r.Password != "" && !valid(string(r.Password), "min=6") {
		return badRequest(MsgPasswordLength)
	}
	return nil
}

// LoginChecks is the fixed order applied to POST /login bodies.
var LoginChecks = []Check[types.LoginRequest]{
	EmailPresent,
	EmailFormat,
	PasswordPresent,
	PasswordLength,
}
