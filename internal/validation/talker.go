package validation

import "github.com/aanand-mishra/talker-api/internal/types"

const (
	MsgNameRequired    = `O campo "name" é obrigatório`
	MsgNameLength      = `O "name" deve ter pelo menos 3 caracteres`
	MsgAgeRequired     = `O campo "age" é obrigatório`
	MsgAgeLegal        = `A pessoa palestrante deve ser maior de idade`
	MsgTalkRequired    = `O campo "talk" é obrigatório e "watchedAt" e "rate" não podem ser vazios`
	MsgWatchedAtFormat = `O campo "watchedAt" deve ter o formato "dd/mm/aaaa"`
	MsgRateRange       = `O campo "rate" deve ser um inteiro de 1 à 5`
)

// Each check below only looks at its own field. A check whose field is
// absent passes; reporting absence is the job of the matching *Present
// check placed before it in TalkerChecks.

// NamePresent fails when name is missing or empty.
func NamePresent(r types.TalkerRequest) *Failure {
	if r.Name == nil || !valid(*r.Name, "required") {
		return badRequest(MsgNameRequired)
	}
	return nil
}

// NameLength fails when name has 3 characters or fewer.
func NameLength(r types.TalkerRequest) *Failure {
	if r.Name != nil && !valid(*r.Name, "gt=3") {
		return badRequest(MsgNameLength)
	}
	return nil
}

// AgePresent fails when age is missing or zero.
func AgePresent(r types.TalkerRequest) *Failure {
	if r.Age == nil || !valid(*r.Age, "required") {
		return badRequest(MsgAgeRequired)
	}
	return nil
}

// AgeLegal fails when age is 18 or less.
func AgeLegal(r types.TalkerRequest) *Failure {
	if r.Age != nil && !valid(*r.Age, "gt=18") {
		return badRequest(MsgAgeLegal)
	}
	return nil
}

// TalkPresent fails when the talk object is missing.
func TalkPresent(r types.TalkerRequest) *Failure {
	if r.Talk == nil {
		return badRequest(MsgTalkRequired)
	}
	return nil
}

// TalkFields fails when talk, talk.watchedAt or talk.rate is missing.
// A rate of 0 or null is present; RateRange rejects it.
func TalkFields(r types.TalkerRequest) *Failure {
	if r.Talk == nil || r.Talk.WatchedAt == nil || !r.Talk.Rate.Set {
		return badRequest(MsgTalkRequired)
	}
	return nil
}

// WatchedAtFormat fails when talk.watchedAt is not shaped dd/mm/yyyy.
// Only the shape is checked, not whether the date exists.
func WatchedAtFormat(r types.TalkerRequest) *Failure {
	if r.Talk != nil && r.Talk.WatchedAt != nil && !valid(*r.Talk.WatchedAt, "watchedat") {
		return badRequest(MsgWatchedAtFormat)
	}
	return nil
}

// RateRange fails when talk.rate is null or outside 1..5.
func RateRange(r types.TalkerRequest) *Failure {
	if r.Talk == nil || !r.Talk.Rate.Set {
		return nil
	}
	if r.Talk.Rate.Null || !valid(r.Talk.Rate.Value, "min=1,max=5") {
		return badRequest(MsgRateRange)
	}
	return nil
}

// TalkerChecks is the fixed order applied to POST and PUT bodies.
var TalkerChecks = []Check[types.TalkerRequest]{
	NamePresent,
	NameLength,
	AgePresent,
	AgeLegal,
	TalkPresent,
	TalkFields,
	WatchedAtFormat,
	RateRange,
}
