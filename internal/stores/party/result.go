package party

// Result is the outcome of a party command. Expected failures are results,
// never errors.
type Result string

// Party command results
const (
	ResultSuccess          Result = "SUCCESS"
	ResultAlreadyInParty   Result = "ALREADY_IN_PARTY"
	ResultInvalidName      Result = "INVALID_NAME"
	ResultNameTaken        Result = "NAME_TAKEN"
	ResultPartyNotFound    Result = "PARTY_NOT_FOUND"
	ResultWrongPassword    Result = "WRONG_PASSWORD"
	ResultInvalidPassword  Result = "INVALID_PASSWORD"
	ResultPartyFull        Result = "PARTY_FULL"
	ResultNotInParty       Result = "NOT_IN_PARTY"
	ResultNotLeader        Result = "NOT_LEADER"
	ResultNotAMember       Result = "NOT_A_MEMBER"
	ResultCannotTargetSelf Result = "CANNOT_TARGET_SELF"
)

// OK reports whether the command succeeded
func (r Result) OK() bool {
	return r == ResultSuccess
}

// String implements fmt.Stringer
func (r Result) String() string {
	return string(r)
}
