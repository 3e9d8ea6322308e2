package ruleerrors

// ExitCodeTable maps the kinds of rule errors a script variant can report to
// the numeric exit codes that variant is deployed with. Codes are visible to
// anyone verifying the transaction, so a table never changes once deployed.
type ExitCodeTable map[Kind]int8

// Exit codes of host level failures, shared by all variants.
const (
	ExitCodeIndexOutOfBound int8 = 1
	ExitCodeItemMissing     int8 = 2
	ExitCodeLengthNotEnough int8 = 3
	ExitCodeEncoding        int8 = 4
)

// hostExitCodes is the part every table starts from.
var hostExitCodes = ExitCodeTable{
	KindIndexOutOfBound: ExitCodeIndexOutOfBound,
	KindItemMissing:     ExitCodeItemMissing,
	KindLengthNotEnough: ExitCodeLengthNotEnough,
	KindEncoding:        ExitCodeEncoding,
}

// NewExitCodeTable returns a table holding the host exit codes plus the
// given script codes.
func NewExitCodeTable(scriptCodes ExitCodeTable) ExitCodeTable {
	table := make(ExitCodeTable, len(hostExitCodes)+len(scriptCodes))
	for kind, code := range hostExitCodes {
		table[kind] = code
	}
	for kind, code := range scriptCodes {
		table[kind] = code
	}
	return table
}

// ExitCode returns the exit code err is reported with under this table.
// The second return value is false if err is nil, carries no RuleError, or
// carries a kind the table has no code for (e.g. KindExceededMaxCycles).
func (table ExitCodeTable) ExitCode(err error) (int8, bool) {
	if err == nil {
		return 0, false
	}
	code, ok := table[KindOf(err)]
	return code, ok
}
