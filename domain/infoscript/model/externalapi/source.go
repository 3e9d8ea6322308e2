package externalapi

import "fmt"

// Source selects which cells of the transaction a load operation indexes into.
type Source uint8

const (
	// SourceInput indexes the resolved input cells.
	SourceInput Source = iota + 1
	// SourceOutput indexes the output cells.
	SourceOutput
	// SourceGroupInput indexes the input cells running the current script.
	SourceGroupInput
	// SourceGroupOutput indexes the output cells running the current script.
	SourceGroupOutput
)

var sourceNames = map[Source]string{
	SourceInput:       "Input",
	SourceOutput:      "Output",
	SourceGroupInput:  "GroupInput",
	SourceGroupOutput: "GroupOutput",
}

func (source Source) String() string {
	name, ok := sourceNames[source]
	if !ok {
		return fmt.Sprintf("Source(%d)", uint8(source))
	}
	return name
}
