package externalapi

// Transaction is a fully resolved transaction as seen by scripts during
// verification. Output i carries Outputs[i].Data as its outputs_data entry.
type Transaction struct {
	Version uint32
	Inputs  []*CellInput
	Outputs []*Cell
}
