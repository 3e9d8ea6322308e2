// Package tokeninfo decodes the data of token info cells.
package tokeninfo

import (
	"bytes"
	"fmt"

	"github.com/kaspanet/infoscript/domain/infoscript/processes/payloadvalidator"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/constants"
)

// TokenInfo is the content of a token info cell. The script only checks the
// layout, so Name, Symbol and Extra may hold arbitrary bytes.
type TokenInfo struct {
	Decimals uint8
	Name     string
	Symbol   string
	Extra    []string
}

// Decode splits well formed info data into its fields. It fails with
// ErrWrongDataStruct on data the info script would reject.
func Decode(data []byte) (*TokenInfo, error) {
	err := payloadvalidator.CheckStructure(data)
	if err != nil {
		return nil, err
	}

	lines := bytes.Split(data, []byte{constants.InfoDataSeparator})
	info := &TokenInfo{
		Decimals: lines[0][0],
		Name:     string(lines[1]),
		Symbol:   string(lines[2]),
	}
	for _, line := range lines[3:] {
		info.Extra = append(info.Extra, string(line))
	}
	return info, nil
}

// Encode is the inverse of Decode.
func (info *TokenInfo) Encode() []byte {
	var buffer bytes.Buffer
	buffer.WriteByte(info.Decimals)
	buffer.WriteByte(constants.InfoDataSeparator)
	buffer.WriteString(info.Name)
	buffer.WriteByte(constants.InfoDataSeparator)
	buffer.WriteString(info.Symbol)
	for _, extra := range info.Extra {
		buffer.WriteByte(constants.InfoDataSeparator)
		buffer.WriteString(extra)
	}
	return buffer.Bytes()
}

func (info *TokenInfo) String() string {
	return fmt.Sprintf("%s (%s), %d decimals", info.Name, info.Symbol, info.Decimals)
}
