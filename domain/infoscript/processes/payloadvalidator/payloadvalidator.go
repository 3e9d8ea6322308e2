package payloadvalidator

import (
	"bytes"

	"github.com/kaspanet/infoscript/domain/infoscript/model"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/kaspanet/infoscript/domain/infoscript/utils/constants"
	"github.com/pkg/errors"
)

// selfCellIndex is the position of the info cell among the outputs of its
// own script group.
const selfCellIndex = 0

type payloadValidator struct{}

// New instantiates a new PayloadValidator
func New() model.PayloadValidator {
	return &payloadValidator{}
}

// ValidatePayload checks the data of the first output in the running
// script's group. It returns true, or false with an error.
func (v *payloadValidator) ValidatePayload(ctx externalapi.ExecutionContext) (bool, error) {
	data, err := ctx.LoadCellData(selfCellIndex, externalapi.SourceGroupOutput)
	if err != nil {
		return false, err
	}
	err = CheckStructure(data)
	if err != nil {
		return false, err
	}
	log.Debugf("Info data of %d bytes is well formed", len(data))
	return true, nil
}

// CheckStructure returns ErrWrongDataStruct unless data splits on '\n' into
// at least three lines, the first of which is exactly one byte long.
// Consecutive separators delimit empty lines, which count like any other.
func CheckStructure(data []byte) error {
	if len(data) == 0 {
		return errors.Wrap(ruleerrors.ErrWrongDataStruct, "info data is empty")
	}

	separators := bytes.Count(data, []byte{constants.InfoDataSeparator})
	if separators+1 < constants.MinInfoDataLines {
		return errors.Wrapf(ruleerrors.ErrWrongDataStruct,
			"info data has %d lines, want at least %d", separators+1, constants.MinInfoDataLines)
	}

	decimalsFieldSize := bytes.IndexByte(data, constants.InfoDataSeparator)
	if decimalsFieldSize != constants.DecimalsFieldSize {
		return errors.Wrapf(ruleerrors.ErrWrongDataStruct,
			"decimals field is %d bytes, want %d", decimalsFieldSize, constants.DecimalsFieldSize)
	}
	return nil
}
