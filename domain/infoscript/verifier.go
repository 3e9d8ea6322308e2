package infoscript

import (
	"github.com/kaspanet/infoscript/domain/infoscript/cycles"
	"github.com/kaspanet/infoscript/domain/infoscript/model"
	"github.com/kaspanet/infoscript/domain/infoscript/model/externalapi"
	"github.com/kaspanet/infoscript/infrastructure/logger"
)

// Verifier runs the info script on behalf of a single info cell.
type Verifier interface {
	// Verify returns nil if the script accepts the transaction ctx is
	// taken from, and the rule error it fails with otherwise.
	Verify(ctx externalapi.ExecutionContext) error

	// VerifyAndMeasure is Verify, also returning the cycles consumed.
	VerifyAndMeasure(ctx externalapi.ExecutionContext) (uint64, error)

	// ExitCode returns the exit code err terminates the script with under
	// the verifier's variant.
	ExitCode(err error) (int8, bool)

	// Variant returns the variant the verifier runs.
	Variant() *Variant
}

type verifier struct {
	variant   *Variant
	maxCycles uint64
	hasher    externalapi.Hasher

	argsExtractor      model.ArgsExtractor
	companionLocator   model.CompanionLocator
	ownerAuthenticator model.OwnerAuthenticator
	payloadValidator   model.PayloadValidator
}

func (v *verifier) Verify(ctx externalapi.ExecutionContext) error {
	_, err := v.VerifyAndMeasure(ctx)
	return err
}

func (v *verifier) VerifyAndMeasure(ctx externalapi.ExecutionContext) (uint64, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "VerifyAndMeasure")
	defer onEnd()

	meter := cycles.NewMeter(v.maxCycles)
	err := v.verify(meter.WrapContext(ctx), meter.WrapHasher(v.hasher))
	// Running out of cycles aborts the script no matter what it would have
	// returned, including success.
	if meterErr := meter.Err(); meterErr != nil {
		log.Debugf("Verification ran out of cycles: %s", meterErr)
		return meter.Consumed(), meterErr
	}
	if err != nil {
		log.Debugf("Verification with variant %s failed: %s", v.variant.Name, err)
		return meter.Consumed(), err
	}
	log.Debugf("Verification with variant %s passed in %d cycles", v.variant.Name, meter.Consumed())
	return meter.Consumed(), nil
}

func (v *verifier) verify(ctx externalapi.ExecutionContext, hasher externalapi.Hasher) error {
	args, err := v.argsExtractor.ExtractArgs(ctx)
	if err != nil {
		return err
	}

	companion, err := v.companionLocator.LocateCompanion(ctx, hasher, args)
	if err != nil {
		return err
	}

	err = v.ownerAuthenticator.AuthenticateOwner(ctx, companion)
	if err != nil {
		return err
	}

	if v.payloadValidator == nil {
		return nil
	}
	_, err = v.payloadValidator.ValidatePayload(ctx)
	return err
}

func (v *verifier) ExitCode(err error) (int8, bool) {
	return v.variant.ExitCodes.ExitCode(err)
}

func (v *verifier) Variant() *Variant {
	return v.variant
}
