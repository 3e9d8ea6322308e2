/*
Package infoscript verifies token info cells.

A token info cell is an output carrying the info type script. The script
accepts a transaction only if the cell can be tied to its token and the
token's owner authorized the transaction:

 1. The script args identify a companion: an input lock (DirectLockVariant),
    or an output whose type script hashes to the args (all later variants).
 2. The companion's type args hold the owner lock hash, which must lock one
    of the inputs.
 3. With FinalVariant, the info cell data must be at least three lines
    separated by '\n', the first of which is a single decimals byte.

Every check fails fast with a ruleerrors.RuleError. The exit code a failure
is reported with depends on the Variant.

Usage:

	verifier, err := infoscript.NewFactory().NewVerifier(infoscript.NewConfig(), hashes.Blake2bHasher{})
	if err != nil {
		return err
	}
	err = verifier.Verify(txcontext.New(tx, infoScript, hashes.Blake2bHasher{}))
*/
package infoscript
