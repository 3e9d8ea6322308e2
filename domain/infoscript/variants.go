package infoscript

import (
	"sort"

	"github.com/kaspanet/infoscript/domain/infoscript/model"
	"github.com/kaspanet/infoscript/domain/infoscript/ruleerrors"
	"github.com/pkg/errors"
)

// Variant defines a deployed revision of the info script. Deployed scripts
// are immutable, so a Variant is never changed after its code is on chain;
// newer revisions get a new Variant.
type Variant struct {
	// Name is the human readable identifier of the variant, as used on the
	// command line.
	Name string

	// Version is the revision number of the variant. Higher versions
	// supersede lower ones.
	Version uint8

	// Locator is how the script finds the companion cell its args refer to.
	Locator model.LocatorStrategy

	// StrictCompanionLookup reports a missing companion as
	// ErrInfoTypeArgsNotMatch instead of the host error ErrItemMissing.
	// Only meaningful with model.LocateByOutputDescriptorHash.
	StrictCompanionLookup bool

	// ValidatePayload enables the structural check of the info cell data.
	ValidatePayload bool

	// ExitCodes maps rule error kinds to the exit codes this variant
	// terminates with.
	ExitCodes ruleerrors.ExitCodeTable
}

// DirectLockVariant takes a lock hash as args and accepts when an input is
// locked by it.
var DirectLockVariant = Variant{
	Name:    "direct-lock",
	Version: 1,
	Locator: model.LocateByInputLockHash,
	ExitCodes: ruleerrors.NewExitCodeTable(ruleerrors.ExitCodeTable{
		ruleerrors.KindOwnerLockScriptNotExist: 5,
	}),
}

// TypeHashVariant takes the type hash of a companion output as args and
// accepts when an input is locked by the lock hash in the companion's type
// args.
var TypeHashVariant = Variant{
	Name:    "type-hash",
	Version: 2,
	Locator: model.LocateByOutputTypeHash,
	ExitCodes: ruleerrors.NewExitCodeTable(ruleerrors.ExitCodeTable{
		ruleerrors.KindInfoTypeArgsNotMatch:    5,
		ruleerrors.KindOwnerLockScriptNotMatch: 6,
	}),
}

// DescriptorHashVariant is TypeHashVariant with the companion identified by
// the hash of its serialized type script. A missing companion fails the
// lookup with ErrItemMissing.
var DescriptorHashVariant = Variant{
	Name:    "descriptor-hash",
	Version: 3,
	Locator: model.LocateByOutputDescriptorHash,
	ExitCodes: ruleerrors.NewExitCodeTable(ruleerrors.ExitCodeTable{
		ruleerrors.KindOwnerLockScriptNotMatch: 6,
	}),
}

// FinalVariant is DescriptorHashVariant reporting a missing companion with
// its own exit code, and additionally checking the structure of the info
// cell data.
var FinalVariant = Variant{
	Name:                  "final",
	Version:               4,
	Locator:               model.LocateByOutputDescriptorHash,
	StrictCompanionLookup: true,
	ValidatePayload:       true,
	ExitCodes: ruleerrors.NewExitCodeTable(ruleerrors.ExitCodeTable{
		ruleerrors.KindOwnerLockScriptNotExist: 5,
		ruleerrors.KindOwnerLockScriptNotMatch: 6,
		ruleerrors.KindWrongDataStruct:         7,
		ruleerrors.KindInfoTypeArgsNotMatch:    8,
	}),
}

// DefaultVariant is the variant used when none is configured.
var DefaultVariant = &FinalVariant

var (
	// ErrDuplicateVariant describes an error where a variant with the same
	// name is registered more than once.
	ErrDuplicateVariant = errors.New("duplicate info script variant")

	// ErrUnknownVariant describes an error where a variant is looked up by
	// a name no variant is registered with.
	ErrUnknownVariant = errors.New("unknown info script variant")
)

var registeredVariants = make(map[string]*Variant)

// Register makes a variant available to VariantByName. The default variants
// are registered when the package is initialized.
func Register(variant *Variant) error {
	if _, ok := registeredVariants[variant.Name]; ok {
		return errors.Wrapf(ErrDuplicateVariant, "variant %s", variant.Name)
	}
	registeredVariants[variant.Name] = variant
	return nil
}

// VariantByName returns the registered variant named name.
func VariantByName(name string) (*Variant, error) {
	variant, ok := registeredVariants[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVariant, "variant %s", name)
	}
	return variant, nil
}

// VariantNames returns the names of all registered variants, ordered by
// version.
func VariantNames() []string {
	variants := make([]*Variant, 0, len(registeredVariants))
	for _, variant := range registeredVariants {
		variants = append(variants, variant)
	}
	sort.Slice(variants, func(i, j int) bool {
		return variants[i].Version < variants[j].Version
	})
	names := make([]string, len(variants))
	for i, variant := range variants {
		names[i] = variant.Name
	}
	return names
}

func mustRegister(variant *Variant) {
	if err := Register(variant); err != nil {
		panic("failed to register variant: " + err.Error())
	}
}

func init() {
	mustRegister(&DirectLockVariant)
	mustRegister(&TypeHashVariant)
	mustRegister(&DescriptorHashVariant)
	mustRegister(&FinalVariant)
}
