package errors_test

import (
	"fmt"

	"github.com/s2wiki/pagetools/pkg/errors"
)

// Example demonstrates wrapping and checking a validation failure.
func Example() {
	err := errors.WrapValidation("Clear", errors.New("unknown field Foo"))

	if errors.IsValidationError(err) {
		fmt.Println(err)
	}

	// Output: validation failed for field Clear: unknown field Foo
}

// Example_unknownSource shows how an unresolvable override tag is reported.
func Example_unknownSource() {
	err := errors.NewUnknownSourceError("csgo", "", "Valid games:\n\n- cs2\n- hla\n")

	if errors.IsUnknownSource(err) {
		fmt.Print(err.Error())
	}

	// Output:
	// invalid override entity game 'csgo'!
	// Valid games:
	//
	// - cs2
	// - hla
	//
	// In case you meant to make this a global override for all games, remove the game suffix so the filename is {entityClassname}.json
}

// Example_entityError shows entity scoped faults that do not stop a run.
func Example_entityError() {
	err := errors.NewEntityError("door", "hla", errors.New("name mismatch"))
	fmt.Println(err)

	// Output: entity door (hla): name mismatch
}
