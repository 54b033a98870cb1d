// Package validator provides small declarative validation rules.
//
// A Rule pairs a Check function with the error reported when it fails.
// Apply evaluates rules and collects every failure into ValidationErrors,
// which satisfies the error interface:
//
//	err := validator.Apply(
//	    validator.RequiredString("initial", def.Initial),
//	    validator.RequiredSlice("transitions", def.Transitions),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs.Has("initial") {
//	    // ...
//	}
package validator
