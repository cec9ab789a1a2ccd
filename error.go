// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.15
//

package redshift

import (
	"fmt"
)

// InvalidParamReason names the parameter check that failed.
type InvalidParamReason string

const (
	ReasonSemiMajorAxis  InvalidParamReason = "semi-major axis must be positive and finite"
	ReasonEccentricity   InvalidParamReason = "eccentricity must be in [0, 1)"
	ReasonDuplicateName  InvalidParamReason = "duplicate orbit name"
	ReasonNoOrbits       InvalidParamReason = "no orbits configured"
	ReasonNumPoints      InvalidParamReason = "number of samples must be at least 2"
	ReasonObserverRadius InvalidParamReason = "observer radius must be positive"
	ReasonBodyMass       InvalidParamReason = "body mass must be positive"
)

// InvalidParamError is returned when an input is outside the domain of the model.
// Nothing is computed once one has been returned.
type InvalidParamError struct {
	Name   string             // Orbit or parameter name
	Reason InvalidParamReason // The check that failed
	Value  float64            // The offending value
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s (value: %g)", e.Name, e.Reason, e.Value)
}
