// Package irt provides forward (data-generating) computation for the
// common parametric item response theory models: Rasch/1PL, 2PL, 3PL,
// the Partial Credit Model, and the Generalized Partial Credit Model.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - item.go: ItemBank construction and parameter validation
//   - gpcm.go: the GPCM category-probability law (all five models reduce to it)
//   - simulator.go: seeded response simulation, optionally fanned out across respondents
//
// # What this package does not do
//
// There is no parameter estimation here. Fitting item parameters and
// scoring latent traits from observed responses belongs to a fitting
// library; this package only produces the response tables such a
// library consumes, plus the closed-form curves (category
// probabilities, expected score, Fisher information) derivable from
// known parameters.
package irt
