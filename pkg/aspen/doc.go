// Package aspen implements the Aspen policy language: AWS IAM-style
// Allow/Deny access-control documents over actions, resources, principals,
// and runtime conditions.
//
// The package parses and serializes the JSON policy surface (including the
// scalar-or-array shortcuts AWS accepts), represents the resulting document
// as an immutable Policy, and evaluates a Request against it to produce a
// Decision.
//
// Example usage:
//
//	pol, err := aspen.ParsePolicy(raw)
//	if err != nil {
//	    return err
//	}
//	decision := pol.Evaluate(req)
//	if decision != aspen.DecisionAllow {
//	    return fmt.Errorf("access denied")
//	}
package aspen
