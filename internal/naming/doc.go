// Package naming resolves which coefficients survive filtering and what
// display label each one carries.
//
// The processing order is fixed and significant:
//
//  1. drop the intercept row when the intercept option is off
//  2. apply the exact-name variables allow-list (takes precedence
//     over factor rules)
//  3. otherwise apply the factors/only stem filter
//  4. strip factor-level prefixes per the shorten rule
//  5. apply newNames as a final display-only substitution
//
// Steps 4 and 5 never affect filtering already performed: renaming a
// coefficient cannot resurrect one that step 1-3 removed, and filters
// always match the raw variable name, not the rewritten label.
//
// An empty result is valid — it signals "no matching coefficients for
// this model" and is only turned into a removal by the drop option at
// the aggregation stage.
package naming
