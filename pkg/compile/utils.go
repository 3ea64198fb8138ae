/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package compile

// SplitErrors flattens errors joined with errors.Join, nested joins included.
// A join wrapped into another error stays whole.
func SplitErrors(joinedError error) (errs []error) {
	if joinedError != nil {
		if pErr, ok := joinedError.(IErrUnwrapper); ok {
			for _, e := range pErr.Unwrap() {
				errs = append(errs, SplitErrors(e)...)
			}
			return errs
		}
		return []error{joinedError}
	}
	return
}
