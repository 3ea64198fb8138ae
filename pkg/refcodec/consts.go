/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package refcodec

// Linux errno values returned, negated, by generated functions
const (
	errnoNOENT  = 2
	errnoEXIST  = 17
	errnoINVAL  = 22
	errnoRANGE  = 34
	errnoNODATA = 61
	errnoBADMSG = 74
	errnoILSEQ  = 84
)
