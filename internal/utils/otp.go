package utils

import (
	"math/rand/v2"
	"strconv"
)

// GenerateOTP returns a uniformly random 6-digit decimal code in the range
// 100000–999999.
//
// Known weakness: the code comes from a non-cryptographic PRNG. It proves
// possession of the registered mailbox within a 10-minute window and is not
// an adversarially hardened token.
func GenerateOTP() string {
	return strconv.Itoa(rand.IntN(900000) + 100000)
}
