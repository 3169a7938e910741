package registry

import "math/rand"

// codeAlphabet omits the ambiguous characters 0/O and 1/I so codes
// survive being read aloud or copied by hand.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	RoomCodeLength       = 6
	TournamentCodeLength = 8
)

// GenerateCode returns a random code of n characters from the
// unambiguous uppercase alphabet. Uniqueness is the caller's problem;
// the Registry re-checks against the relevant store and retries.
func GenerateCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}
